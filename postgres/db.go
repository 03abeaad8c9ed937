package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/xy-planning-network/rango"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

var safeGORMSession = &gorm.Session{}

// DB wraps a *gorm.DB.
// Every query building method returns a new *DB, so a *DB can be shared across goroutines
// as long as each query chain starts from it.
type DB struct {
	// Some *gorm.DB methods are not thread-safe and mutate the state of the *gorm.DB backing DB.
	// If a *gorm.DB method does not call *gorm.DB.getInstance, use *gorm.DB.Session to force a clean pointer.
	db *gorm.DB
}

// NewDB constructs a *DB from a *gorm.DB.
func NewDB(db *gorm.DB) *DB { return &DB{db: db} }

// DB exposes the underlying *gorm.DB backing DB.
//
// NB: use in exceptional circumstances only.
func (db *DB) DB() *gorm.DB { return db.db }

// Debug prints the current query to the logger.
func (db *DB) Debug() *DB { return &DB{db.db.Debug()} }

// **************************************************************************
// FINISHER METHODS
//
// These methods close out a current query, executing it.
// They return any errors occurring within the query chain
// or when executing the query.
// **************************************************************************

// Count returns the number of records matching the current query or an error.
func (db *DB) Count() (int64, error) {
	if db.db.Error != nil {
		return 0, db.db.Error
	}

	var count int64
	if err := db.db.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("%w: %s", rango.ErrUnexpected, err)
	}

	return count, nil
}

// Create inserts value into the database, updating value with new data yielding from that insertion.
//
// Value must be a pointer, otherwise ErrUnaddressable returns.
// If value violates a foreign key or not null constraint, ErrNotValid returns.
// If value violates a unique constraint, ErrExists returns.
// If value is not a database table, ErrMissingData returns.
func (db *DB) Create(value any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %T must be a non-nil pointer or slice", rango.ErrUnaddressable, value)
		}
	}()

	if db.db.Error != nil {
		return db.db.Error
	}

	if v, ok := value.(Updates); ok {
		if err = v.valid(); err != nil {
			return err
		}

		value = map[string]any(v)
	} else if rv := reflect.ValueOf(value); rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("%w: %T must be a non-nil pointer", rango.ErrUnaddressable, value)
	}

	err = db.db.Session(&gorm.Session{FullSaveAssociations: false}).Create(value).Error
	switch {
	case err == nil:
		return nil

	case errors.Is(err, rango.ErrNotValid):
		return err

	case errors.Is(err, schema.ErrUnsupportedDataType), errors.Is(err, gorm.ErrInvalidData):
		return fmt.Errorf("%w: %T is not a database table", rango.ErrMissingData, value)

	case strings.Contains(err.Error(), violatesFK), errNotNullViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", rango.ErrNotValid, err)

	case errUniqViolation.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", rango.ErrExists, err)

	default:
		return fmt.Errorf("%w: failed creating %T: %s", rango.ErrUnexpected, value, err)
	}
}

// Exists asserts whether any record matches the current query.
func (db *DB) Exists() (bool, error) {
	if db.db.Error != nil {
		return false, db.db.Error
	}

	var exists bool
	// NOTE: without Session, GORM fails to render the current query as a sub-query.
	err := db.db.Raw("SELECT EXISTS(?)", db.db.Session(safeGORMSession)).Scan(&exists).Error
	if err != nil {
		return false, fmt.Errorf("%w: %s", rango.ErrUnexpected, err)
	}

	return exists, nil
}

// Find retrieves all records matching the current query
// and stores them in dest.
//
// If dest is not a valid type for the table queried,
// then ErrNotValid returns.
// If no matches are found, Find returns ErrNotFound.
func (db *DB) Find(dest any) (err error) {
	badDest := fmt.Errorf("%w: %T cannot be scanned into", rango.ErrNotValid, dest)
	defer func() {
		if r := recover(); r != nil {
			err = badDest
		}
	}()

	if db.db.Error != nil {
		return db.db.Error
	}

	res := db.db.Find(dest)
	err = res.Error
	switch {
	case err != nil && errSQLScan.MatchString(err.Error()):
		return badDest

	case err != nil && errSQLSyntax.MatchString(err.Error()):
		return fmt.Errorf("%w: %s", rango.ErrNotValid, err)

	case err != nil:
		return fmt.Errorf("%w: %s", rango.ErrUnexpected, err)

	case res.RowsAffected == 0:
		return fmt.Errorf("%w: %T", rango.ErrNotFound, dest)
	}

	return nil
}

// First retrieves a single record from the database matching the query
// and stores it in dest.
//
// If no matches are found, First returns ErrNotFound.
func (db *DB) First(dest any) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	err := db.db.First(dest).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %T", rango.ErrNotFound, dest)
	}

	if err != nil && errSQLSyntax.MatchString(err.Error()) {
		return fmt.Errorf("%w: %s", rango.ErrNotValid, err)
	}

	if err != nil {
		return fmt.Errorf("%w: %s", rango.ErrUnexpected, err)
	}

	return nil
}

// Update replaces existing data on all records matching the query with values.
//
// If no records are updated, ErrNotFound returns.
func (db *DB) Update(values Updates) error {
	if db.db.Error != nil {
		return db.db.Error
	}

	if err := values.valid(); err != nil {
		return err
	}

	res := db.db.Updates(map[string]any(values))
	switch {
	case res.RowsAffected == 0 && res.Error == nil:
		return fmt.Errorf("%w", rango.ErrNotFound)

	case res.Error == nil:
		return nil

	case errUniqViolation.MatchString(res.Error.Error()):
		return fmt.Errorf("%w: %s", rango.ErrExists, res.Error)

	default:
		return fmt.Errorf("%w: %s", rango.ErrUnexpected, res.Error)
	}
}

// **************************************************************************
// QUERY BUILDING METHODS
//
// Query building methods initiate a query and then add clauses to it
// until a finisher method is called.
// **************************************************************************

// WithContext binds ctx to the current query.
func (db *DB) WithContext(ctx context.Context) *DB { return &DB{db: db.db.WithContext(ctx)} }

// Limit applies a LIMIT clause to the current query.
func (db *DB) Limit(limit int) *DB {
	// NOTE: GORM interprets negatives by not applying a LIMIT clause.
	// PostgreSQL errors on negative numbers, and this Limit mirrors PostgreSQL.
	if limit < 0 {
		gdb := db.DB().Session(safeGORMSession)
		_ = gdb.AddError(fmt.Errorf("%w: limit must not be negative", rango.ErrNotValid))
		return &DB{db: gdb}
	}

	return &DB{db: db.db.Limit(limit)}
}

// Model declares the table used for the query.
//
// Calling Model multiple times in the same chain is undefined behavior.
func (db *DB) Model(model any) *DB { return &DB{db: db.db.Model(model)} }

// Order applies an ORDER BY clause to the current query.
func (db *DB) Order(order string) *DB { return &DB{db: db.db.Order(order)} }

// Preload fetches data embedded in a model based on that model's associations.
// An association is specified by the model's field name, such as Pages or Profile.
func (db *DB) Preload(association string) *DB {
	return &DB{db: db.db.Preload(association)}
}

// Where applies the query fragment to the current query
// as a WHERE or AND clause.
//
// Where supports one or none args.
// If more than one arg is passed, finisher methods return ErrNotValid.
func (db *DB) Where(query any, args ...any) *DB {
	if len(args) > 1 {
		gdb := db.DB().Session(safeGORMSession)
		_ = gdb.AddError(fmt.Errorf("%w: Where supports one or none args", rango.ErrNotValid))
		return &DB{db: gdb}
	}

	for _, arg := range args {
		if arg == nil {
			gdb := db.DB().Session(safeGORMSession)
			_ = gdb.AddError(fmt.Errorf("%w: %w", rango.ErrNotValid, errNilArg))
			return &DB{db: gdb}
		}
	}

	return &DB{db.db.Where(query, args...)}
}

// **************************************************************************
// TRANSACTION METHODS
// **************************************************************************

// Begin initializes a database transaction.
func (db *DB) Begin(opts ...*sql.TxOptions) *DB {
	return &DB{db: db.db.Begin(opts...)}
}

// Commit completes the current transaction.
func (db *DB) Commit() error {
	if db.db.Error != nil {
		return db.db.Error
	}

	if err := db.db.Commit().Error; err != nil {
		return fmt.Errorf("%w: failed committing tx: %s", rango.ErrUnexpected, err)
	}

	return nil
}

// Rollback reverts the current transaction.
// If no transaction is open, Rollback returns an error.
func (db *DB) Rollback() error {
	if err := db.db.Rollback().Error; err != nil {
		return fmt.Errorf("%w: failed rolling back tx: %s", rango.ErrUnexpected, err)
	}

	return nil
}
