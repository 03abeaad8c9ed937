package postgres

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/xy-planning-network/rango"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// PG Docs: https://www.postgresql.org/docs/current/libpq-connect.html#LIBPQ-PARAMKEYWORDS
const cxnStr = "host=%s port=%s dbname=%s user=%s password=%s sslmode=%s"

// CxnConfig holds connection information used to connect to a PostgreSQL database.
type CxnConfig struct {
	IsTestDB bool
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
}

// Connect creates a database connection through GORM according to the connection config and runs all migrations.
func Connect(config *CxnConfig, migrations []Migration, env rango.Environment) (*DB, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: no connection config", rango.ErrBadConfig)
	}

	// https://gorm.io/docs/logger.html
	c := logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  env.IsDevelopment(),
	}

	db, err := gorm.Open(postgres.Open(buildCxnStr(config)), &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), c),
		NowFunc: func() time.Time {
			return time.Now().Truncate(time.Microsecond)
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", rango.ErrBadConfig, err)
	}

	if config.IsTestDB {
		if err := db.Exec("DROP SCHEMA IF EXISTS public CASCADE; CREATE SCHEMA public;").Error; err != nil {
			return nil, err
		}
	}

	if err := MigrateUp(db, migrations); err != nil {
		return nil, err
	}

	return NewDB(db), nil
}

func buildCxnStr(config *CxnConfig) string {
	if config.URL != "" {
		return config.URL
	}

	sslMode := config.SSLMode
	if sslMode == "" {
		// PG Docs: https://www.postgresql.org/docs/current/libpq-ssl.html#LIBPQ-SSL-SSLMODE-STATEMENTS
		sslMode = "prefer"
	}

	return fmt.Sprintf(
		cxnStr,
		config.Host,
		config.Port,
		config.Name,
		config.User,
		config.Password,
		sslMode,
	)
}

// WipeDB truncates every table in the public schema except the migrations table.
func WipeDB(db *gorm.DB) error {
	var tables []string
	err := db.
		Table("information_schema.tables").
		Select("table_name").
		Where("table_schema = ?", "public").
		Not("table_type = ?", "VIEW").
		Not("table_name = ?", "migrations").
		Pluck("table_name", &tables).
		Error
	if err != nil {
		return err
	}

	if len(tables) == 0 {
		return nil
	}

	return db.Exec(fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE;", strings.Join(tables, ", "))).Error
}
