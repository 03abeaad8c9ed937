package postgres

import (
	"errors"
	"regexp"
)

const violatesFK = "violates foreign key constraint"

var (
	// errSQLScan originates from the std lib database/sql package.
	errSQLScan = regexp.MustCompile(`sql: expected \d+ destination arguments in Scan, not \d+`)

	// errSQLSyntax is a loose aggregation of PostgreSQL error codes
	// that are some sort of syntax issue in the statement or datatype mismatch.
	//
	// Cf., https://www.postgresql.org/docs/current/errcodes-appendix.html
	errSQLSyntax = regexp.MustCompile(`SQLSTATE (42601|22P02)`)

	errNotNullViolation = regexp.MustCompile(`SQLSTATE 23502`)
	errUniqViolation    = regexp.MustCompile(`SQLSTATE 23505`)

	errNilArg = errors.New("nil argument")
)
