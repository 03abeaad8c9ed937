/*
Package postgres manages the database connection for rango.
As part of the connection process, all migrations are run against the database.
When the database is a target for testing, the public schema is dropped first.

DB wraps *gorm.DB with a small set of query building and finisher methods
whose errors are translated into the sentinel errors of the rango package.
*/
package postgres
