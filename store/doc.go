// Package store persists rango's categories, pages and users.
//
// Store is the interface handlers and the seed script depend on.
// PGStore implements it over a PostgreSQL database.
package store

//go:generate mockgen -destination=mock/store.go -package=mock github.com/xy-planning-network/rango/store Store
