// Package testdb provides utilities for database-backed tests: locating the
// test database, opening a migrated connection pool, and running each test
// inside a transaction that is always rolled back.
package testdb
