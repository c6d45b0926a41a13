// Package postgres provides PostgreSQL implementations of the storage
// interfaces defined in internal/store. Recipient interests and budgets are
// kept as JSONB documents; everything else maps onto plain columns.
//
// Schema changes live in migrations/ and are embedded into the binary so the
// server can run them with goose without a checkout of the repository.
package postgres
