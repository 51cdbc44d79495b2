// Package postgres implements the storage.Store contract on PostgreSQL via
// pgx. Unique constraints are the final arbiter for concurrent creates:
// SQLSTATE 23505 maps to storage.ErrDuplicateKey, pgx.ErrNoRows maps to
// storage.ErrNotFound. See schema.sql for the table definitions.
package postgres
