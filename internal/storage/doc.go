// Package storage defines the store contract and sentinel errors used by the
// sync pipeline. The postgres subpackage provides the pgx-backed
// implementation; tests substitute in-memory fakes.
package storage
