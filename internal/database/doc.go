// Package database provides PostgreSQL connection pool construction for the
// sync store. All relational data (exchanges, series, events, markets) and
// the snapshot history live in a single database.
package database
