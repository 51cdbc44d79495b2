// Package model defines the row and insert-payload types shared between the
// sync pipeline and the store.
//
// Conventions:
//   - IDs: int64 store-generated surrogate keys; tickers are the natural keys
//   - Nullable columns: pointer fields, nil means SQL NULL
//   - Prices: raw integer cents alongside derived dollar floats; both nullable
//   - Timestamps: time.Time in UTC
package model
