// Package sync implements the ingestion pipeline that mirrors the provider's
// exchange → series → event → market hierarchy into the store and appends a
// price snapshot for every market observed.
//
// The pipeline is idempotent: each entity level is resolved get-or-create by
// its unique key, markets are resolved in bulk against the store so only the
// missing delta is inserted, and unique-constraint conflicts from concurrent
// runs are absorbed by re-resolving instead of failing. Re-running a sync
// never duplicates entities; it only appends new snapshots.
//
// Within one sync run all provider and store I/O is sequential. Concurrency
// safety across overlapping runs comes entirely from the store's unique
// constraints.
package sync
