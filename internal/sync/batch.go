package sync

import (
	"context"
	"fmt"

	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

// snapshotBatcher accumulates snapshot payloads and persists them in batches
// of at most size rows. The caller must flush once after the last add so a
// remainder below the threshold is not dropped.
type snapshotBatcher struct {
	store   storage.Store
	size    int
	pending []model.MarketSnapshotInsert
	created int
}

func newSnapshotBatcher(store storage.Store, size int) *snapshotBatcher {
	return &snapshotBatcher{
		store:   store,
		size:    size,
		pending: make([]model.MarketSnapshotInsert, 0, size),
	}
}

func (b *snapshotBatcher) add(ctx context.Context, p model.MarketSnapshotInsert) error {
	b.pending = append(b.pending, p)
	if len(b.pending) >= b.size {
		return b.flush(ctx)
	}
	return nil
}

func (b *snapshotBatcher) flush(ctx context.Context) error {
	if len(b.pending) == 0 {
		return nil
	}
	n, err := b.store.InsertMarketSnapshots(ctx, b.pending)
	if err != nil {
		return fmt.Errorf("insert snapshots: %w", err)
	}
	b.created += n
	b.pending = b.pending[:0]
	return nil
}
