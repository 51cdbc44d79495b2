package postgres

import (
	"context"
	"fmt"

	"github.com/rickgao/kalshi-sync/internal/model"
	"github.com/rickgao/kalshi-sync/internal/storage"
)

const exchangeCols = "id, slug, name, created_at"

// GetExchangeBySlug returns the exchange with the given slug, or
// storage.ErrNotFound.
func (s *Store) GetExchangeBySlug(ctx context.Context, slug string) (*model.ExchangeRow, error) {
	query := `SELECT ` + exchangeCols + ` FROM exchanges WHERE slug = $1`

	var row model.ExchangeRow
	err := s.pool.QueryRow(ctx, query, slug).Scan(&row.ID, &row.Slug, &row.Name, &row.CreatedAt)
	if err != nil {
		if isNotFoundError(err) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("get exchange by slug: %w", err)
	}
	return &row, nil
}

// CreateExchange inserts a new exchange. Returns storage.ErrDuplicateKey if
// the slug already exists.
func (s *Store) CreateExchange(ctx context.Context, p model.ExchangeInsert) (*model.ExchangeRow, error) {
	query := `
		INSERT INTO exchanges (slug, name)
		VALUES ($1, $2)
		RETURNING ` + exchangeCols

	var row model.ExchangeRow
	err := s.pool.QueryRow(ctx, query, p.Slug, p.Name).Scan(&row.ID, &row.Slug, &row.Name, &row.CreatedAt)
	if err != nil {
		return nil, wrapCreateErr("create exchange", err)
	}
	return &row, nil
}
