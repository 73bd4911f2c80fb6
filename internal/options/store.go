// Package options persists named site options in the options table.
package options

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/loganlanou/shopify-buy-button/storage/db"
)

const (
	// Shop holds the last shop an embed established; it seeds renders that
	// never name a shop.
	Shop = "sbb_shop"
	// ConnectedSite is the shop the picker modal opens against.
	ConnectedSite = "sbb-connected-site"
)

type Store struct {
	queries *db.Queries
}

func NewStore(queries *db.Queries) *Store {
	return &Store{queries: queries}
}

// Get returns the stored value for name, or def when the option was never set.
func (s *Store) Get(ctx context.Context, name, def string) (string, error) {
	opt, err := s.queries.GetOption(ctx, name)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("failed to get option %s: %w", name, err)
	}
	return opt.Value, nil
}

func (s *Store) Set(ctx context.Context, name, value string) error {
	if err := s.queries.UpsertOption(ctx, db.UpsertOptionParams{Name: name, Value: value}); err != nil {
		return fmt.Errorf("failed to set option %s: %w", name, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, name string) error {
	if err := s.queries.DeleteOption(ctx, name); err != nil {
		return fmt.Errorf("failed to delete option %s: %w", name, err)
	}
	return nil
}

// FallbackShop returns the persisted shop option.
func (s *Store) FallbackShop(ctx context.Context) (string, error) {
	return s.Get(ctx, Shop, "")
}

// SaveShop persists the shop option. Concurrent renders race; last write wins.
func (s *Store) SaveShop(ctx context.Context, shop string) error {
	return s.Set(ctx, Shop, shop)
}
