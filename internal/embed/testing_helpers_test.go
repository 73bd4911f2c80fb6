package embed

import (
	"context"
	"errors"
	"testing"

	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/stretchr/testify/require"
)

// memShops is an in-memory ShopStore that counts its calls.
type memShops struct {
	shop   string
	reads  int
	writes int
	err    error
}

func (m *memShops) FallbackShop(context.Context) (string, error) {
	m.reads++
	if m.err != nil {
		return "", m.err
	}
	return m.shop, nil
}

func (m *memShops) SaveShop(_ context.Context, shop string) error {
	m.writes++
	if m.err != nil {
		return m.err
	}
	m.shop = shop
	return nil
}

var errStoreDown = errors.New("store unavailable")

func newTestPage(shops ShopStore) *Page {
	return NewPage(Options{
		Shops:      shops,
		Appearance: appearance.Default(),
	})
}

func render(t *testing.T, p *Page, params Params) string {
	t.Helper()
	html, err := RenderString(context.Background(), p.Button(context.Background(), params))
	require.NoError(t, err)
	return html
}
