// Package embed resolves Shopify Buy Button embed arguments and renders the
// containers the widget loader picks up.
//
// A Page is the state of one page render: the shop the first embed
// established and whether the loader script has been written. Every embed on
// a page must be built through the same Page, from a single goroutine.
package embed

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/i18n"
)

// DefaultScriptURL is the Shopify widget loader.
const DefaultScriptURL = "https://widgets.shopifyapps.com/assets/widgets/embed/client.js"

// ShopStore persists the shop a render established so later renders that
// never name one can recover it.
type ShopStore interface {
	FallbackShop(ctx context.Context) (string, error)
	SaveShop(ctx context.Context, shop string) error
}

type Options struct {
	Shops      ShopStore
	Appearance appearance.Appearance
	Messages   i18n.Messages
	Filters    Filters
	ScriptURL  string
}

type Page struct {
	ID string

	shops      ShopStore
	appearance appearance.Appearance
	messages   i18n.Messages
	filters    Filters
	scriptURL  string
	logger     *slog.Logger

	shop         string
	fallback     string
	fallbackRead bool
	scriptAdded  bool
}

func NewPage(opts Options) *Page {
	id := uuid.New().String()

	messages := opts.Messages
	if messages == (i18n.Messages{}) {
		messages = i18n.For(i18n.Match(""))
	}
	scriptURL := opts.ScriptURL
	if scriptURL == "" {
		scriptURL = DefaultScriptURL
	}

	return &Page{
		ID:         id,
		shops:      opts.Shops,
		appearance: opts.Appearance,
		messages:   messages,
		filters:    opts.Filters,
		scriptURL:  scriptURL,
		logger:     slog.With("render_id", id),
	}
}

// Shop returns the shop established by the first embed that named one.
func (p *Page) Shop() string {
	return p.shop
}

// ScriptAdded reports whether an embed on this page has carried the loader.
func (p *Page) ScriptAdded() bool {
	return p.scriptAdded
}

// ResolveShop fills a missing shop from the page, or from the persisted
// fallback when the page has none yet. The first explicit shop becomes the
// page's shop and is persisted. A cart redirect is turned into a checkout
// redirect when the embed's shop is not the page's, since the cart would
// belong to a different shop.
func (p *Page) ResolveShop(ctx context.Context, shop string, redirectTo RedirectTarget) (string, RedirectTarget) {
	if blank(shop) {
		if !blank(p.shop) {
			shop = p.shop
		} else {
			shop = p.fallbackShop(ctx)
		}
	} else if blank(p.shop) {
		p.shop = shop
		p.saveShop(ctx, shop)
	}

	if shop != p.shop && redirectTo == RedirectCart {
		p.logger.Debug("cart redirect belongs to another shop, using checkout",
			"shop", shop,
			"page_shop", p.shop,
		)
		redirectTo = RedirectCheckout
	}

	return shop, redirectTo
}

func (p *Page) fallbackShop(ctx context.Context) string {
	if p.fallbackRead || p.shops == nil {
		return p.fallback
	}
	p.fallbackRead = true

	shop, err := p.shops.FallbackShop(ctx)
	if err != nil {
		p.logger.Error("failed to read fallback shop", "error", err)
		return ""
	}
	p.fallback = shop
	return shop
}

func (p *Page) saveShop(ctx context.Context, shop string) {
	if p.shops == nil {
		return
	}
	if err := p.shops.SaveShop(ctx, shop); err != nil {
		p.logger.Error("failed to persist shop", "shop", shop, "error", err)
	}
}
