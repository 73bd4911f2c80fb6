// Package render turns page content into HTML, expanding embed shortcodes
// and appending the footer cart. Every call renders one page with its own
// embed.Page.
package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/embed"
	"github.com/loganlanou/shopify-buy-button/internal/i18n"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/shortcode"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
)

type Renderer struct {
	options   *options.Store
	filters   embed.Filters
	scriptURL string
}

func New(store *options.Store, filters embed.Filters, scriptURL string) *Renderer {
	return &Renderer{
		options:   store,
		filters:   filters,
		scriptURL: scriptURL,
	}
}

// Filters returns the hooks pages are built with.
func (r *Renderer) Filters() embed.Filters {
	return r.filters
}

// NewPage starts a render. Appearance settings are read once, here.
func (r *Renderer) NewPage(ctx context.Context, lang language.Tag) *embed.Page {
	return embed.NewPage(embed.Options{
		Shops:      r.options,
		Appearance: appearance.Load(ctx, r.options),
		Messages:   i18n.For(lang),
		Filters:    r.filters,
		ScriptURL:  r.scriptURL,
	})
}

// Document is one page to render.
type Document struct {
	Name       string `yaml:"name" json:"name"`
	Content    string `yaml:"content" json:"content"`
	Language   string `yaml:"language" json:"language"`
	FooterCart bool   `yaml:"footer_cart" json:"footer_cart"`
}

// Render expands every shortcode in doc and, when requested, appends the
// footer cart.
func (r *Renderer) Render(ctx context.Context, doc Document) (string, error) {
	start := time.Now()
	page := r.NewPage(ctx, i18n.Match(doc.Language))

	html, err := shortcode.Expand(doc.Content, func(attrs map[string]string) (string, error) {
		return embed.RenderString(ctx, page.Button(ctx, embed.Params(attrs)))
	})
	if err != nil {
		return "", fmt.Errorf("failed to render %q: %w", doc.Name, err)
	}

	if doc.FooterCart {
		cart, err := embed.RenderString(ctx, page.Cart(ctx, nil))
		if err != nil {
			return "", fmt.Errorf("failed to render cart for %q: %w", doc.Name, err)
		}
		html += cart
	}

	slog.Debug("page rendered",
		"render_id", page.ID,
		"name", doc.Name,
		"shop", page.Shop(),
		"duration", time.Since(start),
	)

	return html, nil
}

// Result is the output of one document of a batch.
type Result struct {
	Name string
	HTML string
}

// RenderAll renders docs concurrently, at most limit at a time. Results keep
// the order of docs. Renders share the persisted shop option, so the last
// render to establish a shop decides what later renders fall back to.
func (r *Renderer) RenderAll(ctx context.Context, docs []Document, limit int) ([]Result, error) {
	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			html, err := r.Render(ctx, doc)
			if err != nil {
				return err
			}
			results[i] = Result{Name: doc.Name, HTML: html}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
