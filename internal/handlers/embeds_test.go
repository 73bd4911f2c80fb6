package handlers

import (
	"bytes"
	"context"
	"image/png"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/embed"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/render"
	"github.com/loganlanou/shopify-buy-button/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEmbedHandler(t *testing.T, filters embed.Filters) (*EmbedHandler, *options.Store) {
	t.Helper()

	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	store := options.NewStore(queries)
	renderer := render.New(store, filters, "")
	return NewEmbedHandler(renderer, store, "https://example.test/", ""), store
}

func TestHandlePreview_RequiresEditorAndProduct(t *testing.T) {
	h, _ := newTestEmbedHandler(t, embed.Filters{})

	c, rec := NewTestContext(http.MethodGet, "/embed/preview?product_handle=mug&shop=acme", nil)
	require.NoError(t, h.HandlePreview(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	c, rec = NewTestContext(http.MethodGet, "/embed/preview?shop=acme", nil)
	SetTestEditor(c)
	require.NoError(t, h.HandlePreview(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHandlePreview_RendersButton(t *testing.T) {
	h, _ := newTestEmbedHandler(t, embed.Filters{})

	c, rec := NewTestContext(http.MethodGet, "/embed/preview?product_handle=mug&shop=acme&buy_button_text=Grab+it", nil)
	SetTestEditor(c)
	require.NoError(t, h.HandlePreview(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, echo.MIMETextHTMLCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	body := rec.Body.String()
	assert.Contains(t, body, `data-shop="acme" data-product_handle="mug"`)
	assert.Contains(t, body, `data-buy_button_text="Grab it"`)
	assert.Equal(t, 1, strings.Count(body, `id="ShopifyEmbedScript"`))
	assert.NotContains(t, body, "sbb-embed-cart")
}

func TestHandlePreview_ShowCart(t *testing.T) {
	h, _ := newTestEmbedHandler(t, embed.Filters{})

	c, rec := NewTestContext(http.MethodGet, "/embed/preview?product_handle=mug&shop=acme&show_cart=1", nil)
	SetTestEditor(c)
	require.NoError(t, h.HandlePreview(c))

	body := rec.Body.String()
	assert.Contains(t, body, `class="sbb-embed sbb-embed-cart" data-shop="acme"`)
	assert.Equal(t, 1, strings.Count(body, `id="ShopifyEmbedScript"`))
}

func TestHandlePreview_FilterSeesParams(t *testing.T) {
	var seen embed.Params
	h, _ := newTestEmbedHandler(t, embed.Filters{
		Preview: func(p embed.Params) {
			seen = p.Clone()
			p["buy_button_text"] = "Filtered"
		},
	})

	c, rec := NewTestContext(http.MethodGet, "/embed/preview?product_handle=mug&shop=acme", nil)
	SetTestEditor(c)
	require.NoError(t, h.HandlePreview(c))

	assert.Equal(t, "mug", seen.Get("product_handle"))
	assert.Contains(t, rec.Body.String(), `data-buy_button_text="Filtered"`)
}

func TestPreviewParams(t *testing.T) {
	q := url.Values{
		"product_handle":  {"<b>mug</b>"},
		"shop":            {"  acme   store "},
		"background":      {"false"},
		"buy_button_text": {"Buy"},
		"ignored":         {"x"},
	}

	params := PreviewParams(q)

	assert.Equal(t, "mug", params.Get("product_handle"))
	assert.Equal(t, "acme store", params.Get("shop"))
	assert.Equal(t, "Buy", params.Get("buy_button_text"))

	value, ok := params.Lookup("background")
	assert.True(t, ok)
	assert.Empty(t, value)

	_, ok = params.Lookup("ignored")
	assert.False(t, ok)
	_, ok = params.Lookup("redirect_to")
	assert.False(t, ok)
}

func TestHandlePreviewQR(t *testing.T) {
	h, _ := newTestEmbedHandler(t, embed.Filters{})

	c, rec := NewTestContext(http.MethodGet, "/embed/preview/qr?product_handle=mug", nil)
	require.NoError(t, h.HandlePreviewQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	img, err := png.Decode(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	c, _ = NewTestContext(http.MethodGet, "/embed/preview/qr", nil)
	err = h.HandlePreviewQR(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandleRender(t *testing.T) {
	h, store := newTestEmbedHandler(t, embed.Filters{})

	c, rec := NewTestContext(http.MethodPost, "/api/render", map[string]any{
		"content":     `<p>Hi</p>[shopify shop="acme" product_handle="mug"]`,
		"footer_cart": true,
	})
	require.NoError(t, h.HandleRender(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<p>Hi</p>")
	assert.Contains(t, body, `data-product_handle="mug"`)
	assert.Contains(t, body, "sbb-embed-cart")

	saved, err := store.FallbackShop(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acme", saved)
}

func TestHandleModal(t *testing.T) {
	h, store := newTestEmbedHandler(t, embed.Filters{})
	require.NoError(t, store.Set(context.Background(), options.ConnectedSite, "acme.myshopify.com"))

	c, rec := NewTestContext(http.MethodGet, "/admin/modal", nil)
	require.NoError(t, h.HandleModal(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "acme.myshopify.com")
}

func TestHandleModal_URLFilter(t *testing.T) {
	h, _ := newTestEmbedHandler(t, embed.Filters{
		ModalURL: func(_, _ string) string { return "https://picker.example.test/custom" },
	})

	c, rec := NewTestContext(http.MethodGet, "/admin/modal", nil)
	require.NoError(t, h.HandleModal(c))

	assert.Contains(t, rec.Body.String(), "https://picker.example.test/custom")
}
