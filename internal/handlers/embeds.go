package handlers

import (
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/auth"
	"github.com/loganlanou/shopify-buy-button/internal/embed"
	"github.com/loganlanou/shopify-buy-button/internal/i18n"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/render"
	"github.com/loganlanou/shopify-buy-button/views/modal"
	"github.com/loganlanou/shopify-buy-button/views/preview"
	"github.com/skip2/go-qrcode"
)

// previewArgs are the query parameters a preview passes on besides
// product_handle.
var previewArgs = []string{
	"shop",
	"embed_type",
	"buy_button_text",
	"button_background_color",
	"button_text_color",
	"background",
	"background_color",
	"text_color",
	"cart_title",
	"checkout_button_text",
	"redirect_to",
	"show",
}

type EmbedHandler struct {
	renderer  *render.Renderer
	options   *options.Store
	baseURL   string
	pickerURL string
}

func NewEmbedHandler(renderer *render.Renderer, store *options.Store, baseURL, pickerURL string) *EmbedHandler {
	if pickerURL == "" {
		pickerURL = modal.PickerURL
	}
	return &EmbedHandler{
		renderer:  renderer,
		options:   store,
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		pickerURL: pickerURL,
	}
}

// HandlePreview renders one product embed, and the cart when show_cart is
// set, for the editor to frame. Callers that are not editors, or that name no
// product, get an empty response.
func (h *EmbedHandler) HandlePreview(c echo.Context) error {
	if !auth.IsEditor(c) || c.QueryParam("product_handle") == "" {
		return c.NoContent(http.StatusNoContent)
	}

	params := PreviewParams(c.QueryParams())
	if filter := h.renderer.Filters().Preview; filter != nil {
		filter(params)
	}

	ctx := c.Request().Context()
	page := h.renderer.NewPage(ctx, i18n.Match(c.Request().Header.Get("Accept-Language")))

	embeds := []templ.Component{page.Button(ctx, params)}
	if c.QueryParam("show_cart") != "" {
		embeds = append(embeds, page.Cart(ctx, params))
	}

	return Render(c, preview.Page(embeds...))
}

// HandlePreviewQR returns a PNG QR code linking to the preview with the same
// query.
func (h *EmbedHandler) HandlePreviewQR(c echo.Context) error {
	if c.QueryParam("product_handle") == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "product_handle is required")
	}

	target := h.baseURL + "/embed/preview?" + c.QueryParams().Encode()
	png, err := qrcode.Encode(target, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to encode preview QR code", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to generate QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

type renderRequest struct {
	Content    string `json:"content"`
	FooterCart bool   `json:"footer_cart"`
}

// HandleRender renders page content with its embed shortcodes as one page.
func (h *EmbedHandler) HandleRender(c echo.Context) error {
	var req renderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	html, err := h.renderer.Render(c.Request().Context(), render.Document{
		Name:       c.Request().URL.Path,
		Content:    req.Content,
		Language:   c.Request().Header.Get("Accept-Language"),
		FooterCart: req.FooterCart,
	})
	if err != nil {
		slog.Error("failed to render page", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to render page")
	}

	return c.HTML(http.StatusOK, html)
}

// HandleModal renders the embed picker.
func (h *EmbedHandler) HandleModal(c echo.Context) error {
	site, err := h.options.Get(c.Request().Context(), options.ConnectedSite, "")
	if err != nil {
		slog.Error("failed to read connected site", "error", err)
	}

	iframeURL := modal.IframeURL(h.pickerURL, site)
	if filter := h.renderer.Filters().ModalURL; filter != nil {
		iframeURL = filter(iframeURL, site)
	}

	return Render(c, modal.Modal(iframeURL))
}

// PreviewParams reads the preview query. A literal "false" is kept as an
// explicit empty value.
func PreviewParams(q url.Values) embed.Params {
	params := embed.Params{
		"product_handle": sanitizeText(q.Get("product_handle")),
	}
	for _, key := range previewArgs {
		if !q.Has(key) {
			continue
		}
		value := q.Get(key)
		if value == "false" {
			params[key] = ""
			continue
		}
		params[key] = sanitizeText(value)
	}
	return params
}

var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// sanitizeText strips markup and collapses whitespace.
func sanitizeText(s string) string {
	s = tagPattern.ReplaceAllString(s, "")
	return strings.Join(strings.Fields(s), " ")
}
