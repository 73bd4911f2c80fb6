package embed

import (
	"context"

	"github.com/loganlanou/shopify-buy-button/internal/appearance"
)

// Button is the finalized argument record of a product or collection embed.
type Button struct {
	EmbedType             EmbedType
	Shop                  string
	ProductHandle         string
	ProductName           string
	DisplaySize           string
	HasImage              string
	RedirectTo            RedirectTarget
	BuyButtonText         string
	ButtonBackgroundColor string
	ButtonTextColor       string
	BackgroundColor       string
	OutOfStockText        string
	UnavailableText       string
	ProductTitleColor     string
	ProductModal          string
	CollectionHandle      string
	ShowProductPrice      string
	ShowProductTitle      string

	// Class is merged into the container's class list.
	Class string
	// Extra carries supplied arguments without a typed field.
	Extra Attrs
}

var buttonKeys = keySet(
	"embed_type", "shop", "product_handle", "product_name", "display_size",
	"has_image", "redirect_to", "buy_button_text", "button_background_color",
	"button_text_color", "background_color", "buy_button_out_of_stock_text",
	"buy_button_product_unavailable_text", "product_title_color",
	"product_modal", "collection_handle", "show_product_price",
	"show_product_title",
	// consumed while building
	"text_color", "background", "show", "class",
)

// BuildButton turns params into a product or collection embed. ok is false
// when the embed has no shop or no product handle and must not be rendered.
func (p *Page) BuildButton(ctx context.Context, params Params) (Button, bool) {
	params = params.Clone()

	// Overrides are applied before defaults so they beat them.
	if v, ok := params.Lookup("text_color"); ok {
		params["product_title_color"] = v
	}
	if v, ok := params.Lookup("background"); ok && falsy(v) {
		params["background_color"] = "transparent"
	}
	if params.Get("show") == ShowButtonOnly {
		params["has_image"] = "false"
	}

	a := p.appearance
	b := Button{
		EmbedType:             EmbedType(params.Or("embed_type", string(EmbedProduct))),
		Shop:                  params.Or("shop", ""),
		ProductHandle:         params.Or("product_handle", ""),
		ProductName:           params.Or("product_name", ""),
		DisplaySize:           params.Or("display_size", "compact"),
		HasImage:              params.Or("has_image", "true"),
		RedirectTo:            RedirectTarget(params.Or("redirect_to", a.RedirectTo)),
		BuyButtonText:         params.Or("buy_button_text", a.BuyButtonText),
		ButtonBackgroundColor: params.Or("button_background_color", appearance.Hex(a.ButtonBackgroundColor)),
		ButtonTextColor:       params.Or("button_text_color", appearance.Hex(a.ButtonTextColor)),
		BackgroundColor:       params.Or("background_color", a.EmbedBackground()),
		OutOfStockText:        params.Or("buy_button_out_of_stock_text", p.messages.OutOfStock),
		UnavailableText:       params.Or("buy_button_product_unavailable_text", p.messages.Unavailable),
		ProductTitleColor:     params.Or("product_title_color", appearance.Hex(a.TextColor)),
		ProductModal:          params.Get("product_modal"),
		CollectionHandle:      params.Get("collection_handle"),
		Class:                 params.Get("class"),
		Extra:                 params.extras(buttonKeys),
	}

	// Collections always open in the widget's modal.
	if b.EmbedType == EmbedCollection {
		b.RedirectTo = RedirectModal
		b.ProductModal = "true"
		b.CollectionHandle = b.ProductHandle
	}

	b.Shop, b.RedirectTo = p.ResolveShop(ctx, b.Shop, b.RedirectTo)

	if blank(b.Shop) || blank(b.ProductHandle) {
		p.logger.Debug("skipping embed without shop or product handle",
			"embed_type", b.EmbedType,
			"shop", b.Shop,
			"product_handle", b.ProductHandle,
		)
		return Button{}, false
	}

	// Price and title follow has_image unless set explicitly.
	b.ShowProductPrice = params.Get("show_product_price")
	if blank(b.ShowProductPrice) {
		b.ShowProductPrice = b.HasImage
	}
	b.ShowProductTitle = params.Get("show_product_title")
	if blank(b.ShowProductTitle) {
		b.ShowProductTitle = b.HasImage
	}

	if p.filters.Button != nil {
		p.filters.Button(&b)
	}

	return b, true
}

// Attributes lists the widget data attributes in a stable order.
func (b Button) Attributes() Attrs {
	attrs := Attrs{
		{"embed_type", string(b.EmbedType)},
		{"shop", b.Shop},
		{"product_handle", b.ProductHandle},
		{"product_name", b.ProductName},
		{"display_size", b.DisplaySize},
		{"has_image", b.HasImage},
		{"redirect_to", string(b.RedirectTo)},
		{"buy_button_text", b.BuyButtonText},
		{"button_background_color", b.ButtonBackgroundColor},
		{"button_text_color", b.ButtonTextColor},
		{"background_color", b.BackgroundColor},
		{"buy_button_out_of_stock_text", b.OutOfStockText},
		{"buy_button_product_unavailable_text", b.UnavailableText},
		{"product_title_color", b.ProductTitleColor},
		{"product_modal", b.ProductModal},
		{"collection_handle", b.CollectionHandle},
		{"show_product_price", b.ShowProductPrice},
		{"show_product_title", b.ShowProductTitle},
	}
	return append(attrs, b.Extra...)
}
