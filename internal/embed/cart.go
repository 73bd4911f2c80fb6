package embed

import (
	"context"

	"github.com/loganlanou/shopify-buy-button/internal/appearance"
)

// Cart is the finalized argument record of the sticky cart embed.
type Cart struct {
	Shop                  string
	RedirectTo            RedirectTarget
	CheckoutButtonText    string
	ButtonTextColor       string
	ButtonBackgroundColor string
	BackgroundColor       string
	TextColor             string
	AccentColor           string
	CartTitle             string
	CartTotalText         string
	DiscountNoticeText    string
	Sticky                string
	EmptyCartText         string
	NextPageButtonText    string

	Class string
	Extra Attrs
}

var cartKeys = keySet(
	"embed_type", "shop", "redirect_to", "checkout_button_text",
	"button_text_color", "button_background_color", "background_color",
	"text_color", "accent_color", "cart_title", "cart_total_text",
	"discount_notice_text", "sticky", "empty_cart_text",
	"next_page_button_text",
	"background", "show", "class",
)

// BuildCart turns params into a cart embed. Carts are never suppressed; a
// cart without a shop renders a widget that cannot load.
func (p *Page) BuildCart(ctx context.Context, params Params) Cart {
	a := p.appearance
	c := Cart{
		Shop:                  params.Or("shop", ""),
		RedirectTo:            RedirectTarget(params.Get("redirect_to")),
		CheckoutButtonText:    params.Or("checkout_button_text", a.CheckoutButtonText),
		ButtonTextColor:       params.Or("button_text_color", appearance.Hex(a.ButtonTextColor)),
		ButtonBackgroundColor: params.Or("button_background_color", appearance.Hex(a.ButtonBackgroundColor)),
		BackgroundColor:       params.Or("background_color", a.EmbedBackground()),
		TextColor:             params.Or("text_color", appearance.Hex(a.TextColor)),
		AccentColor:           params.Or("accent_color", appearance.Hex(a.AccentColor)),
		CartTitle:             params.Or("cart_title", a.CartTitle),
		CartTotalText:         params.Get("cart_total_text"),
		DiscountNoticeText:    params.Get("discount_notice_text"),
		EmptyCartText:         params.Get("empty_cart_text"),
		NextPageButtonText:    params.Get("next_page_button_text"),
		Sticky:                "true",
		Class:                 params.Get("class"),
		Extra:                 params.extras(cartKeys),
	}

	c.Shop, c.RedirectTo = p.ResolveShop(ctx, c.Shop, c.RedirectTo)

	if p.filters.Cart != nil {
		p.filters.Cart(&c)
	}

	return c
}

func (c Cart) Attributes() Attrs {
	attrs := Attrs{
		{"shop", c.Shop},
		{"redirect_to", string(c.RedirectTo)},
		{"checkout_button_text", c.CheckoutButtonText},
		{"button_text_color", c.ButtonTextColor},
		{"button_background_color", c.ButtonBackgroundColor},
		{"background_color", c.BackgroundColor},
		{"text_color", c.TextColor},
		{"accent_color", c.AccentColor},
		{"cart_title", c.CartTitle},
		{"cart_total_text", c.CartTotalText},
		{"discount_notice_text", c.DiscountNoticeText},
		{"sticky", c.Sticky},
		{"empty_cart_text", c.EmptyCartText},
		{"next_page_button_text", c.NextPageButtonText},
		{"embed_type", string(EmbedCart)},
	}
	return append(attrs, c.Extra...)
}
