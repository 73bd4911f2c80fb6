package embed

import (
	"context"
	"io"
	"strings"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

// Button builds a product or collection embed. Suppressed embeds render
// nothing.
func (p *Page) Button(ctx context.Context, params Params) templ.Component {
	b, ok := p.BuildButton(ctx, params)
	if !ok {
		return templ.NopComponent
	}
	return p.embed(b.EmbedType, b.Class, b.Attributes())
}

// Cart builds the cart embed.
func (p *Page) Cart(ctx context.Context, params Params) templ.Component {
	c := p.BuildCart(ctx, params)
	return p.embed(EmbedCart, c.Class, c.Attributes())
}

// embed pairs the container with the loader script the first time any embed
// on the page is emitted.
func (p *Page) embed(embedType EmbedType, class string, attrs Attrs) templ.Component {
	if p.scriptAdded {
		return Container(embedType, class, attrs)
	}
	p.scriptAdded = true
	return templ.Join(Container(embedType, class, attrs), LoaderScript(p.scriptURL))
}

// Container is the element the widget loader replaces with the embed.
func Container(embedType EmbedType, class string, attrs Attrs) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		classes := twmerge.Merge("sbb-embed", "sbb-embed-"+string(embedType), class)
		_, err := io.WriteString(w, `<div class="`+templ.EscapeString(classes)+`"`+attrs.String()+`></div>`)
		return err
	})
}

// LoaderScript writes the widget loader unless the document already has it.
func LoaderScript(src string) templ.Component {
	// src ends up inside a single quoted JS string that document.write parses
	// as HTML.
	src = strings.ReplaceAll(templ.EscapeString(src), `\`, `\\`)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<script type="text/javascript"> document.getElementById('ShopifyEmbedScript') || document.write('<script type="text/javascript" src="`+
			src+`" id="ShopifyEmbedScript"><\/script>'); </script>`)
		return err
	})
}

// RenderString renders c into a string.
func RenderString(ctx context.Context, c templ.Component) (string, error) {
	var sb strings.Builder
	if err := c.Render(ctx, &sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}
