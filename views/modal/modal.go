// Package modal renders the picker editors use to choose the product or
// collection an embed shows.
package modal

import (
	"context"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// PickerURL is the Shopify embed picker the modal frames.
const PickerURL = "https://widgets.shopifyapps.com/embed_admin/embeds/picker"

// IframeURL adds the connected shop to the picker URL when one is set.
func IframeURL(base, site string) string {
	if site == "" {
		return base
	}
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	q := u.Query()
	q.Set("shop", site)
	u.RawQuery = q.Encode()
	return u.String()
}

// Modal is the picker dialog: the framed picker, then the choice between a
// full product card and a bare button.
func Modal(iframeURL string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		src := string(templ.URL(iframeURL))
		_, err := io.WriteString(w, `<div class="sbb-modal-wrap">
	<div class="sbb-modal">
		<div class="sbb-modal-close"><div class="screen-reader-text">Close</div></div>
		<iframe src="`+templ.EscapeString(src)+`" frameborder="0" class="sbb-modal-iframe"></iframe>
		<div class="sbb-modal-secondpage">
			<label><input class="sbb-show" type="radio" name="sbb-show" value="all"> Product image, price and button</label>
			<label><input class="sbb-show" type="radio" name="sbb-show" value="button-only"> Buy button only</label>
			<button class="sbb-modal-add-button">Add Button</button>
		</div>
	</div>
	<div class="sbb-modal-background"></div>
</div>
`)
		return err
	})
}
