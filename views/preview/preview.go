// Package preview renders the standalone document the editor frames to
// preview an embed.
package preview

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const styles = `<style type="text/css">
body {
	text-align: center;
}
.sbb-embed-product {
	position: relative;
	top: 50%;
	transform: translateY(-50%);
}
</style>
`

// Page centers the product embed and renders the given embeds after it.
func Page(embeds ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, styles); err != nil {
			return err
		}
		return templ.Join(embeds...).Render(ctx, w)
	})
}
