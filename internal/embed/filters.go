package embed

// Filters lets the host adjust finalized arguments before they are rendered.
// Nil funcs are skipped.
type Filters struct {
	// Button runs on every product/collection embed that will be rendered.
	Button func(*Button)
	// Cart runs on every cart embed.
	Cart func(*Cart)
	// Preview runs on the parsed preview request before the embeds are built.
	Preview func(Params)
	// ModalURL rewrites the picker iframe URL; site is the connected shop.
	ModalURL func(url, site string) string
}
