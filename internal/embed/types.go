package embed

// EmbedType selects the widget the loader renders into a container.
type EmbedType string

const (
	EmbedProduct    EmbedType = "product"
	EmbedCollection EmbedType = "collection"
	EmbedCart       EmbedType = "cart"
)

// RedirectTarget is where the widget sends a shopper after adding to cart.
type RedirectTarget string

const (
	RedirectCart     RedirectTarget = "cart"
	RedirectCheckout RedirectTarget = "checkout"
	RedirectModal    RedirectTarget = "modal"
)

const (
	ShowAll        = "all"
	ShowButtonOnly = "button-only"
)
