// Package i18n localizes the fixed strings embeds carry to the widget.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	OutOfStock  = "Out of Stock"
	Unavailable = "Unavailable"
)

var supported = []language.Tag{
	language.English, // first entry is the fallback
	language.Spanish,
	language.French,
	language.German,
}

var (
	matcher   = language.NewMatcher(supported)
	catalogue = newCatalog()
)

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	translations := map[language.Tag]map[string]string{
		language.English: {
			OutOfStock:  "Out of Stock",
			Unavailable: "Unavailable",
		},
		language.Spanish: {
			OutOfStock:  "Agotado",
			Unavailable: "No disponible",
		},
		language.French: {
			OutOfStock:  "En rupture de stock",
			Unavailable: "Indisponible",
		},
		language.German: {
			OutOfStock:  "Ausverkauft",
			Unavailable: "Nicht verfügbar",
		},
	}

	for tag, msgs := range translations {
		for key, msg := range msgs {
			// SetString only fails on malformed messages; these are literals
			_ = b.SetString(tag, key, msg)
		}
	}
	return b
}

// Match picks the supported language closest to an Accept-Language header.
// Unparseable or empty headers yield English.
func Match(acceptLanguage string) language.Tag {
	if acceptLanguage == "" {
		return language.English
	}
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return language.English
	}
	_, idx, _ := matcher.Match(tags...)
	return supported[idx]
}

// Messages holds the localized strings for one render.
type Messages struct {
	OutOfStock  string
	Unavailable string
}

func For(tag language.Tag) Messages {
	p := message.NewPrinter(tag, message.Catalog(catalogue))
	return Messages{
		OutOfStock:  p.Sprintf(OutOfStock),
		Unavailable: p.Sprintf(Unavailable),
	}
}
