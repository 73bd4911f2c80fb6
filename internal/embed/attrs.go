package embed

import (
	"strings"

	"github.com/a-h/templ"
)

type Attr struct {
	Name  string
	Value string
}

// Attrs is an ordered list of widget data attributes.
type Attrs []Attr

// Get returns the value of the first attribute named name.
func (a Attrs) Get(name string) (string, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}

// Map flattens the list; later duplicates win.
func (a Attrs) Map() map[string]string {
	m := make(map[string]string, len(a))
	for _, attr := range a {
		m[attr.Name] = attr.Value
	}
	return m
}

// String serializes the list as ` data-name="value"` pairs, skipping blank
// values.
func (a Attrs) String() string {
	var sb strings.Builder
	for _, attr := range a {
		if blank(attr.Value) {
			continue
		}
		sb.WriteString(" data-")
		sb.WriteString(templ.EscapeString(attr.Name))
		sb.WriteString(`="`)
		sb.WriteString(templ.EscapeString(attr.Value))
		sb.WriteString(`"`)
	}
	return sb.String()
}
