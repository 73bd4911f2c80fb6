package embed

import (
	"maps"
	"regexp"
	"slices"
	"strings"
)

// Params is the loosely typed argument bag an embed is built from. A key that
// is present with an empty value is an explicit value, distinct from an
// absent key.
type Params map[string]string

// Lookup reports the value for key and whether the caller supplied it.
func (p Params) Lookup(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

func (p Params) Get(key string) string {
	return p[key]
}

// Or returns the supplied value for key, or def when key is absent.
func (p Params) Or(key, def string) string {
	if v, ok := p[key]; ok {
		return v
	}
	return def
}

func (p Params) Clone() Params {
	if p == nil {
		return Params{}
	}
	return maps.Clone(p)
}

var attrName = regexp.MustCompile(`^[a-z0-9_]+$`)

// extras returns the supplied keys not consumed by a typed field, sorted by
// name. Keys that are not valid attribute names are dropped.
func (p Params) extras(consumed map[string]struct{}) Attrs {
	var attrs Attrs
	for _, key := range slices.Sorted(maps.Keys(p)) {
		if _, ok := consumed[key]; ok {
			continue
		}
		if !attrName.MatchString(key) {
			continue
		}
		attrs = append(attrs, Attr{Name: key, Value: p[key]})
	}
	return attrs
}

// blank reports whether the widget treats v as unset.
func blank(v string) bool {
	return v == "" || v == "0"
}

func falsy(v string) bool {
	return blank(v) || strings.EqualFold(v, "false")
}

func keySet(keys ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}
