// Package shortcode expands [shopify ...] tags in page content.
package shortcode

import (
	"regexp"
	"strings"
)

// Tag is the shortcode name pages use to place an embed.
const Tag = "shopify"

var (
	tagPattern  = regexp.MustCompile(`\[(\[?)` + Tag + `\b([^\]]*?)(/?)\](\]?)`)
	attrPattern = regexp.MustCompile(`([\w-]+)\s*=\s*"([^"]*)"|([\w-]+)\s*=\s*'([^']*)'|([\w-]+)\s*=\s*([^\s'"]+)`)
)

// Parse reads the attributes of one shortcode body. Names are lower-cased;
// bare words without a value are ignored.
func Parse(body string) map[string]string {
	attrs := make(map[string]string)
	for _, m := range attrPattern.FindAllStringSubmatch(body, -1) {
		switch {
		case m[1] != "":
			attrs[strings.ToLower(m[1])] = m[2]
		case m[3] != "":
			attrs[strings.ToLower(m[3])] = m[4]
		case m[5] != "":
			attrs[strings.ToLower(m[5])] = m[6]
		}
	}
	return attrs
}

// Expand replaces every shortcode in content with the output of fn, called in
// document order. [[shopify ...]] is an escaped shortcode and is emitted
// without its outer brackets.
func Expand(content string, fn func(attrs map[string]string) (string, error)) (string, error) {
	var (
		sb   strings.Builder
		last int
	)

	for _, loc := range tagPattern.FindAllStringSubmatchIndex(content, -1) {
		sb.WriteString(content[last:loc[0]])
		last = loc[1]

		match := content[loc[0]:loc[1]]
		openEscaped := loc[3] > loc[2]
		closeEscaped := loc[9] > loc[8]
		if openEscaped && closeEscaped {
			sb.WriteString(match[1 : len(match)-1])
			continue
		}

		out, err := fn(Parse(content[loc[4]:loc[5]]))
		if err != nil {
			return "", err
		}
		// a lone escape bracket on either side stays literal
		if openEscaped {
			sb.WriteString("[")
		}
		sb.WriteString(out)
		if closeEscaped {
			sb.WriteString("]")
		}
	}
	sb.WriteString(content[last:])

	return sb.String(), nil
}
