package shortcode

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		body string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"double_quoted", ` shop="acme" product_handle="mug"`, map[string]string{"shop": "acme", "product_handle": "mug"}},
		{"single_quoted", ` buy_button_text='Buy "it"'`, map[string]string{"buy_button_text": `Buy "it"`}},
		{"unquoted", ` embed_type=collection`, map[string]string{"embed_type": "collection"}},
		{"mixed_case", ` Shop="acme"`, map[string]string{"shop": "acme"}},
		{"empty_value", ` background=""`, map[string]string{"background": ""}},
		{"bare_word_ignored", ` sticky shop="acme"`, map[string]string{"shop": "acme"}},
		{"spaces_around_equals", ` shop = "acme"`, map[string]string{"shop": "acme"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.body))
		})
	}
}

func TestExpand(t *testing.T) {
	var calls []map[string]string
	fn := func(attrs map[string]string) (string, error) {
		calls = append(calls, attrs)
		return fmt.Sprintf("<embed %s>", attrs["product_handle"]), nil
	}

	out, err := Expand(`<p>One [shopify product_handle="mug"] two [shopify product_handle=hat/] end</p>`, fn)
	require.NoError(t, err)

	assert.Equal(t, `<p>One <embed mug> two <embed hat> end</p>`, out)
	require.Len(t, calls, 2)
	assert.Equal(t, "mug", calls[0]["product_handle"])
	assert.Equal(t, "hat", calls[1]["product_handle"])
}

func TestExpand_Escaped(t *testing.T) {
	called := false
	out, err := Expand(`Use [[shopify shop="acme"]] to embed.`, func(map[string]string) (string, error) {
		called = true
		return "x", nil
	})
	require.NoError(t, err)

	assert.False(t, called)
	assert.Equal(t, `Use [shopify shop="acme"] to embed.`, out)
}

func TestExpand_IgnoresOtherTags(t *testing.T) {
	out, err := Expand(`[gallery ids="1"] [shopifyx a="b"]`, func(map[string]string) (string, error) {
		return "x", nil
	})
	require.NoError(t, err)
	assert.Equal(t, `[gallery ids="1"] [shopifyx a="b"]`, out)
}

func TestExpand_NoAttributes(t *testing.T) {
	out, err := Expand(`[shopify]`, func(attrs map[string]string) (string, error) {
		assert.Empty(t, attrs)
		return "", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "", out)
}

func TestExpand_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	_, err := Expand(`[shopify shop="a"]`, func(map[string]string) (string, error) {
		return "", boom
	})
	assert.ErrorIs(t, err, boom)
}
