package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/auth"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/storage"
	"github.com/loganlanou/shopify-buy-button/storage/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func newTestDeps(t *testing.T) (Dependencies, *db.Queries) {
	t.Helper()
	color.NoColor = true

	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)

	return Dependencies{Queries: queries, Concurrency: 2, Version: "test"}, queries
}

func run(t *testing.T, deps Dependencies, stdin string, args ...string) (int, string, string) {
	t.Helper()

	cmd := NewRootCommand(deps)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)

	code := 0
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		code = 1
		printError(stderr, err)
	}
	return code, stdout.String(), stderr.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const docsYAML = `documents:
  - name: home
    content: '<h1>Home</h1>[shopify shop="acme" product_handle="mug"]'
    footer_cart: true
  - name: sale
    content: '[shopify embed_type="collection" product_handle="summer-sale" shop="acme"]'
`

func TestRender_Stdout(t *testing.T) {
	deps, _ := newTestDeps(t)

	code, out, stderr := run(t, deps, "", "render", writeFile(t, "docs.yaml", docsYAML))
	require.Equal(t, 0, code, stderr)

	homeAt := strings.Index(out, "==> home")
	saleAt := strings.Index(out, "==> sale")
	require.NotEqual(t, -1, homeAt)
	require.Greater(t, saleAt, homeAt)
	assert.Contains(t, out, `data-shop="acme" data-product_handle="mug"`)
	assert.Contains(t, out, `data-collection_handle="summer-sale"`)
	assert.Equal(t, 2, strings.Count(out, `id="ShopifyEmbedScript"`))
}

func TestRender_OutDir(t *testing.T) {
	deps, _ := newTestDeps(t)
	outDir := filepath.Join(t.TempDir(), "site")

	code, out, stderr := run(t, deps, docsYAML, "render", "-", "--out", outDir)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "rendered 2 pages")

	home, err := os.ReadFile(filepath.Join(outDir, "home.html"))
	require.NoError(t, err)
	assert.Contains(t, string(home), "<h1>Home</h1>")
	assert.Contains(t, string(home), "sbb-embed-cart")
}

func TestRender_OutDirRejectsSharedFileNames(t *testing.T) {
	deps, _ := newTestDeps(t)
	outDir := filepath.Join(t.TempDir(), "site")

	docs := `documents:
  - name: a/home
    content: '[shopify shop="acme" product_handle="mug"]'
  - name: b/home
    content: '[shopify shop="acme" product_handle="hat"]'
`
	code, _, stderr := run(t, deps, docs, "render", "-", "--out", outDir)
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `documents "a/home" and "b/home" both write home.html`)

	_, err := os.Stat(outDir)
	assert.True(t, os.IsNotExist(err))

	stdout, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	assert.Equal(t, 2, Execute(context.Background(), []string{"render", writeFile(t, "docs.yaml", docs), "--out", outDir}, deps, stdout, errOut))
}

func TestRender_NoDocuments(t *testing.T) {
	deps, _ := newTestDeps(t)

	code, _, stderr := run(t, deps, "documents: []\n", "render", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "lists no documents")
}

func TestAppearance_SetAndGet(t *testing.T) {
	deps, queries := newTestDeps(t)

	code, out, stderr := run(t, deps, "buy_button_text: Grab it\nbackground: false\n", "appearance", "set", "-")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "appearance settings saved")

	got := appearance.Load(context.Background(), options.NewStore(queries))
	assert.Equal(t, "Grab it", got.BuyButtonText)
	assert.False(t, got.Background)

	code, out, stderr = run(t, deps, "", "appearance", "get")
	require.Equal(t, 0, code, stderr)

	var printed appearanceOutput
	require.NoError(t, yaml.Unmarshal([]byte(out), &printed))
	require.NotNil(t, printed.Settings.BuyButtonText)
	assert.Equal(t, "Grab it", *printed.Settings.BuyButtonText)
	assert.Equal(t, "#7db461", printed.Resolved.ButtonBackgroundColor)

	code, out, _ = run(t, deps, "", "appearance", "get", "--format", "json")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"buy_button_text": "Grab it"`)
}

func TestAppearance_SetInvalid(t *testing.T) {
	deps, _ := newTestDeps(t)

	code, _, stderr := run(t, deps, "button_text_color: red\n", "appearance", "set", "-")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}

func TestShop_SetAndGet(t *testing.T) {
	deps, _ := newTestDeps(t)

	code, out, _ := run(t, deps, "", "shop", "get")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "shop: (none)")

	code, _, stderr := run(t, deps, "", "shop", "set", "acme", "--site", "acme.myshopify.com")
	require.Equal(t, 0, code, stderr)

	_, out, _ = run(t, deps, "", "shop", "get")
	assert.Contains(t, out, "shop: acme")
	assert.Contains(t, out, "connected_site: acme.myshopify.com")
}

func TestKeysCreate(t *testing.T) {
	deps, queries := newTestDeps(t)

	code, out, stderr := run(t, deps, "", "keys", "create", "ci")
	require.Equal(t, 0, code, stderr)

	var key string
	for _, line := range strings.Split(out, "\n") {
		if rest, ok := strings.CutPrefix(line, "key:"); ok {
			key = strings.TrimSpace(rest)
		}
	}
	require.NotEmpty(t, key)

	info, err := auth.LookupAPIKey(context.Background(), queries, key)
	require.NoError(t, err)
	assert.True(t, info.HasPermission(auth.PermissionEditPosts))
}

func TestExecute_ExitCodes(t *testing.T) {
	deps, _ := newTestDeps(t)
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}

	assert.Equal(t, 0, Execute(context.Background(), []string{"shop", "get"}, deps, stdout, stderr))
	assert.Equal(t, 2, Execute(context.Background(), []string{"shop", "get", "--format", "xml"}, deps, stdout, stderr))
	assert.Contains(t, stderr.String(), `unsupported format "xml"`)
	assert.Equal(t, 1, Execute(context.Background(), []string{"render", "/does/not/exist.yaml"}, deps, stdout, stderr))
}
