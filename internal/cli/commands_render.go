package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/loganlanou/shopify-buy-button/internal/embed"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/render"
	"github.com/spf13/cobra"
)

type renderFile struct {
	Documents []render.Document `yaml:"documents"`
}

func newRenderCommand(deps Dependencies) *cobra.Command {
	var (
		outDir      string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "render <file|->",
		Short: "Render the pages listed in a YAML file.",
		Long: `Render every document in a YAML file of the form

  documents:
    - name: home
      content: '[shopify product_handle="mug"]'
      footer_cart: true

Each document is rendered as its own page. Output goes to stdout, or to
<out>/<name>.html with --out.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}
			var file renderFile
			if err := decodeYAML(data, &file); err != nil {
				return err
			}
			if len(file.Documents) == 0 {
				return &validationError{err: fmt.Errorf("%s lists no documents", args[0])}
			}
			for i := range file.Documents {
				if file.Documents[i].Name == "" {
					file.Documents[i].Name = fmt.Sprintf("page-%d", i+1)
				}
			}

			var files []string
			if outDir != "" {
				if files, err = outputFiles(file.Documents); err != nil {
					return err
				}
			}

			renderer := render.New(options.NewStore(deps.Queries), embed.Filters{}, deps.ScriptURL)
			results, err := renderer.RenderAll(cmd.Context(), file.Documents, concurrency)
			if err != nil {
				return err
			}

			if outDir == "" {
				out := cmd.OutOrStdout()
				for _, res := range results {
					_, _ = headerColor.Fprintf(out, "==> %s\n", res.Name)
					_, _ = fmt.Fprintln(out, res.HTML)
				}
				return nil
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			for i, res := range results {
				path := filepath.Join(outDir, files[i])
				if err := os.WriteFile(path, []byte(res.HTML), 0o644); err != nil {
					return fmt.Errorf("write %s: %w", path, err)
				}
			}
			printSuccess(cmd.OutOrStdout(), "rendered %d pages into %s", len(results), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Directory to write <name>.html files to.")
	cmd.Flags().IntVarP(&concurrency, "concurrency", "c", deps.Concurrency, "Pages rendered at once.")
	return cmd
}

// outputFiles names the file each document is written to. Two documents that
// would share a file are rejected.
func outputFiles(docs []render.Document) ([]string, error) {
	files := make([]string, len(docs))
	seen := make(map[string]string, len(docs))
	for i, doc := range docs {
		name := filepath.Base(doc.Name) + ".html"
		if prev, ok := seen[name]; ok {
			return nil, &validationError{err: fmt.Errorf("documents %q and %q both write %s", prev, doc.Name, name)}
		}
		seen[name] = doc.Name
		files[i] = name
	}
	return files, nil
}
