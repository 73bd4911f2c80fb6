package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/loganlanou/shopify-buy-button/internal/appearance"
	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/internal/render"
	"github.com/loganlanou/shopify-buy-button/storage"
	"gopkg.in/yaml.v3"
)

const (
	// Configuration
	numPages          = 12
	maxEmbedsPerPage  = 4
	collectionPercent = 20
)

type seed struct {
	Shop       string
	Site       string
	Appearance appearance.Settings
	Documents  []render.Document
}

func main() {
	docsPath := flag.String("docs", "./data/pages.yaml", "where to write the generated pages")
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "./db/shopify-buy-button.db"
	}

	store, err := storage.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	fmt.Println("🌱 Starting database seeding...")

	s := generate(gofakeit.New(uint64(time.Now().UnixNano())), numPages)
	if err := apply(context.Background(), options.NewStore(store.Queries), s); err != nil {
		log.Fatalf("Failed to seed options: %v", err)
	}
	fmt.Printf("✓ Shop %s connected to %s\n", s.Shop, s.Site)

	if err := writeDocs(*docsPath, s.Documents); err != nil {
		log.Fatalf("Failed to write pages: %v", err)
	}
	fmt.Printf("✓ Wrote %d pages to %s\n", len(s.Documents), *docsPath)

	fmt.Println("✅ Database seeding completed!")
}

func generate(f *gofakeit.Faker, pages int) seed {
	shop := slug(f.Company())
	s := seed{
		Shop: shop,
		Site: shop + ".myshopify.com",
		Appearance: appearance.Settings{
			BuyButtonText:         ptr(f.RandomString([]string{"Buy now", "Add to cart", "Shop now"})),
			ButtonBackgroundColor: ptr(f.HexColor()),
			ButtonTextColor:       ptr("#ffffff"),
			Background:            ptr(f.Bool()),
			RedirectTo:            ptr(f.RandomString([]string{"cart", "checkout", "modal"})),
		},
	}

	for i := 0; i < pages; i++ {
		s.Documents = append(s.Documents, generatePage(f, i))
	}
	return s
}

func generatePage(f *gofakeit.Faker, index int) render.Document {
	var b strings.Builder
	fmt.Fprintf(&b, "<h1>%s</h1>\n", f.ProductName())

	embeds := f.IntRange(1, maxEmbedsPerPage)
	for i := 0; i < embeds; i++ {
		if f.IntRange(1, 100) <= collectionPercent {
			fmt.Fprintf(&b, "[shopify embed_type=\"collection\" product_handle=\"%s\"]\n", slug(f.BuzzWord()+" "+f.Word()))
			continue
		}
		show := f.RandomString([]string{"all", "button-only"})
		fmt.Fprintf(&b, "[shopify product_handle=\"%s\" show=\"%s\"]\n", slug(f.ProductName()), show)
	}

	return render.Document{
		Name:       fmt.Sprintf("page-%02d", index+1),
		Content:    b.String(),
		Language:   f.RandomString([]string{"en", "es", "fr", "de"}),
		FooterCart: f.Bool(),
	}
}

func apply(ctx context.Context, store *options.Store, s seed) error {
	if err := store.SaveShop(ctx, s.Shop); err != nil {
		return err
	}
	if err := store.Set(ctx, options.ConnectedSite, s.Site); err != nil {
		return err
	}
	return appearance.Save(ctx, store, s.Appearance)
}

// writeDocs writes docs as a pages file for sbbctl render, creating the
// directory when needed.
func writeDocs(path string, docs []render.Document) error {
	out, err := yaml.Marshal(map[string]any{"documents": docs})
	if err != nil {
		return fmt.Errorf("encode pages: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func slug(s string) string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < '0' || r > '9')
	})
	return strings.Join(fields, "-")
}

func ptr[T any](v T) *T {
	return &v
}
