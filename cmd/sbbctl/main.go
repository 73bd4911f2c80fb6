package main

import (
	"context"
	"os"

	"github.com/loganlanou/shopify-buy-button/internal/cli"
	"github.com/loganlanou/shopify-buy-button/internal/logging"
	"github.com/loganlanou/shopify-buy-button/service"
	"github.com/loganlanou/shopify-buy-button/storage"
)

var version = "dev"

func main() {
	logging.Setup(os.Stderr)
	service.LoadEnvFile(".env")

	config, err := service.LoadConfig()
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	store, err := storage.New(config.DBPath)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	deps := cli.Dependencies{
		Queries:     store.Queries,
		ScriptURL:   config.Embed.ScriptURL,
		Concurrency: config.RenderConcurrency,
		Version:     version,
	}

	exitCode := cli.Execute(context.Background(), os.Args[1:], deps, os.Stdout, os.Stderr)
	store.Close()
	os.Exit(exitCode)
}
