package main

import (
	"os"

	"github.com/loganlanou/shopify-buy-button/internal/logging"
)

func init() {
	logging.Setup(os.Stdout)
}
