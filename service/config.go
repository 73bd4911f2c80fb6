package service

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Port        string
	BaseURL     string
	DBPath      string

	Clerk struct {
		SecretKey string
		// EditorIDs are the Clerk users allowed to preview and configure embeds.
		EditorIDs []string
	}

	Embed struct {
		ScriptURL string
		PickerURL string
	}

	// RenderConcurrency bounds how many documents a batch render works on at once.
	RenderConcurrency int
}

// LoadEnvFile loads a .env file into the environment when one exists.
// Variables already set take precedence.
func LoadEnvFile(path string) {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load env file", "path", path, "error", err)
	}
}

func LoadConfig() (*Config, error) {
	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Port:        getEnv("PORT", "8000"),
		BaseURL:     getEnv("BASE_URL", "http://localhost:8000"),
		DBPath:      getEnv("DB_PATH", "./db/shopify-buy-button.db"),
	}

	// Clerk
	config.Clerk.SecretKey = getEnv("CLERK_SECRET_KEY", "")
	config.Clerk.EditorIDs = splitList(getEnv("EDITOR_USER_IDS", ""))

	// Embed
	config.Embed.ScriptURL = getEnv("WIDGET_SCRIPT_URL", "")
	config.Embed.PickerURL = getEnv("PICKER_URL", "")

	// Render
	concurrency := getEnv("RENDER_CONCURRENCY", "4")
	if n, err := strconv.Atoi(concurrency); err == nil && n > 0 {
		config.RenderConcurrency = n
	} else {
		config.RenderConcurrency = 4
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
