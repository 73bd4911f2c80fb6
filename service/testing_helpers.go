package service

import (
	"context"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/auth"
	"github.com/loganlanou/shopify-buy-button/storage"
)

// testEditorID is the Clerk user the test config lists as an editor
const testEditorID = "user_editor"

// setupTestService creates a service instance with an in-memory database for testing
func setupTestService(t *testing.T) *Service {
	t.Helper()

	store, cleanup, err := storage.NewTestStorage()
	if err != nil {
		t.Fatalf("failed to create test storage: %v", err)
	}
	t.Cleanup(cleanup)

	config := &Config{
		Environment:       "test",
		Port:              "8080",
		BaseURL:           "http://localhost:8080",
		RenderConcurrency: 2,
	}
	config.Clerk.EditorIDs = []string{testEditorID}

	return New(store, config)
}

// setupTestEcho creates an Echo instance with routes registered
func setupTestEcho(t *testing.T) (*echo.Echo, *Service) {
	t.Helper()

	e := echo.New()
	// Disable Echo's default error handler for cleaner test output
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		// Just set status code, don't write response
		if he, ok := err.(*echo.HTTPError); ok {
			c.Response().WriteHeader(he.Code)
		} else {
			c.Response().WriteHeader(500)
		}
	}

	svc := setupTestService(t)
	svc.RegisterRoutes(e)

	return e, svc
}

// createEditorKey creates an API key that grants editor access
func createEditorKey(t *testing.T, svc *Service) string {
	t.Helper()

	key, _, err := auth.CreateAPIKey(context.Background(), svc.storage.Queries, "test editor", []string{auth.PermissionEditPosts})
	if err != nil {
		t.Fatalf("failed to create editor key: %v", err)
	}
	return key
}
