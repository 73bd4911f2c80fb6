// Package auth decides whether a request comes from an editor: someone
// allowed to preview embeds and change embed settings.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/loganlanou/shopify-buy-button/internal/middleware"
	"github.com/loganlanou/shopify-buy-button/storage/db"
)

// PermissionEditPosts is the API key permission that grants editor access.
const PermissionEditPosts = "edit_posts"

const (
	IsEditorKey   = "is_editor"
	APIKeyInfoKey = "api_key_info"
)

// Editors marks requests from editors. A request is an editor's when it
// carries an active API key with PermissionEditPosts, or a Clerk session
// whose user is in editorIDs. Other requests continue unmarked.
func Editors(queries *db.Queries, editorIDs []string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(editorIDs))
	for _, id := range editorIDs {
		if id = strings.TrimSpace(id); id != "" {
			allowed[id] = struct{}{}
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key := requestAPIKey(c.Request()); key != "" {
				info, err := LookupAPIKey(c.Request().Context(), queries, key)
				if err != nil {
					slog.Debug("API key lookup failed", "error", err)
				} else {
					c.Set(APIKeyInfoKey, info)
					if info.HasPermission(PermissionEditPosts) {
						c.Set(IsEditorKey, true)
					}
					go func() {
						_ = queries.UpdateAPIKeyLastUsed(context.Background(), info.ID)
					}()
				}
			}

			if userID, ok := middleware.GetUserID(c); ok {
				if _, ok := allowed[userID]; ok {
					c.Set(IsEditorKey, true)
				}
			}

			return next(c)
		}
	}
}

// RequireEditor rejects requests Editors did not mark.
func RequireEditor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !IsEditor(c) {
				return echo.NewHTTPError(http.StatusUnauthorized, "Editor access required")
			}
			return next(c)
		}
	}
}

// IsEditor reports whether Editors marked the request.
func IsEditor(c echo.Context) bool {
	isEditor, _ := c.Get(IsEditorKey).(bool)
	return isEditor
}

// GetAPIKeyInfo returns the API key the request authenticated with.
func GetAPIKeyInfo(c echo.Context) (*APIKeyInfo, bool) {
	info, ok := c.Get(APIKeyInfoKey).(*APIKeyInfo)
	return info, ok && info != nil
}

func requestAPIKey(r *http.Request) string {
	if key := r.Header.Get("X-API-Key"); key != "" {
		return key
	}
	if token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok && strings.HasPrefix(token, keyPrefix) {
		return token
	}
	return ""
}
