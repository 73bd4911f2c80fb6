package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/clerk/clerk-sdk-go/v2"
	clerkhttp "github.com/clerk/clerk-sdk-go/v2/http"
	"github.com/labstack/echo/v4"
)

// ContextKey is the key type for storing values in context
type ContextKey string

const (
	// SessionClaimsKey is the context key for session claims
	SessionClaimsKey ContextKey = "clerk_session_claims"
	// UserIDKey is the context key for user ID
	UserIDKey ContextKey = "user_id"
)

// ClerkSession optionally authenticates requests using Clerk. Requests
// without a token, or with one Clerk rejects, continue unauthenticated.
func ClerkSession() echo.MiddlewareFunc {
	// A rejected token must not answer the request; the route decides.
	clerkMiddleware := clerkhttp.WithHeaderAuthorization(
		clerkhttp.AuthorizationFailureHandler(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})),
	)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := getSessionToken(c.Request())
			if token == "" {
				return next(c)
			}

			// Clerk reads the Authorization header only, so a cookie session is
			// moved there on a copy of the request
			req := c.Request().Clone(c.Request().Context())
			req.Header.Set("Authorization", "Bearer "+token)

			var claims *clerk.SessionClaims
			handler := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				claims, _ = clerk.SessionClaimsFromContext(r.Context())
			})
			clerkMiddleware(handler).ServeHTTP(c.Response(), req)

			if claims == nil {
				slog.Debug("clerk session rejected", "path", c.Request().URL.Path)
				return next(c)
			}

			c.Set(string(SessionClaimsKey), claims)
			if claims.Subject != "" {
				c.Set(string(UserIDKey), claims.Subject)
			}
			return next(c)
		}
	}
}

// GetSessionClaims extracts session claims from the Echo context
func GetSessionClaims(c echo.Context) (*clerk.SessionClaims, bool) {
	claims, ok := c.Get(string(SessionClaimsKey)).(*clerk.SessionClaims)
	return claims, ok && claims != nil
}

// GetUserID extracts the user ID from the Echo context
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(string(UserIDKey)).(string)
	return userID, ok && userID != ""
}

// getSessionToken extracts the session token from either the __session cookie or Authorization header
func getSessionToken(r *http.Request) string {
	cookie, err := r.Cookie("__session")
	if err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		token := strings.TrimPrefix(authHeader, "Bearer ")
		// API keys share the header; they are not Clerk sessions
		if strings.HasPrefix(token, "sbb_") {
			return ""
		}
		return token
	}
	return ""
}
