package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/loganlanou/shopify-buy-button/storage/db"
	"github.com/oklog/ulid/v2"
)

const keyPrefix = "sbb_"

var (
	ErrInvalidAPIKey  = errors.New("invalid api key")
	ErrInactiveAPIKey = errors.New("api key is inactive")
)

type APIKeyInfo struct {
	ID          string
	Name        string
	Permissions string
}

// HasPermission checks if the API key has the specified permission.
func (a *APIKeyInfo) HasPermission(permission string) bool {
	if a == nil {
		return false
	}
	for _, p := range strings.Split(a.Permissions, ",") {
		if strings.TrimSpace(p) == permission {
			return true
		}
	}
	return false
}

// GenerateAPIKey creates a new API key.
// Returns the plaintext key (show once), hash (store), and prefix (display).
func GenerateAPIKey() (plaintext, hash, prefix string, err error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", "", "", err
	}
	random := hex.EncodeToString(bytes)
	plaintext = keyPrefix + random
	prefix = keyPrefix + random[:8] + "..."
	return plaintext, hashKey(plaintext), prefix, nil
}

func hashKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

// CreateAPIKey generates and stores a key, returning the plaintext once.
func CreateAPIKey(ctx context.Context, queries *db.Queries, name string, permissions []string) (string, *APIKeyInfo, error) {
	plaintext, hash, prefix, err := GenerateAPIKey()
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate api key: %w", err)
	}

	perms := strings.Join(permissions, ",")
	row, err := queries.CreateAPIKey(ctx, db.CreateAPIKeyParams{
		ID:          ulid.Make().String(),
		Name:        name,
		KeyHash:     hash,
		KeyPrefix:   prefix,
		Permissions: sql.NullString{String: perms, Valid: perms != ""},
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to store api key: %w", err)
	}

	return plaintext, &APIKeyInfo{ID: row.ID, Name: row.Name, Permissions: perms}, nil
}

// LookupAPIKey resolves a plaintext key to its stored record.
func LookupAPIKey(ctx context.Context, queries *db.Queries, key string) (*APIKeyInfo, error) {
	if !strings.HasPrefix(key, keyPrefix) {
		return nil, ErrInvalidAPIKey
	}

	row, err := queries.GetAPIKeyByHash(ctx, hashKey(key))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidAPIKey
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up api key: %w", err)
	}

	if !row.IsActive.Valid || row.IsActive.Int64 != 1 {
		return nil, ErrInactiveAPIKey
	}

	return &APIKeyInfo{
		ID:          row.ID,
		Name:        row.Name,
		Permissions: row.Permissions.String,
	}, nil
}
