package middleware

import (
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/clerk/clerk-sdk-go/v2"
	"github.com/go-jose/go-jose/v3"
	josejwt "github.com/go-jose/go-jose/v3/jwt"
)

// TestIssuer is the issuer of tokens signed by TestClerk.
const TestIssuer = "https://clerk.sbb.test"

const testKeyID = "sbb-test-key"

// The SDK caches keys by id for the whole process, so every TestClerk signs
// with the same key.
var (
	testKeyOnce sync.Once
	testKey     *rsa.PrivateKey
	testKeyErr  error
)

// TestClerk serves a JWKS for locally signed session tokens and points the
// Clerk SDK at it.
type TestClerk struct {
	server *httptest.Server
	signer jose.Signer
}

// NewTestClerk starts the JWKS server and swaps the Clerk backend. The
// cleanup func restores the previous backend.
func NewTestClerk() (*TestClerk, func(), error) {
	testKeyOnce.Do(func() {
		testKey, testKeyErr = rsa.GenerateKey(rand.Reader, 2048)
	})
	if testKeyErr != nil {
		return nil, nil, fmt.Errorf("failed to generate signing key: %w", testKeyErr)
	}

	keySet, err := json.Marshal(map[string]any{
		"keys": []jose.JSONWebKey{{
			Key:       &testKey.PublicKey,
			KeyID:     testKeyID,
			Algorithm: string(jose.RS256),
			Use:       "sig",
		}},
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode key set: %w", err)
	}

	signer, err := jose.NewSigner(
		jose.SigningKey{Algorithm: jose.RS256, Key: jose.JSONWebKey{Key: testKey, KeyID: testKeyID}},
		(&jose.SignerOptions{}).WithType("JWT"),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create signer: %w", err)
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(keySet)
	}))

	previous := clerk.GetBackend()
	clerk.SetBackend(clerk.NewBackend(&clerk.BackendConfig{URL: clerk.String(server.URL)}))

	cleanup := func() {
		clerk.SetBackend(previous)
		server.Close()
	}
	return &TestClerk{server: server, signer: signer}, cleanup, nil
}

// Token signs a session token for subject that expires at expiry.
func (tc *TestClerk) Token(subject string, expiry time.Time) (string, error) {
	issued := expiry.Add(-2 * time.Hour)
	claims := josejwt.Claims{
		Issuer:    TestIssuer,
		Subject:   subject,
		IssuedAt:  josejwt.NewNumericDate(issued),
		NotBefore: josejwt.NewNumericDate(issued),
		Expiry:    josejwt.NewNumericDate(expiry),
	}
	return josejwt.Signed(tc.signer).Claims(claims).CompactSerialize()
}
