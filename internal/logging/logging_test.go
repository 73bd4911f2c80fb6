package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevel(t *testing.T) {
	level, err := Level("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = Level("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = Level("chatty")
	assert.EqualError(t, err, "invalid log level: chatty")
}

func TestCleanSourcePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"module_prefix", "/home/dev/shopify-buy-button/internal/embed/page.go", "internal/embed/page.go"},
		{"gopath", "/root/go/src/example.com/x/y.go", "example.com/x/y.go"},
		{"src", "/opt/src/pkg/z.go", "pkg/z.go"},
		{"unknown", "/tmp/a.go", "/tmp/a.go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanSourcePath(tt.path, "/shopify-buy-button/"))
		})
	}
}

func TestNewDebugHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewDebugHandler(&buf, "/shopify-buy-button/"))

	logger.Debug("shop resolved", "shop", "acme", "error", errors.New("boom"))

	out := buf.String()
	assert.Contains(t, out, "shop resolved")
	assert.Contains(t, out, "acme")
	assert.Contains(t, out, "boom")
}
