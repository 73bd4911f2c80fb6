package appearance

import (
	"context"
	"errors"
	"testing"

	"github.com/loganlanou/shopify-buy-button/internal/options"
	"github.com/loganlanou/shopify-buy-button/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		settings  Settings
		wantErr   error
		errString string
	}{
		{
			name:     "empty_settings",
			settings: Settings{},
		},
		{
			name: "valid_full_settings",
			settings: Settings{
				RedirectTo:            ptr("checkout"),
				ButtonBackgroundColor: ptr("#112233"),
				ButtonTextColor:       ptr("#fff"),
				BackgroundColor:       ptr("#ABCDEF"),
			},
		},
		{
			name:      "unknown_redirect",
			settings:  Settings{RedirectTo: ptr("home")},
			wantErr:   ErrInvalidRedirect,
			errString: `redirect_to "home"`,
		},
		{
			name:      "color_without_hash",
			settings:  Settings{TextColor: ptr("000000")},
			wantErr:   ErrInvalidColor,
			errString: "text_color",
		},
		{
			name:      "color_wrong_length",
			settings:  Settings{AccentColor: ptr("#12345")},
			wantErr:   ErrInvalidColor,
			errString: "accent_color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))
			assert.Contains(t, err.Error(), tt.errString)
		})
	}
}

func TestValidate_JoinsAllFailures(t *testing.T) {
	err := Settings{
		RedirectTo:      ptr("nowhere"),
		ButtonTextColor: ptr("red"),
	}.Validate()

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRedirect)
	assert.ErrorIs(t, err, ErrInvalidColor)
}

func TestResolve_FillsUnsetFromDefault(t *testing.T) {
	a := Settings{BuyButtonText: ptr("Add to bag")}.Resolve()

	want := Default()
	want.BuyButtonText = "Add to bag"
	assert.Equal(t, want, a)
}

func TestResolve_KeepsExplicitEmptyString(t *testing.T) {
	a := Settings{CartTitle: ptr("")}.Resolve()
	assert.Equal(t, "", a.CartTitle)
}

func TestResolve_DropsInvalidFields(t *testing.T) {
	a := Settings{
		RedirectTo:      ptr("elsewhere"),
		ButtonTextColor: ptr("not-a-color"),
		TextColor:       ptr("#333333"),
	}.Resolve()

	assert.Equal(t, Default().RedirectTo, a.RedirectTo)
	assert.Equal(t, Default().ButtonTextColor, a.ButtonTextColor)
	assert.Equal(t, "#333333", a.TextColor)
}

func TestEmbedBackground(t *testing.T) {
	a := Default()
	a.BackgroundColor = "#eeeeee"
	assert.Equal(t, "eeeeee", a.EmbedBackground())

	a.Background = false
	assert.Equal(t, "transparent", a.EmbedBackground())
}

func TestHex(t *testing.T) {
	assert.Equal(t, "7db461", Hex("#7db461"))
	assert.Equal(t, "7db461", Hex("7db461"))
	assert.Equal(t, "", Hex(""))
}

func TestSettingsRoundTrip(t *testing.T) {
	a := Default()
	a.CartTitle = "Basket"
	assert.Equal(t, a, a.Settings().Resolve())
}

func newOptionStore(t *testing.T) *options.Store {
	t.Helper()
	_, queries, cleanup, err := storage.NewTestDB()
	require.NoError(t, err)
	t.Cleanup(cleanup)
	return options.NewStore(queries)
}

func TestLoad_MissingRecordUsesDefaults(t *testing.T) {
	store := newOptionStore(t)
	assert.Equal(t, Default(), Load(context.Background(), store))
}

func TestSaveThenLoad(t *testing.T) {
	store := newOptionStore(t)
	ctx := context.Background()

	err := Save(ctx, store, Settings{
		RedirectTo: ptr("checkout"),
		Background: ptr(false),
		CartTitle:  ptr("Basket"),
	})
	require.NoError(t, err)

	a := Load(ctx, store)
	assert.Equal(t, "checkout", a.RedirectTo)
	assert.False(t, a.Background)
	assert.Equal(t, "Basket", a.CartTitle)
	assert.Equal(t, Default().BuyButtonText, a.BuyButtonText)
}

func TestSave_RejectsInvalid(t *testing.T) {
	store := newOptionStore(t)
	ctx := context.Background()

	err := Save(ctx, store, Settings{ButtonBackgroundColor: ptr("green")})
	assert.ErrorIs(t, err, ErrInvalidColor)

	raw, err := store.Get(ctx, Key, "unset")
	require.NoError(t, err)
	assert.Equal(t, "unset", raw)
}

func TestLoad_CorruptRecordUsesDefaults(t *testing.T) {
	store := newOptionStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, Key, "{not json"))

	_, err := LoadSettings(ctx, store)
	assert.Error(t, err)
	assert.Equal(t, Default(), Load(ctx, store))
}
