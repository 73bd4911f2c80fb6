// Package appearance holds the site-wide presentation defaults applied to
// embeds that do not override them.
package appearance

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"
)

// Settings is the stored form of the appearance record. Nil fields were never
// configured and resolve to the built-in defaults.
type Settings struct {
	RedirectTo            *string `json:"redirect_to,omitempty" yaml:"redirect_to,omitempty"`
	BuyButtonText         *string `json:"buy_button_text,omitempty" yaml:"buy_button_text,omitempty"`
	ButtonBackgroundColor *string `json:"button_background_color,omitempty" yaml:"button_background_color,omitempty"`
	ButtonTextColor       *string `json:"button_text_color,omitempty" yaml:"button_text_color,omitempty"`
	Background            *bool   `json:"background,omitempty" yaml:"background,omitempty"`
	BackgroundColor       *string `json:"background_color,omitempty" yaml:"background_color,omitempty"`
	TextColor             *string `json:"text_color,omitempty" yaml:"text_color,omitempty"`
	AccentColor           *string `json:"accent_color,omitempty" yaml:"accent_color,omitempty"`
	CartTitle             *string `json:"cart_title,omitempty" yaml:"cart_title,omitempty"`
	CheckoutButtonText    *string `json:"checkout_button_text,omitempty" yaml:"checkout_button_text,omitempty"`
}

// Appearance is the resolved, validated record the embed resolver reads.
// Colors keep their leading '#'.
type Appearance struct {
	RedirectTo            string `json:"redirect_to" yaml:"redirect_to"`
	BuyButtonText         string `json:"buy_button_text" yaml:"buy_button_text"`
	ButtonBackgroundColor string `json:"button_background_color" yaml:"button_background_color"`
	ButtonTextColor       string `json:"button_text_color" yaml:"button_text_color"`
	Background            bool   `json:"background" yaml:"background"`
	BackgroundColor       string `json:"background_color" yaml:"background_color"`
	TextColor             string `json:"text_color" yaml:"text_color"`
	AccentColor           string `json:"accent_color" yaml:"accent_color"`
	CartTitle             string `json:"cart_title" yaml:"cart_title"`
	CheckoutButtonText    string `json:"checkout_button_text" yaml:"checkout_button_text"`
}

// Default returns the values used for settings that were never configured.
func Default() Appearance {
	return Appearance{
		RedirectTo:            "cart",
		BuyButtonText:         "Buy now",
		ButtonBackgroundColor: "#7db461",
		ButtonTextColor:       "#ffffff",
		Background:            true,
		BackgroundColor:       "#ffffff",
		TextColor:             "#000000",
		AccentColor:           "#000000",
		CartTitle:             "Your cart",
		CheckoutButtonText:    "Checkout",
	}
}

var (
	ErrInvalidColor    = errors.New("invalid color")
	ErrInvalidRedirect = errors.New("invalid redirect preference")

	colorPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
)

var redirectTargets = map[string]struct{}{
	"cart":     {},
	"checkout": {},
	"modal":    {},
}

// Validate checks every configured field and joins all failures.
func (s Settings) Validate() error {
	var errs []error

	if s.RedirectTo != nil {
		if _, ok := redirectTargets[*s.RedirectTo]; !ok {
			errs = append(errs, fmt.Errorf("redirect_to %q: %w", *s.RedirectTo, ErrInvalidRedirect))
		}
	}

	for _, c := range s.colors() {
		if c.value != nil && !colorPattern.MatchString(*c.value) {
			errs = append(errs, fmt.Errorf("%s %q: %w", c.name, *c.value, ErrInvalidColor))
		}
	}

	return errors.Join(errs...)
}

type namedColor struct {
	name  string
	value *string
}

func (s Settings) colors() []namedColor {
	return []namedColor{
		{"button_background_color", s.ButtonBackgroundColor},
		{"button_text_color", s.ButtonTextColor},
		{"background_color", s.BackgroundColor},
		{"text_color", s.TextColor},
		{"accent_color", s.AccentColor},
	}
}

// Resolve fills unset fields from Default. Fields that fail validation are
// dropped to their default and logged rather than failing the render.
func (s Settings) Resolve() Appearance {
	a := Default()

	if s.RedirectTo != nil {
		if _, ok := redirectTargets[*s.RedirectTo]; ok {
			a.RedirectTo = *s.RedirectTo
		} else {
			slog.Warn("ignoring invalid appearance setting", "field", "redirect_to", "value", *s.RedirectTo)
		}
	}
	if s.BuyButtonText != nil {
		a.BuyButtonText = *s.BuyButtonText
	}
	if s.Background != nil {
		a.Background = *s.Background
	}
	if s.CartTitle != nil {
		a.CartTitle = *s.CartTitle
	}
	if s.CheckoutButtonText != nil {
		a.CheckoutButtonText = *s.CheckoutButtonText
	}

	resolveColor(&a.ButtonBackgroundColor, "button_background_color", s.ButtonBackgroundColor)
	resolveColor(&a.ButtonTextColor, "button_text_color", s.ButtonTextColor)
	resolveColor(&a.BackgroundColor, "background_color", s.BackgroundColor)
	resolveColor(&a.TextColor, "text_color", s.TextColor)
	resolveColor(&a.AccentColor, "accent_color", s.AccentColor)

	return a
}

func resolveColor(dst *string, field string, value *string) {
	if value == nil {
		return
	}
	if !colorPattern.MatchString(*value) {
		slog.Warn("ignoring invalid appearance setting", "field", field, "value", *value)
		return
	}
	*dst = *value
}

// Settings converts a resolved record back into its stored form.
func (a Appearance) Settings() Settings {
	return Settings{
		RedirectTo:            &a.RedirectTo,
		BuyButtonText:         &a.BuyButtonText,
		ButtonBackgroundColor: &a.ButtonBackgroundColor,
		ButtonTextColor:       &a.ButtonTextColor,
		Background:            &a.Background,
		BackgroundColor:       &a.BackgroundColor,
		TextColor:             &a.TextColor,
		AccentColor:           &a.AccentColor,
		CartTitle:             &a.CartTitle,
		CheckoutButtonText:    &a.CheckoutButtonText,
	}
}

// Hex strips the leading '#' the widget does not expect.
func Hex(color string) string {
	return strings.TrimPrefix(color, "#")
}

// EmbedBackground is the background_color the widget receives: the configured
// color, or "transparent" when the background toggle is off.
func (a Appearance) EmbedBackground() string {
	if !a.Background {
		return "transparent"
	}
	return Hex(a.BackgroundColor)
}

// Store is the key-value store the settings record lives in.
type Store interface {
	Get(ctx context.Context, name, def string) (string, error)
	Set(ctx context.Context, name, value string) error
}

// Key is the option name the settings record is stored under.
const Key = "shopify_buy_button_appearance"

// LoadSettings reads the stored settings record. A missing record yields empty
// Settings.
func LoadSettings(ctx context.Context, store Store) (Settings, error) {
	raw, err := store.Get(ctx, Key, "")
	if err != nil {
		return Settings{}, err
	}
	if raw == "" {
		return Settings{}, nil
	}

	var s Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse appearance settings: %w", err)
	}
	return s, nil
}

// Load reads and resolves the appearance record. Read or parse failures are
// logged and the defaults returned; rendering never fails on appearance.
func Load(ctx context.Context, store Store) Appearance {
	s, err := LoadSettings(ctx, store)
	if err != nil {
		slog.Error("failed to load appearance settings, using defaults", "error", err)
		return Default()
	}
	return s.Resolve()
}

// Save validates and stores the settings record.
func Save(ctx context.Context, store Store, s Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}

	payload, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode appearance settings: %w", err)
	}
	return store.Set(ctx, Key, string(payload))
}
