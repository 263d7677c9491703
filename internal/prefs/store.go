// Package prefs holds the user's display preferences and the formatting
// helpers driven by them.
package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mizanapp/mizan/internal/i18n"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
)

// Store is the single process-wide preference store. It restores persisted
// settings at construction, persists each field independently on change,
// and notifies subscribers synchronously after persistence completes.
type Store struct {
	kv          service.KeyValue
	current     model.Preferences
	subscribers []func(model.Preferences)
}

// NewStore restores preferences from the key-value store. Absent or
// malformed values fall back to the defaults; restore never fails on bad
// data, only on storage errors.
func NewStore(ctx context.Context, kv service.KeyValue) (*Store, error) {
	s := &Store{
		kv:      kv,
		current: model.DefaultPreferences(),
	}

	if raw, ok, err := kv.Get(ctx, service.KeyLocale); err != nil {
		return nil, fmt.Errorf("failed to load locale: %w", err)
	} else if ok {
		if locale, err := decodePref(raw, model.ParseLocale); err == nil {
			s.current.Locale = locale
		} else {
			slog.Debug("ignoring malformed locale preference", "value", raw)
		}
	}

	if raw, ok, err := kv.Get(ctx, service.KeyCurrency); err != nil {
		return nil, fmt.Errorf("failed to load currency: %w", err)
	} else if ok {
		if currency, err := decodePref(raw, model.ParseCurrency); err == nil {
			s.current.Currency = currency
		} else {
			slog.Debug("ignoring malformed currency preference", "value", raw)
		}
	}

	if raw, ok, err := kv.Get(ctx, service.KeyTheme); err != nil {
		return nil, fmt.Errorf("failed to load theme: %w", err)
	} else if ok {
		if theme, err := decodePref(raw, model.ParseTheme); err == nil {
			s.current.Theme = theme
		} else {
			slog.Debug("ignoring malformed theme preference", "value", raw)
		}
	}

	return s, nil
}

// decodePref unwraps one persisted JSON string and validates it against a
// closed enum.
func decodePref[T ~string](raw string, parse func(string) (T, error)) (T, error) {
	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		var zero T
		return zero, err
	}
	return parse(value)
}

// Get returns the current preference snapshot.
func (s *Store) Get() model.Preferences {
	return s.current
}

// Subscribe registers a callback invoked synchronously after each
// preference change has been persisted.
func (s *Store) Subscribe(fn func(model.Preferences)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subscribers {
		fn(s.current)
	}
}

// persist writes one preference field as a JSON-encoded string.
func (s *Store) persist(ctx context.Context, key, value string) error {
	encoded, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.kv.Set(ctx, key, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", key, err)
	}
	return nil
}

// SetLocale validates, persists and applies a new locale.
func (s *Store) SetLocale(ctx context.Context, locale model.Locale) error {
	validated, err := model.ParseLocale(string(locale))
	if err != nil {
		return err
	}
	if err := s.persist(ctx, service.KeyLocale, string(validated)); err != nil {
		return err
	}
	s.current.Locale = validated
	s.notify()
	return nil
}

// SetCurrency validates, persists and applies a new currency.
func (s *Store) SetCurrency(ctx context.Context, currency model.Currency) error {
	validated, err := model.ParseCurrency(string(currency))
	if err != nil {
		return err
	}
	if err := s.persist(ctx, service.KeyCurrency, string(validated)); err != nil {
		return err
	}
	s.current.Currency = validated
	s.notify()
	return nil
}

// SetTheme validates, persists and applies a new theme.
func (s *Store) SetTheme(ctx context.Context, theme model.Theme) error {
	validated, err := model.ParseTheme(string(theme))
	if err != nil {
		return err
	}
	if err := s.persist(ctx, service.KeyTheme, string(validated)); err != nil {
		return err
	}
	s.current.Theme = validated
	s.notify()
	return nil
}

// IsRTL reports whether the active locale renders right-to-left.
func (s *Store) IsRTL() bool {
	return s.current.Locale.IsRTL()
}

// Translate resolves a dot-separated key against the active locale's string
// table. A missing key degrades to the raw key rather than failing.
func (s *Store) Translate(key string) string {
	if value, ok := i18n.Lookup(string(s.current.Locale), key); ok {
		return value
	}
	return key
}

// FormatCurrency renders an amount with exactly two fraction digits,
// digit grouping, and the active currency's fixed symbol. The symbol
// trails the number for right-to-left locales and leads it otherwise.
// Amounts are relabeled, never converted.
func (s *Store) FormatCurrency(amount decimal.Decimal) string {
	p := message.NewPrinter(language.English)
	formatted := p.Sprint(number.Decimal(
		amount.InexactFloat64(),
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))

	symbol := s.current.Currency.Symbol()
	if s.IsRTL() {
		return formatted + " " + symbol
	}
	return symbol + formatted
}

// ResolveTheme collapses the theme preference to light or dark. When the
// preference is "system" the terminal's reported background is consulted on
// every call, so a changed environment is picked up without restart.
func (s *Store) ResolveTheme() model.Theme {
	if s.current.Theme != model.ThemeSystem {
		return s.current.Theme
	}
	if lipgloss.HasDarkBackground() {
		return model.ThemeDark
	}
	return model.ThemeLight
}
