package model

import (
	"fmt"

	"github.com/mizanapp/mizan/internal/common"
)

// Locale identifies a supported display language.
type Locale string

const (
	// LocaleEnglish is the default, left-to-right locale.
	LocaleEnglish Locale = "en"
	// LocaleArabic is the right-to-left locale.
	LocaleArabic Locale = "ar"
)

// IsRTL reports whether the locale renders right-to-left.
func (l Locale) IsRTL() bool { return l == LocaleArabic }

// ParseLocale validates a raw string against the closed locale enum.
func ParseLocale(s string) (Locale, error) {
	switch Locale(s) {
	case LocaleEnglish, LocaleArabic:
		return Locale(s), nil
	default:
		return "", fmt.Errorf("%w: locale %q", common.ErrInvalidEnum, s)
	}
}

// Currency identifies a supported display currency. Changing currency
// relabels amounts with a different symbol; nothing is converted.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyILS Currency = "ILS"
	CurrencyEUR Currency = "EUR"
	CurrencyAED Currency = "AED"
	CurrencySAR Currency = "SAR"
)

// currencySymbols maps each currency to its fixed display symbol.
var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyILS: "₪",
	CurrencyEUR: "€",
	CurrencyAED: "د.إ",
	CurrencySAR: "ر.س",
}

// Symbol returns the currency's fixed display symbol.
func (c Currency) Symbol() string { return currencySymbols[c] }

// ParseCurrency validates a raw string against the closed currency enum.
func ParseCurrency(s string) (Currency, error) {
	switch Currency(s) {
	case CurrencyUSD, CurrencyILS, CurrencyEUR, CurrencyAED, CurrencySAR:
		return Currency(s), nil
	default:
		return "", fmt.Errorf("%w: currency %q", common.ErrInvalidEnum, s)
	}
}

// Theme identifies the visual theme preference. ThemeSystem defers to the
// host environment's reported color scheme at resolution time.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// ParseTheme validates a raw string against the closed theme enum.
func ParseTheme(s string) (Theme, error) {
	switch Theme(s) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(s), nil
	default:
		return "", fmt.Errorf("%w: theme %q", common.ErrInvalidEnum, s)
	}
}

// Preferences holds the user's display settings.
type Preferences struct {
	Locale   Locale   `json:"locale"`
	Currency Currency `json:"currency"`
	Theme    Theme    `json:"theme"`
}

// DefaultPreferences returns the settings used when nothing has been
// persisted yet or the persisted value is malformed.
func DefaultPreferences() Preferences {
	return Preferences{
		Locale:   LocaleEnglish,
		Currency: CurrencyUSD,
		Theme:    ThemeSystem,
	}
}
