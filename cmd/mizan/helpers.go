package main

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/mizanapp/mizan/internal/cli"
	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/config"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/prefs"
	"github.com/mizanapp/mizan/internal/storage"
	"github.com/mizanapp/mizan/internal/store"
)

// app bundles the stores every command works with.
type app struct {
	kv         *storage.SQLiteStore
	prefs      *prefs.Store
	expenses   *store.Expenses
	income     *store.Income
	goals      *store.Goals
	categories *store.Categories
	styles     cli.Palette
}

// openApp initializes storage with proper path expansion and wires up the
// preference and record stores.
func openApp(ctx context.Context) (*app, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = config.DefaultDBPath()
	}
	dbPath = config.ExpandPath(dbPath)

	kv, err := storage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}

	preferences, err := prefs.NewStore(ctx, kv)
	if err != nil {
		_ = kv.Close()
		return nil, err
	}

	a := &app{
		kv:         kv,
		prefs:      preferences,
		expenses:   store.NewExpenses(kv),
		income:     store.NewIncome(kv),
		goals:      store.NewGoals(kv),
		categories: store.NewCategories(kv),
		styles:     cli.ForTheme(preferences.ResolveTheme()),
	}

	// Preference changes take effect for anything rendered afterwards in
	// the same invocation.
	preferences.Subscribe(func(_ model.Preferences) {
		a.styles = cli.ForTheme(preferences.ResolveTheme())
	})

	return a, nil
}

// Close releases the underlying storage.
func (a *app) Close() error {
	return a.kv.Close()
}

// t is shorthand for a preference-driven translation lookup.
func (a *app) t(key string) string {
	return a.prefs.Translate(key)
}

// categoryLabel translates a category name for display, falling back to
// the raw name for custom categories with no table entry.
func (a *app) categoryLabel(name string) string {
	label := a.prefs.Translate("categories." + name)
	if label == "categories."+name {
		return name
	}
	return label
}

// userMessage renders an error's user-facing message with the error style.
func (a *app) userMessage(err error) string {
	return a.styles.Error.Render(common.UserMessage(err))
}

// parseAmount parses a user-entered decimal amount.
func parseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, common.NewUserError(
			fmt.Sprintf("%q is not a number", s),
			common.ErrInvalidAmount,
		)
	}
	return amount, nil
}
