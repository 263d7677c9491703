// Package service defines the interfaces the core components are built on.
package service

import "context"

// KeyValue is the persistence contract the stores consume: a flat string
// key-value surface where each value is one JSON-encoded collection or
// preference. Every write replaces the whole value; there is no partial
// update at this layer.
type KeyValue interface {
	// Get returns the value for key. The second return is false when the
	// key has never been set.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Close releases the underlying resources.
	Close() error
}

// Persisted keys, one per collection or preference.
const (
	KeyExpenses   = "expenses"
	KeyIncome     = "income"
	KeyGoals      = "goals"
	KeyCategories = "categories"
	KeyLocale     = "locale"
	KeyCurrency   = "currency"
	KeyTheme      = "theme"
)
