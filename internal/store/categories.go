package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
)

// Categories is the persisted category set. Categories are plain lower-cased
// strings; the eight defaults are always present and never deletable.
type Categories struct {
	kv          service.KeyValue
	subscribers []func()
}

// NewCategories creates the category store.
func NewCategories(kv service.KeyValue) *Categories {
	return &Categories{kv: kv}
}

// Subscribe registers a callback invoked synchronously after each mutation
// has been persisted.
func (c *Categories) Subscribe(fn func()) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Categories) notify() {
	for _, fn := range c.subscribers {
		fn()
	}
}

// Load returns the stored category set. Absent or corrupt data yields the
// default set; only storage failures surface as errors.
func (c *Categories) Load(ctx context.Context) ([]string, error) {
	raw, ok, err := c.kv.Get(ctx, service.KeyCategories)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}
	if !ok {
		return defaultSet(), nil
	}

	var categories []string
	if err := json.Unmarshal([]byte(raw), &categories); err != nil {
		slog.Debug("ignoring corrupt category set", "error", err)
		return defaultSet(), nil
	}
	if len(categories) == 0 {
		return defaultSet(), nil
	}

	return categories, nil
}

// Add appends a new category. The name is stored lower-cased; adding a name
// that case-insensitively duplicates an existing category is rejected with
// a user-visible error and leaves the set unchanged.
func (c *Categories) Add(ctx context.Context, name string) error {
	normalized := model.NormalizeCategory(name)
	if normalized == "" {
		return common.NewUserError("category name cannot be empty", nil)
	}

	categories, err := c.Load(ctx)
	if err != nil {
		return err
	}

	for _, existing := range categories {
		if model.NormalizeCategory(existing) == normalized {
			return common.NewUserError(
				fmt.Sprintf("category %q already exists", normalized),
				common.ErrDuplicateCategory,
			)
		}
	}

	categories = append(categories, normalized)
	if err := c.persist(ctx, categories); err != nil {
		return err
	}

	c.notify()
	return nil
}

// Remove deletes a custom category. Removing one of the fixed defaults is
// rejected with a user-visible error; removing an absent custom name is a
// no-op.
func (c *Categories) Remove(ctx context.Context, name string) error {
	normalized := model.NormalizeCategory(name)
	if model.IsDefaultCategory(normalized) {
		return common.NewUserError(
			fmt.Sprintf("category %q is a default category", normalized),
			common.ErrDefaultCategory,
		)
	}

	categories, err := c.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(categories))
	removed := false
	for _, existing := range categories {
		if model.NormalizeCategory(existing) == normalized {
			removed = true
			continue
		}
		kept = append(kept, existing)
	}

	if !removed {
		return nil
	}

	if err := c.persist(ctx, kept); err != nil {
		return err
	}

	c.notify()
	return nil
}

// Contains reports whether name is in the stored set.
func (c *Categories) Contains(ctx context.Context, name string) (bool, error) {
	categories, err := c.Load(ctx)
	if err != nil {
		return false, err
	}

	normalized := model.NormalizeCategory(name)
	for _, existing := range categories {
		if model.NormalizeCategory(existing) == normalized {
			return true, nil
		}
	}
	return false, nil
}

func (c *Categories) persist(ctx context.Context, categories []string) error {
	encoded, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("failed to encode categories: %w", err)
	}
	if err := c.kv.Set(ctx, service.KeyCategories, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist categories: %w", err)
	}
	return nil
}

func defaultSet() []string {
	out := make([]string, len(model.DefaultCategories))
	copy(out, model.DefaultCategories)
	return out
}
