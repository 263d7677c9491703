// Package store implements the persisted record collections. Each
// collection is serialized as one JSON array under a single key; every
// mutation rewrites the whole array and then notifies subscribers.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
)

// Record is the contract collection records satisfy.
type Record[T any] interface {
	GetID() string
	WithID(id string) T
	Validate() error
}

// Collection is a persisted, ordered set of records of one kind.
type Collection[T Record[T]] struct {
	kv          service.KeyValue
	key         string
	newID       func() string
	subscribers []func()
}

// NewCollection creates a collection bound to one persisted key.
func NewCollection[T Record[T]](kv service.KeyValue, key string) *Collection[T] {
	return &Collection[T]{
		kv:    kv,
		key:   key,
		newID: model.NewID,
	}
}

// Subscribe registers a callback invoked synchronously after each mutation
// has been persisted.
func (c *Collection[T]) Subscribe(fn func()) {
	c.subscribers = append(c.subscribers, fn)
}

func (c *Collection[T]) notify() {
	for _, fn := range c.subscribers {
		fn()
	}
}

// Load returns the stored collection. Absent or corrupt data yields an
// empty collection; only storage failures surface as errors.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	raw, ok, err := c.kv.Get(ctx, c.key)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", c.key, err)
	}
	if !ok {
		return []T{}, nil
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Debug("ignoring corrupt collection", "key", c.key, "error", err)
		return []T{}, nil
	}
	if records == nil {
		records = []T{}
	}

	return records, nil
}

// Add validates the record, assigns a fresh id when absent, appends it and
// persists the whole collection. The stored record is returned.
func (c *Collection[T]) Add(ctx context.Context, record T) (T, error) {
	var zero T

	if record.GetID() == "" {
		record = record.WithID(c.newID())
	}
	if err := record.Validate(); err != nil {
		return zero, err
	}

	records, err := c.Load(ctx)
	if err != nil {
		return zero, err
	}

	records = append(records, record)
	if err := c.persist(ctx, records); err != nil {
		return zero, err
	}

	c.notify()
	return record, nil
}

// Remove filters out the record with the given id and persists the result.
// Removing an id that does not exist is a no-op.
func (c *Collection[T]) Remove(ctx context.Context, id string) error {
	records, err := c.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]T, 0, len(records))
	removed := false
	for _, r := range records {
		if r.GetID() == id {
			removed = true
			continue
		}
		kept = append(kept, r)
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

// persist rewrites the collection as one JSON array. The array is the unit
// of persistence; there is no incremental write.
func (c *Collection[T]) persist(ctx context.Context, records []T) error {
	encoded, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", c.key, err)
	}
	if err := c.kv.Set(ctx, c.key, string(encoded)); err != nil {
		return fmt.Errorf("failed to persist %s: %w", c.key, err)
	}
	return nil
}

// Expenses is the persisted expense collection.
type Expenses = Collection[model.Expense]

// NewExpenses creates the expense collection store.
func NewExpenses(kv service.KeyValue) *Expenses {
	return NewCollection[model.Expense](kv, service.KeyExpenses)
}

// Income is the persisted income collection.
type Income = Collection[model.Income]

// NewIncome creates the income collection store.
func NewIncome(kv service.KeyValue) *Income {
	return NewCollection[model.Income](kv, service.KeyIncome)
}

// Goals is the persisted goal collection. It adds the single post-creation
// mutation goals support: updating the saved amount.
type Goals struct {
	*Collection[model.Goal]
}

// NewGoals creates the goal collection store.
func NewGoals(kv service.KeyValue) *Goals {
	return &Goals{NewCollection[model.Goal](kv, service.KeyGoals)}
}

// UpdateSaved replaces the saved amount of the goal with the given id and
// persists the result. Every other field is left untouched.
func (g *Goals) UpdateSaved(ctx context.Context, id string, saved decimal.Decimal) error {
	if saved.IsNegative() {
		return fmt.Errorf("%w: saved amount must not be negative", common.ErrInvalidAmount)
	}

	goals, err := g.Load(ctx)
	if err != nil {
		return err
	}

	found := false
	for i, goal := range goals {
		if goal.ID == id {
			goals[i].SavedAmount = saved
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: goal %s", common.ErrNotFound, id)
	}

	if err := g.persist(ctx, goals); err != nil {
		return err
	}

	g.notify()
	return nil
}
