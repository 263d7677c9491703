package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
	"github.com/mizanapp/mizan/internal/storage"
)

func createTestKV(t *testing.T) service.KeyValue {
	t.Helper()

	kv, err := storage.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = kv.Close()
	})

	return kv
}

func testExpense(amount, description string) model.Expense {
	return model.Expense{
		Amount:      decimal.RequireFromString(amount),
		Category:    "food",
		Date:        "2025-06-15",
		Description: description,
	}
}

func TestCollectionLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("absent key yields empty collection", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		records, err := expenses.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("corrupt data yields empty collection, not an error", func(t *testing.T) {
		kv := createTestKV(t)
		require.NoError(t, kv.Set(ctx, service.KeyExpenses, `{not json`))

		records, err := NewExpenses(kv).Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})
}

func TestCollectionAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns a fresh id when absent", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		added, err := expenses.Add(ctx, testExpense("12.50", "lunch"))
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)

		records, err := expenses.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, added.ID, records[0].ID)
	})

	t.Run("keeps a caller-provided id", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		record := testExpense("5", "coffee").WithID("fixed-id")
		added, err := expenses.Add(ctx, record)
		require.NoError(t, err)
		assert.Equal(t, "fixed-id", added.ID)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		_, err := expenses.Add(ctx, testExpense("1", "first"))
		require.NoError(t, err)
		_, err = expenses.Add(ctx, testExpense("2", "second"))
		require.NoError(t, err)

		records, err := expenses.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "first", records[0].Description)
		assert.Equal(t, "second", records[1].Description)
	})

	t.Run("rejects invalid records without persisting", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		invalid := testExpense("10", "bad date")
		invalid.Date = "June 15th"
		_, err := expenses.Add(ctx, invalid)
		assert.ErrorIs(t, err, common.ErrInvalidDate)

		records, err := expenses.Load(ctx)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("notifies after persistence", func(t *testing.T) {
		kv := createTestKV(t)
		expenses := NewExpenses(kv)

		var seen int
		expenses.Subscribe(func() {
			// By the time the notification fires, the mutation must be
			// visible in storage.
			records, err := expenses.Load(ctx)
			require.NoError(t, err)
			seen = len(records)
		})

		_, err := expenses.Add(ctx, testExpense("3", "snack"))
		require.NoError(t, err)
		assert.Equal(t, 1, seen)
	})
}

func TestCollectionRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("add then remove restores the original collection", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		_, err := expenses.Add(ctx, testExpense("1", "keep me"))
		require.NoError(t, err)
		before, err := expenses.Load(ctx)
		require.NoError(t, err)

		added, err := expenses.Add(ctx, testExpense("2", "transient"))
		require.NoError(t, err)
		require.NoError(t, expenses.Remove(ctx, added.ID))

		after, err := expenses.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("removing a non-existent id is a no-op", func(t *testing.T) {
		expenses := NewExpenses(createTestKV(t))

		_, err := expenses.Add(ctx, testExpense("1", "stays"))
		require.NoError(t, err)

		require.NoError(t, expenses.Remove(ctx, "no-such-id"))

		records, err := expenses.Load(ctx)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})
}

func TestGoalsUpdateSaved(t *testing.T) {
	ctx := context.Background()

	newGoal := func() model.Goal {
		return model.Goal{
			Name:         "vacation",
			TargetAmount: decimal.RequireFromString("1000"),
			SavedAmount:  decimal.Zero,
			DueDate:      "2026-01-01",
		}
	}

	t.Run("replaces only the saved amount", func(t *testing.T) {
		goals := NewGoals(createTestKV(t))

		added, err := goals.Add(ctx, newGoal())
		require.NoError(t, err)

		require.NoError(t, goals.UpdateSaved(ctx, added.ID, decimal.RequireFromString("250")))

		records, err := goals.Load(ctx)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].SavedAmount.Equal(decimal.RequireFromString("250")))
		assert.Equal(t, added.Name, records[0].Name)
		assert.True(t, records[0].TargetAmount.Equal(added.TargetAmount))
	})

	t.Run("unknown id fails", func(t *testing.T) {
		goals := NewGoals(createTestKV(t))
		err := goals.UpdateSaved(ctx, "missing", decimal.RequireFromString("10"))
		assert.ErrorIs(t, err, common.ErrNotFound)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		goals := NewGoals(createTestKV(t))

		added, err := goals.Add(ctx, newGoal())
		require.NoError(t, err)

		err = goals.UpdateSaved(ctx, added.ID, decimal.RequireFromString("-5"))
		assert.ErrorIs(t, err, common.ErrInvalidAmount)
	})

	t.Run("goal creation requires a positive target", func(t *testing.T) {
		goals := NewGoals(createTestKV(t))

		goal := newGoal()
		goal.TargetAmount = decimal.Zero
		_, err := goals.Add(ctx, goal)
		assert.ErrorIs(t, err, common.ErrInvalidTarget)
	})
}
