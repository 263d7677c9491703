package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
)

func TestCategoriesLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("fresh store yields the default set", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))

		set, err := categories.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCategories, set)
	})

	t.Run("corrupt data falls back to defaults", func(t *testing.T) {
		kv := createTestKV(t)
		require.NoError(t, kv.Set(ctx, service.KeyCategories, `"not an array`))

		set, err := NewCategories(kv).Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCategories, set)
	})
}

func TestCategoriesAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("stores custom categories lower-cased", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))

		require.NoError(t, categories.Add(ctx, "Subscriptions"))

		set, err := categories.Load(ctx)
		require.NoError(t, err)
		assert.Contains(t, set, "subscriptions")
	})

	t.Run("rejects case-insensitive duplicates", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))

		err := categories.Add(ctx, "Food")
		assert.ErrorIs(t, err, common.ErrDuplicateCategory)

		var userErr *common.UserError
		assert.ErrorAs(t, err, &userErr)

		set, err := categories.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.DefaultCategories, set)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))
		assert.Error(t, categories.Add(ctx, "   "))
	})
}

func TestCategoriesRemove(t *testing.T) {
	ctx := context.Background()

	t.Run("deleting a default category is rejected", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))

		err := categories.Remove(ctx, "food")
		assert.ErrorIs(t, err, common.ErrDefaultCategory)

		set, loadErr := categories.Load(ctx)
		require.NoError(t, loadErr)
		assert.Equal(t, model.DefaultCategories, set)
	})

	t.Run("deletes custom categories", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))

		require.NoError(t, categories.Add(ctx, "pets"))
		require.NoError(t, categories.Remove(ctx, "Pets"))

		set, err := categories.Load(ctx)
		require.NoError(t, err)
		assert.NotContains(t, set, "pets")
	})

	t.Run("removing an absent custom name is a no-op", func(t *testing.T) {
		categories := NewCategories(createTestKV(t))
		require.NoError(t, categories.Remove(ctx, "never-added"))
	})
}

func TestCategoriesContains(t *testing.T) {
	ctx := context.Background()
	categories := NewCategories(createTestKV(t))

	ok, err := categories.Contains(ctx, "FOOD")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = categories.Contains(ctx, "yachts")
	require.NoError(t, err)
	assert.False(t, ok)
}
