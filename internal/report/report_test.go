package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
)

func expense(amount, category, date string) model.Expense {
	return model.Expense{
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}

func TestFilterByMonth(t *testing.T) {
	expenses := []model.Expense{
		expense("10", "food", "2025-06-01"),
		expense("20", "food", "2025-06-30"),
		expense("30", "bills", "2025-07-01"),
	}

	t.Run("keeps only matching months", func(t *testing.T) {
		matched := FilterByMonth(expenses, "2025-06")
		require.Len(t, matched, 2)
		assert.Equal(t, "2025-06-01", matched[0].Date)
		assert.Equal(t, "2025-06-30", matched[1].Date)
	})

	t.Run("no matches yields empty slice", func(t *testing.T) {
		assert.Empty(t, FilterByMonth(expenses, "2024-01"))
	})

	t.Run("matching is a prefix test, not a date parse", func(t *testing.T) {
		malformed := []model.Expense{expense("5", "other", "2025-06-XX-garbage")}
		assert.Len(t, FilterByMonth(malformed, "2025-06"), 1)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := len(expenses)
		_ = FilterByMonth(expenses, "2025-06")
		assert.Len(t, expenses, before)
	})
}

func TestSum(t *testing.T) {
	t.Run("empty collection sums to zero", func(t *testing.T) {
		assert.True(t, Sum([]model.Expense{}).IsZero())
	})

	t.Run("sums amounts", func(t *testing.T) {
		total := Sum([]model.Expense{
			expense("10.25", "food", "2025-06-01"),
			expense("0.75", "food", "2025-06-02"),
		})
		assert.True(t, total.Equal(decimal.RequireFromString("11")))
	})

	t.Run("agrees with manual filter-and-sum", func(t *testing.T) {
		records := []model.Expense{
			expense("10", "food", "2025-06-01"),
			expense("20", "bills", "2025-07-01"),
			expense("5", "food", "2025-06-15"),
		}

		manual := decimal.Zero
		for _, r := range records {
			if len(r.Date) >= 7 && r.Date[:7] == "2025-06" {
				manual = manual.Add(r.Amount)
			}
		}

		assert.True(t, Sum(FilterByMonth(records, "2025-06")).Equal(manual))
	})
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory([]model.Expense{
		expense("10", "food", "2025-06-01"),
		expense("15", "food", "2025-06-02"),
		expense("40", "bills", "2025-06-03"),
	})

	require.Len(t, groups, 2)
	assert.True(t, groups["food"].Equal(decimal.RequireFromString("25")))
	assert.True(t, groups["bills"].Equal(decimal.RequireFromString("40")))
}

func TestMonthlySeries(t *testing.T) {
	records := []model.Expense{
		expense("100", "food", "2025-03-10"),
		expense("50", "food", "2025-05-20"),
	}

	t.Run("returns exactly monthCount entries oldest first", func(t *testing.T) {
		series, err := MonthlySeries(records, 6, "2025-06")
		require.NoError(t, err)
		require.Len(t, series, 6)

		months := make([]string, 0, len(series))
		for _, entry := range series {
			months = append(months, entry.Month)
		}
		assert.Equal(t, []string{"2025-01", "2025-02", "2025-03", "2025-04", "2025-05", "2025-06"}, months)
	})

	t.Run("empty months appear with zero totals", func(t *testing.T) {
		series, err := MonthlySeries(records, 6, "2025-06")
		require.NoError(t, err)

		assert.True(t, series[0].Total.IsZero())
		assert.True(t, series[2].Total.Equal(decimal.RequireFromString("100")))
		assert.True(t, series[4].Total.Equal(decimal.RequireFromString("50")))
		assert.True(t, series[5].Total.IsZero())
	})

	t.Run("crosses year boundaries", func(t *testing.T) {
		series, err := MonthlySeries(records, 3, "2025-01")
		require.NoError(t, err)
		require.Len(t, series, 3)
		assert.Equal(t, "2024-11", series[0].Month)
		assert.Equal(t, "2025-01", series[2].Month)
	})

	t.Run("rejects invalid inputs", func(t *testing.T) {
		_, err := MonthlySeries(records, 0, "2025-06")
		assert.Error(t, err)

		_, err = MonthlySeries(records, 6, "June 2025")
		assert.ErrorIs(t, err, common.ErrInvalidDate)
	})
}

func TestNetSavings(t *testing.T) {
	income := decimal.RequireFromString("1000")
	expenses := decimal.RequireFromString("1250.50")

	net := NetSavings(income, expenses)
	assert.True(t, net.Equal(decimal.RequireFromString("-250.50")))
}

func TestGoalProgress(t *testing.T) {
	t.Run("quarter saved is 25 percent", func(t *testing.T) {
		progress, err := GoalProgress(model.Goal{
			TargetAmount: decimal.RequireFromString("200"),
			SavedAmount:  decimal.RequireFromString("50"),
		})
		require.NoError(t, err)
		assert.True(t, progress.Equal(decimal.RequireFromString("25")))
	})

	t.Run("overshoot is uncapped and marks complete", func(t *testing.T) {
		goal := model.Goal{
			TargetAmount: decimal.RequireFromString("100"),
			SavedAmount:  decimal.RequireFromString("150"),
		}

		progress, err := GoalProgress(goal)
		require.NoError(t, err)
		assert.True(t, progress.Equal(decimal.RequireFromString("150")))

		complete, err := GoalComplete(goal)
		require.NoError(t, err)
		assert.True(t, complete)
	})

	t.Run("exactly at target is complete", func(t *testing.T) {
		complete, err := GoalComplete(model.Goal{
			TargetAmount: decimal.RequireFromString("100"),
			SavedAmount:  decimal.RequireFromString("100"),
		})
		require.NoError(t, err)
		assert.True(t, complete)
	})

	t.Run("non-positive target is an invalid state", func(t *testing.T) {
		_, err := GoalProgress(model.Goal{
			TargetAmount: decimal.Zero,
			SavedAmount:  decimal.RequireFromString("50"),
		})
		assert.ErrorIs(t, err, common.ErrInvalidTarget)
	})
}

func TestClampProgress(t *testing.T) {
	assert.True(t, ClampProgress(decimal.RequireFromString("150")).Equal(decimal.RequireFromString("100")))
	assert.True(t, ClampProgress(decimal.RequireFromString("42")).Equal(decimal.RequireFromString("42")))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	t.Run("future due date", func(t *testing.T) {
		days, err := DaysRemaining("2025-06-15", now)
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		noon := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
		days, err := DaysRemaining("2025-06-15", noon)
		require.NoError(t, err)
		assert.Equal(t, 5, days)
	})

	t.Run("today is zero, past is negative", func(t *testing.T) {
		days, err := DaysRemaining("2025-06-10", now)
		require.NoError(t, err)
		assert.Equal(t, 0, days)

		days, err = DaysRemaining("2025-06-01", now)
		require.NoError(t, err)
		assert.Equal(t, -9, days)
	})

	t.Run("rejects malformed due date", func(t *testing.T) {
		_, err := DaysRemaining("soon", now)
		assert.ErrorIs(t, err, common.ErrInvalidDate)
	})
}
