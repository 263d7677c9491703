// Package report computes derived views over record collections. Every
// function is pure: the same inputs always produce the same output and no
// input is mutated.
package report

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
)

// MonthLayout is the calendar month format used for filtering and series.
const MonthLayout = "2006-01"

// Dated is satisfied by any record carrying a date and an amount.
type Dated interface {
	RecordDate() string
	RecordAmount() decimal.Decimal
}

// CurrentMonth formats the month containing the given instant.
func CurrentMonth(now time.Time) string {
	return now.Format(MonthLayout)
}

// FilterByMonth keeps records whose date falls in the given "YYYY-MM"
// month. Matching is a string-prefix test on the stored ISO date, so a
// malformed date that happens to share the prefix is still included. This
// mirrors how the data has always been filtered and is kept deliberately.
func FilterByMonth[T Dated](records []T, month string) []T {
	matched := make([]T, 0, len(records))
	for _, r := range records {
		if strings.HasPrefix(r.RecordDate(), month) {
			matched = append(matched, r)
		}
	}
	return matched
}

// Sum adds up the amounts of a collection. An empty collection sums to zero.
func Sum[T Dated](records []T) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.RecordAmount())
	}
	return total
}

// GroupByCategory partitions expenses by category, summing amounts within
// each partition. The order of the resulting groups is not significant.
func GroupByCategory(expenses []model.Expense) map[string]decimal.Decimal {
	groups := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		groups[e.Category] = groups[e.Category].Add(e.Amount)
	}
	return groups
}

// MonthTotal pairs one calendar month with the sum of its matching records.
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// MonthlySeries produces monthCount consecutive months ending at endMonth,
// oldest first, each with the prefix-filtered sum of the records for that
// month. Months without matching records appear with a zero total rather
// than being omitted.
func MonthlySeries[T Dated](records []T, monthCount int, endMonth string) ([]MonthTotal, error) {
	if monthCount <= 0 {
		return nil, fmt.Errorf("month count must be positive, got %d", monthCount)
	}

	end, err := time.Parse(MonthLayout, endMonth)
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a YYYY-MM month", common.ErrInvalidDate, endMonth)
	}

	series := make([]MonthTotal, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		month := end.AddDate(0, -i, 0).Format(MonthLayout)
		series = append(series, MonthTotal{
			Month: month,
			Total: Sum(FilterByMonth(records, month)),
		})
	}

	return series, nil
}

// NetSavings is monthly income minus monthly expenses; it may be negative.
func NetSavings(income, expenses decimal.Decimal) decimal.Decimal {
	return income.Sub(expenses)
}

// GoalProgress returns the goal's saved/target ratio as an uncapped
// percentage. A goal with a non-positive target is an invalid state; the
// store enforces a positive target at creation, so hitting this error means
// the data was corrupted outside the application.
func GoalProgress(g model.Goal) (decimal.Decimal, error) {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero, common.ErrInvalidTarget
	}
	return g.SavedAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)), nil
}

// GoalComplete reports whether the goal has reached its target. Completion
// uses the raw, uncapped progress ratio.
func GoalComplete(g model.Goal) (bool, error) {
	progress, err := GoalProgress(g)
	if err != nil {
		return false, err
	}
	return progress.GreaterThanOrEqual(decimal.NewFromInt(100)), nil
}

// ClampProgress caps a progress percentage at 100 for display; the raw
// value is what decides completion.
func ClampProgress(progress decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	if progress.GreaterThan(hundred) {
		return hundred
	}
	return progress
}

// DaysRemaining returns the integer ceiling of the whole days between now
// and the due date. Zero or negative means the goal is overdue.
func DaysRemaining(dueDate string, now time.Time) (int, error) {
	due, err := time.Parse(model.DateLayout, dueDate)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, dueDate)
	}
	return int(math.Ceil(due.Sub(now).Hours() / 24)), nil
}
