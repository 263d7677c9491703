// Package model defines the core domain records for the tracker.
package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/common"
)

// DateLayout is the calendar date format all records carry.
const DateLayout = "2006-01-02"

// Expense represents a single recorded expense.
type Expense struct {
	ID          string          `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Recurring   bool            `json:"recurring"`
}

// GetID returns the record identifier.
func (e Expense) GetID() string { return e.ID }

// WithID returns a copy of the expense with the given identifier.
func (e Expense) WithID(id string) Expense {
	e.ID = id
	return e
}

// RecordDate returns the stored ISO date string.
func (e Expense) RecordDate() string { return e.Date }

// RecordAmount returns the expense amount.
func (e Expense) RecordAmount() decimal.Decimal { return e.Amount }

// Validate checks entry-time constraints before the record is persisted.
func (e Expense) Validate() error {
	if e.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", common.ErrInvalidAmount)
	}
	if e.Category == "" {
		return fmt.Errorf("expense category cannot be empty")
	}
	if _, err := time.Parse(DateLayout, e.Date); err != nil {
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, e.Date)
	}
	if e.Description == "" {
		return fmt.Errorf("expense description cannot be empty")
	}
	return nil
}
