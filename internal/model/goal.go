package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/common"
)

// Goal represents a savings goal. SavedAmount is the only field mutated
// after creation; everything else is replaced wholesale or deleted.
type Goal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	SavedAmount  decimal.Decimal `json:"savedAmount"`
	DueDate      string          `json:"dueDate"`
}

// GetID returns the record identifier.
func (g Goal) GetID() string { return g.ID }

// WithID returns a copy of the goal with the given identifier.
func (g Goal) WithID(id string) Goal {
	g.ID = id
	return g
}

// Validate checks entry-time constraints before the record is persisted.
// TargetAmount must be strictly positive so the progress ratio stays
// well-defined for the goal's whole lifetime.
func (g Goal) Validate() error {
	if g.Name == "" {
		return fmt.Errorf("goal name cannot be empty")
	}
	if !g.TargetAmount.IsPositive() {
		return common.ErrInvalidTarget
	}
	if g.SavedAmount.IsNegative() {
		return fmt.Errorf("%w: saved amount must not be negative", common.ErrInvalidAmount)
	}
	if _, err := time.Parse(DateLayout, g.DueDate); err != nil {
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, g.DueDate)
	}
	return nil
}
