package model

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mizanapp/mizan/internal/common"
)

// IncomeType indicates whether an income line recurs at a fixed amount.
type IncomeType string

const (
	// IncomeTypeFixed represents regular income such as a salary.
	IncomeTypeFixed IncomeType = "fixed"
	// IncomeTypeVariable represents irregular income such as freelance work.
	IncomeTypeVariable IncomeType = "variable"
)

// ParseIncomeType validates a raw string against the closed income type enum.
func ParseIncomeType(s string) (IncomeType, error) {
	switch IncomeType(s) {
	case IncomeTypeFixed, IncomeTypeVariable:
		return IncomeType(s), nil
	default:
		return "", fmt.Errorf("%w: income type %q", common.ErrInvalidEnum, s)
	}
}

// Income represents a single recorded income line.
type Income struct {
	ID     string          `json:"id"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source"`
	Type   IncomeType      `json:"type"`
	Date   string          `json:"date"`
}

// GetID returns the record identifier.
func (i Income) GetID() string { return i.ID }

// WithID returns a copy of the income line with the given identifier.
func (i Income) WithID(id string) Income {
	i.ID = id
	return i
}

// RecordDate returns the stored ISO date string.
func (i Income) RecordDate() string { return i.Date }

// RecordAmount returns the income amount.
func (i Income) RecordAmount() decimal.Decimal { return i.Amount }

// Validate checks entry-time constraints before the record is persisted.
func (i Income) Validate() error {
	if i.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", common.ErrInvalidAmount)
	}
	if i.Source == "" {
		return fmt.Errorf("income source cannot be empty")
	}
	if _, err := ParseIncomeType(string(i.Type)); err != nil {
		return err
	}
	if _, err := time.Parse(DateLayout, i.Date); err != nil {
		return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", common.ErrInvalidDate, i.Date)
	}
	return nil
}
