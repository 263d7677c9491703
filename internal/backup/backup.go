// Package backup serializes the full set of persisted collections to a
// single JSON document and restores from one.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mizanapp/mizan/internal/common"
	"github.com/mizanapp/mizan/internal/model"
	"github.com/mizanapp/mizan/internal/service"
)

// Document is the export file shape. Each field holds the raw persisted
// JSON string of its collection, so the document's values are themselves
// JSON-encoded strings, matching how each collection is persisted
// independently. A collection that was never persisted exports as null.
type Document struct {
	Expenses   *string `json:"expenses"`
	Income     *string `json:"income"`
	Goals      *string `json:"goals"`
	Categories *string `json:"categories"`
}

// Filename returns the conventional export file name for the given day.
func Filename(now time.Time) string {
	return fmt.Sprintf("finance-data-%s.json", now.Format(model.DateLayout))
}

// ExportAll reads the four persisted collections into a document.
func ExportAll(ctx context.Context, kv service.KeyValue) (Document, error) {
	var doc Document

	fields := []struct {
		target **string
		key    string
	}{
		{&doc.Expenses, service.KeyExpenses},
		{&doc.Income, service.KeyIncome},
		{&doc.Goals, service.KeyGoals},
		{&doc.Categories, service.KeyCategories},
	}

	for _, f := range fields {
		raw, ok, err := kv.Get(ctx, f.key)
		if err != nil {
			return Document{}, fmt.Errorf("failed to export %s: %w", f.key, err)
		}
		if ok {
			value := raw
			*f.target = &value
		}
	}

	return doc, nil
}

// Encode renders the document as the export file contents.
func (d Document) Encode() ([]byte, error) {
	encoded, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode backup document: %w", err)
	}
	return encoded, nil
}

// ImportAll overwrites each persisted collection that is present in the
// document; absent fields leave the corresponding collection untouched.
// Every present field is validated before anything is written, so a
// malformed document fails as a whole and the prior state survives intact.
func ImportAll(ctx context.Context, kv service.KeyValue, data []byte) error {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return common.NewUserError("failed to import data", common.ErrMalformedDocument)
	}

	fields := []struct {
		value *string
		key   string
		check func(string) error
	}{
		{doc.Expenses, service.KeyExpenses, checkShape[[]model.Expense]},
		{doc.Income, service.KeyIncome, checkShape[[]model.Income]},
		{doc.Goals, service.KeyGoals, checkShape[[]model.Goal]},
		{doc.Categories, service.KeyCategories, checkShape[[]string]},
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := f.check(*f.value); err != nil {
			return common.NewUserError(
				fmt.Sprintf("failed to import data: %s is not valid", f.key),
				common.ErrMalformedDocument,
			)
		}
	}

	for _, f := range fields {
		if f.value == nil {
			continue
		}
		if err := kv.Set(ctx, f.key, *f.value); err != nil {
			return fmt.Errorf("failed to import %s: %w", f.key, err)
		}
	}

	return nil
}

// checkShape verifies that a raw collection string decodes into the
// expected shape without persisting anything.
func checkShape[T any](raw string) error {
	var decoded T
	return json.Unmarshal([]byte(raw), &decoded)
}
