// Package i18n embeds the locale string tables and resolves dot-path keys
// against them.
package i18n

import (
	_ "embed"
	"encoding/json"
	"strings"
	"sync"
)

//go:embed locales.json
var localesJSON []byte

var (
	loadOnce sync.Once
	tables   map[string]map[string]any
)

func load() {
	loadOnce.Do(func() {
		// The tables ship inside the binary; a decode failure here is a
		// build defect, so fall back to empty tables rather than panic.
		if err := json.Unmarshal(localesJSON, &tables); err != nil {
			tables = map[string]map[string]any{}
		}
	})
}

// Lookup resolves a dot-separated key (e.g. "dashboard.title") against the
// given locale's table. The second return is false when any path segment is
// missing or the resolved value is not a string.
func Lookup(locale, key string) (string, bool) {
	load()

	table, ok := tables[locale]
	if !ok {
		return "", false
	}

	var current any = table
	for _, segment := range strings.Split(key, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return "", false
		}
		current, ok = node[segment]
		if !ok {
			return "", false
		}
	}

	s, ok := current.(string)
	return s, ok
}
