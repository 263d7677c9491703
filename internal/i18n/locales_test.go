package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("resolves nested paths", func(t *testing.T) {
		value, ok := Lookup("en", "dashboard.title")
		assert.True(t, ok)
		assert.Equal(t, "Dashboard", value)

		value, ok = Lookup("ar", "categories.food")
		assert.True(t, ok)
		assert.Equal(t, "طعام", value)
	})

	t.Run("missing segment fails the lookup", func(t *testing.T) {
		_, ok := Lookup("en", "dashboard.doesNotExist")
		assert.False(t, ok)

		_, ok = Lookup("en", "nothing.here.at.all")
		assert.False(t, ok)
	})

	t.Run("non-leaf paths are not strings", func(t *testing.T) {
		_, ok := Lookup("en", "dashboard")
		assert.False(t, ok)
	})

	t.Run("unknown locale fails the lookup", func(t *testing.T) {
		_, ok := Lookup("fr", "dashboard.title")
		assert.False(t, ok)
	})
}
