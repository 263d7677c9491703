package cli

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mizanapp/mizan/internal/model"
)

func TestForTheme(t *testing.T) {
	assert.Equal(t, Dark, ForTheme(model.ThemeDark))
	assert.Equal(t, Light, ForTheme(model.ThemeLight))
}

func TestRenderProgress(t *testing.T) {
	p := Light

	t.Run("half full", func(t *testing.T) {
		bar := p.RenderProgress(decimal.RequireFromString("50"), 10)
		assert.Equal(t, 5, strings.Count(bar, "█"))
		assert.Equal(t, 5, strings.Count(bar, "░"))
	})

	t.Run("overshoot is clamped at full", func(t *testing.T) {
		bar := p.RenderProgress(decimal.RequireFromString("150"), 10)
		assert.Equal(t, 10, strings.Count(bar, "█"))
		assert.Equal(t, 0, strings.Count(bar, "░"))
	})

	t.Run("negative renders empty", func(t *testing.T) {
		bar := p.RenderProgress(decimal.RequireFromString("-10"), 10)
		assert.Equal(t, 0, strings.Count(bar, "█"))
		assert.Equal(t, 10, strings.Count(bar, "░"))
	})

	t.Run("zero width renders nothing", func(t *testing.T) {
		assert.Empty(t, p.RenderProgress(decimal.RequireFromString("50"), 0))
	})
}
