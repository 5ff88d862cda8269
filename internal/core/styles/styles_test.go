package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeNames(t *testing.T) {
	assert.Equal(t, []string{"gruvbox", "tokyo-night"}, ThemeNames())
}

func TestGetPalette(t *testing.T) {
	p, ok := GetPalette(DefaultTheme)
	require.True(t, ok)
	assert.NotEmpty(t, p.Primary)

	_, ok = GetPalette("missing")
	assert.False(t, ok)
}

func TestSetTheme_RebuildsStyles(t *testing.T) {
	t.Cleanup(func() { SetTheme(themes[DefaultTheme]) })

	p, _ := GetPalette("gruvbox")
	SetTheme(p)

	assert.Equal(t, p.Error, TextErrorStyle.GetForeground())
	assert.True(t, TextPrimaryBoldStyle.GetBold())
	assert.Contains(t, TextMutedStyle.Render("detail"), "detail")
}
