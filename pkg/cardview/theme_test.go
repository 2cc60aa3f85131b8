package cardview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveThemeCardOverrideWins(t *testing.T) {
	layout := SelectLayout(LayoutClassic)
	theme := ResolveTheme(ThemeOverrides{Primary: "#000000", FontFamily: "Roboto"}, layout)

	assert.Equal(t, "#000000", theme.Primary)
	assert.Equal(t, "Roboto", theme.FontFamily)
	// Override edilmeyen slot layout varsayılanına düşer.
	assert.Equal(t, layout.Defaults.Secondary, theme.Secondary)
}

func TestResolveThemeLayoutDefaultThenFallback(t *testing.T) {
	layout := SelectLayout(LayoutClassic)
	theme := ResolveTheme(ThemeOverrides{}, layout)

	// Layout'un bildirdiği slotlar layout değerini alır.
	assert.Equal(t, "#2563eb", theme.Primary)
	// Layout'un boş bıraktığı slotlar evrensel sabite düşer.
	assert.Equal(t, fallbackAccent, theme.Accent)
	assert.Equal(t, fallbackCard, theme.Card)
}

func TestResolveThemeTotal(t *testing.T) {
	// Hangi layout ve override kombinasyonu olursa olsun hiçbir slot boş kalmaz.
	for _, id := range LayoutIDs() {
		theme := ResolveTheme(ThemeOverrides{}, SelectLayout(id))
		assert.NotEmpty(t, theme.Primary, id)
		assert.NotEmpty(t, theme.Secondary, id)
		assert.NotEmpty(t, theme.Accent, id)
		assert.NotEmpty(t, theme.Text, id)
		assert.NotEmpty(t, theme.Background, id)
		assert.NotEmpty(t, theme.Card, id)
		assert.NotEmpty(t, theme.FontFamily, id)
	}
}

func TestResolveThemeFontFallbackPerLayout(t *testing.T) {
	// bold layout serif ailesine, diğerleri sans ailesine düşer.
	assert.Equal(t, fontSerif, ResolveTheme(ThemeOverrides{}, SelectLayout(LayoutBold)).FontFamily)
	assert.Equal(t, fontSans, ResolveTheme(ThemeOverrides{}, SelectLayout(LayoutMinimal)).FontFamily)
}

func TestSelectLayoutFallback(t *testing.T) {
	assert.Equal(t, LayoutClassic, SelectLayout("nonexistent").ID)
	assert.Equal(t, LayoutClassic, SelectLayout("").ID)
	assert.Equal(t, LayoutGlass, SelectLayout("glass").ID)
}

func TestGlassLayoutParameters(t *testing.T) {
	glass := SelectLayout(LayoutGlass)
	assert.True(t, glass.BannerPinned)
	assert.Less(t, glass.PanelOpacity, 1.0)
}
