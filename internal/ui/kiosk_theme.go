package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// KioskTheme defines the showroom look: larger type for viewing at a
// distance and the brand's muted palette.
type KioskTheme struct{}

// NewKioskTheme creates a new kiosk theme
func NewKioskTheme() fyne.Theme {
	return &KioskTheme{}
}

// Color returns theme colors
func (t *KioskTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 120, G: 84, B: 56, A: 255} // Brand umber for primary actions
	case theme.ColorNameWarning:
		return color.RGBA{R: 214, G: 158, B: 46, A: 255} // Amber for degraded states
	case theme.ColorNameBackground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 24, G: 22, B: 20, A: 255} // Warm near-black
		}
		return color.RGBA{R: 248, G: 246, B: 243, A: 255} // Off-white
	case theme.ColorNameForeground:
		if variant == theme.VariantDark {
			return color.RGBA{R: 240, G: 238, B: 235, A: 255}
		}
		return color.RGBA{R: 38, G: 34, B: 30, A: 255}
	}

	// Use default colors for everything else
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *KioskTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *KioskTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes scaled up for distance viewing
func (t *KioskTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 6 // Increased from default 4
	case theme.SizeNameText:
		return 16 // Increased from default 14
	case theme.SizeNameHeadingText:
		return 24 // Increased from default 18
	case theme.SizeNameSubHeadingText:
		return 18 // Increased from default 16
	case theme.SizeNameInputRadius:
		return 4
	}

	// Use default theme for everything else
	return theme.DefaultTheme().Size(name)
}
