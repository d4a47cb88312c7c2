package main

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorRosewater lipgloss.Color = "#f5e0dc"
	colorFlamingo  lipgloss.Color = "#f2cdcd"
	colorPink      lipgloss.Color = "#f5c2e7"
	colorMauve     lipgloss.Color = "#cba6f7"
	colorRed       lipgloss.Color = "#f38ba8"
	colorMaroon    lipgloss.Color = "#eba0ac"
	colorPeach     lipgloss.Color = "#fab387"
	colorYellow    lipgloss.Color = "#f9e2af"
	colorGreen     lipgloss.Color = "#a6e3a1"
	colorTeal      lipgloss.Color = "#94e2d5"
	colorSky       lipgloss.Color = "#89dceb"
	colorSapphire  lipgloss.Color = "#74c7ec"
	colorBlue      lipgloss.Color = "#89b4fa"
	colorLavender  lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext1 lipgloss.Color = "#bac2de"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay2 lipgloss.Color = "#9399b2"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
	colorBase     lipgloss.Color = "#1e1e2e"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorAccent  = colorMauve
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorInfo    = colorTeal
)

// ---------------------------------------------------------------------------
// Shared styles
// ---------------------------------------------------------------------------

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	statusStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
	errorStyle     = lipgloss.NewStyle().Foreground(colorError)
	footerStyle    = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 2)
	statusBarStyle = lipgloss.NewStyle().Foreground(colorSubtext1).Background(colorSurface0).Padding(0, 2)
	modalStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	cursorStyle    = lipgloss.NewStyle().Foreground(colorAccent)
	headerDimStyle = lipgloss.NewStyle().Foreground(colorOverlay1)
)

// SlideAccentColors returns the accent colors cycled across new slides, in
// assignment order.
func SlideAccentColors() []lipgloss.Color {
	return []lipgloss.Color{
		colorMauve, colorBlue, colorGreen, colorPeach,
		colorPink, colorTeal, colorYellow, colorLavender,
	}
}
