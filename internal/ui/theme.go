package ui

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"
)

// Theme defines a complete color palette.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the main accent color (focus, headers, own messages)
	Primary string
	// Secondary is the secondary accent color (key hints, other senders)
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Highlight background (defaults to Primary if empty)

	// Text colors
	Text        string // Primary text
	TextMuted   string // Timestamps, dividers, hints
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Me      string // Own message bubbles
	Other   string // Other senders' bubbles
	Warning string // Drag hover highlight
	Error   string // Rejection notices
	Info    string // Jump affordance

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused border (defaults to Primary if empty)

	// CodeStyle is the chroma style used for fenced code blocks
	CodeStyle string
}

// GetBgSelected returns the highlight background, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names
const (
	ThemeDarkPurple ThemeName = "dark-purple"
	ThemeNord       ThemeName = "nord"
	ThemeDracula    ThemeName = "dracula"
	ThemeGruvbox    ThemeName = "gruvbox"
	ThemeLight      ThemeName = "light"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeDarkPurple

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeDarkPurple: {
		Name:        "Dark Purple",
		Primary:     "#7C3AED",
		Secondary:   "#06B6D4",
		Bg:          "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#1F2937",
		Me:          "#A78BFA",
		Other:       "#22D3EE",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Info:        "#06B6D4",
		Border:      "#374151",
		CodeStyle:   "monokai",
	},
	ThemeNord: {
		Name:        "Nord",
		Primary:     "#88C0D0",
		Secondary:   "#81A1C1",
		Bg:          "#2E3440",
		Text:        "#ECEFF4",
		TextMuted:   "#D8DEE9",
		TextInverse: "#2E3440",
		Me:          "#A3BE8C",
		Other:       "#88C0D0",
		Warning:     "#EBCB8B",
		Error:       "#BF616A",
		Info:        "#81A1C1",
		Border:      "#4C566A",
		CodeStyle:   "nord",
	},
	ThemeDracula: {
		Name:        "Dracula",
		Primary:     "#BD93F9",
		Secondary:   "#8BE9FD",
		Bg:          "#282A36",
		Text:        "#F8F8F2",
		TextMuted:   "#6272A4",
		TextInverse: "#282A36",
		Me:          "#FF79C6",
		Other:       "#8BE9FD",
		Warning:     "#FFB86C",
		Error:       "#FF5555",
		Info:        "#8BE9FD",
		Border:      "#44475A",
		CodeStyle:   "dracula",
	},
	ThemeGruvbox: {
		Name:        "Gruvbox Dark",
		Primary:     "#FE8019",
		Secondary:   "#83A598",
		Bg:          "#282828",
		Text:        "#EBDBB2",
		TextMuted:   "#A89984",
		TextInverse: "#282828",
		Me:          "#FABD2F",
		Other:       "#83A598",
		Warning:     "#FE8019",
		Error:       "#FB4934",
		Info:        "#83A598",
		Border:      "#504945",
		CodeStyle:   "gruvbox",
	},
	ThemeLight: {
		Name:        "Light",
		Primary:     "#6366F1",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#E0E7FF",
		Text:        "#1F2937",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Me:          "#7C3AED",
		Other:       "#0891B2",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Info:        "#0891B2",
		Border:      "#D1D5DB",
		BorderFocus: "#6366F1",
		CodeStyle:   "github",
	},
}

// ThemeNames returns all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{
		ThemeDarkPurple,
		ThemeNord,
		ThemeDracula,
		ThemeGruvbox,
		ThemeLight,
	}
}

var currentTheme = BuiltinThemes[DefaultTheme]

// CurrentTheme returns the active theme
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the identifier of the active theme
func CurrentThemeName() ThemeName {
	for name, theme := range BuiltinThemes {
		if theme.Name == currentTheme.Name {
			return name
		}
	}
	return DefaultTheme
}

// SetTheme activates a built-in theme and regenerates all styles.
// The empty name selects the default theme.
func SetTheme(name ThemeName) error {
	if name == "" {
		name = DefaultTheme
	}
	t, ok := BuiltinThemes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q", name)
	}
	currentTheme = t
	regenerateStyles()
	return nil
}

// Palette, regenerated from the active theme
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorMe          color.Color
	ColorOther       color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
)

func init() {
	regenerateStyles()
}

// regenerateStyles updates the palette and every style from the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorMuted = lipgloss.Color(t.TextMuted)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorMe = lipgloss.Color(t.Me)
	ColorOther = lipgloss.Color(t.Other)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)

	buildStyles()
}
