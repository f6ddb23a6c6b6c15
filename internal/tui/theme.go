package tui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colors must stay readable on light and dark backgrounds, so everything is an
// AdaptiveColor and "faint" is only used on dark terminals.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted      = ac("240", "243")
	colorSurfaceFg  = ac("235", "252")
	colorControlBg  = ac("252", "235")
	colorSelectedBg = ac("#e9e9e9", "#262626")
	colorSelectedFg = ac("235", "255")
	colorAccent     = ac("27", "62")
	colorAccentFg   = ac("255", "235")
	colorDragged    = ac("130", "214") // amber
	colorError      = ac("160", "203")
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

// applyColorProfilePreference honors NO_COLOR and otherwise trusts the
// terminal. termenv.EnvColorProfile would also honor CLICOLOR, which tends to
// switch colors off inside a TUI.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	profile := termenv.ColorProfile()

	term := strings.ToLower(strings.TrimSpace(os.Getenv("TERM")))
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	switch {
	case strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit"):
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	case strings.Contains(term, "256color"):
		if profile == termenv.Ascii || profile == termenv.ANSI {
			profile = termenv.ANSI256
		}
	}
	lipgloss.SetColorProfile(profile)
}

// themeName resolves SLIPBOX_TUI_THEME=light|dark|auto, then the COLORFGBG
// heuristic. It returns "" when undecided.
func themeName() string {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("SLIPBOX_TUI_THEME"))) {
	case "light":
		return "light"
	case "dark":
		return "dark"
	}
	// COLORFGBG is "fg;bg" (sometimes more segments); the last one is bg.
	if v := strings.TrimSpace(os.Getenv("COLORFGBG")); v != "" {
		parts := strings.Split(v, ";")
		if bg, err := strconv.Atoi(strings.TrimSpace(parts[len(parts)-1])); err == nil {
			// xterm palette: 0-6 dark, 7-15 light.
			if bg < 7 {
				return "dark"
			}
			return "light"
		}
	}
	return ""
}

func applyThemePreference() {
	switch themeName() {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}
}
