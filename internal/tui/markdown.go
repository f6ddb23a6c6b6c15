package tui

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Keyed by style + wrap width. WithAutoStyle can block on terminal
	// background queries, so styles are fixed and renderers reused.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := markdownStyle()
	key := style + ":" + strconv.Itoa(width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStyles(markdownStyleConfig(style)),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

func markdownStyle() string {
	if name := themeName(); name != "" {
		return name
	}
	if lipgloss.HasDarkBackground() {
		return "dark"
	}
	return "light"
}

func markdownStyleConfig(style string) ansi.StyleConfig {
	cfg := styles.DarkStyleConfig
	if style == "light" {
		cfg = styles.LightStyleConfig
	}
	pick := func(c lipgloss.AdaptiveColor) *string {
		s := c.Dark
		if style == "light" {
			s = c.Light
		}
		return &s
	}

	// Headings and code in the surface color; only links use the accent.
	fg := pick(colorSurfaceFg)
	cfg.Heading.Color = fg
	cfg.H1.Color = fg
	cfg.H2.Color = fg
	cfg.H3.Color = fg
	cfg.Text.Color = fg
	cfg.Code.Color = fg
	cfg.CodeBlock.Color = fg
	if cfg.CodeBlock.BackgroundColor == nil {
		cfg.CodeBlock.BackgroundColor = pick(colorControlBg)
	}
	underline := true
	cfg.Link.Color = pick(colorAccent)
	cfg.Link.Underline = &underline
	return cfg
}
