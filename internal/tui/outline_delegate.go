package tui

import (
	"fmt"
	"io"
	"strings"

	"slipbox/internal/format"
	"slipbox/internal/model"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"
)

// listRow adapts a model.Row to bubbles/list.
type listRow struct {
	row model.Row
}

func (r listRow) FilterValue() string { return r.row.RowLabel() }

type rowDelegate struct {
	display    format.Display
	indent     bool
	draggedKey string
	zoneKey    string

	normal   lipgloss.Style
	selected lipgloss.Style
	dragged  lipgloss.Style
	zone     lipgloss.Style
	zoneOn   lipgloss.Style
}

func newRowDelegate(display format.Display, indent bool, draggedKey, zoneKey string) rowDelegate {
	return rowDelegate{
		display:    display,
		indent:     indent,
		draggedKey: draggedKey,
		zoneKey:    zoneKey,

		normal:   lipgloss.NewStyle().Foreground(colorSurfaceFg),
		selected: lipgloss.NewStyle().Foreground(colorSelectedFg).Background(colorSelectedBg).Bold(true),
		dragged:  lipgloss.NewStyle().Foreground(colorDragged).Bold(true),
		zone:     styleMuted().Italic(true),
		zoneOn:   lipgloss.NewStyle().Foreground(colorAccentFg).Background(colorAccent).Italic(true),
	}
}

func (d rowDelegate) Height() int                             { return 1 }
func (d rowDelegate) Spacing() int                            { return 0 }
func (d rowDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	width := m.Width()
	if width < 4 {
		return
	}
	r, ok := item.(listRow)
	if !ok {
		return
	}
	fmt.Fprint(w, d.renderRow(width, r.row, index == m.Index()))
}

func (d rowDelegate) renderRow(width int, row model.Row, focused bool) string {
	marker := "  "
	style := d.normal
	switch {
	case !row.Draggable() && row.RowKey() == d.zoneKey:
		marker, style = "▸ ", d.zoneOn
	case !row.Draggable():
		marker, style = "+ ", d.zone
	case row.RowKey() == d.draggedKey:
		marker, style = "» ", d.dragged
	}
	if focused && row.Draggable() {
		fg := d.selected.GetForeground()
		if row.RowKey() == d.draggedKey {
			fg = d.dragged.GetForeground()
		}
		style = d.selected.Foreground(fg)
	}

	indent := ""
	if d.indent && row.RowDepth() > 1 {
		indent = strings.Repeat("  ", row.RowDepth()-1)
	}
	line := indent + marker + format.Label(d.display, row.RowAddress(), row.RowLabel())

	if xansi.StringWidth(line) > width {
		line = xansi.Truncate(line, width-1, "…")
	}
	if focused || (!row.Draggable() && row.RowKey() == d.zoneKey) {
		// Fill so the background covers the whole row.
		if pad := width - xansi.StringWidth(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
	}
	return style.Render(line)
}
