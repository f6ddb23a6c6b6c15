package tui

import (
	"fmt"
	"strings"

	"slipbox/internal/docs"
	"slipbox/internal/format"
	"slipbox/internal/gesture"
	"slipbox/internal/logger"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appModel struct {
	ctrl *gesture.Controller
	log  logger.Logger

	keys keyMap
	help help.Model
	rows list.Model

	display format.Display
	indent  bool

	// cursorKey is the item under the cursor; it is also the hover target
	// while a gesture is active.
	cursorKey string
	zoneIdx   int

	showHelp  bool
	status    string
	statusErr bool

	width  int
	height int
}

func newAppModel(ctrl *gesture.Controller, opts Options) appModel {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	display := opts.Display
	if display == "" {
		display = format.DisplayPrefix
	}

	l := list.New(nil, newRowDelegate(display, opts.Indent, "", ""), 0, 0)
	// Header, status line and footer are ours; keys are handled by appModel.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)

	m := appModel{
		ctrl:    ctrl,
		log:     log,
		keys:    defaultKeyMap(),
		help:    help.New(),
		rows:    l,
		display: display,
		indent:  opts.Indent,
		width:   80,
		height:  24,
	}
	if first, ok := ctrl.Store().At(0); ok {
		m.cursorKey = first.Key
	}
	m.resize()
	m.refresh()
	return m
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			// Any key closes the overlay; quit still quits.
			m.showHelp = false
			if key.Matches(msg, m.keys.Quit) {
				return m, tea.Quit
			}
			return m, nil
		}
		_, dragging := m.ctrl.Active()

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1)
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1)
		case key.Matches(msg, m.keys.Pick):
			m.pickUp()
		case dragging && key.Matches(msg, m.keys.NextZone):
			m.cycleZone(1)
		case dragging && key.Matches(msg, m.keys.PrevZone):
			m.cycleZone(-1)
		case dragging && key.Matches(msg, m.keys.Drop):
			m.drop()
		case dragging && key.Matches(msg, m.keys.Cancel):
			m.ctrl.Cancel()
			m.setStatus("drag cancelled", false)
		case !dragging && key.Matches(msg, m.keys.Front):
			m.toFront()
		case key.Matches(msg, m.keys.Display):
			m.display = m.display.Next()
		case key.Matches(msg, m.keys.Indent):
			m.indent = !m.indent
		case key.Matches(msg, m.keys.Help):
			m.showHelp = true
			return m, nil
		default:
			return m, nil
		}
		m.refresh()
		return m, nil
	}
	return m, nil
}

func (m appModel) View() string {
	if m.showHelp {
		body, _ := docs.Get("keys")
		return renderMarkdown(body, m.width)
	}

	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("%d items with Luhmann addresses", m.ctrl.Store().Len()),
	) + styleMuted().Render(fmt.Sprintf("   display: %s  indent: %s", m.display, onOff(m.indent)))

	status := m.status
	if status != "" {
		st := styleMuted()
		if m.statusErr {
			st = lipgloss.NewStyle().Foreground(colorError)
		}
		status = st.Render(status)
	}

	var footer string
	if _, dragging := m.ctrl.Active(); dragging {
		footer = m.help.ShortHelpView(dragKeys{m.keys}.ShortHelp())
	} else {
		footer = m.help.ShortHelpView(idleKeys{m.keys}.ShortHelp())
	}
	return strings.Join([]string{header, m.rows.View(), status, footer}, "\n")
}

func (m *appModel) resize() {
	h := m.height - 4
	if h < 3 {
		h = 3
	}
	m.rows.SetSize(m.width, h)
	m.help.Width = m.width
}

// refresh rebuilds the list from the controller and puts the cursor back on
// cursorKey.
func (m *appModel) refresh() {
	rows := m.ctrl.Rows()
	items := make([]list.Item, len(rows))
	sel := 0
	for i, r := range rows {
		items[i] = listRow{row: r}
		if r.Draggable() && r.RowKey() == m.cursorKey {
			sel = i
		}
	}

	dragged, _ := m.ctrl.Active()
	zoneKey := ""
	if _, zones := m.ctrl.Hovered(); len(zones) > 0 {
		if m.zoneIdx >= len(zones) {
			m.zoneIdx = 0
		}
		zoneKey = zones[m.zoneIdx].Key
	}
	m.rows.SetDelegate(newRowDelegate(m.display, m.indent, dragged, zoneKey))
	m.rows.SetItems(items)
	m.rows.Select(sel)
}

// moveCursor steps over drop-zone rows; while dragging, the new item becomes
// the hover target.
func (m *appModel) moveCursor(delta int) {
	s := m.ctrl.Store()
	idx, ok := s.ItemIndex(m.cursorKey)
	if !ok {
		idx = 0
	}
	next, ok := s.At(idx + delta)
	if !ok {
		return
	}
	m.cursorKey = next.Key
	if _, dragging := m.ctrl.Active(); dragging {
		m.hover()
	}
}

func (m *appModel) hover() {
	m.zoneIdx = 0
	zones, ok := m.ctrl.Hover(m.cursorKey)
	switch {
	case ok:
		m.setStatus(fmt.Sprintf("%d zone(s): tab to cycle, enter to drop", len(zones)), false)
	default:
		m.setStatus("no drop zones here", false)
	}
}

func (m *appModel) pickUp() {
	if m.cursorKey == "" {
		return
	}
	if err := m.ctrl.Begin(m.cursorKey); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	it, _ := m.ctrl.Store().Item(m.cursorKey)
	m.hover()
	m.setStatus(fmt.Sprintf("dragging %s: move to a target", it.Address), false)
}

func (m *appModel) cycleZone(delta int) {
	_, zones := m.ctrl.Hovered()
	if len(zones) == 0 {
		return
	}
	m.zoneIdx = (m.zoneIdx + delta + len(zones)) % len(zones)
}

func (m *appModel) drop() {
	_, zones := m.ctrl.Hovered()
	if len(zones) == 0 {
		m.setStatus("no drop zones here", true)
		return
	}
	zone := zones[m.zoneIdx%len(zones)]
	dragged, _ := m.ctrl.Active()
	if err := m.ctrl.Drop(zone.Key); err != nil {
		m.log.Warn("drop failed", "dragged", dragged, "zone", zone.Key, "err", err)
		m.setStatus(err.Error(), true)
		return
	}
	m.cursorKey = dragged
	m.zoneIdx = 0
	m.setStatus(fmt.Sprintf("moved to %s", zone.Address), false)
}

func (m *appModel) toFront() {
	if m.cursorKey == "" {
		return
	}
	if err := m.ctrl.MoveFirst(m.cursorKey); err != nil {
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus("moved to front", false)
}

func (m *appModel) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
