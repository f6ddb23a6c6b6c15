package tui

import (
	"strings"
	"testing"

	"slipbox/internal/address"
	"slipbox/internal/format"
	"slipbox/internal/gesture"
	"slipbox/internal/model"
	"slipbox/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	xansi "github.com/charmbracelet/x/ansi"
)

// keys: "0"=1, "1"=1a, "2"=2, "3"=3
func newTestModel(t *testing.T) appModel {
	t.Helper()
	s, err := store.FromPaths([]address.Path{{1}, {1, 1}, {2}, {3}}, "one", "one-a", "two", "three")
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	m := newAppModel(gesture.New(s), Options{Indent: true})
	mAny, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	return mAny.(appModel)
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t *testing.T, m appModel, keys ...tea.KeyMsg) appModel {
	t.Helper()
	for _, k := range keys {
		mAny, _ := m.Update(k)
		m = mAny.(appModel)
	}
	return m
}

var (
	keyJ     = runes("j")
	keyK     = runes("k")
	keySpace = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
)

func TestCursor_MovesOverItems(t *testing.T) {
	m := newTestModel(t)
	if m.cursorKey != "0" {
		t.Fatalf("expected cursor on first item, got %q", m.cursorKey)
	}
	m = press(t, m, keyJ, keyJ, keyJ, keyJ)
	if m.cursorKey != "3" {
		t.Fatalf("expected cursor clamped on last item, got %q", m.cursorKey)
	}
	m = press(t, m, keyK)
	if m.cursorKey != "2" || m.rows.Index() != 2 {
		t.Fatalf("expected cursor on key 2 / row 2, got %q / %d", m.cursorKey, m.rows.Index())
	}
}

func TestDrag_DropIntoChildZone(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyJ, keyJ, keyJ, keySpace)
	if dragged, ok := m.ctrl.Active(); !ok || dragged != "3" {
		t.Fatalf("expected drag of key 3, got %q %v", dragged, ok)
	}

	// Hover "2": one zone (2a) shown right below it.
	m = press(t, m, keyK)
	if got := len(m.rows.Items()); got != 5 {
		t.Fatalf("expected 4 items + 1 zone row, got %d", got)
	}
	zone := m.rows.Items()[3].(listRow).row
	if zone.Draggable() || zone.RowAddress() != "2a" {
		t.Fatalf("expected zone 2a at row 3, got %s", zone.RowAddress())
	}

	m = press(t, m, keyEnter)
	if _, ok := m.ctrl.Active(); ok {
		t.Fatalf("gesture should end after drop")
	}
	it, _ := m.ctrl.Store().Item("3")
	if it.Address != "2a" {
		t.Fatalf("expected key 3 at 2a, got %s", it.Address)
	}
	if m.cursorKey != "3" || len(m.rows.Items()) != 4 {
		t.Fatalf("cursor %q rows %d", m.cursorKey, len(m.rows.Items()))
	}
	if !strings.Contains(m.status, "moved to 2a") {
		t.Fatalf("unexpected status %q", m.status)
	}
}

func TestDrag_TabCyclesZones(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, keyJ, keyJ, keyJ, keySpace, keyK, keyK)
	_, zones := m.ctrl.Hovered()
	if len(zones) != 2 {
		t.Fatalf("expected 2 zones under 1a, got %d", len(zones))
	}
	m = press(t, m, keyTab, keyEnter)
	it, _ := m.ctrl.Store().Item("3")
	if it.Address != "1b" {
		t.Fatalf("expected key 3 at 1b, got %s", it.Address)
	}
}

func TestDrag_NoZonesAndCancel(t *testing.T) {
	m := newTestModel(t)
	// Key 3 over "1": its first child exists, so nothing is offered.
	m = press(t, m, keyJ, keyJ, keyJ, keySpace, keyK, keyK, keyK)
	if _, zones := m.ctrl.Hovered(); len(zones) != 0 {
		t.Fatalf("expected no zones, got %d", len(zones))
	}
	m = press(t, m, keyEnter)
	if !m.statusErr {
		t.Fatalf("expected an error status for a drop without zones")
	}
	m = press(t, m, keyEsc)
	if _, ok := m.ctrl.Active(); ok {
		t.Fatalf("esc should cancel the drag")
	}
	it, _ := m.ctrl.Store().Item("3")
	if it.Address != "3" {
		t.Fatalf("cancelled drag moved the item to %s", it.Address)
	}
}

func TestDisplayIndentAndHelp(t *testing.T) {
	m := newTestModel(t)
	m = press(t, m, runes("d"))
	if m.display != format.DisplaySuffix {
		t.Fatalf("expected suffix display, got %s", m.display)
	}
	m = press(t, m, runes("i"))
	if m.indent {
		t.Fatalf("expected indentation off")
	}
	view := xansi.Strip(m.View())
	if !strings.Contains(view, "display: suffix") || !strings.Contains(view, "one ( 1 )") {
		t.Fatalf("unexpected view:\n%s", view)
	}

	m = press(t, m, runes("?"))
	if !m.showHelp || strings.TrimSpace(m.View()) == "" {
		t.Fatalf("expected help overlay")
	}
	m = press(t, m, keyJ)
	if m.showHelp || m.cursorKey != "0" {
		t.Fatalf("a key should only close the help overlay")
	}
}

func TestRenderRow(t *testing.T) {
	d := newRowDelegate(format.DisplayPrefix, true, "3", "3+child")
	tests := []struct {
		name string
		row  model.Row
		want string
	}{
		{"item", model.NewItem("1", "one-a", address.Path{1, 1}), "    1a - one-a"},
		{"dragged", model.NewItem("3", "three", address.Path{3}), "» 3 - three"},
		{"zone", model.DropZone{Key: "3+2", Label: "three", Path: address.Path{1, 2}, Address: "1b"}, "  + 1b - three"},
	}
	for _, tt := range tests {
		got := strings.TrimRight(xansi.Strip(d.renderRow(40, tt.row, false)), " ")
		if got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}

	long := model.NewItem("9", strings.Repeat("x", 60), address.Path{9})
	if w := xansi.StringWidth(d.renderRow(20, long, true)); w != 20 {
		t.Fatalf("expected row cut to 20 cells, got %d", w)
	}
}

func TestToFront(t *testing.T) {
	// keys: "0"=2, "1"=2a, "2"=3
	s, err := store.FromPaths([]address.Path{{2}, {2, 1}, {3}}, "two", "two-a", "three")
	if err != nil {
		t.Fatalf("FromPaths: %v", err)
	}
	m := newAppModel(gesture.New(s), Options{Indent: true})

	m = press(t, m, keyJ, keyJ, runes("f"))
	it, _ := m.ctrl.Store().Item("2")
	if it.Address != "1" {
		t.Fatalf("expected key 2 at 1, got %s", it.Address)
	}
	if m.cursorKey != "2" || m.rows.Index() != 0 {
		t.Fatalf("expected cursor to follow key 2 to row 0, got %q / %d", m.cursorKey, m.rows.Index())
	}
	if m.statusErr || m.status != "moved to front" {
		t.Fatalf("unexpected status %q", m.status)
	}

	// "1" is taken now.
	m = press(t, m, keyJ, runes("f"))
	if !m.statusErr {
		t.Fatalf("expected an error status, got %q", m.status)
	}
	if first, _ := m.ctrl.Store().At(0); first.Key != "2" {
		t.Fatalf("failed move changed the outline: first is %s", first.Key)
	}
}
