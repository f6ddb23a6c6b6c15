package format

import (
	"fmt"
	"io"
	"strings"

	"slipbox/internal/model"
)

// Display controls where an item's address appears relative to its label.
type Display string

const (
	DisplayPrefix Display = "prefix"
	DisplaySuffix Display = "suffix"
	DisplayHidden Display = "hidden"
)

// Next cycles prefix -> suffix -> hidden -> prefix.
func (d Display) Next() Display {
	switch d {
	case DisplayPrefix:
		return DisplaySuffix
	case DisplaySuffix:
		return DisplayHidden
	default:
		return DisplayPrefix
	}
}

func ParseDisplay(s string) (Display, error) {
	switch Display(strings.ToLower(strings.TrimSpace(s))) {
	case "", DisplayPrefix:
		return DisplayPrefix, nil
	case DisplaySuffix:
		return DisplaySuffix, nil
	case DisplayHidden:
		return DisplayHidden, nil
	default:
		return DisplayPrefix, fmt.Errorf("unknown display mode: %q (expected prefix|suffix|hidden)", s)
	}
}

// Label renders a row label with its address placed according to d.
func Label(d Display, address, label string) string {
	switch d {
	case DisplaySuffix:
		return label + " ( " + address + " )"
	case DisplayHidden:
		return label
	default:
		return address + " - " + label
	}
}

// Outline is a row sequence with a plain-text rendering, one row per line.
type Outline struct {
	Rows    []model.Row
	Display Display
	Indent  bool
}

func (o Outline) WriteText(w io.Writer) error {
	for _, r := range o.Rows {
		var b strings.Builder
		if o.Indent && r.RowDepth() > 1 {
			b.WriteString(strings.Repeat("  ", r.RowDepth()-1))
		}
		if !r.Draggable() {
			b.WriteString("+ ")
		}
		b.WriteString(Label(o.Display, r.RowAddress(), r.RowLabel()))
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}

// ItemRows adapts items for Outline.
func ItemRows(items []model.Item) []model.Row {
	out := make([]model.Row, len(items))
	for i, it := range items {
		out[i] = it
	}
	return out
}
