package model

import "slipbox/internal/address"

type ZoneKind string

const (
	ZoneChild   ZoneKind = "child"
	ZoneSibling ZoneKind = "sibling"
)

// Item is a persisted outline entry. Key is the caller-assigned identity; Path
// and Address change when the item is moved, Key and Label never do.
type Item struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Path    address.Path `json:"path"`
	Address string       `json:"address"`
}

// NewItem builds an item whose address is derived from path.
func NewItem(key, label string, path address.Path) Item {
	p := path.Clone()
	return Item{Key: key, Label: label, Path: p, Address: address.Encode(p)}
}

func (it Item) Depth() int { return len(it.Path) }

// DropZone is a candidate insertion slot offered while an item is dragged.
// It is a separate type from Item so it cannot end up in an outline sequence.
type DropZone struct {
	Key     string       `json:"key"`
	Label   string       `json:"label"`
	Path    address.Path `json:"path"`
	Address string       `json:"address"`
	Kind    ZoneKind     `json:"kind"`
}

func (z DropZone) Depth() int { return len(z.Path) }

// Row is anything the presentation layer renders in outline order.
type Row interface {
	RowKey() string
	RowLabel() string
	RowAddress() string
	RowDepth() int
	// Draggable is false for drop-zone previews.
	Draggable() bool

	isRow()
}

func (it Item) RowKey() string     { return it.Key }
func (it Item) RowLabel() string   { return it.Label }
func (it Item) RowAddress() string { return it.Address }
func (it Item) RowDepth() int      { return len(it.Path) }
func (it Item) Draggable() bool    { return true }
func (Item) isRow()                {}

func (z DropZone) RowKey() string     { return z.Key }
func (z DropZone) RowLabel() string   { return z.Label }
func (z DropZone) RowAddress() string { return z.Address }
func (z DropZone) RowDepth() int      { return len(z.Path) }
func (z DropZone) Draggable() bool    { return false }
func (DropZone) isRow()               {}
