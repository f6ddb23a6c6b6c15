package store

import (
	"strconv"

	"slipbox/internal/address"
	"slipbox/internal/model"
)

// DropZones returns the insertion slots offered while draggedKey hovers over
// hoverKey, and the index the dragged subtree would be inserted at (right
// after the hover item). ok is false when nothing may be dropped there.
//
// Offered slots:
//   - the hover item's first child, unless that address is already taken, in
//     which case the hover item accepts no drop at all;
//   - the hover item's next sibling, then each ancestor's next sibling, climbing
//     while the candidate is not shallower than the item that follows the hover
//     item and is not that item's address.
//
// DropZones never mutates the store.
func (s *Store) DropZones(draggedKey, hoverKey string) (zones []model.DropZone, insertAt int, ok bool) {
	di, ok := s.ItemIndex(draggedKey)
	if !ok {
		return nil, 0, false
	}
	hi, ok := s.ItemIndex(hoverKey)
	if !ok {
		return nil, 0, false
	}
	dragged, hover := s.items[di], s.items[hi]

	// Never into its own subtree (this includes hovering over itself).
	if address.IsAncestorOrSelf(dragged.Address, hover.Address) {
		return nil, 0, false
	}

	var next *model.Item
	if hi+1 < len(s.items) {
		next = &s.items[hi+1]
	}

	child := hover.Path.FirstChild()
	childAddr := address.Encode(child)
	if next != nil && next.Address == childAddr {
		return nil, 0, false
	}
	zones = append(zones, model.DropZone{
		Key:     dragged.Key + "+child",
		Label:   dragged.Label,
		Path:    child,
		Address: childAddr,
		Kind:    model.ZoneChild,
	})

	minDepth := 1
	if next != nil {
		minDepth = next.Depth()
	}
	for cand := hover.Path.NextSibling(); len(cand) >= minDepth; {
		addr := address.Encode(cand)
		if next != nil && next.Address == addr {
			break
		}
		zones = append(zones, model.DropZone{
			Key:     dragged.Key + "+" + strconv.Itoa(len(cand)),
			Label:   dragged.Label,
			Path:    cand,
			Address: addr,
			Kind:    model.ZoneSibling,
		})
		if len(cand) == 1 {
			break
		}
		cand = cand.Parent().NextSibling()
	}
	return zones, hi + 1, true
}

// Rows interleaves zones into the current sequence at insertAt, for rendering.
// The store itself is not changed.
func (s *Store) Rows(zones []model.DropZone, insertAt int) []model.Row {
	if insertAt < 0 {
		insertAt = 0
	}
	if insertAt > len(s.items) {
		insertAt = len(s.items)
	}
	out := make([]model.Row, 0, len(s.items)+len(zones))
	for i, it := range s.items {
		if i == insertAt {
			for _, z := range zones {
				out = append(out, z)
			}
		}
		out = append(out, it)
	}
	if insertAt == len(s.items) {
		for _, z := range zones {
			out = append(out, z)
		}
	}
	return out
}
