package store

import (
	"slipbox/internal/address"
	"slipbox/internal/model"
)

// MoveTo moves draggedKey's subtree so that its root takes zone's path and the
// run starts right after anchorKey.
func (s *Store) MoveTo(draggedKey, anchorKey string, zone model.DropZone) error {
	return s.MoveSubtree(draggedKey, anchorKey, zone.Path)
}

// MoveSubtree relocates the subtree rooted at draggedKey. Every moved item keeps
// its key and label; its path becomes target followed by whatever lay below the
// old root. The run is reinserted immediately after anchorKey, as measured once
// the run has been taken out.
//
// The move is atomic: on any error the store is left unchanged.
func (s *Store) MoveSubtree(draggedKey, anchorKey string, target address.Path) error {
	start, end, ok := s.SubtreeSpan(draggedKey)
	if !ok {
		return errNotFound("source", draggedKey)
	}
	anchorIdx, ok := s.ItemIndex(anchorKey)
	if !ok {
		return errNotFound("anchor", anchorKey)
	}
	if anchorIdx >= start && anchorIdx < end {
		return errInvalidMove("anchor %s is inside the subtree of %s", anchorKey, draggedKey)
	}
	return s.relocate(start, end, anchorIdx, target)
}

// MoveSubtreeFirst is MoveSubtree with the run placed at the very start of the
// outline. No item can anchor that position.
func (s *Store) MoveSubtreeFirst(draggedKey string, target address.Path) error {
	start, end, ok := s.SubtreeSpan(draggedKey)
	if !ok {
		return errNotFound("source", draggedKey)
	}
	return s.relocate(start, end, -1, target)
}

// relocate moves the run [start, end) so that it follows the item currently at
// anchorIdx (-1 for the front).
func (s *Store) relocate(start, end, anchorIdx int, target address.Path) error {
	if err := address.Validate(target); err != nil {
		return errInvalidMove("target: %v", err)
	}

	root := s.items[start]
	if address.IsAncestorOrSelf(root.Address, address.Encode(target)) && !samePath(root.Path, target) {
		return errInvalidMove("cannot move %s into its own subtree", root.Address)
	}

	moved := make([]model.Item, 0, end-start)
	for _, it := range s.items[start:end] {
		moved = append(moved, model.NewItem(it.Key, it.Label, it.Path.Rebase(root.Path, target)))
	}

	rest := make([]model.Item, 0, len(s.items)-len(moved))
	rest = append(rest, s.items[:start]...)
	rest = append(rest, s.items[end:]...)

	taken := make(map[string]string, len(rest))
	for _, it := range rest {
		taken[it.Address] = it.Key
	}
	for _, it := range moved {
		if other, ok := taken[it.Address]; ok {
			return errInvalidMove("address collision: %s would take %q from %s; aborting move", it.Key, it.Address, other)
		}
	}

	insertAt := anchorIdx + 1
	if anchorIdx >= end {
		insertAt -= len(moved)
	}

	// The run must still sort between its new neighbors.
	first, last := moved[0], moved[len(moved)-1]
	if insertAt > 0 {
		if prev := rest[insertAt-1]; address.ComparePaths(prev.Path, first.Path) >= 0 {
			return errInvalidMove("%q cannot follow %q", first.Address, prev.Address)
		}
	}
	if insertAt < len(rest) {
		if next := rest[insertAt]; address.ComparePaths(last.Path, next.Path) >= 0 {
			return errInvalidMove("%q cannot precede %q", last.Address, next.Address)
		}
	}

	out := make([]model.Item, 0, len(s.items))
	out = append(out, rest[:insertAt]...)
	out = append(out, moved...)
	out = append(out, rest[insertAt:]...)

	s.items = out
	s.reindex()
	return nil
}

func samePath(a, b address.Path) bool { return address.ComparePaths(a, b) == 0 }
