package store

import (
	"fmt"
	"strconv"

	"slipbox/internal/address"
	"slipbox/internal/model"
)

// Store is an outline kept as a flat sequence in address order. Every subtree
// is a contiguous run starting at its root, so subtree operations are index
// range operations.
//
// A Store is not safe for concurrent use; it is owned by a single controller.
type Store struct {
	items []model.Item

	// Derived index for key lookups. Rebuilt after every mutation.
	idxByKey map[string]int
}

// New seeds a store with one item per label. Paths come from a random outline
// walk; keys are the label positions ("0", "1", ...).
func New(labels []string, opts ...address.GenOption) *Store {
	paths := address.RandomOutline(len(labels), opts...)
	items := make([]model.Item, len(labels))
	for i, label := range labels {
		items[i] = model.NewItem(strconv.Itoa(i), label, paths[i])
	}
	s := &Store{items: items}
	s.reindex()
	return s
}

// FromItems builds a store from an explicit sequence. Addresses are recomputed
// from paths; the result must satisfy the outline invariants.
func FromItems(items []model.Item) (*Store, error) {
	out := make([]model.Item, len(items))
	for i, it := range items {
		if err := address.Validate(it.Path); err != nil {
			return nil, fmt.Errorf("item %d (%s): %w", i, it.Key, err)
		}
		out[i] = model.NewItem(it.Key, it.Label, it.Path)
	}
	s := &Store{items: out}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.reindex()
	return s, nil
}

// FromPaths is FromItems with keys "0", "1", ... and the given labels (missing
// labels default to the address).
func FromPaths(paths []address.Path, labels ...string) (*Store, error) {
	items := make([]model.Item, len(paths))
	for i, p := range paths {
		label := ""
		if i < len(labels) {
			label = labels[i]
		} else if address.Validate(p) == nil {
			label = address.Encode(p)
		}
		items[i] = model.Item{Key: strconv.Itoa(i), Label: label, Path: p}
	}
	return FromItems(items)
}

// Items returns a copy of the current sequence.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	for i, it := range s.items {
		it.Path = it.Path.Clone()
		out[i] = it
	}
	return out
}

func (s *Store) Len() int { return len(s.items) }

func (s *Store) Item(key string) (model.Item, bool) {
	i, ok := s.ItemIndex(key)
	if !ok {
		return model.Item{}, false
	}
	it := s.items[i]
	it.Path = it.Path.Clone()
	return it, true
}

func (s *Store) ItemIndex(key string) (int, bool) {
	i, ok := s.idxByKey[key]
	return i, ok
}

// At returns the item at index i.
func (s *Store) At(i int) (model.Item, bool) {
	if i < 0 || i >= len(s.items) {
		return model.Item{}, false
	}
	it := s.items[i]
	it.Path = it.Path.Clone()
	return it, true
}

// SubtreeSpan returns the half-open index range [start, end) covering key and
// all of its descendants.
func (s *Store) SubtreeSpan(key string) (start, end int, ok bool) {
	start, ok = s.ItemIndex(key)
	if !ok {
		return 0, 0, false
	}
	return start, s.spanEnd(start), true
}

func (s *Store) spanEnd(start int) int {
	root := s.items[start].Address
	end := start + 1
	for end < len(s.items) && address.IsAncestorOrSelf(root, s.items[end].Address) {
		end++
	}
	return end
}

func (s *Store) reindex() {
	s.idxByKey = make(map[string]int, len(s.items))
	for i, it := range s.items {
		s.idxByKey[it.Key] = i
	}
}

// Depth returns the nesting depth of key (1 for roots).
func (s *Store) Depth(key string) (int, bool) {
	i, ok := s.ItemIndex(key)
	if !ok {
		return 0, false
	}
	return s.items[i].Depth(), true
}
