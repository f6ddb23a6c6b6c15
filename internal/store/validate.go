package store

import (
	"fmt"

	"slipbox/internal/address"
)

// Validate checks the outline invariants: well-formed paths, addresses derived
// from paths, unique keys, and strictly increasing address order. Contiguous
// subtrees follow from the order: all addresses under a common ancestor sort
// into one run.
func (s *Store) Validate() error {
	seen := make(map[string]bool, len(s.items))
	for i, it := range s.items {
		if err := address.Validate(it.Path); err != nil {
			return &InvariantError{Index: i, Key: it.Key, Reason: err.Error()}
		}
		if want := address.Encode(it.Path); it.Address != want {
			return &InvariantError{Index: i, Key: it.Key, Reason: fmt.Sprintf("address %q does not match path (want %q)", it.Address, want)}
		}
		if it.Key == "" {
			return &InvariantError{Index: i, Key: it.Key, Reason: "empty key"}
		}
		if seen[it.Key] {
			return &InvariantError{Index: i, Key: it.Key, Reason: "duplicate key"}
		}
		seen[it.Key] = true
		if i == 0 {
			continue
		}
		prev := s.items[i-1]
		switch c := address.ComparePaths(prev.Path, it.Path); {
		case c == 0:
			return &InvariantError{Index: i, Key: it.Key, Reason: fmt.Sprintf("duplicate address %q", it.Address)}
		case c > 0:
			return &InvariantError{Index: i, Key: it.Key, Reason: fmt.Sprintf("address %q sorts before previous %q", it.Address, prev.Address)}
		}
	}
	return nil
}
