package store

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound matches every NotFoundError.
	ErrNotFound = errors.New("not found")

	// ErrInvalidMove is returned (wrapped) when a move would put a subtree inside
	// itself, collide with an existing address, or break address order.
	ErrInvalidMove = errors.New("invalid move")
)

type NotFoundError struct {
	Kind string // "item", "source", "anchor", ...
	Key  string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.Key)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

func errNotFound(kind, key string) error {
	return NotFoundError{Kind: kind, Key: key}
}

func errInvalidMove(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidMove, fmt.Sprintf(format, args...))
}

// InvariantError reports the first index at which the sequence breaks an
// outline invariant.
type InvariantError struct {
	Index  int
	Key    string
	Reason string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("outline invariant violated at index %d (%s): %s", e.Index, e.Key, e.Reason)
}
