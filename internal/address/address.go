package address

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// letters maps an alphabetic level value (1-indexed) to its letter. Index 0 ('_')
// only appears as the final character of a value that is a multiple of 26.
const letters = "_abcdefghijklmnopqrstuvwxyz"

// Path is the structural position of an item: one positive integer per depth,
// starting with the root-level sibling number.
type Path []int

// MalformedPathError reports an empty path or a non-positive segment.
type MalformedPathError struct {
	Path  Path
	Index int // offending segment, -1 for an empty path
}

func (e *MalformedPathError) Error() string {
	if e.Index < 0 {
		return "malformed path: empty"
	}
	return fmt.Sprintf("malformed path %v: segment %d is %d (must be >= 1)", []int(e.Path), e.Index, e.Path[e.Index])
}

// Validate reports whether p is a well-formed path.
func Validate(p Path) error {
	if len(p) == 0 {
		return &MalformedPathError{Path: p, Index: -1}
	}
	for i, v := range p {
		if v < 1 {
			return &MalformedPathError{Path: p.Clone(), Index: i}
		}
	}
	return nil
}

// Encode renders p as its address: odd levels as decimal digits, even levels as
// letters ("a" = 1, with one leading "z" per 26). [2 3 12] encodes as "2c12".
//
// Encode panics on a malformed path. Paths produced by this package and by the
// outline store are always well-formed; untrusted input goes through Validate
// or ParsePath first.
func Encode(p Path) string {
	if err := Validate(p); err != nil {
		panic(err)
	}
	var b strings.Builder
	for i, v := range p {
		if i%2 == 0 {
			b.WriteString(strconv.Itoa(v))
			continue
		}
		for v >= 26 {
			v -= 26
			b.WriteByte('z')
		}
		b.WriteByte(letters[v])
	}
	return b.String()
}

// Decode is the inverse of Encode.
func Decode(addr string) (Path, error) {
	if addr == "" {
		return nil, errors.New("empty address")
	}
	groups := splitGroups(addr)
	out := make(Path, 0, len(groups))
	for i, g := range groups {
		wantDigits := i%2 == 0
		if isDigit(g[0]) != wantDigits {
			return nil, fmt.Errorf("invalid address %q: level %d has wrong symbol class", addr, i+1)
		}
		var v int
		var err error
		if wantDigits {
			v, err = decodeDigits(g)
		} else {
			v, err = decodeLetters(g)
		}
		if err != nil {
			return nil, fmt.Errorf("invalid address %q: level %d: %w", addr, i+1, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ParsePath parses the dotted form used on the command line ("1.2.12").
func ParsePath(s string) (Path, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, &MalformedPathError{Index: -1}
	}
	parts := strings.Split(s, ".")
	p := make(Path, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid path %q: %w", s, err)
		}
		p = append(p, v)
	}
	if err := Validate(p); err != nil {
		return nil, err
	}
	return p, nil
}

// Compare orders two addresses the way their paths are ordered: level by level,
// numerically, with an ancestor before its descendants. Plain byte comparison
// agrees with this only while every numeric level is a single digit ("9" sorts
// after "10" bytewise). Addresses that do not decode fall back to byte order.
func Compare(a, b string) int {
	pa, errA := Decode(a)
	pb, errB := Decode(b)
	if errA != nil || errB != nil {
		return strings.Compare(a, b)
	}
	return ComparePaths(pa, pb)
}

// ComparePaths compares level by level; a strict prefix sorts first.
func ComparePaths(a, b Path) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] < b[i] {
			return -1
		}
		if a[i] > b[i] {
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// IsAncestorOrSelf reports whether anc is addr itself or one of its ancestors.
//
// A byte prefix is only an ancestor when it ends on a level boundary: "1b1" is
// a prefix of "1b10" but the next byte is still a digit, so they are siblings.
// Letter groups never end in 'z' and never prefix one another, so the boundary
// check is exact for both symbol classes.
func IsAncestorOrSelf(anc, addr string) bool {
	if anc == "" || !strings.HasPrefix(addr, anc) {
		return false
	}
	if len(addr) == len(anc) {
		return true
	}
	return isDigit(addr[len(anc)]) != isDigit(anc[len(anc)-1])
}

func (p Path) Clone() Path {
	if p == nil {
		return nil
	}
	return append(Path(nil), p...)
}

func (p Path) Depth() int { return len(p) }

// FirstChild returns p ++ [1].
func (p Path) FirstChild() Path {
	out := make(Path, len(p), len(p)+1)
	copy(out, p)
	return append(out, 1)
}

// NextSibling increments the last segment.
func (p Path) NextSibling() Path {
	out := p.Clone()
	out[len(out)-1]++
	return out
}

// Parent drops the last segment. The parent of a root-level path is nil.
func (p Path) Parent() Path {
	if len(p) <= 1 {
		return nil
	}
	return p[:len(p)-1].Clone()
}

// Rebase replaces the first len(from) segments of p with to.
func (p Path) Rebase(from, to Path) Path {
	out := make(Path, 0, len(to)+len(p)-len(from))
	out = append(out, to...)
	return append(out, p[len(from):]...)
}

// String renders the dotted form accepted by ParsePath.
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ".")
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func splitGroups(s string) []string {
	var out []string
	start := 0
	for i := 1; i <= len(s); i++ {
		if i == len(s) || isDigit(s[i]) != isDigit(s[i-1]) {
			out = append(out, s[start:i])
			start = i
		}
	}
	return out
}

func decodeDigits(g string) (int, error) {
	if g[0] == '0' {
		return 0, fmt.Errorf("number %q has a leading zero", g)
	}
	return strconv.Atoi(g)
}

func decodeLetters(g string) (int, error) {
	last := g[len(g)-1]
	idx := strings.IndexByte(letters, last)
	if idx < 0 || last == 'z' {
		return 0, fmt.Errorf("letters %q must end in one of _a-y", g)
	}
	v := idx
	for i := 0; i < len(g)-1; i++ {
		if g[i] != 'z' {
			return 0, fmt.Errorf("letters %q: only 'z' may precede the final letter", g)
		}
		v += 26
	}
	if v < 1 {
		return 0, errors.New("letter value must be >= 1")
	}
	return v, nil
}
