package address

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path Path
		want string
	}{
		{Path{1}, "1"},
		{Path{1, 1}, "1a"},
		{Path{1, 2}, "1b"},
		{Path{2, 3, 12}, "2c12"},
		{Path{10, 25}, "10y"},
		{Path{1, 26}, "1z_"},
		{Path{1, 27}, "1za"},
		{Path{1, 52}, "1zz_"},
		{Path{1, 53, 4, 1}, "1zza4a"},
		{Path{3, 1, 1}, "3a1"},
	}
	for _, tt := range tests {
		if got := Encode(tt.path); got != tt.want {
			t.Fatalf("Encode(%v): got %q, want %q", []int(tt.path), got, tt.want)
		}
	}
}

func TestEncode_PanicsOnMalformedPath(t *testing.T) {
	t.Parallel()

	for _, p := range []Path{nil, {}, {0}, {1, -2}} {
		func() {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("Encode(%v): expected panic", []int(p))
				}
				var me *MalformedPathError
				if err, ok := r.(error); !ok || !errors.As(err, &me) {
					t.Fatalf("Encode(%v): expected *MalformedPathError panic, got %v", []int(p), r)
				}
			}()
			_ = Encode(p)
		}()
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		p := randomPath(rng)
		got, err := Decode(Encode(p))
		if err != nil {
			t.Fatalf("Decode(Encode(%v)): %v", []int(p), err)
		}
		if ComparePaths(got, p) != 0 {
			t.Fatalf("Decode(Encode(%v)) = %v", []int(p), []int(got))
		}
	}
}

func TestDecode_RejectsMalformed(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"", "a", "1_", "1z", "01", "1a0", "1az", "1ab"} {
		if _, err := Decode(s); err == nil {
			t.Fatalf("Decode(%q): expected error", s)
		}
	}
}

func TestParsePath(t *testing.T) {
	t.Parallel()

	p, err := ParsePath(" 2.3.12 ")
	if err != nil {
		t.Fatalf("ParsePath: %v", err)
	}
	if got := Encode(p); got != "2c12" {
		t.Fatalf("expected 2c12, got %q", got)
	}
	if p.String() != "2.3.12" {
		t.Fatalf("String(): got %q", p.String())
	}

	for _, s := range []string{"", "1..2", "1.0", "x", "-1"} {
		if _, err := ParsePath(s); err == nil {
			t.Fatalf("ParsePath(%q): expected error", s)
		}
	}
}

func TestEncode_AncestorIsPrefix(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 2000; i++ {
		p := randomPath(rng)
		addr := Encode(p)
		for n := 1; n <= len(p); n++ {
			anc := Encode(p[:n])
			if !strings.HasPrefix(addr, anc) {
				t.Fatalf("%q is not a prefix of %q", anc, addr)
			}
			if !IsAncestorOrSelf(anc, addr) {
				t.Fatalf("IsAncestorOrSelf(%q, %q) = false", anc, addr)
			}
		}
	}
}

func TestEncode_SiblingsAreOrdered(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 2000; i++ {
		p := randomPath(rng)
		q := p.Clone()
		q[len(q)-1] += 1 + rng.Intn(60)
		a, b := Encode(p), Encode(q)
		if Compare(a, b) >= 0 {
			t.Fatalf("Compare(%q, %q) should be < 0", a, b)
		}
		if len(p)%2 == 0 && a >= b {
			// Letter levels are order-preserving bytewise too.
			t.Fatalf("letter siblings %q >= %q bytewise", a, b)
		}
	}
}

func TestCompare_AgreesWithComparePaths(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(17))
	for i := 0; i < 5000; i++ {
		p, q := randomPath(rng), randomPath(rng)
		if i%3 == 0 {
			// Share a prefix so deeper levels get exercised.
			q = append(p[:rng.Intn(len(p))+1].Clone(), q...)
		}
		want := ComparePaths(p, q)
		if got := Compare(Encode(p), Encode(q)); got != want {
			t.Fatalf("Compare(%q, %q) = %d, ComparePaths = %d", Encode(p), Encode(q), got, want)
		}
	}
}

func TestCompare_BytewiseForSingleDigitLevels(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(19))
	small := func() Path {
		p := make(Path, 1+rng.Intn(5))
		for i := range p {
			p[i] = 1 + rng.Intn(9)
		}
		return p
	}
	for i := 0; i < 2000; i++ {
		p, q := small(), small()
		want := ComparePaths(p, q)
		if got := strings.Compare(Encode(p), Encode(q)); got != want {
			t.Fatalf("bytewise %q vs %q = %d, want %d", Encode(p), Encode(q), got, want)
		}
	}
}

func TestIsAncestorOrSelf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		anc, addr string
		want      bool
	}{
		{"1", "1", true},
		{"1", "1a", true},
		{"1", "1a3", true},
		{"1", "10", false},
		{"1", "2", false},
		{"1b1", "1b10", false},
		{"1b1", "1b1a", true},
		{"1y", "1z_", false},
		{"1z_", "1z_4", true},
		{"", "1", false},
		{"1a", "1", false},
	}
	for _, tt := range tests {
		if got := IsAncestorOrSelf(tt.anc, tt.addr); got != tt.want {
			t.Fatalf("IsAncestorOrSelf(%q, %q): got %v, want %v", tt.anc, tt.addr, got, tt.want)
		}
	}
}

func TestPathHelpers(t *testing.T) {
	t.Parallel()

	p := Path{2, 3}
	if got := Encode(p.FirstChild()); got != "2c1" {
		t.Fatalf("FirstChild: got %q", got)
	}
	if got := Encode(p.NextSibling()); got != "2d" {
		t.Fatalf("NextSibling: got %q", got)
	}
	if got := Encode(p.Parent()); got != "2" {
		t.Fatalf("Parent: got %q", got)
	}
	if (Path{4}).Parent() != nil {
		t.Fatalf("expected nil parent for a root-level path")
	}
	if p[1] != 3 {
		t.Fatalf("helpers must not mutate the receiver: %v", []int(p))
	}
	got := Path{1, 2, 1, 5}.Rebase(Path{1, 2}, Path{2, 1})
	if Encode(got) != "2a1e" {
		t.Fatalf("Rebase: got %q", Encode(got))
	}
}

func randomPath(rng *rand.Rand) Path {
	p := make(Path, 1+rng.Intn(6))
	for i := range p {
		// Mostly small values, occasionally large enough to cross digit and 'z' boundaries.
		if rng.Intn(4) == 0 {
			p[i] = 1 + rng.Intn(120)
		} else {
			p[i] = 1 + rng.Intn(12)
		}
	}
	return p
}
