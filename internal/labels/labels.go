// Package labels produces item labels for demo outlines.
package labels

import (
	"bufio"
	"io"
	"math/rand"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

// Generate returns n hacker phrases. The phrases are drawn from a faker seeded
// by rng, so the same rng state gives the same labels. A nil rng picks a
// random seed.
func Generate(n int, rng *rand.Rand) []string {
	if n <= 0 {
		return nil
	}
	var seed uint64
	if rng != nil {
		// gofakeit treats seed 0 as "random".
		seed = uint64(rng.Int63()) | 1
	}
	f := gofakeit.New(seed)
	out := make([]string, n)
	for i := range out {
		out[i] = f.HackerPhrase()
	}
	return out
}

// Read returns one label per non-blank line, trimmed.
func Read(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
