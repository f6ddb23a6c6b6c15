package address

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// Step is one move of the random outline walk.
type Step string

const (
	StepParent  Step = "parent"
	StepSibling Step = "sibling"
	StepChild   Step = "child"
)

// StepWeighting is a named bag of steps; each draw picks one uniformly, so the
// number of copies of a step sets its relative frequency.
type StepWeighting struct {
	Name  string
	Steps []Step
}

var (
	WeightingDeep = StepWeighting{
		Name:  "deep",
		Steps: []Step{StepParent, StepChild, StepChild, StepChild, StepSibling},
	}
	WeightingWide = StepWeighting{
		Name:  "wide",
		Steps: []Step{StepParent, StepChild, StepChild, StepSibling, StepSibling, StepSibling, StepSibling, StepSibling},
	}
	WeightingBalanced = StepWeighting{
		Name:  "balanced",
		Steps: []Step{StepParent, StepChild, StepChild, StepChild, StepSibling, StepSibling, StepSibling},
	}
)

// DefaultWeighting is used when no preset is configured.
var DefaultWeighting = WeightingWide

// Weightings lists the recognized presets.
func Weightings() []StepWeighting {
	return []StepWeighting{WeightingDeep, WeightingWide, WeightingBalanced}
}

// ParseStepWeighting resolves a preset by name. The empty string selects the default.
func ParseStepWeighting(name string) (StepWeighting, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultWeighting, nil
	}
	for _, w := range Weightings() {
		if w.Name == name {
			return w, nil
		}
	}
	return StepWeighting{}, fmt.Errorf("unknown step weighting %q (expected deep|wide|balanced)", name)
}

type genConfig struct {
	weighting StepWeighting
	rng       *rand.Rand
}

type GenOption func(*genConfig)

func WithWeighting(w StepWeighting) GenOption {
	return func(c *genConfig) {
		if len(w.Steps) > 0 {
			c.weighting = w
		}
	}
}

// WithRand makes the walk draw from r.
func WithRand(r *rand.Rand) GenOption {
	return func(c *genConfig) {
		if r != nil {
			c.rng = r
		}
	}
}

// WithSeed makes the walk deterministic.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// RandomOutline returns count paths in outline order, starting at [1]. Each path
// is derived from the previous one: zero or more parent steps (a no-op at the
// root level), then exactly one sibling or child step. Once a parent step has
// been taken only parent or sibling may follow, so the walk never re-enters a
// branch it just left.
func RandomOutline(count int, opts ...GenOption) []Path {
	cfg := genConfig{weighting: DefaultWeighting}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if count <= 0 {
		return []Path{}
	}

	out := make([]Path, 0, count)
	out = append(out, Path{1})
	afterParent := []Step{StepParent, StepSibling}
	for len(out) < count {
		next := out[len(out)-1].Clone()
		step := cfg.draw(cfg.weighting.Steps)
		for step == StepParent {
			if len(next) > 1 {
				next = next[:len(next)-1]
			}
			step = cfg.draw(afterParent)
		}
		switch step {
		case StepChild:
			next = append(next, 1)
		case StepSibling:
			next[len(next)-1]++
		default:
			panic(fmt.Sprintf("address: unexpected terminal step %q", step))
		}
		out = append(out, next)
	}
	return out
}

func (c *genConfig) draw(steps []Step) Step {
	return steps[c.rng.Intn(len(steps))]
}
