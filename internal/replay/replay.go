// Package replay applies a recorded stream of drag gestures to an outline.
//
// Each gesture is one line, either whitespace separated
//
//	<dragged> <hover> <drop>
//
// or a JSON object {"dragged": "...", "hover": "...", "drop": "..."}.
// "<dragged> front" (or JSON with drop "front" and no hover) moves the subtree
// to the front of the outline. Blank lines and lines starting with '#' are ignored.
package replay

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"slipbox/internal/gesture"
	"slipbox/internal/logger"
	"slipbox/internal/model"
)

var ErrParse = errors.New("parse gesture")

// DropFront is the drop value that moves a subtree to the front of the outline.
const DropFront = "front"

type Gesture struct {
	Line    int    `json:"line,omitempty"`
	Dragged string `json:"dragged"`
	Hover   string `json:"hover,omitempty"`
	Drop    string `json:"drop"`
}

// Front reports whether g moves its subtree to the front of the outline.
func (g Gesture) Front() bool { return g.Drop == DropFront && g.Hover == "" }

func (g Gesture) String() string {
	if g.Front() {
		return g.Dragged + " " + DropFront
	}
	return fmt.Sprintf("%s %s %s", g.Dragged, g.Hover, g.Drop)
}

func Parse(r io.Reader) ([]Gesture, error) {
	var out []Gesture
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		g, err := parseLine(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		g.Line = line
		out = append(out, g)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func parseLine(text string) (Gesture, error) {
	var g Gesture
	if strings.HasPrefix(text, "{") {
		dec := json.NewDecoder(strings.NewReader(text))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&g); err != nil {
			return Gesture{}, fmt.Errorf("%w: %v", ErrParse, err)
		}
	} else {
		fields := strings.Fields(text)
		if len(fields) == 2 && fields[1] == DropFront {
			return Gesture{Dragged: fields[0], Drop: DropFront}, nil
		}
		if len(fields) != 3 {
			return Gesture{}, fmt.Errorf("%w: expected 3 fields (dragged hover drop), got %d", ErrParse, len(fields))
		}
		g = Gesture{Dragged: fields[0], Hover: fields[1], Drop: fields[2]}
	}
	g.Dragged = strings.TrimSpace(g.Dragged)
	g.Hover = strings.TrimSpace(g.Hover)
	g.Drop = strings.TrimSpace(g.Drop)
	if g.Front() && g.Dragged != "" {
		return g, nil
	}
	if g.Dragged == "" || g.Hover == "" || g.Drop == "" {
		return Gesture{}, fmt.Errorf("%w: dragged, hover and drop are required", ErrParse)
	}
	return g, nil
}

type Options struct {
	// Strict stops at the first gesture that cannot be applied.
	Strict bool
	Log    logger.Logger
}

type Failure struct {
	Gesture Gesture `json:"gesture"`
	Err     string  `json:"error"`
}

type Report struct {
	Applied int          `json:"applied"`
	Skipped []Failure    `json:"skipped"`
	Items   []model.Item `json:"items"`
}

// Run applies gestures in order. Without Strict, gestures that no longer
// resolve (unknown keys, zone not offered) are recorded and skipped, the way a
// drop onto a stale target is ignored in the UI. The returned error is non-nil
// when Strict stopped the run or the outline broke an invariant.
func Run(ctrl *gesture.Controller, gestures []Gesture, opts Options) (Report, error) {
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}
	rep := Report{Skipped: []Failure{}}
	for _, g := range gestures {
		var err error
		if g.Front() {
			err = ctrl.MoveFirst(g.Dragged)
		} else {
			err = ctrl.Apply(g.Dragged, g.Hover, g.Drop)
		}
		if err != nil {
			log.Debug("gesture skipped", "line", g.Line, "gesture", g.String(), "err", err)
			if opts.Strict {
				rep.Items = ctrl.Store().Items()
				return rep, fmt.Errorf("line %d (%s): %w", g.Line, g, err)
			}
			rep.Skipped = append(rep.Skipped, Failure{Gesture: g, Err: err.Error()})
			continue
		}
		if err := ctrl.Store().Validate(); err != nil {
			rep.Items = ctrl.Store().Items()
			return rep, fmt.Errorf("line %d (%s): %w", g.Line, g, err)
		}
		rep.Applied++
	}
	rep.Items = ctrl.Store().Items()
	log.Info("replay done", "applied", rep.Applied, "skipped", len(rep.Skipped))
	return rep, nil
}
