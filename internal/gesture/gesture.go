// Package gesture drives drag-and-drop sessions over an outline store.
//
// A gesture is Begin (pick up an item), any number of Hover calls, then Drop
// or Cancel. Committed drops publish a full snapshot to subscribers.
package gesture

import (
	"errors"
	"fmt"

	"slipbox/internal/address"
	"slipbox/internal/logger"
	"slipbox/internal/model"
	"slipbox/internal/store"

	"github.com/google/uuid"
)

var (
	ErrNoGesture   = errors.New("no gesture in progress")
	ErrUnknownZone = errors.New("drop zone not offered")
)

// Snapshot is the outline after a committed move.
type Snapshot struct {
	Seq   int
	Items []model.Item
}

type Controller struct {
	store *store.Store
	log   logger.Logger

	active   *session
	seq      int
	watchers []func(Snapshot)
}

type session struct {
	id       string
	dragged  string
	hover    string
	zones    []model.DropZone
	insertAt int
}

type Option func(*Controller)

func WithLogger(l logger.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

func New(s *store.Store, opts ...Option) *Controller {
	c := &Controller{store: s, log: logger.Nop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) Store() *store.Store { return c.store }

// Active reports whether a gesture is in progress, and its dragged key.
func (c *Controller) Active() (string, bool) {
	if c.active == nil {
		return "", false
	}
	return c.active.dragged, true
}

// Hovered returns the current hover key and offered zones.
func (c *Controller) Hovered() (string, []model.DropZone) {
	if c.active == nil {
		return "", nil
	}
	return c.active.hover, append([]model.DropZone(nil), c.active.zones...)
}

// Begin starts a gesture for draggedKey. An unfinished gesture is cancelled.
func (c *Controller) Begin(draggedKey string) error {
	if _, ok := c.store.Item(draggedKey); !ok {
		return store.NotFoundError{Kind: "source", Key: draggedKey}
	}
	if c.active != nil {
		c.Cancel()
	}
	c.active = &session{id: uuid.NewString(), dragged: draggedKey}
	c.log.Debug("gesture begin", "gesture", c.active.id, "dragged", draggedKey)
	return nil
}

// Hover records hoverKey as the current target and returns the zones offered
// there. ok is false when the target accepts nothing (or no gesture is active).
func (c *Controller) Hover(hoverKey string) ([]model.DropZone, bool) {
	if c.active == nil {
		return nil, false
	}
	zones, insertAt, ok := c.store.DropZones(c.active.dragged, hoverKey)
	c.active.hover = hoverKey
	c.active.zones = zones
	c.active.insertAt = insertAt
	if !ok {
		c.active.zones = nil
		return nil, false
	}
	return append([]model.DropZone(nil), zones...), true
}

// Drop commits the zone named by zoneKey (a zone key or its address) among
// those offered at the current hover target. The gesture ends either way
// unless the zone is unknown, so the caller can pick another.
func (c *Controller) Drop(zoneKey string) error {
	if c.active == nil {
		return ErrNoGesture
	}
	zone, ok := findZone(c.active.zones, zoneKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownZone, zoneKey)
	}
	g := c.active
	c.active = nil

	if err := c.store.MoveTo(g.dragged, g.hover, zone); err != nil {
		c.log.Warn("drop rejected", "gesture", g.id, "dragged", g.dragged, "hover", g.hover, "zone", zone.Address, "err", err)
		return err
	}
	c.seq++
	c.log.Debug("drop", "gesture", g.id, "dragged", g.dragged, "hover", g.hover, "zone", zone.Address, "seq", c.seq)
	c.publish()
	return nil
}

// Cancel ends the current gesture without touching the outline.
func (c *Controller) Cancel() {
	if c.active == nil {
		return
	}
	c.log.Debug("gesture cancel", "gesture", c.active.id, "dragged", c.active.dragged)
	c.active = nil
}

// Apply performs a complete gesture in one call.
func (c *Controller) Apply(draggedKey, hoverKey, dropKey string) error {
	if err := c.Begin(draggedKey); err != nil {
		return err
	}
	if _, ok := c.store.Item(hoverKey); !ok {
		c.Cancel()
		return store.NotFoundError{Kind: "hover", Key: hoverKey}
	}
	c.Hover(hoverKey)
	if err := c.Drop(dropKey); err != nil {
		c.Cancel()
		return err
	}
	return nil
}

// MoveFirst moves draggedKey's subtree to the front of the outline with its
// root at address "1". No drop zone covers that slot, so it bypasses Hover. Any
// gesture in progress is cancelled.
func (c *Controller) MoveFirst(draggedKey string) error {
	c.Cancel()
	if err := c.store.MoveSubtreeFirst(draggedKey, address.Path{1}); err != nil {
		c.log.Warn("move to front rejected", "dragged", draggedKey, "err", err)
		return err
	}
	c.seq++
	c.log.Debug("move to front", "dragged", draggedKey, "seq", c.seq)
	c.publish()
	return nil
}

// Subscribe registers fn to receive a snapshot after every committed move.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	if fn != nil {
		c.watchers = append(c.watchers, fn)
	}
}

// Rows returns the outline with the current zones interleaved, if any.
func (c *Controller) Rows() []model.Row {
	if c.active == nil || len(c.active.zones) == 0 {
		return c.store.Rows(nil, -1)
	}
	return c.store.Rows(c.active.zones, c.active.insertAt)
}

func (c *Controller) publish() {
	if len(c.watchers) == 0 {
		return
	}
	snap := Snapshot{Seq: c.seq, Items: c.store.Items()}
	for _, fn := range c.watchers {
		fn(snap)
	}
}

func findZone(zones []model.DropZone, key string) (model.DropZone, bool) {
	for _, z := range zones {
		if z.Key == key {
			return z, true
		}
	}
	for _, z := range zones {
		if z.Address == key {
			return z, true
		}
	}
	return model.DropZone{}, false
}
