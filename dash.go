package canvaswire

import (
	"slices"
	"sync"

	"github.com/gogpu/canvaswire/wire"
)

// dashPool recycles dash pattern buffers. Slots own their pattern
// exclusively, so every overwrite releases the previous occupant here
// before installing a replacement.
var dashPool = sync.Pool{
	New: func() any { return new(dashPattern) },
}

// dashPattern is an owned sequence of alternating dash/gap lengths.
// A nil *dashPattern in a slot means "inherit the nearest enclosing
// depth's pattern"; a non-nil pattern with zero segments is an explicit
// solid line.
type dashPattern struct {
	segs []float64
}

// dashColumn is the one bespoke attribute column. Unlike the generic
// attr[T], an unset slot does not hold a copied value: save installs the
// inherit sentinel and reads resolve lazily by scanning backward to the
// nearest set depth.
type dashColumn struct {
	slots  [stackSlots]*dashPattern
	shadow []float64
}

func newDashColumn() *dashColumn {
	c := &dashColumn{}
	// Root depth starts with an explicit empty pattern (solid lines),
	// matching the host default.
	c.slots[0] = dashPool.Get().(*dashPattern)
	return c
}

// set stores a copy of segs at the given depth, releasing any pattern the
// slot previously owned.
func (c *dashColumn) set(depth int, segs []float64) {
	c.release(depth)
	p := dashPool.Get().(*dashPattern)
	p.segs = append(p.segs[:0], segs...)
	c.slots[depth] = p
}

// get returns a copy of the effective pattern at the given depth.
// The stored sequence is returned verbatim; pattern doubling for odd
// lengths is a host-side rendering rule, not a storage transformation.
func (c *dashColumn) get(depth int) []float64 {
	return slices.Clone(c.effective(depth))
}

// effective resolves the pattern visible at depth: the slot's own pattern
// if set, otherwise the nearest enclosing depth's. Returns nil (solid)
// only if no depth holds a pattern, which cannot happen while the root
// slot is populated.
func (c *dashColumn) effective(depth int) []float64 {
	for d := depth; d >= 0; d-- {
		if p := c.slots[d]; p != nil {
			return p.segs
		}
	}
	return nil
}

// release returns the slot's pattern to the pool, if any.
// A missed release here would leak the buffer; every overwrite path
// (set, copyForward) must come through it first.
func (c *dashColumn) release(depth int) {
	if p := c.slots[depth]; p != nil {
		p.segs = p.segs[:0]
		dashPool.Put(p)
		c.slots[depth] = nil
	}
}

func (c *dashColumn) copyForward(_, to int) {
	// Free whatever occupies the target slot, then install the inherit
	// sentinel instead of copying: the value resolves lazily through
	// effective().
	c.release(to)
}

func (c *dashColumn) flush(b *wire.Buffer, depth int) {
	eff := c.effective(depth)
	if slices.Equal(eff, c.shadow) {
		return
	}
	b.OpArray(wire.OpSetLineDash, eff...)
	c.shadow = slices.Clone(eff)
}
