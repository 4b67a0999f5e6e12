package canvaswire

import (
	"github.com/gogpu/canvaswire/wire"
)

const (
	// maxDepth is the deepest nesting level a context can reach.
	// Saving while at maxDepth is fatal.
	maxDepth = 254

	// stackSlots is one slot per depth in [0, maxDepth].
	stackSlots = maxDepth + 1
)

// column is one tracked attribute's stacked storage, as seen by the stack
// machine and the flush protocol. All columns are driven through this
// interface so that save, restore and flush iterate one list instead of
// naming every attribute.
type column interface {
	// copyForward copies the value at depth from into depth to.
	// Called on every save while still at depth from.
	copyForward(from, to int)

	// flush compares the effective value at depth against the shadow and,
	// on difference, appends the attribute's state-change instruction and
	// updates the shadow. Called before every draw instruction and, at the
	// target depth, after every host-visible restore.
	flush(b *wire.Buffer, depth int)
}

// attr is the generic attribute column: a fixed slot array holding the
// requested value per depth, a shadow holding what was last written to the
// instruction buffer, an emit closure binding the owning opcode, and an
// optional gating predicate evaluated before each flush.
//
// One instance per tracked attribute replaces the per-attribute copy-paste
// this design collapses; only the dash pattern needs a bespoke column (see
// dashColumn).
type attr[T comparable] struct {
	slots  [stackSlots]T
	shadow T
	emit   func(b *wire.Buffer, v T)
	gate   func(depth int) bool
}

// newAttr creates a column whose root slot and shadow hold the attribute's
// default. The shadow starts at the default because the host's own state
// does: nothing needs to be emitted until the first divergence.
func newAttr[T comparable](def T, emit func(*wire.Buffer, T)) *attr[T] {
	a := &attr[T]{emit: emit}
	a.slots[0] = def
	a.shadow = def
	return a
}

// get returns the requested value at the given depth.
func (a *attr[T]) get(depth int) T {
	return a.slots[depth]
}

// set stores the requested value at the given depth.
// Writes never touch other depths.
func (a *attr[T]) set(depth int, v T) {
	a.slots[depth] = v
}

func (a *attr[T]) copyForward(from, to int) {
	a.slots[to] = a.slots[from]
}

func (a *attr[T]) flush(b *wire.Buffer, depth int) {
	if a.gate != nil && !a.gate(depth) {
		return
	}
	v := a.slots[depth]
	if v == a.shadow {
		return
	}
	a.emit(b, v)
	a.shadow = v
}
