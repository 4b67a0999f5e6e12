package canvaswire

import (
	"github.com/gogpu/canvaswire/host"
	"github.com/gogpu/canvaswire/wire"
)

// Documented construction-time defaults for every tracked attribute.
// String setters treat the empty string as "revert to this default".
const (
	defaultFillColor          = "#000000"
	defaultStrokeColor        = "#000000"
	defaultCompositeOperation = "source-over"
	defaultFilter             = "none"
	defaultSmoothingQuality   = "low"
	defaultLineCap            = "butt"
	defaultLineJoin           = "miter"
	defaultShadowColor        = "rgba(0, 0, 0, 0)"
	defaultFont               = "10px sans-serif"
	defaultTextAlign          = "start"
	defaultTextBaseline       = "alphabetic"
	defaultDirection          = "inherit"

	defaultGlobalAlpha = 1.0
	defaultLineWidth   = 1.0
	defaultMiterLimit  = 10.0
)

// Context mirrors the state of an imperative 2D drawing surface and encodes
// attribute changes plus draw calls into a minimal instruction stream for a
// host to replay.
//
// Each tracked attribute lives in a stacked column indexed by the current
// nesting depth; Save/Restore move the depth, and a last-emitted shadow per
// attribute suppresses redundant state-change instructions. Before every
// state-consuming draw instruction the context diffs all columns in a fixed
// canonical order and appends only the surviving changes (see flushState).
//
// A Context is single-threaded: every operation runs to completion before
// returning and no internal locking is performed.
type Context struct {
	id   int32
	host host.Host
	buf  *wire.Buffer

	depth int
	hard  [stackSlots]bool

	transform     *attr[Transform]
	fillPaint     *attr[Paint]
	strokePaint   *attr[Paint]
	globalAlpha   *attr[float64]
	compositeOp   *attr[string]
	filter        *attr[string]
	smoothing     *attr[bool]
	quality       *attr[string]
	lineWidth     *attr[float64]
	lineCap       *attr[string]
	lineJoin      *attr[string]
	miterLimit    *attr[float64]
	dash          *dashColumn
	dashOffset    *attr[float64]
	shadowBlur    *attr[float64]
	shadowColor   *attr[string]
	shadowOffsetX *attr[float64]
	shadowOffsetY *attr[float64]
	font          *attr[string]
	textAlign     *attr[string]
	textBaseline  *attr[string]
	direction     *attr[string]

	// columns holds every attribute column in canonical flush order.
	columns []column
}

// New creates a Context bound to the given host-side context id.
// Pass host.UnboundContext (-1) for a context that has no host-side surface
// yet; the id is only ever forwarded to the host, never interpreted.
//
// All attributes start at their documented defaults, which match the
// defaults of a freshly created host surface, so a new Context emits no
// state changes until the first divergence.
func New(id int32, opts ...Option) *Context {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.host == nil {
		o.host = host.NewMemHost()
	}
	if o.buf == nil {
		o.buf = wire.NewBuffer()
	}

	c := &Context{id: id, host: o.host, buf: o.buf}

	c.transform = newAttr(Identity(), func(b *wire.Buffer, t Transform) {
		b.OpSix(wire.OpSetTransform, t.A, t.B, t.C, t.D, t.E, t.F)
	})
	c.fillPaint = newAttr(colorPaint(defaultFillColor),
		emitPaint(wire.OpSetFillColor, wire.OpSetFillGradient, wire.OpSetFillPattern))
	c.strokePaint = newAttr(colorPaint(defaultStrokeColor),
		emitPaint(wire.OpSetStrokeColor, wire.OpSetStrokeGradient, wire.OpSetStrokePattern))
	c.globalAlpha = newAttr(defaultGlobalAlpha, emitFloat(wire.OpSetGlobalAlpha))
	c.compositeOp = newAttr(defaultCompositeOperation, emitString(wire.OpSetCompositeOperation))
	c.filter = newAttr(defaultFilter, emitString(wire.OpSetFilter))
	c.smoothing = newAttr(true, func(b *wire.Buffer, on bool) {
		v := 0.0
		if on {
			v = 1.0
		}
		b.OpFloat(wire.OpSetImageSmoothing, v)
	})
	c.quality = newAttr(defaultSmoothingQuality, emitString(wire.OpSetImageSmoothingQuality))
	// Quality only matters while smoothing is enabled at the same depth;
	// flushing it while disabled would emit dead state changes.
	c.quality.gate = func(depth int) bool { return c.smoothing.get(depth) }
	c.lineWidth = newAttr(defaultLineWidth, emitFloat(wire.OpSetLineWidth))
	c.lineCap = newAttr(defaultLineCap, emitString(wire.OpSetLineCap))
	c.lineJoin = newAttr(defaultLineJoin, emitString(wire.OpSetLineJoin))
	c.miterLimit = newAttr(defaultMiterLimit, emitFloat(wire.OpSetMiterLimit))
	c.dash = newDashColumn()
	c.dashOffset = newAttr(0.0, emitFloat(wire.OpSetLineDashOffset))
	c.shadowBlur = newAttr(0.0, emitFloat(wire.OpSetShadowBlur))
	c.shadowColor = newAttr(defaultShadowColor, emitString(wire.OpSetShadowColor))
	c.shadowOffsetX = newAttr(0.0, emitFloat(wire.OpSetShadowOffsetX))
	c.shadowOffsetY = newAttr(0.0, emitFloat(wire.OpSetShadowOffsetY))
	c.font = newAttr(defaultFont, emitString(wire.OpSetFont))
	c.textAlign = newAttr(defaultTextAlign, emitString(wire.OpSetTextAlign))
	c.textBaseline = newAttr(defaultTextBaseline, emitString(wire.OpSetTextBaseline))
	c.direction = newAttr(defaultDirection, emitString(wire.OpSetDirection))

	c.columns = []column{
		c.transform,
		c.fillPaint,
		c.strokePaint,
		c.globalAlpha,
		c.compositeOp,
		c.filter,
		c.smoothing,
		c.quality,
		c.lineWidth,
		c.lineCap,
		c.lineJoin,
		c.miterLimit,
		c.dash,
		c.dashOffset,
		c.shadowBlur,
		c.shadowColor,
		c.shadowOffsetX,
		c.shadowOffsetY,
		c.font,
		c.textAlign,
		c.textBaseline,
		c.direction,
	}
	return c
}

func emitFloat(op wire.Op) func(*wire.Buffer, float64) {
	return func(b *wire.Buffer, v float64) { b.OpFloat(op, v) }
}

func emitString(op wire.Op) func(*wire.Buffer, string) {
	return func(b *wire.Buffer, s string) { b.OpString(op, s) }
}

// ID returns the externally-assigned context id.
// host.UnboundContext (-1) marks a context without a host-side surface.
func (c *Context) ID() int32 {
	return c.id
}

// Depth returns the current nesting depth in [0, 254].
func (c *Context) Depth() int {
	return c.depth
}

// Buffer returns the context's instruction buffer for inspection.
func (c *Context) Buffer() *wire.Buffer {
	return c.buf
}

// Take returns the encoded instruction stream and resets the buffer for
// reuse. The last-emitted shadows are deliberately left intact: the host's
// state persists across buffer handoffs, so future diffs must still be
// computed against what was actually emitted.
func (c *Context) Take() []byte {
	Logger().Debug("canvaswire: buffer handoff",
		"context", c.id, "bytes", c.buf.Len(), "ops", c.buf.OpCount())
	return c.buf.Take()
}

// Save snapshots every attribute at the current depth and advances to the
// next depth, emitting a host-visible Save instruction. Use Restore to
// return.
//
// Saving beyond depth 254 panics: the encoder has no defined behavior past
// the fixed stack capacity and must not silently truncate state.
func (c *Context) Save() {
	c.save(true)
}

// SaveLocal is Save without the host round trip: state is snapshotted
// locally and no Save instruction is emitted. The matching Restore will
// not emit either, and will leave the last-emitted shadows untouched, so
// the next flush diffs against whatever the host last actually received.
//
// This is the mechanism for transient excursions, e.g. temporarily
// switching attributes to measure something without disturbing the host's
// state stack.
func (c *Context) SaveLocal() {
	c.save(false)
}

func (c *Context) save(hard bool) {
	if c.depth >= maxDepth {
		panic("canvaswire: save: state stack overflow (max depth 254)")
	}
	for _, col := range c.columns {
		col.copyForward(c.depth, c.depth+1)
	}
	c.hard[c.depth+1] = hard
	if hard {
		c.buf.Op(wire.OpSave)
	}
	c.depth++
}

// Restore returns to the previous nesting depth. At depth 0 it is a no-op.
//
// If the matching save was host-visible, a Restore instruction is emitted
// and the shadows are resynchronized by diffing against the target depth:
// any attribute whose last-emitted value differs from the restored value is
// re-emitted right after the Restore. The host's native restore rolls back
// to its state at the save point, which is not necessarily the restored
// slot value (pre-save writes may never have been flushed), so the diff is
// the only correct source of truth. After a SaveLocal, shadows are left
// untouched: no host-visible restore occurred, so whatever was last
// emitted is still live on the host.
func (c *Context) Restore() {
	if c.depth == 0 {
		Logger().Debug("canvaswire: restore at depth 0 ignored", "context", c.id)
		return
	}
	if c.hard[c.depth] {
		c.buf.Op(wire.OpRestore)
		for _, col := range c.columns {
			col.flush(c.buf, c.depth-1)
		}
	}
	c.depth--
}

// flushState diffs every attribute column in canonical order against its
// last-emitted shadow and appends the state changes needed to bring the
// host up to date. Called before every state-consuming draw instruction.
func (c *Context) flushState() {
	for _, col := range c.columns {
		col.flush(c.buf, c.depth)
	}
}
