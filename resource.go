package canvaswire

import (
	"math"

	"github.com/gogpu/canvaswire/wire"
)

// defaultRepetition is the pattern repetition mode used when none is given.
const defaultRepetition = "repeat"

// Gradient is a host-owned gradient referenced by an opaque id. The core
// stores and compares the id only; the gradient's contents live on the
// host side.
type Gradient struct {
	ctx *Context
	id  uint32
}

// ID returns the host-assigned gradient id.
func (g *Gradient) ID() uint32 {
	return g.id
}

// AddColorStop appends a color stop instruction for the gradient.
// NaN offsets are ignored; offset range and color syntax are validated by
// the host, not here.
func (g *Gradient) AddColorStop(offset float64, color string) {
	if math.IsNaN(offset) {
		return
	}
	g.ctx.buf.OpColorStop(wire.OpAddColorStop, g.id, offset, color)
}

// Pattern is a host-owned pattern referenced by an opaque id.
type Pattern struct {
	ctx *Context
	id  uint32
}

// ID returns the host-assigned pattern id.
func (p *Pattern) ID() uint32 {
	return p.id
}

// CreateLinearGradient allocates a linear gradient on the host along the
// line (x0, y0)-(x1, y1) and appends the matching creation marker so the
// stream can be replayed.
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) *Gradient {
	id := c.host.CreateLinearGradient(c.id, x0, y0, x1, y1)
	c.buf.OpHandleArray(wire.OpCreateLinearGradient, id, x0, y0, x1, y1)
	return &Gradient{ctx: c, id: id}
}

// CreateRadialGradient allocates a radial gradient on the host between the
// circles (x0, y0, r0) and (x1, y1, r1) and appends the matching creation
// marker.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) *Gradient {
	id := c.host.CreateRadialGradient(c.id, x0, y0, r0, x1, y1, r1)
	c.buf.OpHandleArray(wire.OpCreateRadialGradient, id, x0, y0, r0, x1, y1, r1)
	return &Gradient{ctx: c, id: id}
}

// CreatePattern allocates a pattern on the host from a previously
// registered image and appends the matching creation marker. An empty
// repetition mode defaults to "repeat".
func (c *Context) CreatePattern(imageID uint32, repetition string) *Pattern {
	if repetition == "" {
		repetition = defaultRepetition
	}
	id := c.host.CreatePattern(c.id, imageID, repetition)
	c.buf.OpPattern(wire.OpCreatePattern, id, imageID, repetition)
	return &Pattern{ctx: c, id: id}
}

// SetFillGradient sets the fill style to a gradient.
// A nil gradient reverts the fill style to the default color.
func (c *Context) SetFillGradient(g *Gradient) {
	if g == nil {
		c.fillPaint.set(c.depth, colorPaint(defaultFillColor))
		return
	}
	c.fillPaint.set(c.depth, Paint{Kind: PaintGradient, Handle: g.id})
}

// SetFillPattern sets the fill style to a pattern.
// A nil pattern reverts the fill style to the default color.
func (c *Context) SetFillPattern(p *Pattern) {
	if p == nil {
		c.fillPaint.set(c.depth, colorPaint(defaultFillColor))
		return
	}
	c.fillPaint.set(c.depth, Paint{Kind: PaintPattern, Handle: p.id})
}

// SetStrokeGradient sets the stroke style to a gradient.
// A nil gradient reverts the stroke style to the default color.
func (c *Context) SetStrokeGradient(g *Gradient) {
	if g == nil {
		c.strokePaint.set(c.depth, colorPaint(defaultStrokeColor))
		return
	}
	c.strokePaint.set(c.depth, Paint{Kind: PaintGradient, Handle: g.id})
}

// SetStrokePattern sets the stroke style to a pattern.
// A nil pattern reverts the stroke style to the default color.
func (c *Context) SetStrokePattern(p *Pattern) {
	if p == nil {
		c.strokePaint.set(c.depth, colorPaint(defaultStrokeColor))
		return
	}
	c.strokePaint.set(c.depth, Paint{Kind: PaintPattern, Handle: p.id})
}
