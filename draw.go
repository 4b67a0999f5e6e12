package canvaswire

import (
	"github.com/gogpu/canvaswire/wire"
)

// Draw operations consume graphics state, so each one flushes pending
// attribute changes before appending its own instruction. The flush keeps
// the stream minimal: only attributes whose effective value differs from
// what the host last received are re-emitted, in canonical order.

// Fill fills the current path using the non-zero winding rule.
func (c *Context) Fill() {
	c.flushState()
	c.buf.Op(wire.OpFill)
}

// FillEvenOdd fills the current path using the even-odd rule.
func (c *Context) FillEvenOdd() {
	c.flushState()
	c.buf.Op(wire.OpFillEvenOdd)
}

// Stroke strokes the current path.
func (c *Context) Stroke() {
	c.flushState()
	c.buf.Op(wire.OpStroke)
}

// Clip intersects the clip region with the current path (non-zero rule).
func (c *Context) Clip() {
	c.flushState()
	c.buf.Op(wire.OpClip)
}

// ClipEvenOdd intersects the clip region with the current path (even-odd
// rule).
func (c *Context) ClipEvenOdd() {
	c.flushState()
	c.buf.Op(wire.OpClipEvenOdd)
}

// FillRect fills an axis-aligned rectangle without touching the current
// path.
func (c *Context) FillRect(x, y, w, h float64) {
	c.flushState()
	c.buf.OpArray(wire.OpFillRect, x, y, w, h)
}

// StrokeRect strokes an axis-aligned rectangle without touching the
// current path.
func (c *Context) StrokeRect(x, y, w, h float64) {
	c.flushState()
	c.buf.OpArray(wire.OpStrokeRect, x, y, w, h)
}

// ClearRect clears an axis-aligned rectangle to transparent black.
func (c *Context) ClearRect(x, y, w, h float64) {
	c.flushState()
	c.buf.OpArray(wire.OpClearRect, x, y, w, h)
}

// FillText fills a text run with its anchor at (x, y).
func (c *Context) FillText(s string, x, y float64) {
	c.flushState()
	c.buf.OpStringArray(wire.OpFillText, s, x, y)
}

// FillTextMaxWidth is FillText with a maximum advance width; the host
// condenses the run to fit.
func (c *Context) FillTextMaxWidth(s string, x, y, maxWidth float64) {
	c.flushState()
	c.buf.OpStringArray(wire.OpFillText, s, x, y, maxWidth)
}

// StrokeText strokes a text run with its anchor at (x, y).
func (c *Context) StrokeText(s string, x, y float64) {
	c.flushState()
	c.buf.OpStringArray(wire.OpStrokeText, s, x, y)
}

// StrokeTextMaxWidth is StrokeText with a maximum advance width.
func (c *Context) StrokeTextMaxWidth(s string, x, y, maxWidth float64) {
	c.flushState()
	c.buf.OpStringArray(wire.OpStrokeText, s, x, y, maxWidth)
}

// DrawImage draws a host-owned image with its top-left corner at (dx, dy).
func (c *Context) DrawImage(imageID uint32, dx, dy float64) {
	c.flushState()
	c.buf.OpHandleArray(wire.OpDrawImage, imageID, dx, dy)
}

// DrawImageScaled draws a host-owned image scaled into the destination
// rectangle (dx, dy, dw, dh).
func (c *Context) DrawImageScaled(imageID uint32, dx, dy, dw, dh float64) {
	c.flushState()
	c.buf.OpHandleArray(wire.OpDrawImage, imageID, dx, dy, dw, dh)
}

// DrawImageSub draws the source rectangle (sx, sy, sw, sh) of a host-owned
// image scaled into the destination rectangle (dx, dy, dw, dh).
func (c *Context) DrawImageSub(imageID uint32, sx, sy, sw, sh, dx, dy, dw, dh float64) {
	c.flushState()
	c.buf.OpHandleArray(wire.OpDrawImage, imageID, sx, sy, sw, sh, dx, dy, dw, dh)
}
