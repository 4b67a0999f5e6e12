package canvaswire

import (
	"github.com/gogpu/canvaswire/wire"
)

// Path construction instructions encode directly: they carry no attribute
// dependency of their own, so no state flush happens until a draw
// instruction consumes the path. Coordinates are forwarded as given;
// geometric edge cases are the host's concern.

// BeginPath starts a new path, discarding any existing subpaths.
func (c *Context) BeginPath() {
	c.buf.Op(wire.OpBeginPath)
}

// ClosePath closes the current subpath.
func (c *Context) ClosePath() {
	c.buf.Op(wire.OpClosePath)
}

// MoveTo starts a new subpath at (x, y).
func (c *Context) MoveTo(x, y float64) {
	c.buf.OpPoint(wire.OpMoveTo, x, y)
}

// LineTo adds a line segment to (x, y).
func (c *Context) LineTo(x, y float64) {
	c.buf.OpPoint(wire.OpLineTo, x, y)
}

// QuadraticCurveTo adds a quadratic Bezier segment with control point
// (cpx, cpy) ending at (x, y).
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	c.buf.OpArray(wire.OpQuadraticCurveTo, cpx, cpy, x, y)
}

// BezierCurveTo adds a cubic Bezier segment with control points
// (cp1x, cp1y) and (cp2x, cp2y), ending at (x, y).
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	c.buf.OpSix(wire.OpBezierCurveTo, cp1x, cp1y, cp2x, cp2y, x, y)
}

// Arc adds a circular arc centered at (x, y) with the given radius, from
// startAngle to endAngle in radians.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) {
	c.buf.OpArray(wire.OpArc, x, y, radius, startAngle, endAngle, boolOperand(counterclockwise))
}

// ArcTo adds an arc of the given radius connecting the current point to
// (x2, y2) via the tangent through (x1, y1).
func (c *Context) ArcTo(x1, y1, x2, y2, radius float64) {
	c.buf.OpArray(wire.OpArcTo, x1, y1, x2, y2, radius)
}

// Ellipse adds an elliptical arc centered at (x, y) with radii (rx, ry),
// rotated by rotation radians, from startAngle to endAngle.
func (c *Context) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) {
	c.buf.OpArray(wire.OpEllipse,
		x, y, rx, ry, rotation, startAngle, endAngle, boolOperand(counterclockwise))
}

// Rect adds a closed rectangle subpath.
func (c *Context) Rect(x, y, w, h float64) {
	c.buf.OpArray(wire.OpRect, x, y, w, h)
}

// RoundRect adds a closed rounded-rectangle subpath. Radii follow the
// host's corner shorthand rules (1 to 4 values).
func (c *Context) RoundRect(x, y, w, h float64, radii ...float64) {
	args := append([]float64{x, y, w, h}, radii...)
	c.buf.OpArray(wire.OpRoundRect, args...)
}

// boolOperand encodes a flag as a float operand (0 or 1); the instruction
// format has no boolean arity.
func boolOperand(v bool) float64 {
	if v {
		return 1
	}
	return 0
}
