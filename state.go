package canvaswire

import "math"

// Attribute setters write into the current depth's slot only; nothing is
// emitted until the next draw instruction flushes the change. Numeric
// setters silently ignore NaN; string setters treat "" as a revert to the
// attribute's documented default. Syntax of colors, fonts and filter
// strings is not validated here: the host owns that responsibility.

// SetTransform replaces the stored transformation matrix with the six
// affine coefficients (a, b, c, d, e, f). Coefficients containing NaN are
// ignored.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	if anyNaN(a, b, cc, d, e, f) {
		return
	}
	c.transform.set(c.depth, Transform{A: a, B: b, C: cc, D: d, E: e, F: f})
}

// GetTransform returns the stored transformation matrix.
func (c *Context) GetTransform() Transform {
	return c.transform.get(c.depth)
}

// ResetTransform restores the identity transformation.
func (c *Context) ResetTransform() {
	c.transform.set(c.depth, Identity())
}

// SetFillColor sets the fill style to a plain color string.
// An empty string reverts to the default fill color.
func (c *Context) SetFillColor(color string) {
	if color == "" {
		color = defaultFillColor
	}
	c.fillPaint.set(c.depth, colorPaint(color))
}

// SetStrokeColor sets the stroke style to a plain color string.
// An empty string reverts to the default stroke color.
func (c *Context) SetStrokeColor(color string) {
	if color == "" {
		color = defaultStrokeColor
	}
	c.strokePaint.set(c.depth, colorPaint(color))
}

// FillStyle returns the current fill paint.
func (c *Context) FillStyle() Paint {
	return c.fillPaint.get(c.depth)
}

// StrokeStyle returns the current stroke paint.
func (c *Context) StrokeStyle() Paint {
	return c.strokePaint.get(c.depth)
}

// SetGlobalAlpha sets the global alpha. NaN is ignored; other values are
// clamped into [0, 1].
func (c *Context) SetGlobalAlpha(v float64) {
	if math.IsNaN(v) {
		return
	}
	c.globalAlpha.set(c.depth, clamp01(v))
}

// GlobalAlpha returns the current global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.globalAlpha.get(c.depth)
}

// SetCompositeOperation sets the compositing operator string.
// An empty string reverts to "source-over".
func (c *Context) SetCompositeOperation(op string) {
	if op == "" {
		op = defaultCompositeOperation
	}
	c.compositeOp.set(c.depth, op)
}

// CompositeOperation returns the current compositing operator.
func (c *Context) CompositeOperation() string {
	return c.compositeOp.get(c.depth)
}

// SetFilter sets the filter string. An empty string reverts to "none".
func (c *Context) SetFilter(filter string) {
	if filter == "" {
		filter = defaultFilter
	}
	c.filter.set(c.depth, filter)
}

// Filter returns the current filter string.
func (c *Context) Filter() string {
	return c.filter.get(c.depth)
}

// SetImageSmoothingEnabled enables or disables image smoothing.
func (c *Context) SetImageSmoothingEnabled(on bool) {
	c.smoothing.set(c.depth, on)
}

// ImageSmoothingEnabled returns whether image smoothing is enabled.
func (c *Context) ImageSmoothingEnabled() bool {
	return c.smoothing.get(c.depth)
}

// SetImageSmoothingQuality sets the smoothing quality string.
// An empty string reverts to "low". The quality only reaches the host
// while smoothing is enabled.
func (c *Context) SetImageSmoothingQuality(q string) {
	if q == "" {
		q = defaultSmoothingQuality
	}
	c.quality.set(c.depth, q)
}

// ImageSmoothingQuality returns the stored smoothing quality.
func (c *Context) ImageSmoothingQuality() string {
	return c.quality.get(c.depth)
}

// SetLineWidth sets the stroke width. NaN is ignored.
func (c *Context) SetLineWidth(w float64) {
	if math.IsNaN(w) {
		return
	}
	c.lineWidth.set(c.depth, w)
}

// LineWidth returns the current stroke width.
func (c *Context) LineWidth() float64 {
	return c.lineWidth.get(c.depth)
}

// SetLineCap sets the line cap style. An empty string reverts to "butt".
func (c *Context) SetLineCap(style string) {
	if style == "" {
		style = defaultLineCap
	}
	c.lineCap.set(c.depth, style)
}

// LineCap returns the current line cap style.
func (c *Context) LineCap() string {
	return c.lineCap.get(c.depth)
}

// SetLineJoin sets the line join style. An empty string reverts to "miter".
func (c *Context) SetLineJoin(join string) {
	if join == "" {
		join = defaultLineJoin
	}
	c.lineJoin.set(c.depth, join)
}

// LineJoin returns the current line join style.
func (c *Context) LineJoin() string {
	return c.lineJoin.get(c.depth)
}

// SetMiterLimit sets the miter limit. NaN is ignored.
func (c *Context) SetMiterLimit(limit float64) {
	if math.IsNaN(limit) {
		return
	}
	c.miterLimit.set(c.depth, limit)
}

// MiterLimit returns the current miter limit.
func (c *Context) MiterLimit() float64 {
	return c.miterLimit.get(c.depth)
}

// SetLineDash sets the dash pattern to a copy of segs. An empty (or nil)
// sequence is stored as an explicit solid line, not as "inherit".
func (c *Context) SetLineDash(segs []float64) {
	c.dash.set(c.depth, segs)
}

// GetLineDash returns a copy of the effective dash pattern. The stored
// sequence is returned verbatim; duplication of odd-length patterns is a
// host-side rendering rule.
func (c *Context) GetLineDash() []float64 {
	return c.dash.get(c.depth)
}

// SetLineDashOffset sets the starting offset into the dash pattern.
// NaN is ignored.
func (c *Context) SetLineDashOffset(offset float64) {
	if math.IsNaN(offset) {
		return
	}
	c.dashOffset.set(c.depth, offset)
}

// LineDashOffset returns the current dash offset.
func (c *Context) LineDashOffset() float64 {
	return c.dashOffset.get(c.depth)
}

// SetShadowBlur sets the shadow blur radius. NaN is ignored.
func (c *Context) SetShadowBlur(blur float64) {
	if math.IsNaN(blur) {
		return
	}
	c.shadowBlur.set(c.depth, blur)
}

// ShadowBlur returns the current shadow blur radius.
func (c *Context) ShadowBlur() float64 {
	return c.shadowBlur.get(c.depth)
}

// SetShadowColor sets the shadow color string.
// An empty string reverts to fully transparent black.
func (c *Context) SetShadowColor(color string) {
	if color == "" {
		color = defaultShadowColor
	}
	c.shadowColor.set(c.depth, color)
}

// ShadowColor returns the current shadow color string.
func (c *Context) ShadowColor() string {
	return c.shadowColor.get(c.depth)
}

// SetShadowOffsetX sets the horizontal shadow offset. NaN is ignored.
func (c *Context) SetShadowOffsetX(dx float64) {
	if math.IsNaN(dx) {
		return
	}
	c.shadowOffsetX.set(c.depth, dx)
}

// ShadowOffsetX returns the horizontal shadow offset.
func (c *Context) ShadowOffsetX() float64 {
	return c.shadowOffsetX.get(c.depth)
}

// SetShadowOffsetY sets the vertical shadow offset. NaN is ignored.
func (c *Context) SetShadowOffsetY(dy float64) {
	if math.IsNaN(dy) {
		return
	}
	c.shadowOffsetY.set(c.depth, dy)
}

// ShadowOffsetY returns the vertical shadow offset.
func (c *Context) ShadowOffsetY() float64 {
	return c.shadowOffsetY.get(c.depth)
}

// SetFont sets the font shorthand string.
// An empty string reverts to "10px sans-serif".
func (c *Context) SetFont(font string) {
	if font == "" {
		font = defaultFont
	}
	c.font.set(c.depth, font)
}

// Font returns the current font shorthand string.
func (c *Context) Font() string {
	return c.font.get(c.depth)
}

// SetTextAlign sets the horizontal text alignment.
// An empty string reverts to "start".
func (c *Context) SetTextAlign(align string) {
	if align == "" {
		align = defaultTextAlign
	}
	c.textAlign.set(c.depth, align)
}

// TextAlign returns the current text alignment.
func (c *Context) TextAlign() string {
	return c.textAlign.get(c.depth)
}

// SetTextBaseline sets the vertical text baseline.
// An empty string reverts to "alphabetic".
func (c *Context) SetTextBaseline(baseline string) {
	if baseline == "" {
		baseline = defaultTextBaseline
	}
	c.textBaseline.set(c.depth, baseline)
}

// TextBaseline returns the current text baseline.
func (c *Context) TextBaseline() string {
	return c.textBaseline.get(c.depth)
}

// SetDirection sets the text direction.
// An empty string reverts to "inherit".
func (c *Context) SetDirection(dir string) {
	if dir == "" {
		dir = defaultDirection
	}
	c.direction.set(c.depth, dir)
}

// Direction returns the current text direction.
func (c *Context) Direction() string {
	return c.direction.get(c.depth)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func anyNaN(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
