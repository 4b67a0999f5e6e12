// Package wire defines the instruction stream shared between a canvaswire
// context and the host that executes it.
//
// The stream is a flat, append-only byte buffer. Each instruction is a
// single-byte opcode tag followed by its operands. Operand encodings:
//   - float operands are little-endian IEEE-754 float64
//   - resource handles are little-endian uint32
//   - strings are uint32 byte length + UTF-8 bytes
//   - float arrays are uint32 count + float64 values
//
// The package is pure serialization infrastructure: it never interprets
// operand semantics. Attribute diffing lives in the canvaswire root package.
package wire

// Op is a single-byte instruction tag.
// Tags are organized into groups by their high nibble:
//
//	0x0X: stack and transform
//	0x1X: paint and compositing state
//	0x2X: line state
//	0x3X: shadow state
//	0x4X: text state
//	0x5X: path construction
//	0x6X: draw operations
//	0x7X: resource creation markers
type Op byte

const (
	// OpSave instructs the host to push its native graphics state.
	// Operands: none.
	OpSave Op = 0x01

	// OpRestore instructs the host to pop its native graphics state.
	// Operands: none.
	OpRestore Op = 0x02

	// OpSetTransform replaces the current transformation matrix.
	// Operands: 6 floats [a, b, c, d, e, f].
	OpSetTransform Op = 0x03

	// OpSetGlobalAlpha sets the global alpha in [0, 1].
	// Operands: 1 float.
	OpSetGlobalAlpha Op = 0x10

	// OpSetCompositeOperation sets the compositing operator.
	// Operands: string (e.g. "source-over"), forwarded opaque to the host.
	OpSetCompositeOperation Op = 0x11

	// OpSetFillColor sets the fill style to a plain color string.
	// Operands: string.
	OpSetFillColor Op = 0x12

	// OpSetFillGradient sets the fill style to a host-owned gradient.
	// Operands: 1 handle.
	OpSetFillGradient Op = 0x13

	// OpSetFillPattern sets the fill style to a host-owned pattern.
	// Operands: 1 handle.
	OpSetFillPattern Op = 0x14

	// OpSetStrokeColor sets the stroke style to a plain color string.
	// Operands: string.
	OpSetStrokeColor Op = 0x15

	// OpSetStrokeGradient sets the stroke style to a host-owned gradient.
	// Operands: 1 handle.
	OpSetStrokeGradient Op = 0x16

	// OpSetStrokePattern sets the stroke style to a host-owned pattern.
	// Operands: 1 handle.
	OpSetStrokePattern Op = 0x17

	// OpSetFilter sets the filter string ("none" disables filtering).
	// Operands: string, forwarded opaque to the host.
	OpSetFilter Op = 0x18

	// OpSetImageSmoothing enables or disables image smoothing.
	// Operands: 1 float (0 disabled, 1 enabled).
	OpSetImageSmoothing Op = 0x19

	// OpSetImageSmoothingQuality sets the smoothing quality.
	// Operands: string ("low", "medium", "high").
	OpSetImageSmoothingQuality Op = 0x1A

	// OpSetLineWidth sets the stroke width.
	// Operands: 1 float.
	OpSetLineWidth Op = 0x20

	// OpSetLineCap sets the line cap style.
	// Operands: string ("butt", "round", "square").
	OpSetLineCap Op = 0x21

	// OpSetLineJoin sets the line join style.
	// Operands: string ("miter", "round", "bevel").
	OpSetLineJoin Op = 0x22

	// OpSetMiterLimit sets the miter limit.
	// Operands: 1 float.
	OpSetMiterLimit Op = 0x23

	// OpSetLineDash sets the dash pattern.
	// Operands: float array of alternating dash/gap lengths; empty = solid.
	OpSetLineDash Op = 0x24

	// OpSetLineDashOffset sets the starting offset into the dash pattern.
	// Operands: 1 float.
	OpSetLineDashOffset Op = 0x25

	// OpSetShadowBlur sets the shadow blur radius.
	// Operands: 1 float.
	OpSetShadowBlur Op = 0x30

	// OpSetShadowColor sets the shadow color.
	// Operands: string, forwarded opaque to the host.
	OpSetShadowColor Op = 0x31

	// OpSetShadowOffsetX sets the horizontal shadow offset.
	// Operands: 1 float.
	OpSetShadowOffsetX Op = 0x32

	// OpSetShadowOffsetY sets the vertical shadow offset.
	// Operands: 1 float.
	OpSetShadowOffsetY Op = 0x33

	// OpSetFont sets the font shorthand string.
	// Operands: string, forwarded opaque to the host.
	OpSetFont Op = 0x40

	// OpSetTextAlign sets the horizontal text alignment.
	// Operands: string ("start", "end", "left", "right", "center").
	OpSetTextAlign Op = 0x41

	// OpSetTextBaseline sets the vertical text baseline.
	// Operands: string ("alphabetic", "top", "middle", ...).
	OpSetTextBaseline Op = 0x42

	// OpSetDirection sets the text direction.
	// Operands: string ("ltr", "rtl", "inherit").
	OpSetDirection Op = 0x43

	// OpBeginPath starts a new path.
	// Operands: none.
	OpBeginPath Op = 0x50

	// OpClosePath closes the current subpath.
	// Operands: none.
	OpClosePath Op = 0x51

	// OpMoveTo moves the current point without drawing.
	// Operands: 2 floats [x, y].
	OpMoveTo Op = 0x52

	// OpLineTo adds a line segment.
	// Operands: 2 floats [x, y].
	OpLineTo Op = 0x53

	// OpQuadraticCurveTo adds a quadratic Bezier segment.
	// Operands: float array [cx, cy, x, y].
	OpQuadraticCurveTo Op = 0x54

	// OpBezierCurveTo adds a cubic Bezier segment.
	// Operands: 6 floats [c1x, c1y, c2x, c2y, x, y].
	OpBezierCurveTo Op = 0x55

	// OpArc adds a circular arc.
	// Operands: float array [x, y, r, startAngle, endAngle, counterclockwise].
	OpArc Op = 0x56

	// OpArcTo adds an arc connecting two tangent lines.
	// Operands: float array [x1, y1, x2, y2, r].
	OpArcTo Op = 0x57

	// OpEllipse adds an elliptical arc.
	// Operands: float array
	// [x, y, rx, ry, rotation, startAngle, endAngle, counterclockwise].
	OpEllipse Op = 0x58

	// OpRect adds a closed rectangle subpath.
	// Operands: float array [x, y, w, h].
	OpRect Op = 0x59

	// OpRoundRect adds a closed rounded-rectangle subpath.
	// Operands: float array [x, y, w, h, radii...].
	OpRoundRect Op = 0x5A

	// OpFill fills the current path with the non-zero winding rule.
	// Operands: none.
	OpFill Op = 0x60

	// OpFillEvenOdd fills the current path with the even-odd rule.
	// Operands: none.
	OpFillEvenOdd Op = 0x61

	// OpStroke strokes the current path.
	// Operands: none.
	OpStroke Op = 0x62

	// OpClip intersects the clip region with the current path (non-zero).
	// Operands: none.
	OpClip Op = 0x63

	// OpClipEvenOdd intersects the clip region with the current path (even-odd).
	// Operands: none.
	OpClipEvenOdd Op = 0x64

	// OpFillRect fills an axis-aligned rectangle.
	// Operands: float array [x, y, w, h].
	OpFillRect Op = 0x65

	// OpStrokeRect strokes an axis-aligned rectangle.
	// Operands: float array [x, y, w, h].
	OpStrokeRect Op = 0x66

	// OpClearRect clears an axis-aligned rectangle to transparent black.
	// Operands: float array [x, y, w, h].
	OpClearRect Op = 0x67

	// OpFillText fills a text run.
	// Operands: string + float array [x, y] or [x, y, maxWidth].
	OpFillText Op = 0x68

	// OpStrokeText strokes a text run.
	// Operands: string + float array [x, y] or [x, y, maxWidth].
	OpStrokeText Op = 0x69

	// OpDrawImage draws a host-owned image.
	// Operands: 1 handle + float array [dx, dy], [dx, dy, dw, dh], or
	// [sx, sy, sw, sh, dx, dy, dw, dh].
	OpDrawImage Op = 0x6A

	// OpCreateLinearGradient marks creation of a linear gradient.
	// Operands: 1 handle (the assigned id) + float array [x0, y0, x1, y1].
	OpCreateLinearGradient Op = 0x70

	// OpCreateRadialGradient marks creation of a radial gradient.
	// Operands: 1 handle + float array [x0, y0, r0, x1, y1, r1].
	OpCreateRadialGradient Op = 0x71

	// OpCreatePattern marks creation of a pattern from an image.
	// Operands: 2 handles [pattern id, image id] + string repetition mode.
	OpCreatePattern Op = 0x72

	// OpAddColorStop adds a color stop to a gradient.
	// Operands: 1 handle + 1 float offset + string color.
	OpAddColorStop Op = 0x73
)

// OperandLayout describes how an op's operands are encoded in the stream.
// The decoder dispatches on the layout; the encoder's typed append methods
// each produce exactly one layout.
type OperandLayout uint8

const (
	// LayoutNone has no operands.
	LayoutNone OperandLayout = iota
	// LayoutFloat is a single float64 operand.
	LayoutFloat
	// LayoutPoint is two float64 operands (a coordinate pair).
	LayoutPoint
	// LayoutSix is six float64 operands (affine coefficients or a cubic segment).
	LayoutSix
	// LayoutHandle is a single uint32 resource handle.
	LayoutHandle
	// LayoutString is a length-prefixed string.
	LayoutString
	// LayoutArray is a count-prefixed float64 array.
	LayoutArray
	// LayoutStringArray is a string followed by a float array.
	LayoutStringArray
	// LayoutHandleArray is a handle followed by a float array.
	LayoutHandleArray
	// LayoutPattern is two handles followed by a string.
	LayoutPattern
	// LayoutColorStop is a handle, one float, then a string.
	LayoutColorStop
)

// opLayouts maps every defined op to its operand layout.
// Ops absent from this table are unknown to the decoder.
var opLayouts = map[Op]OperandLayout{
	OpSave:                     LayoutNone,
	OpRestore:                  LayoutNone,
	OpSetTransform:             LayoutSix,
	OpSetGlobalAlpha:           LayoutFloat,
	OpSetCompositeOperation:    LayoutString,
	OpSetFillColor:             LayoutString,
	OpSetFillGradient:          LayoutHandle,
	OpSetFillPattern:           LayoutHandle,
	OpSetStrokeColor:           LayoutString,
	OpSetStrokeGradient:        LayoutHandle,
	OpSetStrokePattern:         LayoutHandle,
	OpSetFilter:                LayoutString,
	OpSetImageSmoothing:        LayoutFloat,
	OpSetImageSmoothingQuality: LayoutString,
	OpSetLineWidth:             LayoutFloat,
	OpSetLineCap:               LayoutString,
	OpSetLineJoin:              LayoutString,
	OpSetMiterLimit:            LayoutFloat,
	OpSetLineDash:              LayoutArray,
	OpSetLineDashOffset:        LayoutFloat,
	OpSetShadowBlur:            LayoutFloat,
	OpSetShadowColor:           LayoutString,
	OpSetShadowOffsetX:         LayoutFloat,
	OpSetShadowOffsetY:         LayoutFloat,
	OpSetFont:                  LayoutString,
	OpSetTextAlign:             LayoutString,
	OpSetTextBaseline:          LayoutString,
	OpSetDirection:             LayoutString,
	OpBeginPath:                LayoutNone,
	OpClosePath:                LayoutNone,
	OpMoveTo:                   LayoutPoint,
	OpLineTo:                   LayoutPoint,
	OpQuadraticCurveTo:         LayoutArray,
	OpBezierCurveTo:            LayoutSix,
	OpArc:                      LayoutArray,
	OpArcTo:                    LayoutArray,
	OpEllipse:                  LayoutArray,
	OpRect:                     LayoutArray,
	OpRoundRect:                LayoutArray,
	OpFill:                     LayoutNone,
	OpFillEvenOdd:              LayoutNone,
	OpStroke:                   LayoutNone,
	OpClip:                     LayoutNone,
	OpClipEvenOdd:              LayoutNone,
	OpFillRect:                 LayoutArray,
	OpStrokeRect:               LayoutArray,
	OpClearRect:                LayoutArray,
	OpFillText:                 LayoutStringArray,
	OpStrokeText:               LayoutStringArray,
	OpDrawImage:                LayoutHandleArray,
	OpCreateLinearGradient:     LayoutHandleArray,
	OpCreateRadialGradient:     LayoutHandleArray,
	OpCreatePattern:            LayoutPattern,
	OpAddColorStop:             LayoutColorStop,
}

// opNames maps ops to their string representation.
var opNames = map[Op]string{
	OpSave:                     "Save",
	OpRestore:                  "Restore",
	OpSetTransform:             "SetTransform",
	OpSetGlobalAlpha:           "SetGlobalAlpha",
	OpSetCompositeOperation:    "SetCompositeOperation",
	OpSetFillColor:             "SetFillColor",
	OpSetFillGradient:          "SetFillGradient",
	OpSetFillPattern:           "SetFillPattern",
	OpSetStrokeColor:           "SetStrokeColor",
	OpSetStrokeGradient:        "SetStrokeGradient",
	OpSetStrokePattern:         "SetStrokePattern",
	OpSetFilter:                "SetFilter",
	OpSetImageSmoothing:        "SetImageSmoothing",
	OpSetImageSmoothingQuality: "SetImageSmoothingQuality",
	OpSetLineWidth:             "SetLineWidth",
	OpSetLineCap:               "SetLineCap",
	OpSetLineJoin:              "SetLineJoin",
	OpSetMiterLimit:            "SetMiterLimit",
	OpSetLineDash:              "SetLineDash",
	OpSetLineDashOffset:        "SetLineDashOffset",
	OpSetShadowBlur:            "SetShadowBlur",
	OpSetShadowColor:           "SetShadowColor",
	OpSetShadowOffsetX:         "SetShadowOffsetX",
	OpSetShadowOffsetY:         "SetShadowOffsetY",
	OpSetFont:                  "SetFont",
	OpSetTextAlign:             "SetTextAlign",
	OpSetTextBaseline:          "SetTextBaseline",
	OpSetDirection:             "SetDirection",
	OpBeginPath:                "BeginPath",
	OpClosePath:                "ClosePath",
	OpMoveTo:                   "MoveTo",
	OpLineTo:                   "LineTo",
	OpQuadraticCurveTo:         "QuadraticCurveTo",
	OpBezierCurveTo:            "BezierCurveTo",
	OpArc:                      "Arc",
	OpArcTo:                    "ArcTo",
	OpEllipse:                  "Ellipse",
	OpRect:                     "Rect",
	OpRoundRect:                "RoundRect",
	OpFill:                     "Fill",
	OpFillEvenOdd:              "FillEvenOdd",
	OpStroke:                   "Stroke",
	OpClip:                     "Clip",
	OpClipEvenOdd:              "ClipEvenOdd",
	OpFillRect:                 "FillRect",
	OpStrokeRect:               "StrokeRect",
	OpClearRect:                "ClearRect",
	OpFillText:                 "FillText",
	OpStrokeText:               "StrokeText",
	OpDrawImage:                "DrawImage",
	OpCreateLinearGradient:     "CreateLinearGradient",
	OpCreateRadialGradient:     "CreateRadialGradient",
	OpCreatePattern:            "CreatePattern",
	OpAddColorStop:             "AddColorStop",
}

// String returns a human-readable name for the op.
func (op Op) String() string {
	if name, ok := opNames[op]; ok {
		return name
	}
	return "Unknown"
}

// Layout returns the operand layout for the op.
// The second result is false for ops not defined by this package.
func (op Op) Layout() (OperandLayout, bool) {
	l, ok := opLayouts[op]
	return l, ok
}

// IsStateChange returns true if the op mutates host graphics state
// (attribute writes; Save/Restore are stack ops, not state changes).
func (op Op) IsStateChange() bool {
	return (op >= 0x03 && op < 0x50) && op != OpSave && op != OpRestore
}

// IsPathOp returns true if the op is a path construction command.
func (op Op) IsPathOp() bool {
	return op >= OpBeginPath && op <= OpRoundRect
}

// IsDrawOp returns true if the op consumes graphics state to produce output
// or clip (fill, stroke, clip, rect, text and image operations).
func (op Op) IsDrawOp() bool {
	return op >= OpFill && op <= OpDrawImage
}

// IsResourceOp returns true if the op is a resource creation marker.
func (op Op) IsResourceOp() bool {
	return op >= OpCreateLinearGradient && op <= OpAddColorStop
}
