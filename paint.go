package canvaswire

import (
	"github.com/gogpu/canvaswire/wire"
)

// PaintKind discriminates the three forms a fill or stroke style can take.
type PaintKind uint8

const (
	// PaintColor is a plain color string, forwarded opaque to the host.
	PaintColor PaintKind = iota
	// PaintGradient references a host-owned gradient by handle.
	PaintGradient
	// PaintPattern references a host-owned pattern by handle.
	PaintPattern
)

// String returns a human-readable name for the paint kind.
func (k PaintKind) String() string {
	switch k {
	case PaintColor:
		return "Color"
	case PaintGradient:
		return "Gradient"
	case PaintPattern:
		return "Pattern"
	default:
		return "Unknown"
	}
}

// Paint is the value of a fill or stroke style attribute. The discriminant
// decides which of the three owning opcodes a flush emits.
type Paint struct {
	Kind   PaintKind
	Color  string
	Handle uint32
}

// colorPaint wraps a color string as a Paint value.
func colorPaint(color string) Paint {
	return Paint{Kind: PaintColor, Color: color}
}

// emitPaint returns the emit closure for a paint attribute, binding the
// three opcodes the flush step chooses among.
func emitPaint(colorOp, gradientOp, patternOp wire.Op) func(*wire.Buffer, Paint) {
	return func(b *wire.Buffer, p Paint) {
		switch p.Kind {
		case PaintGradient:
			b.OpHandle(gradientOp, p.Handle)
		case PaintPattern:
			b.OpHandle(patternOp, p.Handle)
		default:
			b.OpString(colorOp, p.Color)
		}
	}
}
