package wire

import (
	"encoding/binary"
	"math"
)

// Buffer is an append-only instruction encoder.
//
// Instructions are written as a one-byte opcode tag followed by the operands
// described by the op's layout. The buffer grows as needed and can be reused
// after Reset or Take without reallocating.
//
// Buffer never interprets operand semantics; callers are responsible for
// pairing each op with the append method matching its layout.
//
// Buffer is not safe for concurrent use.
type Buffer struct {
	buf []byte
	ops int
}

// NewBuffer creates an empty instruction buffer with a small preallocation.
func NewBuffer() *Buffer {
	return &Buffer{buf: make([]byte, 0, 1024)}
}

// Bytes returns the encoded instruction stream.
// The returned slice is valid until the next append, Reset, or Take.
func (b *Buffer) Bytes() []byte {
	return b.buf
}

// Len returns the encoded length in bytes.
func (b *Buffer) Len() int {
	return len(b.buf)
}

// OpCount returns the number of instructions appended since the last reset.
func (b *Buffer) OpCount() int {
	return b.ops
}

// Reset clears the buffer for reuse without deallocating.
func (b *Buffer) Reset() {
	b.buf = b.buf[:0]
	b.ops = 0
}

// Take returns the encoded stream and resets the buffer for reuse.
// The returned slice is an independent copy.
func (b *Buffer) Take() []byte {
	out := make([]byte, len(b.buf))
	copy(out, b.buf)
	b.Reset()
	return out
}

func (b *Buffer) tag(op Op) {
	b.buf = append(b.buf, byte(op))
	b.ops++
}

func (b *Buffer) float(v float64) {
	b.buf = binary.LittleEndian.AppendUint64(b.buf, math.Float64bits(v))
}

func (b *Buffer) handle(id uint32) {
	b.buf = binary.LittleEndian.AppendUint32(b.buf, id)
}

func (b *Buffer) str(s string) {
	// #nosec G115 -- string length is bounded by available memory
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(len(s)))
	b.buf = append(b.buf, s...)
}

func (b *Buffer) arr(vs []float64) {
	// #nosec G115 -- array length is bounded by available memory
	b.buf = binary.LittleEndian.AppendUint32(b.buf, uint32(len(vs)))
	for _, v := range vs {
		b.float(v)
	}
}

// Op appends an instruction with no operands (LayoutNone).
func (b *Buffer) Op(op Op) {
	b.tag(op)
}

// OpFloat appends an instruction with one float operand (LayoutFloat).
func (b *Buffer) OpFloat(op Op, v float64) {
	b.tag(op)
	b.float(v)
}

// OpPoint appends an instruction with two float operands (LayoutPoint).
func (b *Buffer) OpPoint(op Op, x, y float64) {
	b.tag(op)
	b.float(x)
	b.float(y)
}

// OpSix appends an instruction with six float operands (LayoutSix).
// Used for affine coefficients and cubic Bezier segments.
func (b *Buffer) OpSix(op Op, v0, v1, v2, v3, v4, v5 float64) {
	b.tag(op)
	b.float(v0)
	b.float(v1)
	b.float(v2)
	b.float(v3)
	b.float(v4)
	b.float(v5)
}

// OpHandle appends an instruction with one resource handle (LayoutHandle).
func (b *Buffer) OpHandle(op Op, id uint32) {
	b.tag(op)
	b.handle(id)
}

// OpString appends an instruction with one string operand (LayoutString).
func (b *Buffer) OpString(op Op, s string) {
	b.tag(op)
	b.str(s)
}

// OpArray appends an instruction with a float array operand (LayoutArray).
func (b *Buffer) OpArray(op Op, vs ...float64) {
	b.tag(op)
	b.arr(vs)
}

// OpStringArray appends an instruction with a string followed by a float
// array (LayoutStringArray). Used by text draw ops.
func (b *Buffer) OpStringArray(op Op, s string, vs ...float64) {
	b.tag(op)
	b.str(s)
	b.arr(vs)
}

// OpHandleArray appends an instruction with a handle followed by a float
// array (LayoutHandleArray). Used by image draw and gradient creation ops.
func (b *Buffer) OpHandleArray(op Op, id uint32, vs ...float64) {
	b.tag(op)
	b.handle(id)
	b.arr(vs)
}

// OpPattern appends a pattern creation instruction: the assigned pattern
// handle, the source image handle, and the repetition mode (LayoutPattern).
func (b *Buffer) OpPattern(op Op, id, imageID uint32, repetition string) {
	b.tag(op)
	b.handle(id)
	b.handle(imageID)
	b.str(repetition)
}

// OpColorStop appends a gradient color stop instruction: the gradient
// handle, the stop offset, and the color string (LayoutColorStop).
func (b *Buffer) OpColorStop(op Op, id uint32, offset float64, color string) {
	b.tag(op)
	b.handle(id)
	b.float(offset)
	b.str(color)
}
