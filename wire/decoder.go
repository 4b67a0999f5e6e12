package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated is returned when the stream ends in the middle of an
// instruction's operands.
var ErrTruncated = errors.New("wire: truncated instruction stream")

// Instr is one decoded instruction.
//
// Which fields are populated depends on the op's layout: Floats holds all
// float operands (including single-float and six-float layouts), Str holds
// the string operand, Handle and Handle2 hold resource handles.
type Instr struct {
	Op      Op
	Floats  []float64
	Str     string
	Handle  uint32
	Handle2 uint32
}

// String formats the instruction for diagnostic output.
func (in Instr) String() string {
	switch layout, _ := in.Op.Layout(); layout {
	case LayoutNone:
		return in.Op.String()
	case LayoutString:
		return fmt.Sprintf("%s(%q)", in.Op, in.Str)
	case LayoutHandle:
		return fmt.Sprintf("%s(#%d)", in.Op, in.Handle)
	case LayoutStringArray:
		return fmt.Sprintf("%s(%q, %v)", in.Op, in.Str, in.Floats)
	case LayoutHandleArray:
		return fmt.Sprintf("%s(#%d, %v)", in.Op, in.Handle, in.Floats)
	case LayoutPattern:
		return fmt.Sprintf("%s(#%d, image #%d, %q)", in.Op, in.Handle, in.Handle2, in.Str)
	case LayoutColorStop:
		return fmt.Sprintf("%s(#%d, %v, %q)", in.Op, in.Handle, in.Floats[0], in.Str)
	default:
		return fmt.Sprintf("%s(%v)", in.Op, in.Floats)
	}
}

// Decoder reads instructions sequentially from an encoded stream.
//
// Example:
//
//	dec := wire.NewDecoder(buf.Bytes())
//	for {
//	    in, ok, err := dec.Next()
//	    if err != nil || !ok {
//	        break
//	    }
//	    // use in
//	}
//
// A decoder is only needed by tooling and tests; the encoding context never
// reads its own stream back.
type Decoder struct {
	data []byte
	pos  int
}

// NewDecoder creates a decoder over the given encoded bytes.
// The decoder does not copy data; the caller must not mutate it while
// decoding.
func NewDecoder(data []byte) *Decoder {
	return &Decoder{data: data}
}

// More reports whether undecoded bytes remain.
func (d *Decoder) More() bool {
	return d.pos < len(d.data)
}

// Position returns the current byte offset into the stream.
func (d *Decoder) Position() int {
	return d.pos
}

// Next decodes the next instruction.
// Returns ErrTruncated if the stream ends mid-instruction, or an error
// naming the tag byte if the op is unknown. At a clean end of stream it
// returns a zero Instr and false.
func (d *Decoder) Next() (Instr, bool, error) {
	if d.pos >= len(d.data) {
		return Instr{}, false, nil
	}

	op := Op(d.data[d.pos])
	d.pos++

	layout, ok := op.Layout()
	if !ok {
		return Instr{}, false, fmt.Errorf("wire: unknown opcode 0x%02X at offset %d", byte(op), d.pos-1)
	}

	in := Instr{Op: op}
	var err error
	switch layout {
	case LayoutNone:
	case LayoutFloat:
		in.Floats, err = d.floats(1)
	case LayoutPoint:
		in.Floats, err = d.floats(2)
	case LayoutSix:
		in.Floats, err = d.floats(6)
	case LayoutHandle:
		in.Handle, err = d.handle()
	case LayoutString:
		in.Str, err = d.str()
	case LayoutArray:
		in.Floats, err = d.arr()
	case LayoutStringArray:
		if in.Str, err = d.str(); err == nil {
			in.Floats, err = d.arr()
		}
	case LayoutHandleArray:
		if in.Handle, err = d.handle(); err == nil {
			in.Floats, err = d.arr()
		}
	case LayoutPattern:
		if in.Handle, err = d.handle(); err == nil {
			if in.Handle2, err = d.handle(); err == nil {
				in.Str, err = d.str()
			}
		}
	case LayoutColorStop:
		if in.Handle, err = d.handle(); err == nil {
			if in.Floats, err = d.floats(1); err == nil {
				in.Str, err = d.str()
			}
		}
	}
	if err != nil {
		return Instr{}, false, err
	}
	return in, true, nil
}

// Decode reads the entire stream into a slice of instructions.
func Decode(data []byte) ([]Instr, error) {
	d := NewDecoder(data)
	var out []Instr
	for {
		in, ok, err := d.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, in)
	}
}

func (d *Decoder) floats(n int) ([]float64, error) {
	if d.pos+8*n > len(d.data) {
		return nil, ErrTruncated
	}
	vs := make([]float64, n)
	for i := range vs {
		bits := binary.LittleEndian.Uint64(d.data[d.pos:])
		vs[i] = math.Float64frombits(bits)
		d.pos += 8
	}
	return vs, nil
}

func (d *Decoder) handle() (uint32, error) {
	if d.pos+4 > len(d.data) {
		return 0, ErrTruncated
	}
	id := binary.LittleEndian.Uint32(d.data[d.pos:])
	d.pos += 4
	return id, nil
}

func (d *Decoder) str() (string, error) {
	n, err := d.handle()
	if err != nil {
		return "", err
	}
	if d.pos+int(n) > len(d.data) {
		return "", ErrTruncated
	}
	s := string(d.data[d.pos : d.pos+int(n)])
	d.pos += int(n)
	return s, nil
}

func (d *Decoder) arr() ([]float64, error) {
	n, err := d.handle()
	if err != nil {
		return nil, err
	}
	if int(n) > (len(d.data)-d.pos)/8 {
		return nil, ErrTruncated
	}
	return d.floats(int(n))
}
