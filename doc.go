// Package canvaswire encodes 2D canvas drawing into a compact, replayable
// instruction stream for execution by a separate host process.
//
// # Overview
//
// canvaswire mirrors the attribute state of an imperative drawing surface
// (transform, styles, line properties, shadows, text settings) in a
// fixed-depth virtual stack, and turns attribute assignments plus draw
// calls into a flat opcode buffer. Redundant state writes are suppressed
// by diffing against a last-emitted cache, so the stream carries the
// minimum ordered set of state changes needed before each draw call.
//
// The package encodes only: it never executes instructions, renders
// pixels, or validates color/font syntax. A host consumes the stream and
// owns all of that.
//
// # Quick Start
//
//	ctx := canvaswire.New(1)
//
//	ctx.SetFillColor("#ff0000")
//	ctx.BeginPath()
//	ctx.Arc(256, 256, 100, 0, 2*math.Pi, false)
//	ctx.Fill()
//
//	stream := ctx.Take() // hand the encoded bytes to the host
//
// # Architecture
//
// The module is organized into:
//   - Public API: Context, Paint, Transform, Gradient, Pattern
//   - wire: opcode set, instruction buffer, decoder, snapshots
//   - host: the host capability boundary and an in-memory reference host
//
// # Save and Restore
//
// Save snapshots all attributes and emits a host-visible Save instruction;
// SaveLocal snapshots without notifying the host, for transient attribute
// excursions. See the method docs for how the two interact with diffing.
package canvaswire

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
