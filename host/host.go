// Package host defines the boundary between a canvaswire context and the
// process that executes its instruction stream.
//
// The core encoder needs exactly three capabilities from the host: creation
// of linear gradients, radial gradients, and patterns, each returning an
// opaque integer id. Ids are opaque to the core; it stores and
// compares them but never interprets their contents. Hosts are injected into
// a context at construction, which keeps the encoder testable without a real
// host process (see MemHost).
package host

// UnboundContext is the reserved context id for contexts that have not been
// bound to a host-side surface. It must never be dereferenced by a host.
const UnboundContext int32 = -1

// Host allocates ids for host-owned resources.
//
// All calls are synchronous and id-returning. The returned ids are opaque
// integers; the only guarantee a host must provide is that distinct live
// resources of the same kind have distinct ids.
type Host interface {
	// CreateLinearGradient allocates a linear gradient along the line
	// (x0, y0)-(x1, y1) and returns its id.
	CreateLinearGradient(contextID int32, x0, y0, x1, y1 float64) uint32

	// CreateRadialGradient allocates a radial gradient between the circles
	// (x0, y0, r0) and (x1, y1, r1) and returns its id.
	CreateRadialGradient(contextID int32, x0, y0, r0, x1, y1, r1 float64) uint32

	// CreatePattern allocates a pattern from a previously registered image.
	// The repetition mode is forwarded opaque (e.g. "repeat", "repeat-x",
	// "no-repeat").
	CreatePattern(contextID int32, imageID uint32, repetition string) uint32
}
