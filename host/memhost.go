package host

import (
	"image"
)

// ResourceKind classifies a recorded resource allocation.
type ResourceKind uint8

const (
	// KindLinearGradient is a linear gradient allocation.
	KindLinearGradient ResourceKind = iota
	// KindRadialGradient is a radial gradient allocation.
	KindRadialGradient
	// KindPattern is a pattern allocation.
	KindPattern
)

// String returns a human-readable name for the resource kind.
func (k ResourceKind) String() string {
	switch k {
	case KindLinearGradient:
		return "LinearGradient"
	case KindRadialGradient:
		return "RadialGradient"
	case KindPattern:
		return "Pattern"
	default:
		return "Unknown"
	}
}

// Call records one resource allocation made against a MemHost.
type Call struct {
	Kind      ResourceKind
	ContextID int32
	ID        uint32
	// Args holds the geometric arguments of gradient calls
	// (4 values for linear, 6 for radial).
	Args []float64
	// ImageID and Repetition are set for pattern calls.
	ImageID    uint32
	Repetition string
}

// MemHost is an in-process Host that allocates sequential ids and records
// every call. It exists so the encoder can be exercised without a real host
// process; it performs no rendering and never inspects argument values.
//
// Ids start at 1 so that 0 can be used as a "no resource" value by callers.
// MemHost also carries a minimal image registry, since pattern creation
// refers to images by id and something has to hand those ids out in tests.
//
// MemHost is not safe for concurrent use, matching the single-writer model
// of the encoder it backs.
type MemHost struct {
	nextID uint32
	calls  []Call
	images map[uint32]image.Image
}

// NewMemHost creates an empty in-memory host.
func NewMemHost() *MemHost {
	return &MemHost{nextID: 1, images: make(map[uint32]image.Image)}
}

func init() {
	Register("mem", func() Host { return NewMemHost() })
}

// CreateLinearGradient implements Host.
func (h *MemHost) CreateLinearGradient(contextID int32, x0, y0, x1, y1 float64) uint32 {
	id := h.alloc()
	h.calls = append(h.calls, Call{
		Kind:      KindLinearGradient,
		ContextID: contextID,
		ID:        id,
		Args:      []float64{x0, y0, x1, y1},
	})
	return id
}

// CreateRadialGradient implements Host.
func (h *MemHost) CreateRadialGradient(contextID int32, x0, y0, r0, x1, y1, r1 float64) uint32 {
	id := h.alloc()
	h.calls = append(h.calls, Call{
		Kind:      KindRadialGradient,
		ContextID: contextID,
		ID:        id,
		Args:      []float64{x0, y0, r0, x1, y1, r1},
	})
	return id
}

// CreatePattern implements Host.
func (h *MemHost) CreatePattern(contextID int32, imageID uint32, repetition string) uint32 {
	id := h.alloc()
	h.calls = append(h.calls, Call{
		Kind:       KindPattern,
		ContextID:  contextID,
		ID:         id,
		ImageID:    imageID,
		Repetition: repetition,
	})
	return id
}

// RegisterImage stores an image and returns its id.
// Passing the returned id to CreatePattern mirrors the flow of a real host,
// where images are registered ahead of pattern creation.
func (h *MemHost) RegisterImage(img image.Image) uint32 {
	id := h.alloc()
	h.images[id] = img
	return id
}

// Image returns a registered image, or nil for an unknown id.
func (h *MemHost) Image(id uint32) image.Image {
	return h.images[id]
}

// Calls returns every recorded allocation in order.
func (h *MemHost) Calls() []Call {
	return h.calls
}

// Reset clears all recorded calls and registered images.
// Allocated ids are not reused.
func (h *MemHost) Reset() {
	h.calls = nil
	h.images = make(map[uint32]image.Image)
}

func (h *MemHost) alloc() uint32 {
	id := h.nextID
	h.nextID++
	return id
}
