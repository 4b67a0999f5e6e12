package canvaswire

import (
	"github.com/gogpu/canvaswire/host"
	"github.com/gogpu/canvaswire/wire"
)

// Option configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// In-memory host (default, useful for tests)
//	ctx := canvaswire.New(1)
//
//	// Custom host (dependency injection)
//	ctx := canvaswire.New(1, canvaswire.WithHost(wasmHost))
type Option func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	host host.Host
	buf  *wire.Buffer
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		host: nil, // Will be set to a MemHost if nil
		buf:  nil, // Will be created if nil
	}
}

// WithHost sets the host that allocates resource ids for the Context.
// Use this for dependency injection of a real host boundary; when omitted,
// the Context uses an in-memory host, which keeps the encoder fully
// functional (and testable) without a host process.
func WithHost(h host.Host) Option {
	return func(o *contextOptions) {
		o.host = h
	}
}

// WithBuffer sets a custom instruction buffer for the Context.
// Useful for reusing a buffer across contexts or presizing it.
func WithBuffer(b *wire.Buffer) Option {
	return func(o *contextOptions) {
		o.buf = b
	}
}
