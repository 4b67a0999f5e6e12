package wire

import (
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// snapshotVersion is bumped whenever the snapshot envelope changes shape.
// The instruction encoding itself is versioned by the opcode set.
const snapshotVersion = 1

// Snapshot is an at-rest capture of an instruction stream: the context id it
// was recorded from plus the raw encoded bytes. Snapshots are the dump format
// used by tooling (cmd/wiredump) and tests; live transport to a host is out
// of scope for this module.
//
// The envelope is serialized with CBOR, which keeps the stream bytes opaque
// and the envelope self-describing.
type Snapshot struct {
	Version   int    `cbor:"v"`
	ContextID int32  `cbor:"ctx"`
	Stream    []byte `cbor:"stream"`
}

// NewSnapshot captures the buffer's current contents for the given context id.
// The stream bytes are copied; the buffer is left untouched.
func NewSnapshot(contextID int32, buf *Buffer) *Snapshot {
	stream := make([]byte, buf.Len())
	copy(stream, buf.Bytes())
	return &Snapshot{
		Version:   snapshotVersion,
		ContextID: contextID,
		Stream:    stream,
	}
}

// Marshal serializes the snapshot envelope to CBOR.
func (s *Snapshot) Marshal() ([]byte, error) {
	return cbor.Marshal(s)
}

// UnmarshalSnapshot parses a CBOR snapshot envelope.
// Returns an error for malformed CBOR or an unsupported envelope version.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("wire: decode snapshot: %w", err)
	}
	if s.Version != snapshotVersion {
		return nil, fmt.Errorf("wire: unsupported snapshot version %d", s.Version)
	}
	return &s, nil
}

// WriteTo serializes the snapshot and writes it to w.
func (s *Snapshot) WriteTo(w io.Writer) (int64, error) {
	data, err := s.Marshal()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// ReadSnapshot reads and parses a snapshot from r.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("wire: read snapshot: %w", err)
	}
	return UnmarshalSnapshot(data)
}

// Instructions decodes the captured stream.
func (s *Snapshot) Instructions() ([]Instr, error) {
	return Decode(s.Stream)
}
