package ports

import (
	"polygen/domain/polymer"
)

// SequenceSink persists generated polymers, one per line. Implementations own
// a single write handle for the whole batch; Close flushes buffered lines even
// when the batch aborted early, so partial output is never cut mid-line.
type SequenceSink interface {
	// WriteSequence appends one polymer as a newline-terminated line
	WriteSequence(p polymer.Polymer) error

	// Close flushes and releases the underlying handle
	Close() error
}
