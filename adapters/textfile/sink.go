package textfile

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"polygen/domain/polymer"
	"polygen/internal/errors"
	"polygen/ports"
)

// Sink writes polymers to a plain-text file, one sequence per line. The file
// name embeds the polymer length so batches at different lengths never clobber
// each other. No header, no metadata, no trailing summary.
type Sink struct {
	path   string
	file   *os.File
	writer *bufio.Writer
}

// OutputPath returns the file path used for a batch at the given length
func OutputPath(dir string, length int) string {
	return filepath.Join(dir, fmt.Sprintf("sample_polymers_%d.out", length))
}

// NewSink creates the output directory if needed and opens the batch file for
// writing, truncating any previous batch at the same length.
func NewSink(dir string, length int) (*Sink, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.IOFailure("failed to create output directory", err)
	}

	path := OutputPath(dir, length)
	file, err := os.Create(path)
	if err != nil {
		return nil, errors.IOFailure("failed to open output file", err)
	}

	return &Sink{
		path:   path,
		file:   file,
		writer: bufio.NewWriter(file),
	}, nil
}

// Path returns the path the sink writes to
func (s *Sink) Path() string {
	return s.path
}

// WriteSequence appends one polymer as a newline-terminated line
func (s *Sink) WriteSequence(p polymer.Polymer) error {
	if _, err := s.writer.WriteString(string(p)); err != nil {
		return errors.IOFailure("failed to write polymer", err)
	}
	if err := s.writer.WriteByte('\n'); err != nil {
		return errors.IOFailure("failed to write polymer", err)
	}
	return nil
}

// Close flushes buffered lines and releases the file handle. Safe to call
// after a failed batch; whatever was flushed stays on disk.
func (s *Sink) Close() error {
	flushErr := s.writer.Flush()
	closeErr := s.file.Close()
	if flushErr != nil {
		return errors.IOFailure("failed to flush output file", flushErr)
	}
	if closeErr != nil {
		return errors.IOFailure("failed to close output file", closeErr)
	}
	return nil
}

// Compile-time interface check
var _ ports.SequenceSink = (*Sink)(nil)
