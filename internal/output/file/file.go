// Package file writes prediction records as NDJSON to a file with
// buffered I/O.
package file

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/crimson-sun/lattice/internal/output"
)

const defaultBufSize = 64 * 1024 // 64KB

// Output appends NDJSON prediction records to a file.
type Output struct {
	mu   sync.Mutex
	f    *os.File
	w    *bufio.Writer
	path string
}

// New creates a file output that writes NDJSON to the given path,
// truncating any existing file.
func New(path string) (*Output, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("file output: %w", err)
	}
	return &Output{
		f:    f,
		w:    bufio.NewWriterSize(f, defaultBufSize),
		path: path,
	}, nil
}

// Write JSON-encodes the record and appends it as a line.
func (o *Output) Write(_ context.Context, rec output.Record) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("file output: marshal: %w", err)
	}
	data = append(data, '\n')
	if _, err := o.w.Write(data); err != nil {
		return fmt.Errorf("file output: write: %w", err)
	}
	return nil
}

// Close flushes buffered records and closes the file.
func (o *Output) Close() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := o.w.Flush(); err != nil {
		o.f.Close()
		return fmt.Errorf("file output: flush: %w", err)
	}
	if err := o.f.Close(); err != nil {
		return fmt.Errorf("file output: close: %w", err)
	}
	return nil
}
