// Package source owns the loaded bytes of a single input file and the
// line-start index derived from them.
package source

import (
	"errors"
	"fmt"
	"os"
)

// ErrNotFound is wrapped into the error returned by Open when the
// underlying read fails.
var ErrNotFound = errors.New("source: file not found")

// readFile is a package-level indirection so tests can stub I/O failures
// without touching the filesystem.
var readFile = os.ReadFile

// Buffer holds a read-only byte range plus an auxiliary ordered sequence
// of line-start offsets. Index 0 of lines is the first line; a line
// slice is the half-open range from one line start up to the next
// newline (exclusive) or end of buffer.
type Buffer struct {
	path  string
	data  []byte
	lines []int // byte offset of the first byte of each line
}

// Open reads path in its entirety and builds the line-start index. The
// returned byte count is len(data). A previously loaded buffer is simply
// replaced; callers that want the old one released first should call
// Close before Open.
func (b *Buffer) Open(path string) (int, error) {
	data, err := readFile(path)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %v", ErrNotFound, path, err)
	}
	b.path = path
	b.data = data
	b.lines = computeLineStarts(data)
	return len(data), nil
}

// Close releases the buffer's contents. It is always safe to call,
// including on an unopened or already-closed Buffer.
func (b *Buffer) Close() error {
	b.path = ""
	b.data = nil
	b.lines = nil
	return nil
}

// Path returns the path last passed to Open.
func (b *Buffer) Path() string { return b.path }

// Len returns the number of bytes in the buffer.
func (b *Buffer) Len() int { return len(b.data) }

// Bytes returns the full underlying byte slice. Callers must not mutate
// it.
func (b *Buffer) Bytes() []byte { return b.data }

// Line returns the bytes of the n'th line (1-based), excluding its
// trailing newline. n out of range is a precondition violation and
// panics, matching the "out of range is a precondition violation"
// contract of the scanner/parser interfaces.
func (b *Buffer) Line(n int) []byte {
	if n < 1 || n > len(b.lines) {
		panic(fmt.Sprintf("source: line %d out of range [1,%d]", n, len(b.lines)))
	}
	start := b.lines[n-1]
	end := len(b.data)
	if n < len(b.lines) {
		end = b.lines[n]
	}
	// Trim the single trailing newline the end boundary may include.
	if end > start && b.data[end-1] == '\n' {
		end--
	}
	if end > start && b.data[end-1] == '\r' {
		end--
	}
	return b.data[start:end]
}

// computeLineStarts scans data once for newline bytes and returns the
// byte offset of the first byte of each line. starts[0] is always 0.
func computeLineStarts(data []byte) []int {
	starts := []int{0}
	for i, c := range data {
		if c == '\n' && i+1 < len(data) {
			starts = append(starts, i+1)
		}
	}
	return starts
}
