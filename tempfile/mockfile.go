package tempfile

import (
	"bytes"
	"os"
)

// MockWriter provides an in-memory implementation of the Writer interface.
// It stores all data in memory using bytes.Buffer instead of writing to disk files,
// and records the path passed to Commit instead of renaming anything.
type MockWriter struct {
	data      *bytes.Buffer
	committed string
	done      bool
	// FailCommit, if set, is returned by Commit
	FailCommit error
}

// Mock creates a new in-memory Writer with the specified initial capacity.
func Mock(n int) *MockWriter {
	var m MockWriter
	m.data = bytes.NewBuffer(make([]byte, 0, n))
	return &m
}

// Name returns a fixed placeholder
func (w *MockWriter) Name() string {
	return "mock"
}

// Write appends data to the in-memory buffer
func (w *MockWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, os.ErrClosed
	}
	return w.data.Write(p)
}

// WriteString appends string data to the in-memory buffer
func (w *MockWriter) WriteString(s string) (int, error) {
	if w.done {
		return 0, os.ErrClosed
	}
	return w.data.WriteString(s)
}

// Commit records path as the destination, or discards the data and returns FailCommit if set
func (w *MockWriter) Commit(path string) error {
	if w.done {
		return os.ErrClosed
	}
	w.done = true
	if w.FailCommit != nil {
		w.data.Reset()
		return w.FailCommit
	}
	w.committed = path
	return nil
}

// Close discards the data unless it was committed
func (w *MockWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.data.Reset()
	return nil
}

// Committed returns the path passed to a successful Commit, or "" if there was none
func (w *MockWriter) Committed() string {
	return w.committed
}

// Bytes returns the data held by the writer
func (w *MockWriter) Bytes() []byte {
	return w.data.Bytes()
}
