// Package tempfile stages output files next to their destination and renames them
// into place once complete, so readers never see a partially written file
package tempfile

import (
	"bufio"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

var (
	// file IO buffer size for each file
	fileBufferSize = 1 << 16 // 64k
)

// FileWriter is a Writer backed by a temporary file on disk
type FileWriter struct {
	file      *os.File
	bufWriter *bufio.Writer
	done      bool
}

// New creates a FileWriter staging data in a new temporary file in dir.
// dir should be on the same filesystem as the final destination so Commit can rename.
// An empty dir uses the OS default temp directory.
func New(dir, prefix string) (*FileWriter, error) {
	var w FileWriter
	var err error
	w.file, err = os.CreateTemp(dir, prefix)
	if err != nil {
		return nil, errors.Wrapf(err, "create temp file in %q", dir)
	}
	w.bufWriter = bufio.NewWriterSize(w.file, fileBufferSize)
	return &w, nil
}

// For creates a FileWriter staging data beside path
func For(path string) (*FileWriter, error) {
	return New(filepath.Dir(path), "."+filepath.Base(path)+".")
}

// Name returns the path of the temporary file
func (w *FileWriter) Name() string {
	return w.file.Name()
}

func (w *FileWriter) Write(p []byte) (int, error) {
	if w.done {
		return 0, os.ErrClosed
	}
	return w.bufWriter.Write(p)
}

// WriteString appends s to the staged data
func (w *FileWriter) WriteString(s string) (int, error) {
	if w.done {
		return 0, os.ErrClosed
	}
	return w.bufWriter.WriteString(s)
}

// Commit flushes and syncs the temporary file then renames it to path.
// On failure the temporary file is removed.
func (w *FileWriter) Commit(path string) error {
	if w.done {
		return os.ErrClosed
	}
	w.done = true
	err := w.finish(path)
	if err != nil {
		w.file.Close()
		os.Remove(w.file.Name())
	}
	return err
}

func (w *FileWriter) finish(path string) error {
	if err := w.bufWriter.Flush(); err != nil {
		return errors.Wrap(err, "flush")
	}
	if err := w.file.Sync(); err != nil {
		return errors.Wrap(err, "sync")
	}
	if err := w.file.Close(); err != nil {
		return errors.Wrap(err, "close")
	}
	if err := os.Rename(w.file.Name(), path); err != nil {
		return errors.Wrapf(err, "rename to %s", path)
	}
	return nil
}

// Close stops the writer from accepting new data,
// closes the file, and removes the temp file from disk.
// It works like an abort unless Commit already succeeded.
func (w *FileWriter) Close() error {
	if w.done {
		return nil
	}
	w.done = true
	w.bufWriter = nil
	err := w.file.Close()
	if err != nil {
		return errors.WithStack(err)
	}
	return errors.WithStack(os.Remove(w.file.Name()))
}
