package tempfile

import (
	"io"
)

// Writer stages the contents of an output file so that the destination only ever
// holds a complete file. Data is written to a temporary location and moved into
// place by Commit; Close before Commit discards it.
type Writer interface {
	io.Writer
	io.StringWriter

	// Close discards the staged data if Commit has not succeeded.
	// Close after a successful Commit does nothing.
	io.Closer

	// Name returns the location of the staged data
	Name() string

	// Commit flushes the staged data and moves it to path, replacing any file there.
	// After Commit the Writer accepts no more writes.
	Commit(path string) error
}
