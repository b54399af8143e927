package dataio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/lanrat/classicsort/tempfile"
)

// Dump writes data to w, one value per line in its default fmt format
func Dump[T any](w io.Writer, data []T) error {
	bw := bufio.NewWriter(w)
	for _, v := range data {
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return errors.Wrap(err, "write value")
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}

// DumpTo writes data to the staged writer w and commits it to path.
// w is closed on return, so nothing reaches path unless every value was written.
func DumpTo[T any](w tempfile.Writer, path string, data []T) error {
	defer w.Close()
	if err := Dump(w, data); err != nil {
		return errors.Wrapf(err, "dump %s", path)
	}
	return errors.Wrapf(w.Commit(path), "commit %s", path)
}

// DumpFile atomically replaces path with data, one value per line
func DumpFile[T any](path string, data []T) error {
	w, err := tempfile.For(path)
	if err != nil {
		return err
	}
	return DumpTo(w, path, data)
}

// WriteSequence writes the integers 0 through count inclusive to w, one per line.
// With descending set they are written from count down to 0, which is the worst case
// input for bubble sort and shuttle sort.
func WriteSequence(w io.Writer, count int, descending bool) error {
	if count < 0 {
		return errors.Errorf("negative count %d", count)
	}
	bw := bufio.NewWriter(w)
	for i := 0; i <= count; i++ {
		v := i
		if descending {
			v = count - i
		}
		if _, err := fmt.Fprintln(bw, v); err != nil {
			return errors.Wrap(err, "write value")
		}
	}
	return errors.Wrap(bw.Flush(), "flush")
}

// WriteSequenceFile atomically replaces path with the output of WriteSequence
func WriteSequenceFile(path string, count int, descending bool) error {
	if count < 0 {
		return errors.Errorf("negative count %d", count)
	}
	w, err := tempfile.For(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if err := WriteSequence(w, count, descending); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return errors.Wrapf(w.Commit(path), "commit %s", path)
}
