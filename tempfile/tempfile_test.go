package tempfile_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lanrat/classicsort/tempfile"
)

func TestCommit(t *testing.T) {
	line := "The quick brown fox jumps over the lazy dog\n"
	dir := t.TempDir()
	dest := filepath.Join(dir, "out.dat")

	w, err := tempfile.For(dest)
	if err != nil {
		t.Fatal(err)
	}
	n, err := w.WriteString(line)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(line) {
		t.Fatalf("WriteString returned %d, expected %d", n, len(line))
	}
	if filepath.Dir(w.Name()) != dir {
		t.Fatalf("temp file %s not beside destination %s", w.Name(), dest)
	}
	if _, err := os.Stat(dest); !os.IsNotExist(err) {
		t.Fatalf("destination exists before commit")
	}

	name := w.Name()
	if err := w.Commit(dest); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != line {
		t.Fatalf("destination holds %q expected %q", got, line)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatalf("temp file exists after commit")
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close after Commit returned %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Fatalf("Close after Commit removed the destination: %v", err)
	}
}

func TestCommitReplaces(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "out.dat")
	if err := os.WriteFile(dest, []byte("old contents that are longer\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	w, err := tempfile.For(dest)
	if err != nil {
		t.Fatal(err)
	}
	w.WriteString("new\n")
	if err := w.Commit(dest); err != nil {
		t.Fatal(err)
	}
	got, _ := os.ReadFile(dest)
	if string(got) != "new\n" {
		t.Fatalf("destination holds %q expected %q", got, "new\n")
	}
}

func TestAbort(t *testing.T) {
	dir := t.TempDir()
	w, err := tempfile.New(dir, "abort_")
	if err != nil {
		t.Fatal(err)
	}
	w.WriteString("discard me")
	name := w.Name()
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatalf("temp file exists after closing")
	}
	if _, err := w.WriteString("more"); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("write after close returned %v, expected %v", err, os.ErrClosed)
	}
	if err := w.Commit(filepath.Join(dir, "x")); !errors.Is(err, os.ErrClosed) {
		t.Fatalf("commit after close returned %v, expected %v", err, os.ErrClosed)
	}
}

func TestCommitFailureCleansUp(t *testing.T) {
	dir := t.TempDir()
	w, err := tempfile.New(dir, "fail_")
	if err != nil {
		t.Fatal(err)
	}
	w.WriteString("data")
	name := w.Name()
	// the destination directory does not exist so the rename fails
	err = w.Commit(filepath.Join(dir, "missing", "out.dat"))
	if err == nil {
		t.Fatal("expected commit into a missing directory to fail")
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind after failed commit")
	}
}

func TestNewBadDir(t *testing.T) {
	_, err := tempfile.New(filepath.Join(t.TempDir(), "nope"), "x")
	if err == nil {
		t.Fatal("expected error creating a temp file in a missing directory")
	}
}

func TestMock(t *testing.T) {
	var w tempfile.Writer = tempfile.Mock(16)
	w.WriteString("1\n")
	w.Write([]byte("2\n"))
	if err := w.Commit("out.dat"); err != nil {
		t.Fatal(err)
	}
	m := w.(*tempfile.MockWriter)
	if string(m.Bytes()) != "1\n2\n" {
		t.Fatalf("mock holds %q", m.Bytes())
	}
	if m.Committed() != "out.dat" {
		t.Fatalf("mock committed to %q expected %q", m.Committed(), "out.dat")
	}
}

func TestMockFailCommit(t *testing.T) {
	m := tempfile.Mock(0)
	m.FailCommit = errors.New("disk full")
	m.WriteString("data")
	if err := m.Commit("out.dat"); err != m.FailCommit {
		t.Fatalf("Commit returned %v, expected %v", err, m.FailCommit)
	}
	if len(m.Bytes()) != 0 || m.Committed() != "" {
		t.Fatal("failed commit kept data")
	}
}
