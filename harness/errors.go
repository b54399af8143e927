package harness

import (
	"fmt"

	"github.com/lanrat/classicsort"
	"github.com/lanrat/classicsort/diff"
)

// MismatchError reports an engine whose output is unsorted or differs from the first engine's
type MismatchError struct {
	// Algorithm produced the suspect output
	Algorithm classicsort.Algorithm
	// Against is the engine it was compared with
	Against classicsort.Algorithm
	// Diff counts the values found in only one of the two outputs
	Diff diff.Result
	// Unsorted is set when the output is not in order at all
	Unsorted bool
}

func (e *MismatchError) Error() string {
	if e.Unsorted {
		return fmt.Sprintf("%s output is not sorted", e.Algorithm)
	}
	return fmt.Sprintf("%s output differs from %s: %d missing, %d extra", e.Algorithm, e.Against, e.Diff.ExtraA, e.Diff.ExtraB)
}
