package classicsort_test

import (
	"testing"

	"github.com/lanrat/classicsort"
)

func TestParseAlgorithm(t *testing.T) {
	tests := map[string]classicsort.Algorithm{
		"bubble":      classicsort.BubbleSort,
		"Bubble":      classicsort.BubbleSort,
		"bubble_sort": classicsort.BubbleSort,
		"shuttlesort": classicsort.ShuttleSort,
		" shuttle ":   classicsort.ShuttleSort,
		"QUICK":       classicsort.QuickSort,
		"quick-sort":  classicsort.QuickSort,
	}
	for name, expected := range tests {
		got, err := classicsort.ParseAlgorithm(name)
		if err != nil {
			t.Fatalf("ParseAlgorithm(%q): %v", name, err)
		}
		if got != expected {
			t.Errorf("ParseAlgorithm(%q) = %s, expected %s", name, got, expected)
		}
	}
}

func TestParseAlgorithmUnknown(t *testing.T) {
	for _, name := range []string{"", "heap", "sort", "bubbles"} {
		if _, err := classicsort.ParseAlgorithm(name); err == nil {
			t.Errorf("ParseAlgorithm(%q) should error", name)
		}
	}
}

func TestAlgorithmString(t *testing.T) {
	for _, alg := range classicsort.Algorithms() {
		parsed, err := classicsort.ParseAlgorithm(alg.String())
		if err != nil || parsed != alg {
			t.Errorf("%s does not parse back: %v %v", alg, parsed, err)
		}
	}
	if s := classicsort.Algorithm(0).String(); s != "unknown" {
		t.Errorf("zero Algorithm is %q, expected %q", s, "unknown")
	}
}
