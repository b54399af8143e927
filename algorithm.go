package classicsort

import (
	"strings"
)

// Algorithm identifies one of the sorting engines
type Algorithm int

const (
	// BubbleSort repeatedly swaps adjacent pairs, shrinking the unsorted suffix after each pass
	BubbleSort Algorithm = iota + 1
	// ShuttleSort walks each out of place element backwards until it settles
	ShuttleSort
	// QuickSort partitions around the rightmost element of each range
	QuickSort
)

var algorithmNames = map[Algorithm]string{
	BubbleSort:  "bubble",
	ShuttleSort: "shuttle",
	QuickSort:   "quick",
}

// Algorithms returns every engine in a fixed order
func Algorithms() []Algorithm {
	return []Algorithm{BubbleSort, ShuttleSort, QuickSort}
}

func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAlgorithm returns the Algorithm matching name.
// Matching ignores case and an optional "sort" suffix, so "Bubble", "bubble_sort" and "bubblesort" are equivalent.
func ParseAlgorithm(name string) (Algorithm, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.TrimSuffix(n, "sort")
	n = strings.TrimRight(n, "_- ")
	for a, s := range algorithmNames {
		if s == n {
			return a, nil
		}
	}
	return 0, NewConfigError("algorithm", name, "unknown algorithm")
}
