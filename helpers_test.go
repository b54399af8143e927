package classicsort_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/lanrat/classicsort"
)

// engine pairs a name with a full-slice sort function for table driven tests
type engine[E any] struct {
	name string
	sort func([]E, classicsort.LessFunc[E], *classicsort.Config) (*classicsort.Stats, error)
}

func intEngines() []engine[int] {
	return []engine[int]{
		{"bubble", classicsort.Bubble[int]},
		{"shuttle", classicsort.Shuttle[int]},
		{"quick", classicsort.Quick[int]},
	}
}

func lessInt(a, b int) bool {
	return a < b
}

// keyed is an element whose ordering only looks at key, id tells equal keys apart
type keyed struct {
	key int
	id  int
}

func lessKeyed(a, b keyed) bool {
	return a.key < b.key
}

func randomInts(r *rand.Rand, n, max int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = r.Intn(max)
	}
	return data
}

func descending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = n - i
	}
	return data
}

func ascending(n int) []int {
	data := make([]int, n)
	for i := range data {
		data[i] = i + 1
	}
	return data
}

// isSorted checks that no element is less than its predecessor
func isSorted[E any](data []E, less func(a, b E) bool) bool {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return false
		}
	}
	return true
}

// checkPermutation fails the test if got is not a rearrangement of want
func checkPermutation(t *testing.T, want, got []int) {
	t.Helper()
	a := slices.Clone(want)
	b := slices.Clone(got)
	slices.Sort(a)
	slices.Sort(b)
	if !slices.Equal(a, b) {
		t.Fatalf("output is not a permutation of the input: %v vs %v", want, got)
	}
}
