// Package classicsort implements bubble sort, shuttle sort and quicksort over slices of
// any element type with a strict less-than ordering, recording the comparisons and swaps
// made by every pass.
//
// The engines sort in place and are meant for study rather than speed: each one is a
// faithful rendition of the textbook algorithm, including its worst cases.
package classicsort

// Generic sorts data in place with the engine selected by alg, ordering elements with less.
//
// Parameters:
//   - alg: the engine to run
//   - data: the slice to sort, owned by the caller for the duration of the call
//   - less: strict ordering, reporting whether a is ordered before b
//   - config: configuration options (nil uses defaults)
//
// Returns the statistics gathered during the sort. A panic raised by less is returned as a
// *ComparisonError, in which case data holds a permutation of its original contents.
func Generic[E any](alg Algorithm, data []E, less LessFunc[E], config *Config) (*Stats, error) {
	switch alg {
	case BubbleSort:
		return Bubble(data, less, config)
	case ShuttleSort:
		return Shuttle(data, less, config)
	case QuickSort:
		return Quick(data, less, config)
	default:
		return nil, NewConfigError("algorithm", int(alg), "unknown algorithm")
	}
}
