package classicsort

// Shuttle sorts data in place with shuttle sort, a bidirectional bubble sort.
//
// Pass p compares the pair starting at index p-1. While the right element of the
// pair is less than the left one they are swapped and the pair steps one position
// to the left, shuttling the element backwards within the same pass. The pass ends
// at the first pair that is already in order or at the start of the slice.
// A slice of n elements always takes exactly n-1 passes. The sort is stable.
//
// Best case: O(n)
// Worst case: O(n^2)
func Shuttle[E any](data []E, less LessFunc[E], config *Config) (stats *Stats, err error) {
	r, err := newRun(ShuttleSort, data, less, config)
	if err != nil {
		return nil, err
	}
	stats = r.stats
	defer r.recoverComparison(&err)

	n := len(data)
	for start := 0; start < n-1; start++ {
		p := r.beginPass()
		for i := start; ; i-- {
			p.Comparisons++
			if !less(data[i+1], data[i]) {
				break
			}
			data[i], data[i+1] = data[i+1], data[i]
			p.Swaps++
			if i == 0 {
				break
			}
		}
		r.endPass(p)
	}

	return r.done(), nil
}
