package classicsort

// Bubble sorts data in place with bubble sort.
//
// Each pass swaps adjacent out of order pairs across the unsorted prefix, which
// carries the largest remaining element to the end of that prefix; the prefix then
// shrinks by one. The sort ends after the first pass that makes no swaps, or once no
// pairs are left to compare. Equal elements are never swapped, so the sort is stable.
//
// Best case: O(n)
// Worst case: O(n^2)
func Bubble[E any](data []E, less LessFunc[E], config *Config) (stats *Stats, err error) {
	r, err := newRun(BubbleSort, data, less, config)
	if err != nil {
		return nil, err
	}
	stats = r.stats
	defer r.recoverComparison(&err)

	// everything at or after end is already in its final place
	end := len(data)
	for end > 1 {
		p := r.beginPass()
		for i := 0; i+1 < end; i++ {
			p.Comparisons++
			if less(data[i+1], data[i]) {
				data[i], data[i+1] = data[i+1], data[i]
				p.Swaps++
			}
		}
		r.endPass(p)

		if p.Swaps == 0 {
			break
		}
		end--
	}

	return r.done(), nil
}
