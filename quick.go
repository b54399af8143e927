package classicsort

import (
	"github.com/lanrat/classicsort/stack"
)

// span is an inclusive range of indexes waiting to be partitioned
type span struct {
	start, end int
}

func (s span) needsPartition() bool {
	return s.end-s.start >= 1
}

// Quick sorts all of data in place with quicksort.
// It is QuickRange over [0, len(data)-1].
func Quick[E any](data []E, less LessFunc[E], config *Config) (*Stats, error) {
	return QuickRange(data, 0, len(data)-1, less, config)
}

// QuickRange sorts data[start:end+1] in place with quicksort.
//
// The pivot of every range is its rightmost element. Elements greater than the pivot
// are rotated to its right, moving the pivot one slot left each time, until the scan
// meets the pivot. The range right of the pivot is then sorted before the range left
// of it. Pending ranges are kept on an explicit stack rather than the call stack.
//
// start and end must satisfy 0 <= start, end < len(data) and start <= end+1, otherwise
// a *RangeError is returned and data is not modified. An empty range such as (0, -1) is valid.
// The sort is not stable, and input that is already sorted takes O(n^2) comparisons.
//
// Best case: O(n log n)
// Worst case: O(n^2)
func QuickRange[E any](data []E, start, end int, less LessFunc[E], config *Config) (stats *Stats, err error) {
	if err := checkRange(start, end, len(data)); err != nil {
		return nil, err
	}
	r, err := newRun(QuickSort, data, less, config)
	if err != nil {
		return nil, err
	}
	stats = r.stats
	defer r.recoverComparison(&err)

	pending := stack.New[span](0)
	if s := (span{start, end}); s.needsPartition() {
		pending.Push(s)
	}

	for {
		s, ok := pending.Pop()
		if !ok {
			break
		}
		p := r.beginPass()
		pivotAt := partition(data, s, less, &p)
		r.endPass(p)

		// pushed left first so the right range is taken first
		if left := (span{s.start, pivotAt - 1}); left.needsPartition() {
			pending.Push(left)
		}
		if right := (span{pivotAt + 1, s.end}); right.needsPartition() {
			pending.Push(right)
		}
	}
	r.stats.MaxPending = pending.HighWater()

	return r.done(), nil
}

// partition arranges data[s.start:s.end+1] around the value at s.end and returns the
// pivot's final index. Everything left of it is not greater than the pivot and
// everything right of it is greater.
func partition[E any](data []E, s span, less LessFunc[E], p *PassStats) int {
	pivotAt := s.end
	e2 := pivotAt - 1 // slot immediately left of the pivot
	for e1 := s.start; e1 != pivotAt; {
		p.Comparisons++
		if less(data[pivotAt], data[e1]) {
			// e1 < pivotAt here, so e2 >= e1 >= s.start
			tmp := data[e1]
			data[e1] = data[e2]
			data[e2] = data[pivotAt]
			data[pivotAt] = tmp
			pivotAt = e2
			e2 = pivotAt - 1
			p.Swaps++
		} else {
			// only advance when nothing moved, the element brought in from e2 is still unchecked
			e1++
		}
	}
	return pivotAt
}
