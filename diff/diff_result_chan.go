package diff

// ChanResult holds a single diff result.
// It contains both the difference type (NEW/OLD) and the item.
type ChanResult[T any] struct {
	// D indicates whether the item is NEW (only in slice B) or OLD (only in slice A)
	D Delta
	// V contains the item that differs between slices
	V T
}

// ResultChan creates a channel-based result processing system.
// It returns a ResultFunc to pass to Generic and a channel for consuming the results in
// a separate goroutine, so the diff can run while results are processed.
//
// The caller is responsible for closing the returned channel when done.
func ResultChan[T any](buffer int) (ResultFunc[T], chan *ChanResult[T]) {
	c := make(chan *ChanResult[T], buffer)
	f := func(d Delta, v T) error {
		c <- &ChanResult[T]{D: d, V: v}
		return nil
	}
	return f, c
}

// Limit wraps resultFunc so that only the first n results are passed on.
// Later results are still counted by the diff but dropped.
func Limit[T any](n int, resultFunc ResultFunc[T]) ResultFunc[T] {
	seen := 0
	return func(d Delta, v T) error {
		seen++
		if seen > n {
			return nil
		}
		return resultFunc(d, v)
	}
}
