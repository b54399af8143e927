// Package diff compares two sorted slices and reports the items that appear in only one of them.
package diff

import (
	"context"
	"fmt"
	"io"
)

// checkEvery is how many items are compared between context checks
const checkEvery = 1024

// differ holds the state for one diff between two sorted slices
type differ[T any] struct {
	ctx        context.Context
	a, b       []T
	resultFunc ResultFunc[T]
	less       LessFunc[T]
}

// Generic performs a diff operation on two sorted slices of any type T.
// It walks both slices in step using less and calls resultFunc for each item that exists
// in only one slice. Repeated items are matched one to one, so [1 1] against [1] reports one OLD 1.
//
// Parameters:
//   - ctx: Context for cancellation
//   - a, b: Sorted slices to compare (MUST be pre-sorted by less)
//   - less: Ordering used to sort both slices
//   - resultFunc: Callback function called for each difference found
//
// Returns statistical information about the comparison and any errors encountered.
// Sortedness is not validated.
func Generic[T any](ctx context.Context, a, b []T, less LessFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if ctx == nil || less == nil || resultFunc == nil {
		return Result{}, fmt.Errorf("arguments must not be nil")
	}

	d := differ[T]{
		ctx:        ctx,
		a:          a,
		b:          b,
		resultFunc: resultFunc,
		less:       less,
	}
	return d.diff()
}

func (d *differ[T]) diff() (r Result, err error) {
	i, j := 0, 0
	for steps := 0; i < len(d.a) && j < len(d.b); steps++ {
		if steps%checkEvery == 0 {
			if err = d.ctx.Err(); err != nil {
				return
			}
		}
		switch {
		case d.less(d.b[j], d.a[i]):
			r.TotalB++
			r.ExtraB++
			if err = d.resultFunc(NEW, d.b[j]); err != nil {
				return
			}
			j++
		case d.less(d.a[i], d.b[j]):
			r.TotalA++
			r.ExtraA++
			if err = d.resultFunc(OLD, d.a[i]); err != nil {
				return
			}
			i++
		default:
			// common
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// if only A has data left
	for ; i < len(d.a); i++ {
		r.TotalA++
		r.ExtraA++
		if err = d.resultFunc(OLD, d.a[i]); err != nil {
			return
		}
	}
	// if only B has data left
	for ; j < len(d.b); j++ {
		r.TotalB++
		r.ExtraB++
		if err = d.resultFunc(NEW, d.b[j]); err != nil {
			return
		}
	}
	return
}

// PrintDiff returns a ResultFunc that writes each difference to w on its own line,
// formatted as the Delta symbol (< for OLD, > for NEW) followed by the item value.
func PrintDiff[T any](w io.Writer) ResultFunc[T] {
	return func(d Delta, s T) error {
		_, err := fmt.Fprintf(w, "%s %v\n", d, s)
		return err
	}
}
