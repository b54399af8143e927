package diff

import (
	"cmp"
	"context"
)

// Ordered performs a diff operation on two sorted slices of cmp.Ordered types
// using cmp.Less for ordering. This is a wrapper around Generic.
func Ordered[T cmp.Ordered](ctx context.Context, a, b []T, resultFunc ResultFunc[T]) (r Result, err error) {
	return Generic(ctx, a, b, cmp.Less[T], resultFunc)
}

// Strings performs a diff operation on two sorted string slices using lexicographic order.
func Strings(ctx context.Context, a, b []string, resultFunc ResultFunc[string]) (r Result, err error) {
	return Ordered(ctx, a, b, resultFunc)
}
