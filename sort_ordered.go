package classicsort

import (
	"cmp"
)

// Ordered sorts a slice of cmp.Ordered values in place with the engine selected by alg.
// Ordering follows cmp.Less, so NaN values sort before every other float.
func Ordered[T cmp.Ordered](alg Algorithm, data []T, config *Config) (*Stats, error) {
	return Generic(alg, data, cmp.Less[T], config)
}
