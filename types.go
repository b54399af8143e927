package classicsort

// LessFunc reports whether a must be ordered before b.
// It must be a strict ordering: irreflexive and transitive, so that
// LessFunc(a, a) is always false. All engines use it as their only view of the elements.
type LessFunc[E any] func(a, b E) bool

// Lesser is implemented by record types that carry their own ordering.
// Less reports whether the receiver is ordered before other.
type Lesser[E any] interface {
	Less(other E) bool
}

// Sorter is implemented by every engine entry point once it has been bound to an
// element type, ordering and config. It sorts data in place and returns the statistics
// gathered during the sort.
type Sorter[E any] interface {
	Sort(data []E) (*Stats, error)
}

// SorterFunc adapts a plain function to the Sorter interface
type SorterFunc[E any] func(data []E) (*Stats, error)

// Sort calls f(data)
func (f SorterFunc[E]) Sort(data []E) (*Stats, error) {
	return f(data)
}

// NewSorter binds an algorithm, ordering and config into a reusable Sorter
func NewSorter[E any](alg Algorithm, less LessFunc[E], config *Config) Sorter[E] {
	return SorterFunc[E](func(data []E) (*Stats, error) {
		return Generic(alg, data, less, config)
	})
}
