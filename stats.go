package classicsort

import (
	"fmt"
)

// PassStats holds the counters for a single pass of bubble or shuttle sort,
// or for a single partition of quicksort where Swaps counts pivot rotations
type PassStats struct {
	Pass        int // 1 based pass number
	Comparisons int
	Swaps       int
}

func (p PassStats) String() string {
	return fmt.Sprintf("pass %d: %d comparisons, %d swaps", p.Pass, p.Comparisons, p.Swaps)
}

// Stats holds the counters gathered by one sort call
type Stats struct {
	Algorithm   Algorithm
	Passes      []PassStats
	Comparisons int // total over all passes
	Swaps       int // total over all passes
	MaxPending  int // quicksort only: most ranges waiting on the work stack at once
}

func newStats(alg Algorithm) *Stats {
	return &Stats{Algorithm: alg}
}

// NumPasses returns the number of completed passes (partitions for quicksort)
func (s *Stats) NumPasses() int {
	return len(s.Passes)
}

func (s *Stats) String() string {
	return fmt.Sprintf("%s: %d passes, %d comparisons, %d swaps", s.Algorithm, len(s.Passes), s.Comparisons, s.Swaps)
}

func (s *Stats) addPass(p PassStats) {
	s.Passes = append(s.Passes, p)
	s.Comparisons += p.Comparisons
	s.Swaps += p.Swaps
}

// run carries the state shared by every engine for the duration of one sort call
type run[E any] struct {
	data   []E
	less   LessFunc[E]
	config Config
	stats  *Stats

	// reporting is set while the Reporter runs so its panics are not taken for comparison failures
	reporting bool
}

func newRun[E any](alg Algorithm, data []E, less LessFunc[E], config *Config) (*run[E], error) {
	if less == nil {
		return nil, NewConfigError("less", nil, "a comparison function is required")
	}
	return &run[E]{
		data:   data,
		less:   less,
		config: mergeConfig(config),
		stats:  newStats(alg),
	}, nil
}

// beginPass returns zeroed counters for the next pass
func (r *run[E]) beginPass() PassStats {
	return PassStats{Pass: len(r.stats.Passes) + 1}
}

// endPass folds p into the running totals and reports it when verbose
func (r *run[E]) endPass(p PassStats) {
	r.stats.addPass(p)
	if r.config.Verbose {
		r.reporting = true
		r.config.Reporter.Pass(r.stats.Algorithm, p, fmt.Sprint(r.data))
		r.reporting = false
	}
}

// done hands the final totals to the reporter
func (r *run[E]) done() *Stats {
	r.reporting = true
	r.config.Reporter.Done(r.stats)
	r.reporting = false
	return r.stats
}

// recoverComparison turns a panic raised by the LessFunc into a ComparisonError stored in err.
// Panics raised by the Reporter are passed on unchanged.
// It must be deferred directly by the engine.
func (r *run[E]) recoverComparison(err *error) {
	if p := recover(); p != nil {
		if r.reporting {
			panic(p)
		}
		*err = NewComparisonError(p, r.stats.Algorithm.String())
	}
}
