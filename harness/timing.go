package harness

import (
	"time"
)

// Timed runs fn and returns how long it took by the wall clock
func Timed(fn func() error) (time.Duration, error) {
	start := time.Now()
	err := fn()
	return time.Since(start), err
}
