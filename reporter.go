package classicsort

import (
	"github.com/sirupsen/logrus"
)

// Reporter consumes the statistics produced by the engines.
// Pass is only called when Config.Verbose is set; Done is called once per successful sort.
type Reporter interface {
	// Pass receives the counters of a finished pass and the data as it stands after it
	Pass(alg Algorithm, p PassStats, snapshot string)
	// Done receives the totals of a finished sort
	Done(s *Stats)
}

// NopReporter discards everything
type NopReporter struct{}

// Pass does nothing
func (NopReporter) Pass(Algorithm, PassStats, string) {}

// Done does nothing
func (NopReporter) Done(*Stats) {}

// LogReporter writes statistics as structured log entries.
// Passes are logged at debug level and totals at info level.
type LogReporter struct {
	log logrus.FieldLogger
}

// NewLogReporter creates a LogReporter writing to log, or to the logrus standard logger if log is nil
func NewLogReporter(log logrus.FieldLogger) *LogReporter {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &LogReporter{log: log}
}

// Pass logs a single pass
func (r *LogReporter) Pass(alg Algorithm, p PassStats, snapshot string) {
	r.log.WithFields(logrus.Fields{
		"algorithm":   alg.String(),
		"pass":        p.Pass,
		"comparisons": p.Comparisons,
		"swaps":       p.Swaps,
		"data":        snapshot,
	}).Debug("pass complete")
}

// Done logs the totals of a sort
func (r *LogReporter) Done(s *Stats) {
	r.log.WithFields(logrus.Fields{
		"algorithm":   s.Algorithm.String(),
		"passes":      len(s.Passes),
		"comparisons": s.Comparisons,
		"swaps":       s.Swaps,
	}).Info("sort complete")
}
