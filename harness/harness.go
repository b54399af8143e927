// Package harness drives the engines the way a benchmark would: it loads a list of
// numbers, sorts an independent copy with every configured engine, times each run,
// writes the sorted lists out and checks that the engines agree.
package harness

import (
	"cmp"
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lanrat/classicsort"
	"github.com/lanrat/classicsort/dataio"
	"github.com/lanrat/classicsort/diff"
	"github.com/lanrat/classicsort/record"
)

// maxReportedDiffs bounds how many differing values are logged per mismatch
const maxReportedDiffs = 10

// Result describes one engine's run
type Result struct {
	Algorithm classicsort.Algorithm
	Stats     *classicsort.Stats
	Elapsed   time.Duration
	Output    string // file written, empty when output is disabled
	Sorted    []float64
}

// Harness runs the configured engines over numeric input
type Harness struct {
	config Config
	algs   []classicsort.Algorithm
	log    logrus.FieldLogger
}

// New creates a Harness. A nil config uses DefaultConfig and a nil log uses the logrus standard logger.
func New(config *Config, log logrus.FieldLogger) (*Harness, error) {
	c := mergeConfig(config)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	algs, err := c.ParsedAlgorithms()
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Harness{config: *c, algs: algs, log: log}, nil
}

// Config returns the effective configuration
func (h *Harness) Config() Config {
	return h.config
}

// Run loads the configured input file and passes it to RunData
func (h *Harness) Run(ctx context.Context) ([]Result, error) {
	if h.config.Input == "" {
		return nil, classicsort.NewConfigError("input", h.config.Input, "an input file is required")
	}
	data, err := dataio.FloatsFile(h.config.Input, h.log)
	if err != nil {
		return nil, err
	}
	h.log.WithFields(logrus.Fields{
		"input":  h.config.Input,
		"values": len(data),
	}).Info("loaded input")
	return h.RunData(ctx, data)
}

// RunData sorts a copy of data with every configured engine.
// data itself is never modified. Results are in the configured engine order.
func (h *Harness) RunData(ctx context.Context, data []float64) ([]Result, error) {
	if len(data) == 0 {
		return nil, errors.Wrap(classicsort.ErrEmptySequence, "nothing to sort")
	}

	results := make([]Result, len(h.algs))
	if h.config.Concurrent {
		g, gctx := errgroup.WithContext(ctx)
		for i, alg := range h.algs {
			i, alg := i, alg
			g.Go(func() error {
				return h.runOne(gctx, alg, data, &results[i])
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for i, alg := range h.algs {
			if err := h.runOne(ctx, alg, data, &results[i]); err != nil {
				return nil, err
			}
		}
	}

	if h.config.Verify {
		if err := h.verify(ctx, results); err != nil {
			return results, err
		}
	}
	return results, nil
}

// runOne sorts a private copy of data with alg and fills r
func (h *Harness) runOne(ctx context.Context, alg classicsort.Algorithm, data []float64, r *Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log := h.log.WithField("algorithm", alg.String())
	config := &classicsort.Config{
		Verbose:  h.config.Verbose,
		Reporter: classicsort.NewLogReporter(log),
	}

	sorted := slices.Clone(data)
	var stats *classicsort.Stats
	elapsed, err := Timed(func() error {
		var err error
		stats, err = classicsort.Ordered(alg, sorted, config)
		return err
	})
	if err != nil {
		return errors.Wrapf(err, "%s sort", alg)
	}
	log.WithField("ms", elapsed.Milliseconds()).Info("time taken")

	*r = Result{
		Algorithm: alg,
		Stats:     stats,
		Elapsed:   elapsed,
		Sorted:    sorted,
	}

	if h.config.NoOutput {
		return nil
	}
	r.Output = h.outputPath(alg)
	if err := dataio.DumpFile(r.Output, sorted); err != nil {
		return err
	}
	log.WithField("output", r.Output).Debug("wrote output")
	return nil
}

func (h *Harness) outputPath(alg classicsort.Algorithm) string {
	return filepath.Join(h.config.OutputDir, fmt.Sprintf(h.config.OutputPattern, int(alg)))
}

// verify checks that every output is sorted and holds the same values as the first
func (h *Harness) verify(ctx context.Context, results []Result) error {
	for _, r := range results {
		if !slices.IsSortedFunc(r.Sorted, cmp.Compare[float64]) {
			return &MismatchError{Algorithm: r.Algorithm, Unsorted: true}
		}
	}
	if len(results) < 2 {
		return nil
	}
	ref := results[0]
	for _, r := range results[1:] {
		log := h.log.WithFields(logrus.Fields{
			"algorithm": r.Algorithm.String(),
			"against":   ref.Algorithm.String(),
		})
		report := diff.Limit[float64](maxReportedDiffs, func(d diff.Delta, v float64) error {
			log.WithField("value", fmt.Sprintf("%s %v", d, v)).Warn("output differs")
			return nil
		})
		if h.config.ShowDiff {
			report = h.showDiff(r.Algorithm, ref.Algorithm, report)
		}
		res, err := diff.Ordered(ctx, ref.Sorted, r.Sorted, report)
		if err != nil {
			return err
		}
		if !res.Same() {
			return &MismatchError{Algorithm: r.Algorithm, Against: ref.Algorithm, Diff: res}
		}
	}
	h.log.WithField("engines", len(results)).Debug("outputs agree")
	return nil
}

// showDiff wraps next so every differing value is also printed to DiffOutput,
// under a header naming the two engines that is written before the first value
func (h *Harness) showDiff(alg, against classicsort.Algorithm, next diff.ResultFunc[float64]) diff.ResultFunc[float64] {
	out := h.config.DiffOutput
	printDiff := diff.PrintDiff[float64](out)
	headed := false
	return func(d diff.Delta, v float64) error {
		if !headed {
			headed = true
			if _, err := fmt.Fprintf(out, "--- %s\n+++ %s\n", against, alg); err != nil {
				return errors.Wrap(err, "write diff")
			}
		}
		if err := printDiff(d, v); err != nil {
			return errors.Wrap(err, "write diff")
		}
		return next(d, v)
	}
}

// Cats loads weights from path and sorts them as record.Cat values with alg
func (h *Harness) Cats(path string, alg classicsort.Algorithm) ([]record.Cat, *classicsort.Stats, error) {
	cats, err := record.LoadFile(path, h.log)
	if err != nil {
		return nil, nil, err
	}
	config := &classicsort.Config{
		Verbose:  h.config.Verbose,
		Reporter: classicsort.NewLogReporter(h.log.WithField("algorithm", alg.String())),
	}
	stats, err := classicsort.Records(alg, cats, config)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "%s sort of %s", alg, path)
	}
	return cats, stats, nil
}
