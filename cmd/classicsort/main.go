// Command classicsort loads a list of numbers, sorts it with bubble sort, shuttle sort
// and quicksort, and reports how much work and time each engine took.
//
// Usage:
//
//	classicsort run floats.dat
//	classicsort run --algorithms quick,shuttle --concurrent floats_large.dat
//	classicsort cats cats.dat
//	classicsort generate --descending worst.dat 1000
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lanrat/classicsort"
	"github.com/lanrat/classicsort/dataio"
	"github.com/lanrat/classicsort/harness"
	"github.com/lanrat/classicsort/record"
)

const rule = "-------------------------------"

var (
	header = color.New(color.FgCyan, color.Bold).SprintFunc()
	failed = color.New(color.FgRed, color.Bold).SprintFunc()
)

// options holds the flags shared by every subcommand
type options struct {
	configFile string
	logLevel   string
	verbose    bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failed("error:"), err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "classicsort",
		Short:         "Compare bubble sort, shuttle sort and quicksort",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "yaml config file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log every pass of every sort")

	root.AddCommand(newRunCmd(opts), newCatsCmd(opts), newGenerateCmd())
	return root
}

// loadConfig builds the harness config from the config file, then the flags
func (o *options) loadConfig(cmd *cobra.Command) (*harness.Config, error) {
	c := harness.DefaultConfig()
	if o.configFile != "" {
		var err error
		if c, err = harness.LoadConfig(o.configFile); err != nil {
			return nil, err
		}
	}
	if cmd.Flags().Changed("log-level") {
		c.LogLevel = o.logLevel
	}
	if cmd.Flags().Changed("verbose") {
		c.Verbose = o.verbose
	}
	return c, nil
}

func newLogger(w io.Writer, c *harness.Config) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, classicsort.NewConfigError("log_level", c.LogLevel, err.Error())
	}
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if c.Verbose && level < logrus.DebugLevel {
		// passes are logged at debug
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log, nil
}

func newRunCmd(opts *options) *cobra.Command {
	var (
		outputDir  string
		algorithms []string
		concurrent bool
		noVerify   bool
		noOutput   bool
		showDiff   bool
	)
	cmd := &cobra.Command{
		Use:   "run [input]",
		Short: "Sort a file of numbers with each engine and write out1.dat, out2.dat, out3.dat",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				c.Input = args[0]
			}
			if cmd.Flags().Changed("output-dir") {
				c.OutputDir = outputDir
			}
			if cmd.Flags().Changed("algorithms") {
				c.Algorithms = algorithms
			}
			if cmd.Flags().Changed("concurrent") {
				c.Concurrent = concurrent
			}
			if cmd.Flags().Changed("no-verify") {
				c.Verify = !noVerify
			}
			if cmd.Flags().Changed("no-output") {
				c.NoOutput = noOutput
			}
			if cmd.Flags().Changed("show-diff") {
				c.ShowDiff = showDiff
			}
			c.DiffOutput = cmd.OutOrStdout()

			log, err := newLogger(cmd.ErrOrStderr(), c)
			if err != nil {
				return err
			}
			h, err := harness.New(c, log)
			if err != nil {
				return err
			}
			results, err := h.Run(cmd.Context())
			if err != nil {
				return err
			}
			printResults(cmd.OutOrStdout(), results)
			return nil
		},
	}
	cmd.Flags().StringVarP(&outputDir, "output-dir", "o", ".", "directory for the sorted output files")
	cmd.Flags().StringSliceVarP(&algorithms, "algorithms", "a", nil, "engines to run (bubble, shuttle, quick)")
	cmd.Flags().BoolVar(&concurrent, "concurrent", false, "run the engines at the same time on separate copies")
	cmd.Flags().BoolVar(&noVerify, "no-verify", false, "skip checking that all engines agree")
	cmd.Flags().BoolVar(&noOutput, "no-output", false, "do not write output files")
	cmd.Flags().BoolVar(&showDiff, "show-diff", false, "print the values that differ when the engines disagree")
	return cmd
}

func printResults(w io.Writer, results []harness.Result) {
	for _, r := range results {
		fmt.Fprintf(w, "\n%s\n", header(fmt.Sprintf("Sorting using the %s sort.", r.Algorithm)))
		fmt.Fprintln(w, rule)
		fmt.Fprintf(w, "Passes: %s\n", humanize.Comma(int64(r.Stats.NumPasses())))
		fmt.Fprintf(w, "Total Comparisons: %s\n", humanize.Comma(int64(r.Stats.Comparisons)))
		fmt.Fprintf(w, "Total Swaps: %s\n", humanize.Comma(int64(r.Stats.Swaps)))
		fmt.Fprintf(w, "Time taken (ms): %d\n", r.Elapsed.Milliseconds())
		if r.Output != "" {
			fmt.Fprintf(w, "Output: %s\n", r.Output)
		}
		fmt.Fprintln(w, rule)
	}
}

func newCatsCmd(opts *options) *cobra.Command {
	var algorithm string
	cmd := &cobra.Command{
		Use:   "cats <input>",
		Short: "Sort a file of cat weights as user defined records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.loadConfig(cmd)
			if err != nil {
				return err
			}
			alg, err := classicsort.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			log, err := newLogger(cmd.ErrOrStderr(), c)
			if err != nil {
				return err
			}
			h, err := harness.New(c, log)
			if err != nil {
				return err
			}
			cats, _, err := h.Cats(args[0], alg)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "\n%s\n\n", header(fmt.Sprintf("Sorting a user defined type using the %s sort.", alg)))
			fmt.Fprintln(out, formatCats(cats))
			return nil
		},
	}
	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", classicsort.BubbleSort.String(), "engine to use")
	return cmd
}

func formatCats(cats []record.Cat) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, c := range cats {
		b.WriteString(c.String())
		b.WriteString(" ")
	}
	b.WriteString("]")
	return b.String()
}

func newGenerateCmd() *cobra.Command {
	var descending bool
	cmd := &cobra.Command{
		Use:   "generate <output> <count>",
		Short: "Write the integers 0 to count, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			count, err := strconv.Atoi(args[1])
			if err != nil {
				return classicsort.NewConfigError("count", args[1], "must be an integer")
			}
			if err := dataio.WriteSequenceFile(args[0], count, descending); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s values to %s\n", humanize.Comma(int64(count)+1), args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&descending, "descending", "d", false, "write the values from count down to 0")
	return cmd
}
