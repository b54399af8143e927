package harness

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/lanrat/classicsort"
)

// Config holds configuration settings for a harness run
type Config struct {
	Input         string   `yaml:"input"`          // file of whitespace separated numbers
	OutputDir     string   `yaml:"output_dir"`     // directory for sorted output files
	OutputPattern string   `yaml:"output_pattern"` // file name with one %d, replaced by the engine number (bubble 1, shuttle 2, quick 3)
	Algorithms    []string `yaml:"algorithms"`     // engines to run, in order
	Verbose       bool     `yaml:"verbose"`        // log every pass
	Concurrent    bool     `yaml:"concurrent"`     // run engines at the same time, each on its own copy
	Verify        bool     `yaml:"verify"`         // check every engine produced the same sorted output
	NoOutput      bool     `yaml:"no_output"`      // skip writing output files
	ShowDiff      bool     `yaml:"show_diff"`      // print the values that differ when verification fails
	LogLevel      string   `yaml:"log_level"`

	// DiffOutput receives the ShowDiff listing, os.Stdout when nil
	DiffOutput io.Writer `yaml:"-"`
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	algs := classicsort.Algorithms()
	names := make([]string, len(algs))
	for i, a := range algs {
		names[i] = a.String()
	}
	return &Config{
		OutputDir:     ".",
		OutputPattern: "out%d.dat",
		Algorithms:    names,
		Verify:        true,
		LogLevel:      "info",
	}
}

// mergeConfig returns a copy of c with any values not set replaced by the defaults
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	merged := *c
	if merged.OutputDir == "" {
		merged.OutputDir = d.OutputDir
	}
	if merged.OutputPattern == "" {
		merged.OutputPattern = d.OutputPattern
	}
	if len(merged.Algorithms) == 0 {
		merged.Algorithms = d.Algorithms
	}
	if merged.LogLevel == "" {
		merged.LogLevel = d.LogLevel
	}
	if merged.ShowDiff && merged.DiffOutput == nil {
		merged.DiffOutput = os.Stdout
	}
	return &merged
}

// LoadConfig reads a yaml config file; fields it leaves out take their default values.
// Verify defaults to true only when the file does not mention it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	c := DefaultConfig()
	if err := yaml.UnmarshalStrict(data, c); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	c = mergeConfig(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks every field that can be wrong, returning a *classicsort.ConfigError
func (c *Config) Validate() error {
	if _, err := c.ParsedAlgorithms(); err != nil {
		return err
	}
	if strings.Count(c.OutputPattern, "%d") != 1 || strings.Count(c.OutputPattern, "%") != 1 {
		return classicsort.NewConfigError("output_pattern", c.OutputPattern, "must contain exactly one %d")
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return classicsort.NewConfigError("log_level", c.LogLevel, err.Error())
	}
	return nil
}

// ParsedAlgorithms returns the engines named in Algorithms
func (c *Config) ParsedAlgorithms() ([]classicsort.Algorithm, error) {
	if len(c.Algorithms) == 0 {
		return nil, classicsort.NewConfigError("algorithms", c.Algorithms, "at least one algorithm is required")
	}
	out := make([]classicsort.Algorithm, 0, len(c.Algorithms))
	seen := make(map[classicsort.Algorithm]bool)
	for _, name := range c.Algorithms {
		a, err := classicsort.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			return nil, classicsort.NewConfigError("algorithms", name, "listed more than once")
		}
		seen[a] = true
		out = append(out, a)
	}
	return out, nil
}
