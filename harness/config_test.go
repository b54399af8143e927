package harness_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanrat/classicsort"
	"github.com/lanrat/classicsort/harness"
)

func TestDefaultConfigValid(t *testing.T) {
	c := harness.DefaultConfig()
	require.NoError(t, c.Validate())
	algs, err := c.ParsedAlgorithms()
	require.NoError(t, err)
	assert.Equal(t, classicsort.Algorithms(), algs)
	assert.True(t, c.Verify)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*harness.Config)
		field string
	}{
		{"unknown algorithm", func(c *harness.Config) { c.Algorithms = []string{"heap"} }, "algorithm"},
		{"duplicate algorithm", func(c *harness.Config) { c.Algorithms = []string{"quick", "Quick"} }, "algorithms"},
		{"no algorithms", func(c *harness.Config) { c.Algorithms = nil }, "algorithms"},
		{"pattern without verb", func(c *harness.Config) { c.OutputPattern = "out.dat" }, "output_pattern"},
		{"pattern with two verbs", func(c *harness.Config) { c.OutputPattern = "out%d_%d.dat" }, "output_pattern"},
		{"pattern with other verb", func(c *harness.Config) { c.OutputPattern = "%s%d.dat" }, "output_pattern"},
		{"bad log level", func(c *harness.Config) { c.LogLevel = "loud" }, "log_level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := harness.DefaultConfig()
			tt.edit(c)
			err := c.Validate()
			var configErr *classicsort.ConfigError
			require.True(t, errors.As(err, &configErr), "got %v", err)
			assert.Equal(t, tt.field, configErr.Field)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	_, err := harness.New(&harness.Config{Algorithms: []string{"bogo"}}, nil)
	assert.Error(t, err)
}

func TestNewFillsDefaults(t *testing.T) {
	h, err := harness.New(&harness.Config{Input: "in.dat"}, nil)
	require.NoError(t, err)
	c := h.Config()
	assert.Equal(t, "in.dat", c.Input)
	assert.Equal(t, "out%d.dat", c.OutputPattern)
	assert.Equal(t, ".", c.OutputDir)
	assert.Equal(t, "info", c.LogLevel)
	assert.Len(t, c.Algorithms, 3)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classicsort.yml")
	yml := `input: floats.dat
output_dir: /tmp/sorted
algorithms:
  - shuttle
  - quick
concurrent: true
verbose: true
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	c, err := harness.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "floats.dat", c.Input)
	assert.Equal(t, "/tmp/sorted", c.OutputDir)
	assert.Equal(t, []string{"shuttle", "quick"}, c.Algorithms)
	assert.True(t, c.Concurrent)
	assert.True(t, c.Verbose)
	assert.True(t, c.Verify, "verify keeps its default when not mentioned")
	assert.Equal(t, "out%d.dat", c.OutputPattern)
}

func TestLoadConfigVerifyOff(t *testing.T) {
	path := filepath.Join(t.TempDir(), "classicsort.yml")
	require.NoError(t, os.WriteFile(path, []byte("verify: false\n"), 0o644))
	c, err := harness.LoadConfig(path)
	require.NoError(t, err)
	assert.False(t, c.Verify)
}

func TestLoadConfigErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := harness.LoadConfig(filepath.Join(dir, "missing.yml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	unknown := filepath.Join(dir, "unknown.yml")
	require.NoError(t, os.WriteFile(unknown, []byte("colour: blue\n"), 0o644))
	_, err = harness.LoadConfig(unknown)
	assert.Error(t, err)

	invalid := filepath.Join(dir, "invalid.yml")
	require.NoError(t, os.WriteFile(invalid, []byte("algorithms: [merge]\n"), 0o644))
	_, err = harness.LoadConfig(invalid)
	var configErr *classicsort.ConfigError
	assert.True(t, errors.As(err, &configErr))
}
