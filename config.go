package classicsort

// Config holds configuration settings shared by all engines
type Config struct {
	Verbose  bool     // report every pass (or partition) with a snapshot of the data
	Reporter Reporter // receives pass and total statistics, nil discards them
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		Verbose:  false,
		Reporter: NopReporter{},
	}
}

// mergeConfig returns a copy of the provided config with any values not set replaced by the defaults
func mergeConfig(c *Config) Config {
	d := DefaultConfig()
	if c == nil {
		return *d
	}
	merged := *c
	if merged.Reporter == nil {
		merged.Reporter = d.Reporter
	}
	return merged
}
