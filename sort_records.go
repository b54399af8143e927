package classicsort

// lesserLess adapts a Lesser's own method into a LessFunc
func lesserLess[E Lesser[E]](a, b E) bool {
	return a.Less(b)
}

// Records sorts a slice of record types that define their own ordering through a Less method
func Records[E Lesser[E]](alg Algorithm, data []E, config *Config) (*Stats, error) {
	return Generic(alg, data, lesserLess[E], config)
}
