package classicsort

// lessFuncStrings provides lexicographic string comparison.
func lessFuncStrings(a, b string) bool {
	return a < b
}

// Strings sorts a slice of strings in place using lexicographic ordering
func Strings(alg Algorithm, data []string, config *Config) (*Stats, error) {
	return Generic(alg, data, lessFuncStrings, config)
}
