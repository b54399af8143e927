package classicsort

import (
	"errors"
	"fmt"
)

// ErrEmptySequence is returned where at least one element is required
var ErrEmptySequence = errors.New("empty sequence")

// RangeError reports an index range that does not fit the sequence it was applied to.
// The sequence is left untouched when a RangeError is returned.
type RangeError struct {
	// Start and End are the inclusive bounds that were requested
	Start, End int
	// Len is the length of the sequence
	Len int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("range [%d, %d] invalid for sequence of length %d", e.Start, e.End, e.Len)
}

// NewRangeError creates a RangeError
func NewRangeError(start, end, length int) error {
	return &RangeError{Start: start, End: end, Len: length}
}

// checkRange validates an inclusive [start, end] range over a sequence of length n.
// An empty range (start == end+1) is valid anywhere inside [0, n].
func checkRange(start, end, n int) error {
	if start < 0 || end >= n || start > end+1 {
		return NewRangeError(start, end, n)
	}
	return nil
}

// ComparisonError represents an error that occurred during item comparison
type ComparisonError struct {
	// Cause is the original panic or error that occurred during comparison
	Cause interface{}
	// Context provides additional information about when the comparison failed
	Context string
}

func (e *ComparisonError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("comparison panic in %s: %v", e.Context, e.Cause)
	}
	return fmt.Sprintf("comparison panic: %v", e.Cause)
}

func (e *ComparisonError) Unwrap() error {
	if err, ok := e.Cause.(error); ok {
		return err
	}
	return nil
}

// NewComparisonError creates a ComparisonError
func NewComparisonError(cause interface{}, context string) error {
	return &ComparisonError{Cause: cause, Context: context}
}

// ConfigError represents an error in configuration parameters
type ConfigError struct {
	// Field is the name of the configuration field that's invalid
	Field string
	// Value is the invalid value provided
	Value interface{}
	// Reason explains why the value is invalid
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in field %s (value: %v): %s", e.Field, e.Value, e.Reason)
}

// NewConfigError creates a ConfigError
func NewConfigError(field string, value interface{}, reason string) error {
	return &ConfigError{Field: field, Value: value, Reason: reason}
}

