// Package dataio reads and writes flat lists of values: whitespace separated on the
// way in, one value per line on the way out.
package dataio

import (
	"bufio"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// maxTokenSize bounds a single value in the input
const maxTokenSize = 1 << 20

// ParseFunc converts one whitespace delimited token into a value
type ParseFunc[T any] func(token string) (T, error)

// Load reads whitespace delimited tokens from r and parses each with parse.
// Reading stops without error at the end of input or at the first token that does not
// parse, so a trailing comment or footer simply ends the list. That stop is noted on log
// at debug level; a nil log uses the logrus standard logger.
func Load[T any](r io.Reader, parse ParseFunc[T], log logrus.FieldLogger) ([]T, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxTokenSize)
	scanner.Split(bufio.ScanWords)

	var out []T
	for scanner.Scan() {
		token := scanner.Text()
		v, err := parse(token)
		if err != nil {
			log.WithFields(logrus.Fields{
				"token": token,
				"index": len(out),
				"error": err,
			}).Debug("input stopped at unparsable token")
			break
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return out, nil
}

// LoadFile opens path and Loads it, adding the path to anything logged
func LoadFile[T any](path string, parse ParseFunc[T], log logrus.FieldLogger) ([]T, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	out, err := Load(f, parse, log.WithField("path", path))
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", path)
	}
	return out, nil
}

// ParseFloat parses a token as a float64
func ParseFloat(token string) (float64, error) {
	return strconv.ParseFloat(token, 64)
}

// ParseInt parses a token as a base 10 int
func ParseInt(token string) (int, error) {
	return strconv.Atoi(token)
}

// Floats loads a list of float64 values from r
func Floats(r io.Reader, log logrus.FieldLogger) ([]float64, error) {
	return Load[float64](r, ParseFloat, log)
}

// FloatsFile loads a list of float64 values from path
func FloatsFile(path string, log logrus.FieldLogger) ([]float64, error) {
	return LoadFile[float64](path, ParseFloat, log)
}
