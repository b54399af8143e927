// Package record holds a small user defined type that orders itself, used to show the
// engines sorting something other than a built in type.
package record

import (
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/lanrat/classicsort/dataio"
)

// Cat is ordered by weight
type Cat struct {
	Weight int
}

// Less reports whether c is lighter than other
func (c Cat) Less(other Cat) bool {
	return other.Weight > c.Weight
}

func (c Cat) String() string {
	return strconv.Itoa(c.Weight)
}

// ParseCat reads a Cat from its weight
func ParseCat(token string) (Cat, error) {
	w, err := strconv.Atoi(token)
	if err != nil {
		return Cat{}, errors.Wrapf(err, "cat weight %q", token)
	}
	return Cat{Weight: w}, nil
}

// Load reads whitespace separated weights from r until the end of input or the first
// token that is not a weight. A nil log uses the logrus standard logger.
func Load(r io.Reader, log logrus.FieldLogger) ([]Cat, error) {
	return dataio.Load[Cat](r, ParseCat, log)
}

// LoadFile reads weights from path
func LoadFile(path string, log logrus.FieldLogger) ([]Cat, error) {
	return dataio.LoadFile[Cat](path, ParseCat, log)
}

// Weights returns the weight of every cat in order
func Weights(cats []Cat) []int {
	out := make([]int, len(cats))
	for i, c := range cats {
		out[i] = c.Weight
	}
	return out
}
