package vertex

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
)

// MaskLoader loads a numeric vector from a mask file. Implementations for
// neuroimaging container formats live outside this module; the pipeline
// only requires the numeric values.
type MaskLoader interface {
	Load(path string) ([]float64, error)
}

// TextMaskLoader reads a plain-text numeric vector: values separated by
// commas, whitespace, or newlines. It is the default MaskLoader.
type TextMaskLoader struct{}

// Load reads and parses the vector at path.
func (TextMaskLoader) Load(path string) ([]float64, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fields := strings.FieldsFunc(string(raw), func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	vals := make([]float64, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("vertex: mask %s: malformed value %q at position %d", path, f, i)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
