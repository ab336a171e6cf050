package textmat

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrBlankLine indicates a row with no content.
	ErrBlankLine = errors.New("textmat: blank line")
	// ErrFieldCount indicates a row with the wrong number of fields.
	ErrFieldCount = errors.New("textmat: unexpected field count")
	// ErrBadNumber indicates a field that does not parse as a number.
	ErrBadNumber = errors.New("textmat: malformed numeric field")
)

// ParseRow splits line on delim, requires exactly want fields, and parses
// them as float32 into dst (which must have capacity >= want). Trailing
// whitespace on the line is ignored.
func ParseRow(line []byte, delim string, want int, dst []float32) ([]float32, error) {
	line = bytes.TrimRight(line, " \t\r\n")
	if len(line) == 0 {
		return nil, ErrBlankLine
	}

	dst = dst[:0]
	sep := []byte(delim)
	n := 0

	for {
		var field []byte
		i := bytes.Index(line, sep)
		if i < 0 {
			field = line
		} else {
			field = line[:i]
		}

		n++
		if n > want {
			return nil, fmt.Errorf("%w: got more than %d fields", ErrFieldCount, want)
		}

		v, err := strconv.ParseFloat(string(field), 32)
		if err != nil {
			return nil, fmt.Errorf("%w: field %d %q", ErrBadNumber, n-1, field)
		}
		dst = append(dst, float32(v))

		if i < 0 {
			break
		}
		line = line[i+len(sep):]
	}

	if n != want {
		return nil, fmt.Errorf("%w: got %d fields, want %d", ErrFieldCount, n, want)
	}
	return dst, nil
}
