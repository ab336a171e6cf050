package array

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Scalar is the set of element types the artifacts use: float32 for sorted
// distances, int32 for sort permutations.
type Scalar interface {
	float32 | int32
}

const (
	// npyMagic opens every NPY file.
	npyMagic = "\x93NUMPY"

	// versionMajor/versionMinor identify the written format (NPY v1.0).
	versionMajor = 1
	versionMinor = 0

	// headerAlign pads the header so data starts on a 64-byte boundary,
	// which also guarantees element alignment for mapped typed views.
	headerAlign = 64

	// preambleLen is magic + version + header length field.
	preambleLen = len(npyMagic) + 2 + 2

	// elemSize is the byte width of every supported element type.
	elemSize = 4
)

var (
	// ErrInvalidMagic is returned when a file does not start with the NPY magic.
	ErrInvalidMagic = errors.New("array: invalid magic")
	// ErrUnsupportedVersion is returned for NPY versions other than 1.x.
	ErrUnsupportedVersion = errors.New("array: unsupported version")
	// ErrFortranOrder is returned for column-major files; artifacts are row-major.
	ErrFortranOrder = errors.New("array: fortran order not supported")
	// ErrDTypeMismatch is returned when the file element type differs from the requested one.
	ErrDTypeMismatch = errors.New("array: dtype mismatch")
	// ErrNotMatrix is returned when the file is not two-dimensional.
	ErrNotMatrix = errors.New("array: shape is not two-dimensional")
	// ErrTruncated is returned when the data section is shorter than the header implies.
	ErrTruncated = errors.New("array: truncated data section")
	// ErrRowLength is returned when a written row has the wrong number of elements.
	ErrRowLength = errors.New("array: row length mismatch")
	// ErrArrayFull is returned when writing past the last row.
	ErrArrayFull = errors.New("array: all rows already written")
	// ErrRowOutOfRange is returned when reading a row index outside the array.
	ErrRowOutOfRange = errors.New("array: row index out of range")
	// ErrClosed is returned when using a closed reader or writer.
	ErrClosed = errors.New("array: closed")
)

// dtypeOf returns the NPY descr string for T.
func dtypeOf[T Scalar]() string {
	var z T
	switch any(z).(type) {
	case float32:
		return "<f4"
	case int32:
		return "<i4"
	default:
		panic("array: unsupported scalar type")
	}
}

// encodeHeader builds the full NPY v1.0 preamble + header dict for a
// row-major [rows, cols] array of the given descr.
func encodeHeader(descr string, rows, cols int) []byte {
	dict := fmt.Sprintf("{'descr': '%s', 'fortran_order': False, 'shape': (%d, %d), }", descr, rows, cols)

	total := preambleLen + len(dict) + 1 // +1 for the trailing newline
	pad := 0
	if rem := total % headerAlign; rem != 0 {
		pad = headerAlign - rem
	}

	var buf bytes.Buffer
	buf.WriteString(npyMagic)
	buf.WriteByte(versionMajor)
	buf.WriteByte(versionMinor)

	hlen := len(dict) + pad + 1
	var lenField [2]byte
	binary.LittleEndian.PutUint16(lenField[:], uint16(hlen))
	buf.Write(lenField[:])

	buf.WriteString(dict)
	buf.Write(bytes.Repeat([]byte{' '}, pad))
	buf.WriteByte('\n')

	return buf.Bytes()
}

// header describes a parsed NPY file.
type header struct {
	descr   string
	rows    int
	cols    int
	dataOff int
}

// parseHeader decodes the NPY preamble and header dict from mapped bytes.
func parseHeader(data []byte) (header, error) {
	var h header

	if len(data) < preambleLen {
		return h, ErrInvalidMagic
	}
	if string(data[:len(npyMagic)]) != npyMagic {
		return h, ErrInvalidMagic
	}
	if data[len(npyMagic)] != versionMajor {
		return h, fmt.Errorf("%w: %d.%d", ErrUnsupportedVersion, data[len(npyMagic)], data[len(npyMagic)+1])
	}

	hlen := int(binary.LittleEndian.Uint16(data[len(npyMagic)+2 : preambleLen]))
	if len(data) < preambleLen+hlen {
		return h, ErrTruncated
	}
	dict := string(data[preambleLen : preambleLen+hlen])
	h.dataOff = preambleLen + hlen

	descr, err := dictValue(dict, "'descr'")
	if err != nil {
		return h, err
	}
	h.descr = strings.Trim(descr, "'\"")

	order, err := dictValue(dict, "'fortran_order'")
	if err != nil {
		return h, err
	}
	if strings.TrimSpace(order) != "False" {
		return h, ErrFortranOrder
	}

	shape, err := dictValue(dict, "'shape'")
	if err != nil {
		return h, err
	}
	dims, err := parseShape(shape)
	if err != nil {
		return h, err
	}
	if len(dims) != 2 {
		return h, fmt.Errorf("%w: %d dimensions", ErrNotMatrix, len(dims))
	}
	h.rows, h.cols = dims[0], dims[1]

	return h, nil
}

// dictValue extracts the raw value following `key:` in the header dict.
func dictValue(dict, key string) (string, error) {
	i := strings.Index(dict, key)
	if i < 0 {
		return "", fmt.Errorf("array: header missing %s", key)
	}
	rest := dict[i+len(key):]
	j := strings.Index(rest, ":")
	if j < 0 {
		return "", fmt.Errorf("array: malformed header near %s", key)
	}
	rest = rest[j+1:]

	// Values end at the next top-level comma; shape tuples contain commas,
	// so scan with a parenthesis depth counter.
	depth := 0
	for k := 0; k < len(rest); k++ {
		switch rest[k] {
		case '(':
			depth++
		case ')':
			depth--
		case ',', '}':
			if depth == 0 {
				return strings.TrimSpace(rest[:k]), nil
			}
		}
	}
	return strings.TrimSpace(rest), nil
}

// parseShape decodes a Python tuple like "(86, 86)" or "(5,)".
func parseShape(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return nil, fmt.Errorf("array: malformed shape %q", s)
	}
	s = strings.Trim(s, "()")

	var dims []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		d, err := strconv.Atoi(part)
		if err != nil || d < 0 {
			return nil, fmt.Errorf("array: malformed shape dimension %q", part)
		}
		dims = append(dims, d)
	}
	return dims, nil
}
