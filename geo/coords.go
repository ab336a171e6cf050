package geo

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadCoords reads an N x d numeric coordinate table (one vertex per line,
// fields separated by whitespace or the configured delimiter). Every row
// must have the same dimensionality.
func ReadCoords(path string, optFns ...Option) ([][]float64, error) {
	o := applyOptions(optFns)

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var coords [][]float64
	dim := -1

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		lineNo++
		if line == "" {
			continue
		}

		var fields []string
		if o.delimiter == " " {
			fields = strings.Fields(line)
		} else {
			fields = strings.Split(line, o.delimiter)
		}

		if dim < 0 {
			dim = len(fields)
		} else if len(fields) != dim {
			return nil, fmt.Errorf("geo: %s line %d has %d fields, want %d", path, lineNo, len(fields), dim)
		}

		row := make([]float64, dim)
		for i, field := range fields {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("geo: %s line %d: malformed value %q", path, lineNo, field)
			}
			row[i] = v
		}
		coords = append(coords, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(coords) == 0 {
		return nil, fmt.Errorf("geo: %s contains no coordinates", path)
	}
	return coords, nil
}

// ReadLabels reads a numeric parcel-label vector, one value per vertex.
func ReadLabels(path string) ([]int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fields := strings.FieldsFunc(string(raw), func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	labels := make([]int, 0, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("geo: labels %s: malformed value %q at position %d", path, f, i)
		}
		labels = append(labels, int(v))
	}
	return labels, nil
}
