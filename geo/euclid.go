package geo

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
)

// WriteEuclidean streams the pairwise Euclidean distance matrix of coords
// to a delimited text file at path, one row at a time.
//
// The output is exactly the input format the preprocessing pipeline
// consumes: N lines of N fields. Memory stays O(N) regardless of N.
func WriteEuclidean(coords [][]float64, path string, optFns ...Option) error {
	o := applyOptions(optFns)

	n := len(coords)
	if n == 0 {
		return fmt.Errorf("geo: no coordinates")
	}
	dim := len(coords[0])
	for i, c := range coords {
		if len(c) != dim {
			return fmt.Errorf("geo: coordinate %d has %d dimensions, want %d", i, len(c), dim)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)

	// Reused per-row formatting buffer.
	var numBuf [32]byte

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j > 0 {
				if _, err := w.WriteString(o.delimiter); err != nil {
					return err
				}
			}
			d := euclidean(coords[i], coords[j])
			if _, err := w.Write(strconv.AppendFloat(numBuf[:0], d, 'g', -1, 64)); err != nil {
				return err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
	}

	if err := w.Flush(); err != nil {
		return err
	}
	return f.Sync()
}

func euclidean(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
