package geo

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/hupe1980/distmap/internal/textmat"
)

// Parcellate reduces the dense vertex-level distance matrix at distFile to
// a parcel-level matrix written to outFile. The distance between parcels A
// and B is the mean distance over all vertex pairs (i in A, j in B); the
// diagonal is zero. Vertices with the unassigned label are excluded.
//
// labels must contain one parcel label per matrix row. The returned slice
// holds the parcel labels in output row order (ascending).
//
// The matrix is streamed in a single pass with O(P²) accumulators, so
// memory does not depend on the vertex count.
func Parcellate(distFile string, labels []int, outFile string, optFns ...Option) ([]int, error) {
	o := applyOptions(optFns)

	n, err := textmat.CountLines(distFile)
	if err != nil {
		return nil, err
	}
	if len(labels) != n {
		return nil, fmt.Errorf("geo: %d labels for %d matrix rows in %s", len(labels), n, distFile)
	}

	// Ascending unique parcel labels, unassigned excluded.
	seen := make(map[int]bool)
	var parcels []int
	for _, l := range labels {
		if l != o.unassigned && !seen[l] {
			seen[l] = true
			parcels = append(parcels, l)
		}
	}
	if len(parcels) == 0 {
		return nil, fmt.Errorf("geo: no assigned parcels in labels")
	}
	sort.Ints(parcels)

	pidx := make(map[int]int, len(parcels))
	for i, l := range parcels {
		pidx[l] = i
	}
	p := len(parcels)

	sums := make([][]float64, p)
	counts := make([][]int64, p)
	for i := range sums {
		sums[i] = make([]float64, p)
		counts[i] = make([]int64, p)
	}

	src, err := textmat.Open(distFile)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	fields := make([]float32, 0, n)
	il := 0
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if il >= n {
			return nil, fmt.Errorf("geo: %s has more rows than counted (%d)", distFile, n)
		}
		if li := labels[il]; li != o.unassigned {
			fields, err = textmat.ParseRow(line, o.delimiter, n, fields)
			if err != nil {
				return nil, fmt.Errorf("geo: row %d: %w", il, err)
			}
			pi := pidx[li]
			for j, v := range fields {
				lj := labels[j]
				if lj == o.unassigned {
					continue
				}
				pj := pidx[lj]
				sums[pi][pj] += float64(v)
				counts[pi][pj]++
			}
		}
		il++
	}
	if err := src.Err(); err != nil {
		return nil, err
	}

	f, err := os.Create(outFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	w := bufio.NewWriterSize(f, 1<<20)
	var numBuf [32]byte

	for i := 0; i < p; i++ {
		for j := 0; j < p; j++ {
			if j > 0 {
				if _, err := w.WriteString(o.delimiter); err != nil {
					return nil, err
				}
			}
			var v float64
			switch {
			case i == j:
				v = 0
			case counts[i][j] > 0:
				v = sums[i][j] / float64(counts[i][j])
			default:
				v = math.NaN()
			}
			if _, err := w.Write(strconv.AppendFloat(numBuf[:0], v, 'g', -1, 64)); err != nil {
				return nil, err
			}
		}
		if err := w.WriteByte('\n'); err != nil {
			return nil, err
		}
	}

	if err := w.Flush(); err != nil {
		return nil, err
	}
	if err := f.Sync(); err != nil {
		return nil, err
	}
	return parcels, nil
}
