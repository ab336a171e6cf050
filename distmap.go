package distmap

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/time/rate"

	"github.com/hupe1980/distmap/array"
	"github.com/hupe1980/distmap/internal/textmat"
	"github.com/hupe1980/distmap/vertex"
)

// Artifact file names written into the output directory.
const (
	DistMatFileName = "distmat.npy"
	IndexFileName   = "index.npy"
	MaskFileName    = "mask.txt"
)

// Create streams the distance matrix at distFile and writes the sorted
// distance and sort-index arrays into outputDir.
//
// The returned map holds the absolute artifact paths under the keys
// "distmat" and "index" — the contract the downstream sampling engine
// consumes.
//
// If the run is interrupted, the output files are left partially written
// and must be treated as corrupt; delete them and re-run.
func Create(distFile, outputDir string, optFns ...Option) (map[string]string, error) {
	o := applyOptions(optFns)
	log := o.logger

	// Before anything else, including opening the source file.
	if fi, err := os.Stat(outputDir); err != nil || !fi.IsDir() {
		return nil, &ErrOutputDirMissing{Path: outputDir}
	}
	absOut, err := filepath.Abs(outputDir)
	if err != nil {
		return nil, err
	}

	n, err := textmat.CountLines(distFile)
	if err != nil {
		return nil, err
	}
	log.Debug("counted source rows", "file", distFile, "rows", n)

	var mask vertex.Mask
	if o.maskFile != "" {
		vals, err := o.maskLoader.Load(o.maskFile)
		if err != nil {
			return nil, err
		}
		if len(vals) != n {
			return nil, &ErrMaskSizeMismatch{
				Rows:     n,
				MaskLen:  len(vals),
				DistFile: distFile,
				MaskFile: o.maskFile,
			}
		}
		mask = vertex.MaskFromValues(vals)
		if err := mask.WriteText(filepath.Join(absOut, MaskFileName)); err != nil {
			return nil, err
		}
	}

	ix, err := vertex.Build(n, mask)
	if err != nil {
		return nil, err
	}
	nv := ix.Len()
	if nv == 0 {
		return nil, fmt.Errorf("distmap: no retained vertices (all %d masked)", n)
	}
	log.Info("building sorted-neighbor arrays", "vertices", n, "retained", nv)

	distPath := filepath.Join(absOut, DistMatFileName)
	indexPath := filepath.Join(absOut, IndexFileName)

	dw, err := array.Create[float32](distPath, nv, nv)
	if err != nil {
		return nil, err
	}
	defer dw.Close()

	iw, err := array.Create[int32](indexPath, nv, nv)
	if err != nil {
		return nil, err
	}
	defer iw.Close()

	if err := streamRows(distFile, &o, ix, dw, iw); err != nil {
		return nil, err
	}

	// Explicit finalize: commit all written rows before handing the
	// artifacts to the caller.
	if err := dw.Flush(); err != nil {
		return nil, err
	}
	if err := iw.Flush(); err != nil {
		return nil, err
	}
	if err := dw.Close(); err != nil {
		return nil, err
	}
	if err := iw.Close(); err != nil {
		return nil, err
	}

	log.Info("artifacts written", "distmat", distPath, "index", indexPath)

	return map[string]string{
		"distmat": distPath,
		"index":   indexPath,
	}, nil
}

// streamRows reads the source one line at a time, projects retained rows
// onto retained columns, sorts them, and fills the output arrays in
// compacted order.
func streamRows(distFile string, o *options, ix *vertex.Index, dw *array.Writer[float32], iw *array.Writer[int32]) error {
	src, err := textmat.Open(distFile)
	if err != nil {
		return err
	}
	defer src.Close()

	n := ix.N()
	nv := ix.Len()

	// One row of working memory, reused across the whole stream.
	fields := make([]float32, 0, n)
	projected := make([]float32, 0, nv)
	sorted := make([]float32, nv)
	perm := make([]int32, nv)

	progress := rate.Sometimes{Interval: o.progressInterval}

	il := 0
	for {
		line, ok := src.Next()
		if !ok {
			break
		}
		if ix.Contains(il) {
			fields, err = textmat.ParseRow(line, o.delimiter, n, fields)
			if err != nil {
				return &ErrMalformedRow{Row: il, cause: err}
			}
			projected = ix.Project(fields, projected)

			argsort(projected, perm)
			for j, p := range perm {
				sorted[j] = projected[p]
			}

			if err := dw.WriteRow(sorted); err != nil {
				return err
			}
			if err := iw.WriteRow(perm); err != nil {
				return err
			}

			written := dw.Written()
			progress.Do(func() {
				o.logger.Info("streaming rows", "row", il, "written", written, "retained", nv)
			})
		}
		il++
	}
	if err := src.Err(); err != nil {
		return err
	}

	if dw.Written() != nv {
		return fmt.Errorf("distmap: wrote %d of %d retained rows (source shrank mid-run?)", dw.Written(), nv)
	}
	return nil
}
