// Package export publishes finished artifacts to object storage.
//
// Sorted-neighbor artifacts are O(Nv²) on disk; shipping them to a shared
// store is how they reach the samplers. Export happens strictly after the
// pipeline has finalized the files — it never touches a run in progress.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
)

// Store uploads a named object from a reader.
type Store interface {
	Put(ctx context.Context, name string, r io.Reader, size int64) error
}

// Upload sends every artifact in the map (logical name -> local path) to
// store, keyed by its file name. Artifacts upload concurrently; the first
// failure cancels the rest.
func Upload(ctx context.Context, store Store, artifacts map[string]string) error {
	g, ctx := errgroup.WithContext(ctx)

	for name, path := range artifacts {
		g.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("export: %s: %w", name, err)
			}
			defer f.Close()

			fi, err := f.Stat()
			if err != nil {
				return fmt.Errorf("export: %s: %w", name, err)
			}

			if err := store.Put(ctx, filepath.Base(path), f, fi.Size()); err != nil {
				return fmt.Errorf("export: %s: %w", name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
