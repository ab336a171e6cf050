package export

import (
	"context"
	"io"
	"os"
	"path/filepath"
)

// Dir is a Store that copies artifacts into a local directory. Useful for
// staging to network mounts and for tests.
type Dir struct {
	Root string
}

// Put copies the object to Root/name.
func (d Dir) Put(ctx context.Context, name string, r io.Reader, size int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(d.Root, name))
	if err != nil {
		return err
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
