package distmap

import (
	"fmt"
)

// ErrOutputDirMissing indicates that the output directory does not exist.
// It is detected before any file is read or written.
type ErrOutputDirMissing struct {
	Path string
}

func (e *ErrOutputDirMissing) Error() string {
	return fmt.Sprintf("output directory does not exist: %s", e.Path)
}

// ErrMaskSizeMismatch indicates that the mask and the distance matrix
// disagree on the vertex count. It is detected before any output file is
// created.
type ErrMaskSizeMismatch struct {
	Rows     int
	MaskLen  int
	DistFile string
	MaskFile string
}

func (e *ErrMaskSizeMismatch) Error() string {
	return fmt.Sprintf(
		"distance matrix and mask must contain the same number of elements: %d rows in %s, %d elements in %s",
		e.Rows, e.DistFile, e.MaskLen, e.MaskFile,
	)
}

// ErrMalformedRow indicates a retained source row that could not be
// processed: wrong field count, a non-numeric token, or a blank line.
// Blank retained lines are rejected rather than skipped because skipping
// would silently desynchronize later output rows from their vertices.
//
// The underlying parse error can be accessed via errors.Unwrap.
type ErrMalformedRow struct {
	Row   int // original 0-based row position in the source file
	cause error
}

func (e *ErrMalformedRow) Error() string {
	return fmt.Sprintf("malformed row %d: %v", e.Row, e.cause)
}

func (e *ErrMalformedRow) Unwrap() error { return e.cause }
