// Package array reads and writes the on-disk array artifacts produced by
// the preprocessing pipeline.
//
// Files use the NumPy NPY v1.0 container: a self-describing ASCII header
// (element type, shape, row-major order) followed by raw little-endian
// data. Downstream samplers — including NumPy-based ones — can therefore
// consume the artifacts directly.
//
// Writer maps the output file read-write and fills it one row at a time, so
// an [Nv, Nv] array is built without ever being memory-resident. Reader
// maps an existing file read-only and hands out zero-copy row views.
package array
