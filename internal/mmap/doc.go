// Package mmap provides memory-mapped file access for the on-disk array
// artifacts.
//
// Two kinds of mappings exist:
//
//   - Open maps an existing file read-only, for zero-copy row retrieval.
//   - Create allocates a file of a fixed size and maps it read-write, so
//     output rows can be written at arbitrary offsets without holding the
//     whole array in memory.
//
// A writable mapping MUST be flushed (msync + fsync) before Close; dropping
// the mapping without Flush risks truncated or torn output files. Close is
// idempotent and safe to defer on error paths.
package mmap
