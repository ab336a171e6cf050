// Package textmat streams delimiter-separated numeric matrices stored as
// text, one line per row, without ever holding the file in memory.
//
// Sources compressed with gzip (.gz) or lz4 (.lz4) are decompressed
// transparently; dense distance matrices are routinely shipped compressed.
package textmat
