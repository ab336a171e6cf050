// Package vertex handles vertex masking and the retained-vertex index.
//
// A mask marks vertices to exclude (nonzero = excluded, matching the
// convention of neuroimaging mask files). The retained-vertex index maps
// the compacted output space of size Nv back to original row positions and
// answers "is this line retained" in constant time, so masked runs stay
// O(N*Nv) instead of degrading to O(N^2).
package vertex
