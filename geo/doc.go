// Package geo constructs and reduces the delimited-text distance matrices
// the preprocessing pipeline consumes.
//
// WriteEuclidean streams a pairwise Euclidean distance matrix from a
// coordinate table one row at a time, so an N-vertex matrix never resides
// in memory. Parcellate collapses a dense vertex-level matrix into a
// parcel-level matrix by averaging cross-parcel vertex distances.
//
// Surface and volume coordinates arrive as plain numeric tables; parsing
// neuroimaging container formats is out of scope here, mirroring the mask
// loader boundary.
package geo
