// Package distmap preprocesses dense pairwise-distance matrices into
// memory-mapped sorted-neighbor arrays.
//
// The input is a delimiter-separated text matrix, one row per vertex,
// potentially far larger than RAM. Create streams it once and produces two
// on-disk NPY arrays sized [Nv, Nv]:
//
//   - distmat.npy (float32): row i holds vertex i's distances to all
//     retained vertices, sorted ascending.
//   - index.npy (int32): row i holds the permutation of retained-column
//     indices that produced the sorted row.
//
// A downstream sampler can then fetch any vertex's k nearest neighbors with
// a single mapped row read instead of re-scanning the text matrix.
//
// # Quick Start
//
//	artifacts, err := distmap.Create("geodesic.txt", "./out")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(artifacts["distmat"], artifacts["index"])
//
// With a vertex mask (nonzero = excluded) and a custom delimiter:
//
//	artifacts, err := distmap.Create("geodesic.csv.gz", "./out",
//	    distmap.WithDelimiter(","),
//	    distmap.WithMaskFile("medial_wall.txt"),
//	)
//
// # Resource model
//
// The pipeline is single-threaded and holds one row (O(N)) in memory; the
// O(Nv²) outputs are written through memory mappings and never need to be
// RAM-resident. There is no atomic write discipline: an interrupted run
// leaves partial artifacts that must be deleted before retrying.
package distmap
