// Package core defines the central Region, Group, and Graph types and builds
// the region graph from its two textual datasets.
//
// A Graph is constructed exactly once, in two passes:
//
//  1. Region records ("name,group,cost") are parsed and indexed by name.
//  2. Adjacency records ("root,neighbor,neighbor,…") are resolved against the
//     completed index and linked, one-directional, exactly as declared.
//
// Tolerated vs. fatal input:
//
//   - Region lines with the wrong field count are skipped silently.
//   - Adjacency lines whose root is unknown are skipped whole; unknown
//     neighbor names are skipped individually (datasets may reference regions
//     that were intentionally left out).
//   - A non-numeric or negative cost aborts construction (ErrBadCost), as
//     does an unrecognized group label (ErrUnknownGroup). Construction never
//     proceeds on corrupt data.
//
// Neighbor lists preserve first-declaration order and contain no duplicates;
// traversal code depends on that order for reproducible results. The build
// does not infer symmetry: an edge is bidirectional only if both directions
// appear in the adjacency dataset.
//
// After NewGraph returns, the Graph and every Region in it are immutable, so
// concurrent readers need no synchronization.
//
// Errors:
//
//	ErrUnknownGroup   - group label does not match any of the six groups.
//	ErrBadCost        - region cost is not a non-negative integer.
//	ErrRegionNotFound - lookup of a name absent from the index.
package core
