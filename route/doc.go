// Package route computes minimum-hop routes between two regions of a
// core.Graph and aggregates fuel statistics along the way.
//
// ShortestRoute runs a breadth-first traversal from the source region with a
// FIFO frontier. Regions are marked discovered when enqueued, each carrying a
// parent link, and a node's neighbors are expanded in their stored
// declaration order. The instant the destination is discovered the remaining
// neighbors of the current node are not scanned and the traversal stops.
// Because of this, the first shortest path found always follows neighbor
// declaration order — among several shortest paths the result is
// deterministic and reproducible.
//
// The resulting RouteResult carries the path (endpoints inclusive), the total
// cost of the interior regions, a per-group cost breakdown in first-appearance
// order along the path, and the peak group (ties go to the group appearing
// first). Endpoints register their group at zero but never add to any sum.
//
// If the destination was never discovered (disconnected graph) the result
// degrades to the two-element path [source, destination] with zero cost; a
// production graph is assumed connected, so this is a safety fallback only.
//
// Calling ShortestRoute with source == destination is a caller-level
// precondition violation: reject the query before invoking the algorithm.
//
// Queries run synchronously to completion, with no cancellation points; the
// graph is immutable, so any number of queries may run concurrently.
package route
