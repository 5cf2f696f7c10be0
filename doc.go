// Package atlas answers minimum-hop routing queries over a fixed graph of
// named regions.
//
// What atlas gives you:
//
//   - core/  — the region data model (Region, Group, Graph) and two-pass
//     construction from a pair of line-oriented CSV datasets
//   - route/ — breadth-first shortest routes with per-group fuel accounting
//     (total interior cost, first-appearance group breakdown, peak group)
//   - cmd/atlas — an interactive prompt for "info" and "route" queries
//
// The graph is built exactly once at startup and is immutable afterward, so
// any number of concurrent route queries may run against it without locking.
//
// Quick ASCII example:
//
//	Jakarta───Perth───Santiago
//	    │                 │
//	    └────Nairobi──────┘
//
//	route Jakarta,Santiago follows the first shortest path in declaration
//	order and reports the fuel burned per continent along the way.
//
// See the core and route package docs for contracts and edge-case behavior.
package atlas
