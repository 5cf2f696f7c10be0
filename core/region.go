package core

// Region represents a single named node of the graph.
//
// Name uniquely identifies the Region within its Graph (case-sensitive,
// trimmed at parse time). Cost is the fuel charged when the region is an
// interior stop of a route. The neighbor list is populated only during
// graph construction; treat a Region as immutable afterward.
type Region struct {
	// Name is the unique identifier for this Region.
	Name string

	// Group is the category this Region belongs to.
	Group Group

	// Cost is the non-negative traversal cost of this Region.
	Cost int

	// neighbors holds linked regions in first-declaration order,
	// without duplicates. Links are one-directional as declared.
	neighbors []*Region
}

// Neighbors returns the region's direct connections in declaration order.
// The returned slice is freshly allocated and safe to retain.
func (r *Region) Neighbors() []*Region {
	out := make([]*Region, len(r.neighbors))
	copy(out, r.neighbors)

	return out
}

// NeighborNames returns the names of the direct connections, in the same
// order as Neighbors.
func (r *Region) NeighborNames() []string {
	names := make([]string, len(r.neighbors))
	for i, n := range r.neighbors {
		names[i] = n.Name
	}

	return names
}

// Degree returns the number of direct connections.
func (r *Region) Degree() int { return len(r.neighbors) }

// addNeighbor appends n to the neighbor list unless already present.
// Linear scan: adjacency lists in the datasets are short.
func (r *Region) addNeighbor(n *Region) {
	for _, existing := range r.neighbors {
		if existing.Name == n.Name {
			return
		}
	}
	r.neighbors = append(r.neighbors, n)
}
