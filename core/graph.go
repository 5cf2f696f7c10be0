package core

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// regionFieldCount is the exact number of comma-separated fields in a
// well-formed region record: name, group label, cost.
const regionFieldCount = 3

// Graph owns every Region and exposes name-keyed lookup.
//
// A Graph is produced by NewGraph and is read-only afterward; there is no
// mutation API. Every neighbor reference held by any Region resolves to a
// value of the same index — unresolved names are dropped at build time, never
// stored as placeholders.
type Graph struct {
	regions map[string]*Region // region name → Region
}

// NewGraph builds a fully-linked Graph from the two datasets.
//
// regions is read first and in full, one record per line:
//
//	name,group-label,cost
//
// adjacency is read second, one record per line, zero or more neighbors:
//
//	root-name,neighbor-name-1,neighbor-name-2,…
//
// Region resolution for adjacency requires the complete name index, which is
// why construction is strictly two-pass. See the package documentation for
// the tolerated-vs-fatal input taxonomy.
func NewGraph(regions, adjacency io.Reader) (*Graph, error) {
	g := &Graph{regions: make(map[string]*Region)}
	if err := g.loadRegions(regions); err != nil {
		return nil, err
	}
	if err := g.loadAdjacency(adjacency); err != nil {
		return nil, err
	}

	return g, nil
}

// loadRegions parses and indexes all region records.
// Lines with a wrong field count are skipped; a bad cost or unknown group
// aborts the build.
func (g *Graph) loadRegions(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), ",")
		if len(fields) != regionFieldCount {
			continue // malformed record: tolerated, skipped
		}
		name := strings.TrimSpace(fields[0])
		if name == "" {
			continue
		}

		group, err := ParseGroup(fields[1])
		if err != nil {
			return err
		}
		cost, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("%w: region %q: %q", ErrBadCost, name, strings.TrimSpace(fields[2]))
		}
		if cost < 0 {
			return fmt.Errorf("%w: region %q: %d", ErrBadCost, name, cost)
		}

		g.regions[name] = &Region{Name: name, Group: group, Cost: cost}
	}

	return sc.Err()
}

// loadAdjacency links already-registered regions.
// An unresolved root drops the whole line; an unresolved neighbor name is
// dropped individually. Links are added one-directional as declared.
func (g *Graph) loadAdjacency(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Split(sc.Text(), ",")
		root, ok := g.regions[strings.TrimSpace(fields[0])]
		if !ok {
			continue
		}
		for _, raw := range fields[1:] {
			neighbor, ok := g.regions[strings.TrimSpace(raw)]
			if !ok {
				continue
			}
			root.addNeighbor(neighbor)
		}
	}

	return sc.Err()
}

// Region looks up a region by name. The input is trimmed; the match against
// the canonical name is otherwise exact (case- and whitespace-sensitive).
// Returns ErrRegionNotFound carrying the trimmed name on a miss.
func (g *Graph) Region(name string) (*Region, error) {
	trimmed := strings.TrimSpace(name)
	region, ok := g.regions[trimmed]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrRegionNotFound, trimmed)
	}

	return region, nil
}

// Has reports whether a region with the given (trimmed) name exists.
func (g *Graph) Has(name string) bool {
	_, ok := g.regions[strings.TrimSpace(name)]

	return ok
}

// RegionNames returns every region name, sorted lexicographically for
// deterministic listings.
func (g *Graph) RegionNames() []string {
	names := make([]string, 0, len(g.regions))
	for name := range g.regions {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Count returns the number of regions in the graph.
func (g *Graph) Count() int { return len(g.regions) }
