package route

import "github.com/adlayan/atlas/core"

// queueItem pairs a region with its hop depth from the source.
type queueItem struct {
	region *core.Region
	depth  int
}

// walker encapsulates mutable traversal state for one query.
type walker struct {
	opts   Options
	queue  []queueItem
	seen   map[string]bool
	parent map[string]*core.Region // child name → parent region; absent for source
}

// ShortestRoute finds the minimum-hop path from src to dst and aggregates its
// cost statistics. Both endpoints must be Region references resolved from g;
// src != dst is a caller-level precondition and is not checked here.
// See the package documentation for the traversal-order guarantee.
func ShortestRoute(g *core.Graph, src, dst *core.Region, opts ...Option) (*RouteResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if src == nil || dst == nil {
		return nil, ErrRegionNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &walker{
		opts:   o,
		seen:   make(map[string]bool, g.Count()),
		parent: make(map[string]*core.Region, g.Count()),
	}
	// Seed the frontier with the source (no parent), then walk until the
	// destination is discovered or the component is exhausted.
	w.enqueue(src, 0, nil)
	w.run(dst)

	return summarize(w.reconstruct(src, dst)), nil
}

// enqueue marks r discovered at depth d, records its parent, fires OnEnqueue,
// and pushes r to the frontier back.
func (w *walker) enqueue(r *core.Region, d int, parent *core.Region) {
	w.seen[r.Name] = true
	if parent != nil {
		w.parent[r.Name] = parent
	}
	w.opts.OnEnqueue(r.Name, d)
	w.queue = append(w.queue, queueItem{region: r, depth: d})
}

// run pops the frontier front and expands neighbors in stored order until dst
// is discovered or the queue drains. The instant dst is discovered the
// remaining neighbors of the current region are not scanned.
func (w *walker) run(dst *core.Region) {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.opts.OnDequeue(item.region.Name, item.depth)

		for _, nbr := range item.region.Neighbors() {
			if w.seen[nbr.Name] {
				continue
			}
			w.enqueue(nbr, item.depth+1, item.region)
			if nbr.Name == dst.Name {
				return
			}
		}
	}
}

// reconstruct walks parent links from dst back to src and reverses the
// result. If dst was never discovered it falls back to the degenerate
// two-element path [src, dst]; the graph is assumed connected, so this
// path only guards against corrupt adjacency data.
func (w *walker) reconstruct(src, dst *core.Region) []*core.Region {
	if !w.seen[dst.Name] {
		return []*core.Region{src, dst}
	}

	var path []*core.Region
	for cur := dst; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur.Name]
		if !ok {
			break // reached the source
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// summarize derives the RouteResult from the path: total interior cost,
// per-group totals in first-appearance order, and the peak group.
func summarize(path []*core.Region) *RouteResult {
	res := &RouteResult{Path: make([]string, len(path))}
	position := make(map[core.Group]int, len(path)) // group → index in GroupCosts

	last := len(path) - 1
	for i, r := range path {
		res.Path[i] = r.Name

		// Register the group at zero on first appearance, endpoints included.
		pos, ok := position[r.Group]
		if !ok {
			pos = len(res.GroupCosts)
			position[r.Group] = pos
			res.GroupCosts = append(res.GroupCosts, GroupCost{Group: r.Group})
		}
		// Only interior regions add to the sums.
		if i == 0 || i == last {
			continue
		}
		res.GroupCosts[pos].Cost += r.Cost
		res.TotalCost += r.Cost
	}

	// Strictly-greater scan in first-appearance order: first-seen group wins ties.
	res.PeakGroup = res.GroupCosts[0]
	for _, gc := range res.GroupCosts[1:] {
		if gc.Cost > res.PeakGroup.Cost {
			res.PeakGroup = gc
		}
	}

	return res
}
