package route_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/adlayan/atlas/core"
	"github.com/adlayan/atlas/route"
)

// buildGraph assembles a graph from inline datasets.
func buildGraph(t *testing.T, regions, adjacency string) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(strings.NewReader(regions), strings.NewReader(adjacency))
	if err != nil {
		t.Fatalf("NewGraph: %v", err)
	}

	return g
}

// resolve fetches a region that must exist.
func resolve(t *testing.T, g *core.Graph, name string) *core.Region {
	t.Helper()
	r, err := g.Region(name)
	if err != nil {
		t.Fatalf("Region(%q): %v", name, err)
	}

	return r
}

// TestShortestRoute_Errors verifies nil inputs are rejected.
func TestShortestRoute_Errors(t *testing.T) {
	g := buildGraph(t, "A,Asia,0\nB,Asia,1\n", "A,B\n")
	a, b := resolve(t, g, "A"), resolve(t, g, "B")

	if _, err := route.ShortestRoute(nil, a, b); !errors.Is(err, route.ErrGraphNil) {
		t.Errorf("nil graph: want ErrGraphNil, got %v", err)
	}
	if _, err := route.ShortestRoute(g, nil, b); !errors.Is(err, route.ErrRegionNil) {
		t.Errorf("nil source: want ErrRegionNil, got %v", err)
	}
	if _, err := route.ShortestRoute(g, a, nil); !errors.Is(err, route.ErrRegionNil) {
		t.Errorf("nil destination: want ErrRegionNil, got %v", err)
	}
}

// TestShortestRoute_ChainAggregation covers the canonical four-region chain:
// interior cost summed per group, endpoints registered at zero contribution.
func TestShortestRoute_ChainAggregation(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,0\nB,Asia,5\nC,Europe,3\nD,Europe,0\n",
		"A,B\nB,A,C\nC,B,D\nD,C\n")

	res, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"A", "B", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.TotalCost != 8 {
		t.Errorf("TotalCost = %d; want 8", res.TotalCost)
	}
	wantGroups := []route.GroupCost{
		{Group: core.Asia, Cost: 5},
		{Group: core.Europe, Cost: 3},
	}
	if !reflect.DeepEqual(res.GroupCosts, wantGroups) {
		t.Errorf("GroupCosts = %v; want %v", res.GroupCosts, wantGroups)
	}
	if res.PeakGroup != (route.GroupCost{Group: core.Asia, Cost: 5}) {
		t.Errorf("PeakGroup = %v; want {Asia 5}", res.PeakGroup)
	}
}

// TestShortestRoute_DirectNeighbors: a single hop has no interior, so the
// total is zero and both endpoint groups are registered at zero.
func TestShortestRoute_DirectNeighbors(t *testing.T) {
	g := buildGraph(t,
		"X,Oceania,7\nY,Africa,9\n",
		"X,Y\nY,X\n")

	res, err := route.ShortestRoute(g, resolve(t, g, "X"), resolve(t, g, "Y"))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"X", "Y"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.TotalCost != 0 {
		t.Errorf("TotalCost = %d; want 0", res.TotalCost)
	}
	wantGroups := []route.GroupCost{
		{Group: core.Oceania, Cost: 0},
		{Group: core.Africa, Cost: 0},
	}
	if !reflect.DeepEqual(res.GroupCosts, wantGroups) {
		t.Errorf("GroupCosts = %v; want %v", res.GroupCosts, wantGroups)
	}
	if res.PeakGroup != (route.GroupCost{Group: core.Oceania, Cost: 0}) {
		t.Errorf("PeakGroup = %v; want {Oceania 0}", res.PeakGroup)
	}
}

// TestShortestRoute_PeakTieBreak: two groups with equal interior cost resolve
// to the one appearing first along the path.
func TestShortestRoute_PeakTieBreak(t *testing.T) {
	g := buildGraph(t,
		"A,Oceania,0\nB,Asia,4\nC,Europe,4\nD,Oceania,0\n",
		"A,B\nB,A,C\nC,B,D\nD,C\n")

	res, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if err != nil {
		t.Fatal(err)
	}

	// Oceania appears first (endpoint, zero) but Asia has the greater total;
	// Asia and Europe tie at 4, so the earlier-appearing Asia wins.
	if res.PeakGroup != (route.GroupCost{Group: core.Asia, Cost: 4}) {
		t.Errorf("PeakGroup = %v; want {Asia 4}", res.PeakGroup)
	}
}

// TestShortestRoute_DeclarationOrderWins: among equally short paths the one
// following neighbor declaration order is returned.
func TestShortestRoute_DeclarationOrderWins(t *testing.T) {
	regions := "A,Asia,0\nB,Asia,1\nC,Asia,1\nD,Asia,0\n"

	// B declared before C on A's line: path must run through B.
	g := buildGraph(t, regions, "A,B,C\nB,A,D\nC,A,D\nD,B,C\n")
	res, _ := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}

	// Flipping the declaration order flips the chosen path.
	g = buildGraph(t, regions, "A,C,B\nB,A,D\nC,A,D\nD,B,C\n")
	res, _ = route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if want := []string{"A", "C", "D"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("flipped Path = %v; want %v", res.Path, want)
	}
}

// TestShortestRoute_StopsOnDiscovery: once the destination is discovered the
// remaining neighbors of the current region are never scanned or enqueued.
func TestShortestRoute_StopsOnDiscovery(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,0\nB,Asia,1\nC,Asia,1\nD,Asia,0\n",
		"A,B\nB,D,C\n")

	var enqueued []string
	_, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"),
		route.WithOnEnqueue(func(name string, _ int) { enqueued = append(enqueued, name) }))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"A", "B", "D"}; !reflect.DeepEqual(enqueued, want) {
		t.Errorf("enqueued = %v; want %v (C must never be discovered)", enqueued, want)
	}
}

// TestShortestRoute_Hooks verifies dequeue hooks observe FIFO order and depths.
func TestShortestRoute_Hooks(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,0\nB,Asia,1\nC,Asia,0\n",
		"A,B\nB,A,C\nC,B\n")

	var order []string
	var depths []int
	_, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "C"),
		route.WithOnDequeue(func(name string, d int) {
			order = append(order, name)
			depths = append(depths, d)
		}))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"A", "B"}; !reflect.DeepEqual(order, want) {
		t.Errorf("dequeue order = %v; want %v", order, want)
	}
	if want := []int{0, 1}; !reflect.DeepEqual(depths, want) {
		t.Errorf("dequeue depths = %v; want %v", depths, want)
	}
}

// TestShortestRoute_DisconnectedFallback: an unreachable destination yields
// the degenerate two-element path instead of an error.
func TestShortestRoute_DisconnectedFallback(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,5\nB,Asia,3\nZ,Europe,2\n",
		"A,B\nB,A\n")

	res, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "Z"))
	if err != nil {
		t.Fatal(err)
	}

	if want := []string{"A", "Z"}; !reflect.DeepEqual(res.Path, want) {
		t.Errorf("Path = %v; want %v", res.Path, want)
	}
	if res.TotalCost != 0 {
		t.Errorf("TotalCost = %d; want 0", res.TotalCost)
	}
	wantGroups := []route.GroupCost{
		{Group: core.Asia, Cost: 0},
		{Group: core.Europe, Cost: 0},
	}
	if !reflect.DeepEqual(res.GroupCosts, wantGroups) {
		t.Errorf("GroupCosts = %v; want %v", res.GroupCosts, wantGroups)
	}
}

// TestShortestRoute_DeclaredDirectionOnly: a one-directional link is
// traversable only the declared way.
func TestShortestRoute_DeclaredDirectionOnly(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,1\nB,Europe,1\n",
		"A,B\n")

	forward, _ := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "B"))
	if len(forward.Path) != 2 || forward.Path[1] != "B" {
		t.Errorf("forward Path = %v; want [A B]", forward.Path)
	}

	// B has no declared link back to A, so the reverse query degrades to the
	// disconnected fallback — same shape, but via no discovered route.
	var enqueued []string
	back, _ := route.ShortestRoute(g, resolve(t, g, "B"), resolve(t, g, "A"),
		route.WithOnEnqueue(func(name string, _ int) { enqueued = append(enqueued, name) }))
	if want := []string{"B", "A"}; !reflect.DeepEqual(back.Path, want) {
		t.Errorf("backward Path = %v; want %v", back.Path, want)
	}
	if want := []string{"B"}; !reflect.DeepEqual(enqueued, want) {
		t.Errorf("enqueued = %v; want %v (A is unreachable from B)", enqueued, want)
	}
}

// TestShortestRoute_Deterministic: two identical queries on an unchanged
// graph return identical results.
func TestShortestRoute_Deterministic(t *testing.T) {
	g := buildGraph(t,
		"A,Asia,0\nB,Asia,5\nC,Europe,3\nD,Europe,0\nE,Africa,2\n",
		"A,B,E\nB,A,C\nC,B,D\nD,C,E\nE,A,D\n")

	first, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if err != nil {
		t.Fatal(err)
	}
	second, err := route.ShortestRoute(g, resolve(t, g, "A"), resolve(t, g, "D"))
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated query differs: %+v vs %+v", first, second)
	}
}
