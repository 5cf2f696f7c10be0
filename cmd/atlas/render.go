package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/adlayan/atlas/core"
	"github.com/adlayan/atlas/route"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	peakStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
	errorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))
)

// renderRegion formats the "info" reply: attributes plus direct connections.
func renderRegion(r *core.Region) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(r.Name))
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("group:"), r.Group)
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("cost:"), r.Cost)
	connections := "none"
	if names := r.NeighborNames(); len(names) > 0 {
		connections = strings.Join(names, ", ")
	}
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("connections:"), connections)

	return b.String()
}

// renderRoute formats the "route" reply: path, total cost, per-group totals
// in first-appearance order, and the peak group.
func renderRoute(res *route.RouteResult) string {
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(strings.Join(res.Path, " -> ")))
	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("total cost:"), res.TotalCost)
	for _, gc := range res.GroupCosts {
		fmt.Fprintf(&b, "  %s\n", formatGroupCost(gc))
	}
	fmt.Fprintf(&b, "%s %s", labelStyle.Render("peak:"), peakStyle.Render(formatGroupCost(res.PeakGroup)))

	return b.String()
}

// renderRegionList formats the "regions" reply.
func renderRegionList(names []string) string {
	return labelStyle.Render("regions: ") + strings.Join(names, ", ")
}

// formatGroupCost renders one aggregated pair as "<Group> (<total>)".
func formatGroupCost(gc route.GroupCost) string {
	return fmt.Sprintf("%s (%d)", gc.Group, gc.Cost)
}
