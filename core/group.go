package core

import (
	"fmt"
	"strings"
)

// Group is one of the six fixed categories a Region belongs to.
type Group int

// The closed set of region groups.
const (
	Africa Group = iota
	Asia
	Europe
	NorthAmerica
	Oceania
	SouthAmerica
)

// groupNames holds the canonical display string per group, indexed by Group.
var groupNames = [...]string{
	Africa:       "Africa",
	Asia:         "Asia",
	Europe:       "Europe",
	NorthAmerica: "North America",
	Oceania:      "Oceania",
	SouthAmerica: "South America",
}

// groupCodes maps the normalized label form to its Group.
var groupCodes = map[string]Group{
	"AFRICA":        Africa,
	"ASIA":          Asia,
	"EUROPE":        Europe,
	"NORTH_AMERICA": NorthAmerica,
	"OCEANIA":       Oceania,
	"SOUTH_AMERICA": SouthAmerica,
}

// String returns the canonical human-readable rendering of g,
// e.g. NorthAmerica.String() == "North America".
func (g Group) String() string {
	if g < 0 || int(g) >= len(groupNames) {
		return fmt.Sprintf("Group(%d)", int(g))
	}

	return groupNames[g]
}

// ParseGroup matches a free-text label against the closed group set.
// Matching is case-insensitive and treats spaces and underscores as
// interchangeable, so "north america", "NORTH_AMERICA" and "North_America"
// all resolve to NorthAmerica.
// Returns ErrUnknownGroup (carrying the original label) on no match.
func ParseGroup(label string) (Group, error) {
	code := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(label)), " ", "_")
	g, ok := groupCodes[code]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGroup, label)
	}

	return g, nil
}
