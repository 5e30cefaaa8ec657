// Package suggest finds known names that are close to something a user typed, to build "Did you mean" hints.
package suggest

import (
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Group is the set of names that identify one thing, usually a canonical name followed by its aliases.
// Only one name from a Group will ever be suggested.
type Group []string

type candidate struct {
	name     string
	group    int
	distance int
}

// Similar returns the names from groups that are similar to target, closest first.
//
// A name is similar if its edit distance to target is at most a third of the length of target, or if it contains target.
// Names with equal distance keep the order in which they were given.
// Once a name of a [Group] has been selected, other names in the same [Group] are left out.
func Similar(target string, groups ...Group) []string {
	var (
		threshold  = len(target) / 3
		candidates []candidate
	)
	for gi, group := range groups {
		for _, name := range group {
			distance := levenshtein.ComputeDistance(target, name)
			if distance <= threshold || strings.Contains(name, target) {
				candidates = append(candidates, candidate{name: name, group: gi, distance: distance})
			}
		}
	}
	slices.SortStableFunc(candidates, func(a, b candidate) int {
		return a.distance - b.distance
	})

	var (
		seen  = map[int]bool{}
		names []string
	)
	for _, c := range candidates {
		if seen[c.group] {
			continue
		}
		seen[c.group] = true
		names = append(names, c.name)
	}
	return names
}

// DidYouMean renders a hint block for the given suggestions.
// An empty string is returned if there are no suggestions.
//
//	Did you mean one of these?
//	    pack
//	    package
func DidYouMean(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var buf strings.Builder
	if len(suggestions) == 1 {
		buf.WriteString("Did you mean this?")
	} else {
		buf.WriteString("Did you mean one of these?")
	}
	for _, s := range suggestions {
		buf.WriteString("\n    ")
		buf.WriteString(s)
	}
	return buf.String()
}
