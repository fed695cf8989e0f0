package rules

import (
	"sort"

	"github.com/yourusername/lay-scout/internal/models"
)

// Apply returns the subset of rows whose derived signals satisfy every
// constraint of the filter. The input is never mutated; the result is a new
// slice sharing the underlying records. Constraint order cannot change the
// result (pure conjunction); constraints are tried narrowest interval first
// so wide filters short-circuit cheaply.
func Apply(rows []models.MatchRecord, filter ContextFilter) []models.MatchRecord {
	constraints := byWidth(filter.Constraints)

	subset := make([]models.MatchRecord, 0)
	for i := range rows {
		if satisfiesAll(rows[i].Signals, constraints) {
			subset = append(subset, rows[i])
		}
	}
	return subset
}

func satisfiesAll(set models.SignalSet, constraints []Constraint) bool {
	for _, c := range constraints {
		if !c.Matches(set) {
			return false
		}
	}
	return true
}

func byWidth(constraints []Constraint) []Constraint {
	ordered := make([]Constraint, len(constraints))
	copy(ordered, constraints)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].High-ordered[i].Low < ordered[j].High-ordered[j].Low
	})
	return ordered
}
