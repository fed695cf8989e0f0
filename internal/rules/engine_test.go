package rules

import (
	"testing"

	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/signal"
)

func rowWith(values map[models.SignalID]float64) models.MatchRecord {
	set := make(models.SignalSet, len(values))
	for id, v := range values {
		set[id] = v
	}
	return models.MatchRecord{Signals: set}
}

func TestApplyReturnsSubsetSatisfyingEveryConstraint(t *testing.T) {
	filter := ContextFilter{
		Name: "test",
		Constraints: []Constraint{
			{Signal: "VAR03", Low: 2.0, High: 5.0},
			{Signal: "VAR27", Low: 0.3, High: 0.6},
		},
	}

	rows := []models.MatchRecord{
		rowWith(map[models.SignalID]float64{"VAR03": 3.0, "VAR27": 0.4}),  // matches
		rowWith(map[models.SignalID]float64{"VAR03": 1.0, "VAR27": 0.4}),  // VAR03 low
		rowWith(map[models.SignalID]float64{"VAR03": 3.0, "VAR27": 0.7}),  // VAR27 high
		rowWith(map[models.SignalID]float64{"VAR03": 5.0, "VAR27": 0.3}),  // boundary inclusive
		rowWith(map[models.SignalID]float64{"VAR03": 2.0, "VAR27": 0.6}),  // boundary inclusive
	}

	subset := Apply(rows, filter)
	if len(subset) != 3 {
		t.Fatalf("expected 3 matching rows, got %d", len(subset))
	}
	for _, rec := range subset {
		for _, c := range filter.Constraints {
			if !c.Matches(rec.Signals) {
				t.Fatalf("returned row violates constraint on %s", c.Signal)
			}
		}
	}
}

func TestApplyIsDeterministic(t *testing.T) {
	filter := ContextFilter{
		Name:        "test",
		Constraints: []Constraint{{Signal: "VAR01", Low: 0.0, High: 10.0}},
	}
	rows := []models.MatchRecord{
		rowWith(map[models.SignalID]float64{"VAR01": 1.0}),
		rowWith(map[models.SignalID]float64{"VAR01": 5.0}),
		rowWith(map[models.SignalID]float64{"VAR01": 11.0}),
	}

	first := Apply(rows, filter)
	second := Apply(rows, filter)
	if len(first) != len(second) {
		t.Fatalf("two applications differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Signals["VAR01"] != second[i].Signals["VAR01"] {
			t.Fatal("two applications returned different rows")
		}
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	filter := ContextFilter{
		Name:        "test",
		Constraints: []Constraint{{Signal: "VAR01", Low: 4.0, High: 6.0}},
	}
	rows := []models.MatchRecord{
		rowWith(map[models.SignalID]float64{"VAR01": 1.0}),
		rowWith(map[models.SignalID]float64{"VAR01": 5.0}),
	}

	_ = Apply(rows, filter)
	if len(rows) != 2 || rows[0].Signals["VAR01"] != 1.0 {
		t.Fatal("input rows were mutated")
	}
}

func TestConstraintMissingSignalNeverMatches(t *testing.T) {
	c := Constraint{Signal: "VAR99", Low: -1e18, High: 1e18}
	if c.Matches(models.SignalSet{"VAR01": 1.0}) {
		t.Fatal("constraint on an absent signal must not match")
	}
}

func TestDefaultFiltersValidateAgainstSignalCatalog(t *testing.T) {
	for _, f := range DefaultFilters {
		if err := f.Validate(signal.Known); err != nil {
			t.Fatalf("embedded filter %s invalid: %v", f.Name, err)
		}
	}
}

func TestCatalogResolveUnknownName(t *testing.T) {
	catalog := NewCatalog(DefaultFilters)
	_, err := catalog.Resolve("S9999")
	if err == nil {
		t.Fatal("expected error for unknown filter")
	}
	if _, ok := err.(*models.UnknownFilterError); !ok {
		t.Fatalf("expected UnknownFilterError, got %T", err)
	}
}

func TestCatalogNamesAreSorted(t *testing.T) {
	catalog := NewCatalog(DefaultFilters)
	names := catalog.Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not strictly sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
}
