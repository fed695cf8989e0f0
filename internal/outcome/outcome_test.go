package outcome

import (
	"errors"
	"testing"

	"github.com/yourusername/lay-scout/internal/models"
)

func record(homeFT, awayFT, homeHT, awayHT int) models.MatchRecord {
	return models.MatchRecord{
		GoalsHomeFT: homeFT,
		GoalsAwayFT: awayFT,
		GoalsHomeHT: homeHT,
		GoalsAwayHT: awayHT,
		HasResult:   true,
	}
}

func TestHandicapOutcomes(t *testing.T) {
	registry := NewRegistry()

	tests := []struct {
		name     string
		rec      models.MatchRecord
		outcome  string
		occurred bool
	}{
		{"four goal home win covers -3.5", record(4, 0, 2, 0), "home_minus_35", true},
		{"three goal home win does not cover -3.5", record(3, 0, 1, 0), "home_minus_35", false},
		{"four goal home win does not cover -4.5", record(4, 0, 2, 0), "home_minus_45", false},
		{"five goal home win covers -4.5", record(5, 0, 2, 0), "home_minus_45", true},
		{"four goal away win covers away -3.5", record(0, 4, 0, 1), "away_minus_35", true},
		{"narrow away win does not cover away -3.5", record(0, 2, 0, 1), "away_minus_35", false},
		{"six goal away win covers away -4.5", record(1, 7, 0, 3), "away_minus_45", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			occurred, err := registry.Evaluate(tt.outcome, &tt.rec)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if occurred != tt.occurred {
				t.Fatalf("expected occurred=%v, got %v", tt.occurred, occurred)
			}
		})
	}
}

func TestDisabledCatalogVariantsAreRegistered(t *testing.T) {
	registry := NewRegistry()

	rec := record(1, 1, 1, 0)
	for name, want := range map[string]bool{
		"draw":               true,
		"away_win":           false,
		"first_half_over_05": true,
		"correct_score_1_1":  true,
		"correct_score_0_0":  false,
	} {
		occurred, err := registry.Evaluate(name, &rec)
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", name, err)
		}
		if occurred != want {
			t.Fatalf("%s: expected %v, got %v", name, want, occurred)
		}
	}
}

func TestUnknownOutcomeFailsLoud(t *testing.T) {
	registry := NewRegistry()

	rec := record(2, 0, 1, 0)
	_, err := registry.Evaluate("no_such_outcome", &rec)
	if err == nil {
		t.Fatal("expected error for unknown outcome")
	}
	var unknownErr *models.UnknownOutcomeError
	if !errors.As(err, &unknownErr) {
		t.Fatalf("expected UnknownOutcomeError, got %T", err)
	}
	if unknownErr.Name != "no_such_outcome" {
		t.Fatalf("error names wrong outcome: %s", unknownErr.Name)
	}
}

func TestRegisterExtendsCatalog(t *testing.T) {
	registry := NewRegistry()
	registry.Register("over_55_total", func(rec *models.MatchRecord) bool {
		return rec.GoalsHomeFT+rec.GoalsAwayFT > 5
	})

	rec := record(4, 2, 2, 1)
	occurred, err := registry.Evaluate("over_55_total", &rec)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !occurred {
		t.Fatal("expected registered outcome to evaluate true")
	}
}
