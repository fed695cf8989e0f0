// Package outcome evaluates named target outcomes against match scorelines.
package outcome

import (
	"sort"
	"sync"

	"github.com/yourusername/lay-scout/internal/models"
)

// Predicate reports whether a target outcome occurred in one finished match.
// Predicates are pure and only read scoreline fields.
type Predicate func(rec *models.MatchRecord) bool

// Registry maps outcome names to predicates. The built-in catalog is
// registered on construction; callers may add further outcomes, so
// reinstating a disabled variant is a data change, not a code change.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
}

// NewRegistry creates a registry populated with the built-in catalog.
func NewRegistry() *Registry {
	r := &Registry{predicates: make(map[string]Predicate)}
	for name, pred := range builtins {
		r.predicates[name] = pred
	}
	return r
}

// Register adds or replaces a named outcome.
func (r *Registry) Register(name string, pred Predicate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.predicates[name] = pred
}

// Resolve returns the predicate for name. An unknown name is an
// UnknownOutcomeError: a silently-false predicate would be
// indistinguishable from a legitimately failing strategy.
func (r *Registry) Resolve(name string) (Predicate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pred, ok := r.predicates[name]
	if !ok {
		return nil, &models.UnknownOutcomeError{Name: name}
	}
	return pred, nil
}

// Evaluate reports whether the named outcome occurred for one record.
func (r *Registry) Evaluate(name string, rec *models.MatchRecord) (bool, error) {
	pred, err := r.Resolve(name)
	if err != nil {
		return false, err
	}
	return pred(rec), nil
}

// Names returns every registered outcome name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default outcome names mined when the configuration does not narrow the
// set: the four goal-handicap lay targets.
var DefaultMined = []string{
	"home_minus_35",
	"home_minus_45",
	"away_minus_35",
	"away_minus_45",
}

// builtins is the full intended catalog. The non-handicap entries are
// registered but not mined by default.
var builtins = map[string]Predicate{
	// Home covers a 3.5-goal handicap: wins by more than 3 goals.
	"home_minus_35": func(rec *models.MatchRecord) bool {
		return rec.GoalDifferenceFT() > 3
	},
	"home_minus_45": func(rec *models.MatchRecord) bool {
		return rec.GoalDifferenceFT() > 4
	},
	"away_minus_35": func(rec *models.MatchRecord) bool {
		return rec.GoalDifferenceFT() < -3
	},
	"away_minus_45": func(rec *models.MatchRecord) bool {
		return rec.GoalDifferenceFT() < -4
	},

	"draw": func(rec *models.MatchRecord) bool {
		return rec.GoalsHomeFT == rec.GoalsAwayFT
	},
	"away_win": func(rec *models.MatchRecord) bool {
		return rec.GoalsAwayFT > rec.GoalsHomeFT
	},
	"first_half_over_05": func(rec *models.MatchRecord) bool {
		return rec.GoalsHomeHT+rec.GoalsAwayHT > 0
	},
	"correct_score_0_0": exactScore(0, 0),
	"correct_score_1_0": exactScore(1, 0),
	"correct_score_0_1": exactScore(0, 1),
	"correct_score_1_1": exactScore(1, 1),
}

func exactScore(home, away int) Predicate {
	return func(rec *models.MatchRecord) bool {
		return rec.GoalsHomeFT == home && rec.GoalsAwayFT == away
	}
}
