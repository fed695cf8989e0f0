// Package recommend applies approved rules to upcoming fixtures and emits
// per-match lay recommendations.
package recommend

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/lay-scout/internal/logger"
	"github.com/yourusername/lay-scout/internal/metrics"
	"github.com/yourusername/lay-scout/internal/mining"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/rules"
	"github.com/yourusername/lay-scout/internal/signal"
)

// Recommendation tags one upcoming match with every approved rule it
// satisfies. Outcomes and Contexts keep first-seen order from the approved
// rule list, deduplicated.
type Recommendation struct {
	Match    models.MatchRecord `json:"match"`
	Outcomes []string           `json:"outcomes"`
	Contexts []string           `json:"contexts"`
}

// Applier matches upcoming fixtures against the approved rule set from the
// latest mining run.
type Applier struct {
	catalog *rules.Catalog
	logger  *logrus.Logger
	mlog    *logger.MiningLogger
}

// NewApplier creates an applier resolving context filters against catalog.
func NewApplier(catalog *rules.Catalog, log *logrus.Logger) *Applier {
	if log == nil {
		log = logrus.New()
	}
	return &Applier{
		catalog: catalog,
		logger:  log,
		mlog:    logger.NewMiningLogger(log),
	}
}

// Apply derives signals for the upcoming table and tags every match with
// the approved rules whose context it satisfies. Matches satisfying no rule
// produce no recommendation. The upcoming table must carry the same market
// schema as the historical one; a structurally missing market fails the
// whole operation before any rule is applied.
func (a *Applier) Apply(upcoming []models.MatchRecord, approved []mining.CombinedRule) ([]Recommendation, error) {
	if err := signal.DeriveTable(upcoming); err != nil {
		return nil, fmt.Errorf("deriving signals for upcoming table: %w", err)
	}

	// Resolve each approved context once; an approved rule naming a
	// filter missing from the catalog is a configuration error, not a
	// per-match condition.
	filters := make([]rules.ContextFilter, len(approved))
	for i, rule := range approved {
		filter, err := a.catalog.Resolve(rule.ContextName)
		if err != nil {
			return nil, fmt.Errorf("approved rule %s: %w", rule.ID, err)
		}
		filters[i] = filter
	}

	recommendations := make([]Recommendation, 0)
	for i := range upcoming {
		rec := a.recommendFor(&upcoming[i], approved, filters)
		if rec == nil {
			continue
		}
		recommendations = append(recommendations, *rec)
		metrics.RecommendationsEmittedTotal.Inc()
		a.mlog.LogRecommendation(rec.Match.Identity(), rec.Outcomes, rec.Contexts)
	}

	a.logger.WithFields(logrus.Fields{
		"upcoming":        len(upcoming),
		"approved_rules":  len(approved),
		"recommendations": len(recommendations),
	}).Info("Recommendation pass completed")

	return recommendations, nil
}

// recommendFor collects the approved rules one match satisfies, or nil when
// none do.
func (a *Applier) recommendFor(match *models.MatchRecord, approved []mining.CombinedRule, filters []rules.ContextFilter) *Recommendation {
	var rec *Recommendation
	for i, rule := range approved {
		if !satisfies(match.Signals, filters[i]) {
			continue
		}
		if rec == nil {
			rec = &Recommendation{Match: *match}
		}
		rec.Outcomes = appendUnique(rec.Outcomes, rule.OutcomeName)
		rec.Contexts = appendUnique(rec.Contexts, rule.ContextName)
	}
	return rec
}

func satisfies(set models.SignalSet, filter rules.ContextFilter) bool {
	for _, c := range filter.Constraints {
		if !c.Matches(set) {
			return false
		}
	}
	return true
}

func appendUnique(values []string, value string) []string {
	for _, v := range values {
		if v == value {
			return values
		}
	}
	return append(values, value)
}
