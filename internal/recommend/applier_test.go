package recommend

import (
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/lay-scout/internal/mining"
	"github.com/yourusername/lay-scout/internal/models"
	"github.com/yourusername/lay-scout/internal/rules"
)

// upcomingFixture builds an unplayed match with a full market set. The
// home/away odds steer VAR03 (implied home over away probability ratio):
// home 2.0 / away 4.0 gives 2.0, home 4.0 / away 2.0 gives 0.5.
func upcomingFixture(homeTeam string, homeOdds, awayOdds float64) models.MatchRecord {
	return models.MatchRecord{
		Date:     time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		League:   "england_premier_league",
		HomeTeam: homeTeam,
		AwayTeam: "Opponent",
		Odds: map[models.MarketKey]float64{
			models.MarketHome:    homeOdds,
			models.MarketDraw:    3.5,
			models.MarketAway:    awayOdds,
			models.MarketOver25:  1.9,
			models.MarketUnder25: 1.9,
			models.MarketBTTSYes: 1.8,
			models.MarketBTTSNo:  2.0,
			models.MarketDC1X:    1.3,
			models.MarketDC12:    1.2,
			models.MarketDCX2:    1.5,
		},
	}
}

func favouriteFilter(name string) rules.ContextFilter {
	return rules.ContextFilter{
		Name: name,
		Constraints: []rules.Constraint{
			{Signal: "VAR03", Low: 1.5, High: 3.0},
		},
	}
}

func approvedRule(contextName, outcomeName string) mining.CombinedRule {
	return mining.CombinedRule{
		ID:          mining.RuleID(contextName, outcomeName),
		ContextName: contextName,
		OutcomeName: outcomeName,
		Approved:    true,
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	return log
}

func TestApplyTagsOnlyMatchingFixtures(t *testing.T) {
	catalog := rules.NewCatalog([]rules.ContextFilter{favouriteFilter("ctx_fav")})
	applier := NewApplier(catalog, quietLogger())

	upcoming := []models.MatchRecord{
		upcomingFixture("Strong A", 2.0, 4.0),
		upcomingFixture("Weak B", 4.0, 2.0),
		upcomingFixture("Strong C", 2.0, 4.0),
		upcomingFixture("Weak D", 4.0, 2.0),
		upcomingFixture("Weak E", 4.0, 2.0),
	}
	approved := []mining.CombinedRule{approvedRule("ctx_fav", "home_minus_35")}

	recs, err := applier.Apply(upcoming, approved)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, "Strong A", recs[0].Match.HomeTeam)
	assert.Equal(t, "Strong C", recs[1].Match.HomeTeam)
	for _, rec := range recs {
		assert.Equal(t, []string{"home_minus_35"}, rec.Outcomes)
		assert.Equal(t, []string{"ctx_fav"}, rec.Contexts)
	}
}

func TestApplyGroupsRulesPerMatch(t *testing.T) {
	catalog := rules.NewCatalog([]rules.ContextFilter{
		favouriteFilter("ctx_fav"),
		favouriteFilter("ctx_fav_wide"),
	})
	applier := NewApplier(catalog, quietLogger())

	upcoming := []models.MatchRecord{upcomingFixture("Strong A", 2.0, 4.0)}
	approved := []mining.CombinedRule{
		approvedRule("ctx_fav", "home_minus_35"),
		approvedRule("ctx_fav_wide", "home_minus_35"),
		approvedRule("ctx_fav", "home_minus_45"),
	}

	recs, err := applier.Apply(upcoming, approved)
	require.NoError(t, err)
	require.Len(t, recs, 1)

	// Union keeps first-seen order and deduplicates.
	assert.Equal(t, []string{"home_minus_35", "home_minus_45"}, recs[0].Outcomes)
	assert.Equal(t, []string{"ctx_fav", "ctx_fav_wide"}, recs[0].Contexts)
}

func TestApplyNoApprovedRulesNoRecommendations(t *testing.T) {
	catalog := rules.NewCatalog([]rules.ContextFilter{favouriteFilter("ctx_fav")})
	applier := NewApplier(catalog, quietLogger())

	recs, err := applier.Apply([]models.MatchRecord{upcomingFixture("A", 2.0, 4.0)}, nil)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestApplyMissingMarketFailsBeforeRules(t *testing.T) {
	catalog := rules.NewCatalog([]rules.ContextFilter{favouriteFilter("ctx_fav")})
	applier := NewApplier(catalog, quietLogger())

	broken := upcomingFixture("A", 2.0, 4.0)
	delete(broken.Odds, models.MarketBTTSNo)
	approved := []mining.CombinedRule{approvedRule("ctx_fav", "home_minus_35")}

	recs, err := applier.Apply([]models.MatchRecord{broken}, approved)
	require.Error(t, err)
	assert.Nil(t, recs)

	var schemaErr *models.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestApplyUnknownApprovedContextFails(t *testing.T) {
	catalog := rules.NewCatalog([]rules.ContextFilter{favouriteFilter("ctx_fav")})
	applier := NewApplier(catalog, quietLogger())

	upcoming := []models.MatchRecord{upcomingFixture("A", 2.0, 4.0)}
	approved := []mining.CombinedRule{approvedRule("ctx_gone", "home_minus_35")}

	_, err := applier.Apply(upcoming, approved)
	require.Error(t, err)

	var unknownErr *models.UnknownFilterError
	assert.True(t, errors.As(err, &unknownErr))
}
