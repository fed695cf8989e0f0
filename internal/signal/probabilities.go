// Package signal derives the normalized signal catalog from raw match odds.
package signal

import (
	"math"

	"github.com/yourusername/lay-scout/internal/models"
)

// ProbKey identifies one of the ten implied probabilities every derivation
// starts from.
type ProbKey int

// Probability slots, one per required market. The three double-chance
// probabilities are used only as correct-score proxies.
const (
	PHome ProbKey = iota
	PDraw
	PAway
	POver
	PUnder
	PBTTSYes
	PBTTSNo
	PCS1
	PCS2
	PCS3
	probCount
)

var probMarkets = [probCount]models.MarketKey{
	PHome:    models.MarketHome,
	PDraw:    models.MarketDraw,
	PAway:    models.MarketAway,
	POver:    models.MarketOver25,
	PUnder:   models.MarketUnder25,
	PBTTSYes: models.MarketBTTSYes,
	PBTTSNo:  models.MarketBTTSNo,
	PCS1:     models.MarketDC1X,
	PCS2:     models.MarketDC12,
	PCS3:     models.MarketDCX2,
}

// Probabilities holds the implied probability (1/odd) for each required
// market of one match.
type Probabilities [probCount]float64

// ImpliedProbabilities computes 1/odd for every required market. A market
// that is structurally absent from the record's odds mapping is a
// SchemaError; an invalid value has already been sanitized to the sentinel
// upstream and yields an implied probability of effectively zero.
func ImpliedProbabilities(rec *models.MatchRecord) (Probabilities, error) {
	var probs Probabilities
	for key, market := range probMarkets {
		odd, ok := rec.Odd(market)
		if !ok {
			return probs, models.NewSchemaError(string(market))
		}
		probs[key] = impliedProbability(odd)
	}
	return probs, nil
}

// impliedProbability converts decimal odds to the bookmaker-implied chance.
// Non-positive or non-finite odds collapse to a near-zero probability
// rather than an error.
func impliedProbability(odd float64) float64 {
	if odd <= 0 || math.IsInf(odd, 0) || math.IsNaN(odd) {
		return 1.0 / models.SentinelOdds
	}
	return 1.0 / odd
}
