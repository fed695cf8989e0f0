package models

import (
	"time"
)

// MarketKey identifies one of the bookmaker markets carried on every match.
type MarketKey string

// The ten markets every input table must provide. The three double-chance
// markets are used only as correct-score proxies during signal derivation.
const (
	MarketHome    MarketKey = "home"
	MarketDraw    MarketKey = "draw"
	MarketAway    MarketKey = "away"
	MarketOver25  MarketKey = "over25"
	MarketUnder25 MarketKey = "under25"
	MarketBTTSYes MarketKey = "btts_yes"
	MarketBTTSNo  MarketKey = "btts_no"
	MarketDC1X    MarketKey = "dc_1x"
	MarketDC12    MarketKey = "dc_12"
	MarketDCX2    MarketKey = "dc_x2"
)

// RequiredMarkets lists every market a table must carry, in a stable order.
var RequiredMarkets = []MarketKey{
	MarketHome, MarketDraw, MarketAway,
	MarketOver25, MarketUnder25,
	MarketBTTSYes, MarketBTTSNo,
	MarketDC1X, MarketDC12, MarketDCX2,
}

// SentinelOdds replaces non-numeric, non-positive or missing odds values.
// Its implied probability is effectively zero, so a sanitized cell can
// never satisfy a probability-based filter by accident.
const SentinelOdds = 1e12

// MatchRecord represents one historical or upcoming fixture. Records are
// immutable after load; enrichment attaches new derived attributes instead
// of editing source fields.
type MatchRecord struct {
	Date        time.Time             `json:"date"`
	League      string                `json:"league"`
	HomeTeam    string                `json:"home_team"`
	AwayTeam    string                `json:"away_team"`
	GoalsHomeFT int                   `json:"goals_home_ft"`
	GoalsAwayFT int                   `json:"goals_away_ft"`
	GoalsHomeHT int                   `json:"goals_home_ht"`
	GoalsAwayHT int                   `json:"goals_away_ht"`
	HasResult   bool                  `json:"has_result"`
	Odds        map[MarketKey]float64 `json:"odds"`
	Signals     SignalSet             `json:"signals,omitempty"`
}

// Odd returns the decimal odds for a market, with ok reporting whether the
// market is structurally present on this record.
func (m *MatchRecord) Odd(key MarketKey) (float64, bool) {
	odd, ok := m.Odds[key]
	return odd, ok
}

// GoalDifferenceFT returns full-time home goals minus away goals.
func (m *MatchRecord) GoalDifferenceFT() int {
	return m.GoalsHomeFT - m.GoalsAwayFT
}

// Identity returns a stable human-readable key for grouping output rows.
func (m *MatchRecord) Identity() string {
	return m.Date.Format("2006-01-02") + "|" + m.League + "|" + m.HomeTeam + "|" + m.AwayTeam
}
