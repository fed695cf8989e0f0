// Package dataset loads and filters the flat match tables the miner runs
// on: one row per fixture, one odds column per market.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/yourusername/lay-scout/internal/models"
)

// dateLayouts are tried in order when parsing the date column. Upstream
// exports have switched between these over the years.
var dateLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"02/01/06",
}

// oddsColumns maps the market keys to their CSV header names.
var oddsColumns = map[models.MarketKey]string{
	models.MarketHome:    "odds_home",
	models.MarketDraw:    "odds_draw",
	models.MarketAway:    "odds_away",
	models.MarketOver25:  "odds_over25",
	models.MarketUnder25: "odds_under25",
	models.MarketBTTSYes: "odds_btts_yes",
	models.MarketBTTSNo:  "odds_btts_no",
	models.MarketDC1X:    "odds_dc_1x",
	models.MarketDC12:    "odds_dc_12",
	models.MarketDCX2:    "odds_dc_x2",
}

// ParseCSV reads a match table. The header row decides the column layout;
// every odds column must be present or the whole parse fails with a
// SchemaError. Individual malformed odds cells are sanitized to the
// sentinel instead of failing the row, malformed dates fail the row.
func ParseCSV(r io.Reader) ([]models.MatchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	for _, required := range []string{"date", "league", "home_team", "away_team"} {
		if _, ok := columns[required]; !ok {
			return nil, models.NewSchemaError(required)
		}
	}
	for _, market := range models.RequiredMarkets {
		if _, ok := columns[oddsColumns[market]]; !ok {
			return nil, models.NewSchemaError(oddsColumns[market])
		}
	}

	rows := make([]models.MatchRecord, 0)
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("reading csv line %d: %w", line, err)
		}

		row, err := parseRow(record, columns)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func parseRow(record []string, columns map[string]int) (models.MatchRecord, error) {
	date, err := parseDate(cell(record, columns, "date"))
	if err != nil {
		return models.MatchRecord{}, err
	}

	row := models.MatchRecord{
		Date:     date,
		League:   cell(record, columns, "league"),
		HomeTeam: cell(record, columns, "home_team"),
		AwayTeam: cell(record, columns, "away_team"),
		Odds:     make(map[models.MarketKey]float64, len(oddsColumns)),
	}

	for market, column := range oddsColumns {
		row.Odds[market] = sanitizeOdds(cell(record, columns, column))
	}

	// Score columns are absent or blank for upcoming fixtures.
	homeFT, okHome := parseGoals(cell(record, columns, "goals_home_ft"))
	awayFT, okAway := parseGoals(cell(record, columns, "goals_away_ft"))
	if okHome && okAway {
		row.HasResult = true
		row.GoalsHomeFT = homeFT
		row.GoalsAwayFT = awayFT
		if ht, ok := parseGoals(cell(record, columns, "goals_home_ht")); ok {
			row.GoalsHomeHT = ht
		}
		if ht, ok := parseGoals(cell(record, columns, "goals_away_ht")); ok {
			row.GoalsAwayHT = ht
		}
	}

	return row, nil
}

func cell(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", value)
}

func parseGoals(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// sanitizeOdds parses one odds cell with exact decimal semantics. Anything
// non-numeric or non-positive becomes the sentinel, so downstream signal
// math sees a present market with a near-zero implied probability rather
// than a hole in the schema.
func sanitizeOdds(value string) float64 {
	if value == "" {
		return models.SentinelOdds
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return models.SentinelOdds
	}
	odds, _ := d.Float64()
	if odds <= 0 {
		return models.SentinelOdds
	}
	return odds
}
