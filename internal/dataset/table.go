package dataset

import (
	"sort"

	"github.com/yourusername/lay-scout/internal/models"
)

// SortByDate orders rows oldest first, in place. Ties keep their input
// order so repeated loads of the same file stay deterministic.
func SortByDate(rows []models.MatchRecord) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})
}

// Split partitions a table into finished matches and upcoming fixtures,
// preserving order within each part.
func Split(rows []models.MatchRecord) (historical, upcoming []models.MatchRecord) {
	historical = make([]models.MatchRecord, 0, len(rows))
	upcoming = make([]models.MatchRecord, 0)
	for i := range rows {
		if rows[i].HasResult {
			historical = append(historical, rows[i])
		} else {
			upcoming = append(upcoming, rows[i])
		}
	}
	return historical, upcoming
}

// Leagues returns the distinct league names in the table, sorted.
func Leagues(rows []models.MatchRecord) []string {
	seen := make(map[string]struct{})
	for i := range rows {
		seen[rows[i].League] = struct{}{}
	}
	leagues := make([]string, 0, len(seen))
	for league := range seen {
		leagues = append(leagues, league)
	}
	sort.Strings(leagues)
	return leagues
}
