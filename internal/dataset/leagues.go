package dataset

import (
	"github.com/yourusername/lay-scout/internal/models"
)

// DefaultLeagues is the league allow-list applied to historical tables
// before mining. Rows from leagues outside the list are discarded; their
// odds markets are too thin for the signal math to be comparable.
var DefaultLeagues = []string{
	"argentina_primera_division",
	"australia_a_league",
	"austria_bundesliga",
	"austria_2_liga",
	"belgium_pro_league",
	"belgium_challenger_pro_league",
	"brazil_serie_a",
	"brazil_serie_b",
	"bulgaria_first_league",
	"chile_primera_division",
	"china_super_league",
	"colombia_primera_a",
	"croatia_hnl",
	"cyprus_first_division",
	"czech_fortuna_liga",
	"czech_fnl",
	"denmark_superliga",
	"denmark_1_division",
	"ecuador_serie_a",
	"egypt_premier_league",
	"england_premier_league",
	"england_championship",
	"england_league_one",
	"england_league_two",
	"england_national_league",
	"estonia_meistriliiga",
	"finland_veikkausliiga",
	"finland_ykkonen",
	"france_ligue_1",
	"france_ligue_2",
	"france_national",
	"germany_bundesliga",
	"germany_2_bundesliga",
	"germany_3_liga",
	"greece_super_league",
	"hungary_nb_i",
	"iceland_urvalsdeild",
	"india_super_league",
	"ireland_premier_division",
	"ireland_first_division",
	"israel_ligat_haal",
	"italy_serie_a",
	"italy_serie_b",
	"japan_j1_league",
	"japan_j2_league",
	"latvia_virsliga",
	"lithuania_a_lyga",
	"mexico_liga_mx",
	"netherlands_eredivisie",
	"netherlands_eerste_divisie",
	"norway_eliteserien",
	"norway_obos_ligaen",
	"paraguay_primera_division",
	"peru_primera_division",
	"poland_ekstraklasa",
	"poland_i_liga",
	"portugal_primeira_liga",
	"portugal_liga_2",
	"romania_liga_i",
	"russia_premier_league",
	"saudi_pro_league",
	"scotland_premiership",
	"scotland_championship",
	"scotland_league_one",
	"serbia_super_liga",
	"slovakia_super_liga",
	"slovenia_prva_liga",
	"south_africa_psl",
	"south_korea_k_league_1",
	"spain_la_liga",
	"spain_la_liga_2",
	"sweden_allsvenskan",
	"sweden_superettan",
	"switzerland_super_league",
	"switzerland_challenge_league",
	"turkey_super_lig",
	"turkey_1_lig",
	"ukraine_premier_league",
	"uruguay_primera_division",
	"usa_mls",
	"wales_premier_league",
}

// LeagueSet answers membership queries for a league allow-list.
type LeagueSet map[string]struct{}

// NewLeagueSet builds a set from a league list. An empty list yields an
// empty set, which FilterLeagues treats as "allow everything".
func NewLeagueSet(leagues []string) LeagueSet {
	set := make(LeagueSet, len(leagues))
	for _, league := range leagues {
		set[league] = struct{}{}
	}
	return set
}

// Contains reports whether the league is in the set.
func (s LeagueSet) Contains(league string) bool {
	_, ok := s[league]
	return ok
}

// FilterLeagues returns the rows whose league is in the allow-list,
// preserving input order. A nil or empty set passes everything through.
func FilterLeagues(rows []models.MatchRecord, allowed LeagueSet) []models.MatchRecord {
	if len(allowed) == 0 {
		return rows
	}
	kept := make([]models.MatchRecord, 0, len(rows))
	for i := range rows {
		if allowed.Contains(rows[i].League) {
			kept = append(kept, rows[i])
		}
	}
	return kept
}
