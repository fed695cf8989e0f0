package signal

import (
	"github.com/yourusername/lay-scout/internal/models"
)

// Op enumerates the closed-form operations a catalog entry may apply over
// implied probabilities.
type Op int

const (
	// OpRatio computes a/b with b floored at epsilon.
	OpRatio Op = iota
	// OpAbsDiff computes |a-b|.
	OpAbsDiff
	// OpNormDiff computes |a-b|/b with b floored at epsilon.
	OpNormDiff
	// OpDispersion computes population stdev over mean for a cluster.
	OpDispersion
	// OpAtanHalf computes atan((b-a)/2) in degrees, a bounded comparison.
	OpAtanHalf
)

// Def is one catalog entry: a signal identifier bound to an operation over
// one or two probabilities, or over a probability cluster.
type Def struct {
	ID      models.SignalID
	Op      Op
	A, B    ProbKey
	Cluster []ProbKey
}

// Catalog is the closed set of derived signals. The whole set is data, not
// code: the deriver interprets these rows with five closed-form operations.
// Reciprocal pairs (e.g. VAR44/VAR46) are expressed as the same ratio with
// operands swapped.
var Catalog = []Def{
	// 1X2 pairwise ratios.
	{ID: "VAR01", Op: OpRatio, A: PHome, B: PDraw},
	{ID: "VAR02", Op: OpRatio, A: PDraw, B: PHome},
	{ID: "VAR03", Op: OpRatio, A: PHome, B: PAway},
	{ID: "VAR04", Op: OpRatio, A: PAway, B: PHome},
	{ID: "VAR05", Op: OpRatio, A: PDraw, B: PAway},
	{ID: "VAR06", Op: OpRatio, A: PAway, B: PDraw},

	// 1X2 against the goals market.
	{ID: "VAR07", Op: OpRatio, A: PHome, B: POver},
	{ID: "VAR08", Op: OpRatio, A: POver, B: PHome},
	{ID: "VAR09", Op: OpRatio, A: PHome, B: PUnder},
	{ID: "VAR10", Op: OpRatio, A: PUnder, B: PHome},
	{ID: "VAR11", Op: OpRatio, A: PAway, B: POver},
	{ID: "VAR12", Op: OpRatio, A: POver, B: PAway},
	{ID: "VAR13", Op: OpRatio, A: PAway, B: PUnder},
	{ID: "VAR14", Op: OpRatio, A: PUnder, B: PAway},
	{ID: "VAR15", Op: OpRatio, A: PDraw, B: POver},
	{ID: "VAR16", Op: OpRatio, A: PDraw, B: PUnder},

	// Ratios involving both-teams-to-score.
	{ID: "VAR17", Op: OpRatio, A: PHome, B: PBTTSYes},
	{ID: "VAR18", Op: OpRatio, A: PBTTSYes, B: PHome},
	{ID: "VAR19", Op: OpRatio, A: PAway, B: PBTTSYes},
	{ID: "VAR20", Op: OpRatio, A: PBTTSYes, B: PAway},
	{ID: "VAR21", Op: OpRatio, A: PDraw, B: PBTTSYes},
	{ID: "VAR22", Op: OpRatio, A: PBTTSYes, B: PDraw},
	{ID: "VAR23", Op: OpRatio, A: POver, B: PBTTSYes},
	{ID: "VAR24", Op: OpRatio, A: PBTTSYes, B: POver},
	{ID: "VAR25", Op: OpRatio, A: PUnder, B: PBTTSNo},
	{ID: "VAR26", Op: OpRatio, A: PBTTSNo, B: PUnder},

	// Absolute differences.
	{ID: "VAR27", Op: OpAbsDiff, A: PHome, B: PAway},
	{ID: "VAR28", Op: OpAbsDiff, A: PHome, B: PDraw},
	{ID: "VAR29", Op: OpAbsDiff, A: PDraw, B: PAway},
	{ID: "VAR30", Op: OpAbsDiff, A: POver, B: PUnder},
	{ID: "VAR31", Op: OpAbsDiff, A: PBTTSYes, B: PBTTSNo},
	{ID: "VAR32", Op: OpAbsDiff, A: PHome, B: POver},
	{ID: "VAR33", Op: OpAbsDiff, A: PAway, B: PUnder},
	{ID: "VAR34", Op: OpAbsDiff, A: POver, B: PBTTSYes},
	{ID: "VAR35", Op: OpAbsDiff, A: PUnder, B: PBTTSNo},
	{ID: "VAR36", Op: OpAbsDiff, A: PHome, B: PUnder},

	// Normalized differences over the market pairs above.
	{ID: "VAR37", Op: OpNormDiff, A: PHome, B: PAway},
	{ID: "VAR38", Op: OpNormDiff, A: PAway, B: PHome},
	{ID: "VAR39", Op: OpNormDiff, A: PHome, B: PDraw},
	{ID: "VAR40", Op: OpNormDiff, A: PDraw, B: PAway},
	{ID: "VAR41", Op: OpNormDiff, A: POver, B: PUnder},
	{ID: "VAR42", Op: OpNormDiff, A: PUnder, B: POver},
	{ID: "VAR43", Op: OpNormDiff, A: PBTTSYes, B: PBTTSNo},

	// Correct-score proxy ratios, reciprocal pairs included.
	{ID: "VAR44", Op: OpRatio, A: PCS1, B: PCS2},
	{ID: "VAR45", Op: OpRatio, A: PCS1, B: PCS3},
	{ID: "VAR46", Op: OpRatio, A: PCS2, B: PCS1},
	{ID: "VAR47", Op: OpRatio, A: PCS3, B: PCS1},
	{ID: "VAR48", Op: OpRatio, A: PCS2, B: PCS3},
	{ID: "VAR49", Op: OpRatio, A: PCS3, B: PCS2},

	// Cluster dispersion, stdev/mean per market group.
	{ID: "VAR50", Op: OpDispersion, Cluster: []ProbKey{PHome, PDraw, PAway}},
	{ID: "VAR51", Op: OpDispersion, Cluster: []ProbKey{POver, PUnder}},
	{ID: "VAR52", Op: OpDispersion, Cluster: []ProbKey{PBTTSYes, PBTTSNo}},
	{ID: "VAR53", Op: OpDispersion, Cluster: []ProbKey{PCS1, PCS2, PCS3}},

	// Bounded angular comparisons.
	{ID: "VAR54", Op: OpAtanHalf, A: PHome, B: PAway},
	{ID: "VAR55", Op: OpAtanHalf, A: PAway, B: PHome},
	{ID: "VAR56", Op: OpAtanHalf, A: PHome, B: PDraw},
	{ID: "VAR57", Op: OpAtanHalf, A: PDraw, B: PAway},
	{ID: "VAR58", Op: OpAtanHalf, A: POver, B: PUnder},
	{ID: "VAR59", Op: OpAtanHalf, A: PUnder, B: POver},
	{ID: "VAR60", Op: OpAtanHalf, A: PBTTSYes, B: PBTTSNo},
	{ID: "VAR61", Op: OpAtanHalf, A: PHome, B: POver},
	{ID: "VAR62", Op: OpAtanHalf, A: PAway, B: PUnder},
	{ID: "VAR63", Op: OpAtanHalf, A: PDraw, B: POver},
	{ID: "VAR64", Op: OpAtanHalf, A: PHome, B: PBTTSYes},
	{ID: "VAR65", Op: OpAtanHalf, A: PAway, B: PBTTSNo},

	// Correct-score proxies against the outright markets.
	{ID: "VAR66", Op: OpRatio, A: PCS1, B: PDraw},
	{ID: "VAR67", Op: OpRatio, A: PCS1, B: PUnder},
	{ID: "VAR68", Op: OpRatio, A: PCS2, B: PDraw},
	{ID: "VAR69", Op: OpRatio, A: PCS3, B: PUnder},
	{ID: "VAR70", Op: OpAbsDiff, A: PCS1, B: PDraw},
	{ID: "VAR71", Op: OpAbsDiff, A: PCS1, B: PUnder},
	{ID: "VAR72", Op: OpNormDiff, A: PCS1, B: PCS2},
	{ID: "VAR73", Op: OpNormDiff, A: PCS1, B: PCS3},
	{ID: "VAR74", Op: OpAtanHalf, A: PCS1, B: PCS2},
	{ID: "VAR75", Op: OpAtanHalf, A: PCS1, B: PCS3},
	{ID: "VAR76", Op: OpRatio, A: POver, B: PCS1},
	{ID: "VAR77", Op: OpRatio, A: PUnder, B: PCS3},
}

// IDs returns every catalog signal identifier in catalog order.
func IDs() []models.SignalID {
	ids := make([]models.SignalID, 0, len(Catalog))
	for _, def := range Catalog {
		ids = append(ids, def.ID)
	}
	return ids
}

// Known reports whether id belongs to the catalog.
func Known(id models.SignalID) bool {
	_, ok := catalogIndex[id]
	return ok
}

var catalogIndex = buildCatalogIndex()

func buildCatalogIndex() map[models.SignalID]int {
	index := make(map[models.SignalID]int, len(Catalog))
	for i, def := range Catalog {
		index[def.ID] = i
	}
	return index
}
