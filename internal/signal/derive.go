package signal

import (
	"math"

	"github.com/yourusername/lay-scout/internal/models"
)

// epsilon floors ratio denominators so division never produces Inf from a
// legitimate zero; the result is still subject to the final finite check.
const epsilon = 1e-12

// Derive computes the full signal set for one record. It is pure and
// row-independent: the same record always yields the same set. The returned
// set is total over the catalog and contains only finite values.
func Derive(rec *models.MatchRecord) (models.SignalSet, error) {
	probs, err := ImpliedProbabilities(rec)
	if err != nil {
		return nil, err
	}

	set := make(models.SignalSet, len(Catalog))
	for _, def := range Catalog {
		set[def.ID] = sanitizeFinite(evaluate(def, probs))
	}
	return set, nil
}

// DeriveTable attaches a signal set to every record in place of the
// previous derived attributes. Source fields are never touched. The schema
// precondition is checked once up front so a structurally missing market
// fails the whole operation rather than skipping rows.
func DeriveTable(rows []models.MatchRecord) error {
	if len(rows) == 0 {
		return nil
	}
	for _, market := range models.RequiredMarkets {
		if _, ok := rows[0].Odd(market); !ok {
			return models.NewSchemaError(string(market))
		}
	}

	for i := range rows {
		set, err := Derive(&rows[i])
		if err != nil {
			return err
		}
		rows[i].Signals = set
	}
	return nil
}

// evaluate applies one catalog operation. Intermediate terms are not
// sanitized; the single finite check happens after all arithmetic so large
// but finite results survive.
func evaluate(def Def, probs Probabilities) float64 {
	switch def.Op {
	case OpRatio:
		return probs[def.A] / math.Max(probs[def.B], epsilon)
	case OpAbsDiff:
		return math.Abs(probs[def.A] - probs[def.B])
	case OpNormDiff:
		return math.Abs(probs[def.A]-probs[def.B]) / math.Max(probs[def.B], epsilon)
	case OpDispersion:
		return dispersion(def.Cluster, probs)
	case OpAtanHalf:
		return math.Atan((probs[def.B]-probs[def.A])/2.0) * 180.0 / math.Pi
	}
	return 0
}

// dispersion is population standard deviation over mean for a probability
// cluster.
func dispersion(cluster []ProbKey, probs Probabilities) float64 {
	if len(cluster) == 0 {
		return 0
	}
	mean := 0.0
	for _, key := range cluster {
		mean += probs[key]
	}
	mean /= float64(len(cluster))

	variance := 0.0
	for _, key := range cluster {
		diff := probs[key] - mean
		variance += diff * diff
	}
	variance /= float64(len(cluster))

	return math.Sqrt(variance) / mean
}

// sanitizeFinite coerces NaN and Inf to 0 so a broken signal can never
// satisfy or exclude a filter through NaN comparison semantics.
func sanitizeFinite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
