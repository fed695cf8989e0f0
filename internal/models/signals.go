package models

// SignalID identifies one derived signal from the closed catalog
// (VAR01..VAR77). Filters reference signals through this type rather than
// bare strings so an unknown identifier is caught at catalog load, not
// mid-backtest.
type SignalID string

// SignalSet maps every catalog signal to its derived value for one match.
// A populated set is total: every catalog identifier is present and every
// value is finite.
type SignalSet map[SignalID]float64

// Value returns the derived value for id, with ok reporting presence.
func (s SignalSet) Value(id SignalID) (float64, bool) {
	v, ok := s[id]
	return v, ok
}
