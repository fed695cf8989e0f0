package mining

// WindowSpec fixes the trailing-window acceptance rule. The caps (80 and
// 170) are deliberately larger than the window labels ("last 8", "last
// 40") they are reported under; the caps are authoritative and preserved
// as-is.
type WindowSpec struct {
	SmallLabel int
	SmallCap   int
	LargeLabel int
	LargeCap   int
	MinHitRate float64
}

// DefaultWindowSpec returns the hand-tuned acceptance thresholds.
func DefaultWindowSpec() WindowSpec {
	return WindowSpec{
		SmallLabel: 8,
		SmallCap:   80,
		LargeLabel: 40,
		LargeCap:   170,
		MinHitRate: 0.98,
	}
}

// WindowSummary aggregates hit-rate and profit over one trailing window of
// a date-sorted context subset.
type WindowSummary struct {
	Label     int     `json:"label"`
	Cap       int     `json:"cap"`
	Games     int     `json:"games"`
	Hits      int     `json:"hits"`
	HitRate   float64 `json:"hit_rate"`
	NetProfit float64 `json:"net_profit"`
}

// summarizeWindow aggregates the suffix of up to cap games. occurred and
// profits are parallel slices in date-ascending order, so the suffix is
// the most recent slice of history.
func summarizeWindow(label, cap int, occurred []bool, profits []float64) WindowSummary {
	games := len(occurred)
	if games > cap {
		games = cap
	}
	start := len(occurred) - games

	summary := WindowSummary{Label: label, Cap: cap, Games: games}
	for i := start; i < len(occurred); i++ {
		if !occurred[i] {
			summary.Hits++
		}
		summary.NetProfit += profits[i]
	}
	if games > 0 {
		summary.HitRate = float64(summary.Hits) / float64(games)
	}
	return summary
}
