// Package mining implements the combinatorial rule-mining backtest: every
// context filter crossed with every target outcome, scored with a lay
// payout and a recency-weighted acceptance rule.
package mining

// PayoutRule models a lay/against bet: a small fixed profit when the
// target outcome does NOT occur, full stake loss when it does.
type PayoutRule struct {
	WinProfit  float64
	LossAmount float64
}

// DefaultPayoutRule is a lay at 10% net odds with a one-unit stake.
func DefaultPayoutRule() PayoutRule {
	return PayoutRule{WinProfit: 0.10, LossAmount: -1.0}
}

// Profit returns the per-game profit given whether the outcome occurred.
func (p PayoutRule) Profit(occurred bool) float64 {
	if occurred {
		return p.LossAmount
	}
	return p.WinProfit
}
