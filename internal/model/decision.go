package model

// DecisionResult holds the weighted buy/sell/hold probability estimate.
// Each value is in 0~100. The three values are not guaranteed to sum to
// exactly 100: when combined signal strength is weak, buy and sell are
// shrunk after hold is fixed, which keeps the "mostly hold" reading.
type DecisionResult struct {
	BuyProb  float64
	SellProb float64
	HoldProb float64
}

// Action returns the dominant side of the decision.
func (d DecisionResult) Action() string {
	switch {
	case d.BuyProb >= d.SellProb && d.BuyProb >= d.HoldProb:
		return "BUY"
	case d.SellProb >= d.BuyProb && d.SellProb >= d.HoldProb:
		return "SELL"
	default:
		return "HOLD"
	}
}
