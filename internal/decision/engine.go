package decision

import (
	"StockCompass/internal/model"
)

// Decide combines the latest oscillator snapshot with the momentum result
// into a 3-way buy/sell/hold probability estimate. Pure and deterministic;
// it never fails. NaN indicator fields compare false against every
// threshold, so a missing value counts as neither oversold nor overbought
// while its weight still enters the denominator.
func Decide(cfg Config, latest model.IndicatorBundle, momentum model.MomentumResult) model.DecisionResult {
	var buy, sell, weight float64

	// RSI
	if latest.RSI < cfg.RSIOversold {
		buy += cfg.RSIWeight
	} else if latest.RSI > cfg.RSIOverbought {
		sell += cfg.RSIWeight
	}
	weight += cfg.RSIWeight

	// MACD vs signal line. Always fires one side; a NaN comparison falls
	// through to the sell side.
	if latest.MACD > latest.MACDSignal {
		buy += cfg.MACDWeight
	} else {
		sell += cfg.MACDWeight
	}
	weight += cfg.MACDWeight

	// Bollinger bands
	if latest.Close < latest.BBLow {
		buy += cfg.BollingerWeight
	} else if latest.Close > latest.BBHigh {
		sell += cfg.BollingerWeight
	}
	weight += cfg.BollingerWeight

	// MFI
	if latest.MFI < cfg.MFIOversold {
		buy += cfg.MFIWeight
	} else if latest.MFI > cfg.MFIOverbought {
		sell += cfg.MFIWeight
	}
	weight += cfg.MFIWeight

	// Stochastic: oversold with %K above %D, or overbought with %K below %D.
	if latest.StochK < cfg.StochOversold && latest.StochK > latest.StochD {
		buy += cfg.StochWeight
	} else if latest.StochK > cfg.StochOverbought && latest.StochK < latest.StochD {
		sell += cfg.StochWeight
	}
	weight += cfg.StochWeight

	// Momentum, the heaviest input. Missing-data signals pull the momentum
	// weight out here and the unconditional add below puts it back, so a
	// data-starved momentum still inflates the denominator while scoring
	// zero.
	switch momentum.Signal {
	case model.SignalVeryStrongUp:
		buy += cfg.MomentumWeight * 1.0
	case model.SignalStrongUp:
		buy += cfg.MomentumWeight * 0.8
	case model.SignalWeakUp:
		buy += cfg.MomentumWeight * 0.4
	case model.SignalNeutral:
		// no contribution
	case model.SignalNeutralUp:
		buy += cfg.MomentumWeight * 0.2
	case model.SignalNeutralDown:
		sell += cfg.MomentumWeight * 0.2
	case model.SignalWeakDown:
		sell += cfg.MomentumWeight * 0.4
	case model.SignalStrongDown:
		sell += cfg.MomentumWeight * 0.8
	case model.SignalInsufficientData, model.SignalNoData:
		weight -= cfg.MomentumWeight
	}

	switch momentum.RecentTrend {
	case model.TrendAccelerating:
		buy += cfg.TrendAdjustment
	case model.TrendDecelerating:
		sell += cfg.TrendAdjustment
	}

	weight += cfg.MomentumWeight

	if weight <= 0 {
		return model.DecisionResult{BuyProb: 33.33, SellProb: 33.33, HoldProb: 33.33}
	}

	buyProb := min100(buy / weight * 100)
	sellProb := min100(sell / weight * 100)

	var holdProb float64
	if strength := buyProb + sellProb; strength < 30 {
		// Hold is fixed from the pre-scaling sum, then buy/sell shrink.
		holdProb = 100 - strength
		buyProb *= 0.7
		sellProb *= 0.7
	} else {
		holdProb = 100 - buyProb - sellProb
		if holdProb < 0 {
			holdProb = 0
		}
	}

	return model.DecisionResult{BuyProb: buyProb, SellProb: sellProb, HoldProb: holdProb}
}

func min100(v float64) float64 {
	if v > 100 {
		return 100
	}
	return v
}
