package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"StockCompass/internal/model"
	"StockCompass/internal/scanner"
)

var signalTexts = map[model.MomentumSignal]string{
	model.SignalVeryStrongUp:     "very strong up",
	model.SignalStrongUp:         "strong up",
	model.SignalWeakUp:           "weak up",
	model.SignalNeutral:          "neutral",
	model.SignalWeakDown:         "weak down",
	model.SignalStrongDown:       "strong down",
	model.SignalInsufficientData: "insufficient data",
	model.SignalNoData:           "no data",
	model.SignalError:            "calculation error",
}

var trendTexts = map[model.RecentTrend]string{
	model.TrendAccelerating: "🚀 accelerating",
	model.TrendStableUp:     "📈 stable up",
	model.TrendStableDown:   "📉 stable down",
	model.TrendDecelerating: "⬇️ decelerating",
	model.TrendNeutral:      "➖ neutral",
	model.TrendNeutralUp:    "↗️ slightly up",
	model.TrendNeutralDown:  "↘️ slightly down",
	model.TrendUnknown:      "❓ unknown",
}

func fmtIndicator(v float64) string {
	if math.IsNaN(v) {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", v)
}

// FormatAnalysisReport formats a full analysis run into a Telegram message.
func FormatAnalysisReport(symbol string, ind model.IndicatorBundle, mom model.MomentumResult, dec model.DecisionResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("📊 <b>StockCompass</b> | %s | %s\n\n", symbol, time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("Close: %s\n", fmtIndicator(ind.Close)))
	b.WriteString(fmt.Sprintf("RSI: %s | MFI: %s\n", fmtIndicator(ind.RSI), fmtIndicator(ind.MFI)))
	b.WriteString(fmt.Sprintf("MACD: %s / signal %s\n", fmtIndicator(ind.MACD), fmtIndicator(ind.MACDSignal)))
	b.WriteString(fmt.Sprintf("Bollinger: %s ~ %s\n", fmtIndicator(ind.BBLow), fmtIndicator(ind.BBHigh)))
	b.WriteString(fmt.Sprintf("Stoch %%K/%%D: %s / %s\n\n", fmtIndicator(ind.StochK), fmtIndicator(ind.StochD)))

	b.WriteString("📈 <b>12-month momentum:</b>\n")
	b.WriteString(fmt.Sprintf("  score: %.1f (%s)\n", mom.Score, signalTexts[mom.Signal]))
	b.WriteString(fmt.Sprintf("  positive months: %d/%d\n", mom.PositiveMonths, mom.TotalMonths))
	b.WriteString(fmt.Sprintf("  avg positive return: %.1f%%\n", mom.Strength))
	b.WriteString(fmt.Sprintf("  recent trend: %s\n\n", trendTexts[mom.RecentTrend]))

	b.WriteString("💡 <b>Decision:</b>\n")
	b.WriteString(fmt.Sprintf("  📈 buy %.1f%% | 📉 sell %.1f%% | ⏳ hold %.1f%%\n\n", dec.BuyProb, dec.SellProb, dec.HoldProb))

	switch dec.Action() {
	case "BUY":
		b.WriteString("✨ Buy signals dominate.")
	case "SELL":
		b.WriteString("⚠️ Sell signals dominate.")
	default:
		b.WriteString("🤔 Holding is favored.")
	}

	return b.String()
}

// FormatScanReport formats basket scan results grouped by category.
func FormatScanReport(results []scanner.Result, lookbackDays int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🌎 <b>Basket Scan</b> | %dd window | %s\n", lookbackDays, time.Now().Format("2006-01-02")))

	if len(results) == 0 {
		b.WriteString("\nNo symbols could be scanned.")
		return b.String()
	}

	byCategory := map[string][]scanner.Result{}
	var order []string
	for _, r := range results {
		if _, ok := byCategory[r.Category]; !ok {
			order = append(order, r.Category)
		}
		byCategory[r.Category] = append(byCategory[r.Category], r)
	}

	for _, cat := range order {
		b.WriteString(fmt.Sprintf("\n<b>%s</b>\n", cat))
		for _, r := range byCategory[cat] {
			arrow := "🔻"
			if r.ReturnPct > 0 {
				arrow = "🔺"
			}
			b.WriteString(fmt.Sprintf("  %s %s (%s): %+.1f%%\n", arrow, r.Name, r.Symbol, r.ReturnPct))
		}
	}

	b.WriteString("\n<b>Category averages</b>\n")
	for _, avg := range scanner.CategoryAverages(results) {
		b.WriteString(fmt.Sprintf("  %s: %+.1f%%\n", avg.Category, avg.ReturnPct))
	}
	return b.String()
}
