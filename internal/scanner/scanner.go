package scanner

import (
	"log"
	"math"
	"sort"

	"StockCompass/internal/collector"
)

// Result is the period return of one scanned symbol.
type Result struct {
	Symbol    string
	Name      string
	Category  string
	ReturnPct float64 // close-over-close return across the scanned window
}

// Scanner ranks basket members by period return.
type Scanner struct {
	Fetcher      collector.Fetcher
	LookbackDays int
}

// NewScanner creates a Scanner.
func NewScanner(fetcher collector.Fetcher, lookbackDays int) *Scanner {
	return &Scanner{Fetcher: fetcher, LookbackDays: lookbackDays}
}

// Scan fetches every basket member and returns results sorted by return,
// best first. Symbols that fail to fetch are logged and skipped.
func (s *Scanner) Scan(baskets []Basket) []Result {
	var results []Result
	for _, basket := range baskets {
		for _, entry := range basket.Entries {
			bars, err := s.Fetcher.FetchDailyBars(entry.Symbol, s.LookbackDays)
			if err != nil {
				log.Printf("[WARN] scan %s (%s): %v", entry.Symbol, entry.Name, err)
				continue
			}
			if len(bars) < 2 {
				log.Printf("[WARN] scan %s: not enough bars", entry.Symbol)
				continue
			}
			first, last := bars[0].Close, bars[len(bars)-1].Close
			if first == 0 {
				continue
			}
			ret := (last/first - 1) * 100
			if math.IsNaN(ret) || math.IsInf(ret, 0) {
				continue
			}
			results = append(results, Result{
				Symbol:    entry.Symbol,
				Name:      entry.Name,
				Category:  basket.Category,
				ReturnPct: ret,
			})
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].ReturnPct > results[j].ReturnPct })
	return results
}

// CategoryAverages computes the mean return per category, sorted best first.
func CategoryAverages(results []Result) []Result {
	sums := map[string]float64{}
	counts := map[string]int{}
	for _, r := range results {
		sums[r.Category] += r.ReturnPct
		counts[r.Category]++
	}
	var avgs []Result
	for cat, sum := range sums {
		avgs = append(avgs, Result{
			Name:      cat,
			Category:  cat,
			ReturnPct: sum / float64(counts[cat]),
		})
	}
	sort.Slice(avgs, func(i, j int) bool { return avgs[i].ReturnPct > avgs[j].ReturnPct })
	return avgs
}
