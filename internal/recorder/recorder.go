package recorder

import (
	"StockCompass/internal/model"
	"StockCompass/internal/scanner"
)

// AnalysisSnapshot holds all data from one analysis run.
type AnalysisSnapshot struct {
	Symbol     string
	Indicators model.IndicatorBundle
	Momentum   model.MomentumResult
	Decision   model.DecisionResult
}

// ScanEvent holds the outcome of one basket scan.
type ScanEvent struct {
	LookbackDays int
	Results      []scanner.Result
}

// Recorder persists historical analysis data.
type Recorder interface {
	RecordAnalysis(snap *AnalysisSnapshot) error
	RecordScan(evt *ScanEvent) error
	Name() string
	Close() error
}
