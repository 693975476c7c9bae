package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"StockCompass/internal/collector"
	"StockCompass/internal/decision"
	"StockCompass/internal/momentum"
	"StockCompass/internal/notifier"
	"StockCompass/internal/recorder"
	"StockCompass/internal/scanner"

	"github.com/robfig/cron/v3"
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Scanner   *scanner.Scanner
	Decision  decision.Config
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Ctx       context.Context

	dailyCron string
	scanCron  string

	mu           sync.Mutex
	lastAnalysis time.Time
	lastScan     time.Time
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, scn *scanner.Scanner, cfg decision.Config, tn *notifier.TelegramNotifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Scanner:   scn,
		Decision:  cfg,
		Notifier:  tn,
		Recorder:  rec,
		Ctx:       ctx,
	}
}

// RegisterAll registers the daily analysis and weekly scan tasks.
func (s *Scheduler) RegisterAll(dailyCron, scanCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.analysisTask); err != nil {
		return fmt.Errorf("register daily analysis: %w", err)
	}
	if _, err := s.Cron.AddFunc(scanCron, s.scanTask); err != nil {
		return fmt.Errorf("register basket scan: %w", err)
	}
	s.dailyCron = dailyCron
	s.scanCron = scanCron
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunAnalysisNow executes the analysis task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunAnalysisNow() {
	s.analysisTask()
}

func (s *Scheduler) analysisTask() {
	log.Printf("[INFO] running analysis for %s", s.Collector.Symbol)
	snap, err := s.Collector.Collect()
	if err != nil {
		log.Printf("[ERROR] analysis collect: %v", err)
		s.trySend(notifier.Message{Text: fmt.Sprintf("❌ data collection failed: %v", err)})
		return
	}
	log.Printf("[INFO] collected %d bars for %s, last close %.2f",
		len(snap.Series.Bars), snap.Series.Symbol, snap.Series.LastClose())

	mom := momentum.Analyze(snap.Series)
	dec := decision.Decide(s.Decision, snap.Latest, mom)

	report := notifier.FormatAnalysisReport(snap.Series.Symbol, snap.Latest, mom, dec)
	s.trySend(notifier.Message{Text: report})

	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisSnapshot{
		Symbol:     snap.Series.Symbol,
		Indicators: snap.Latest,
		Momentum:   mom,
		Decision:   dec,
	}); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}

	s.mu.Lock()
	s.lastAnalysis = time.Now()
	s.mu.Unlock()
}

func (s *Scheduler) scanTask() {
	log.Println("[INFO] running basket scan")
	baskets := append(scanner.DefaultETFBaskets(), scanner.DefaultAssetBasket())
	results := s.Scanner.Scan(baskets)
	report := notifier.FormatScanReport(results, s.Scanner.LookbackDays)
	s.trySend(notifier.Message{Text: report, DisablePreview: true})

	if err := s.Recorder.RecordScan(&recorder.ScanEvent{
		LookbackDays: s.Scanner.LookbackDays,
		Results:      results,
	}); err != nil {
		log.Printf("[ERROR] record scan: %v", err)
	}

	s.mu.Lock()
	s.lastScan = time.Now()
	s.mu.Unlock()
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch {
	case command == "/analyze":
		go s.analysisTask()
		return ""
	case command == "/scan":
		go s.scanTask()
		return ""
	case command == "/status":
		return s.statusReport()
	case strings.HasPrefix(command, "/analyze "):
		symbol := strings.TrimSpace(strings.TrimPrefix(command, "/analyze "))
		go s.analyzeSymbol(symbol)
		return ""
	default:
		return "Commands:\n• /analyze — analyze the configured symbol\n• /analyze <symbol> — analyze another symbol\n• /scan — run the basket scan\n• /status — show bot status"
	}
}

// statusReport summarizes configuration and run history for /status.
func (s *Scheduler) statusReport() string {
	s.mu.Lock()
	lastAnalysis, lastScan := s.lastAnalysis, s.lastScan
	s.mu.Unlock()

	var b strings.Builder
	b.WriteString("ℹ️ <b>StockCompass status</b>\n")
	b.WriteString(fmt.Sprintf("symbol: %s (%s, %dd lookback)\n",
		s.Collector.Symbol, s.Collector.Fetcher.Name(), s.Collector.LookbackDays))
	b.WriteString(fmt.Sprintf("daily analysis: <code>%s</code>\n", s.dailyCron))
	b.WriteString(fmt.Sprintf("basket scan: <code>%s</code> (%dd window)\n", s.scanCron, s.Scanner.LookbackDays))
	b.WriteString(fmt.Sprintf("persistence: %s\n", s.Recorder.Name()))
	b.WriteString(fmt.Sprintf("last analysis: %s\n", fmtRunTime(lastAnalysis)))
	b.WriteString(fmt.Sprintf("last scan: %s", fmtRunTime(lastScan)))
	return b.String()
}

func fmtRunTime(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02 15:04:05")
}

func (s *Scheduler) analyzeSymbol(symbol string) {
	series, err := s.Collector.CollectSeries(symbol)
	if err != nil {
		log.Printf("[ERROR] analyze %s: %v", symbol, err)
		s.trySend(notifier.Message{Text: fmt.Sprintf("❌ %s: %v", symbol, err)})
		return
	}
	bundle := s.Collector.BundleFor(series)
	mom := momentum.Analyze(series)
	dec := decision.Decide(s.Decision, bundle, mom)
	s.trySend(notifier.Message{Text: notifier.FormatAnalysisReport(symbol, bundle, mom, dec)})

	if err := s.Recorder.RecordAnalysis(&recorder.AnalysisSnapshot{
		Symbol:     symbol,
		Indicators: bundle,
		Momentum:   mom,
		Decision:   dec,
	}); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}
}

func (s *Scheduler) trySend(msg notifier.Message) {
	if err := s.Notifier.SendWithRetry(s.Ctx, msg, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
