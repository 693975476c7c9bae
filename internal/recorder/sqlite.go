package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists historical data to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the bot writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analysis_snapshots (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			close           REAL,
			rsi             REAL,
			macd            REAL,
			macd_signal     REAL,
			bb_high         REAL,
			bb_low          REAL,
			mfi             REAL,
			obv             REAL,
			stoch_k         REAL,
			stoch_d         REAL,
			momentum_score  REAL,
			momentum_signal TEXT,
			strength        REAL,
			recent_trend    TEXT,
			positive_months INTEGER,
			total_months    INTEGER,
			buy_prob        REAL,
			sell_prob       REAL,
			hold_prob       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_ts ON analysis_snapshots(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analysis_symbol ON analysis_snapshots(symbol)`,

		`CREATE TABLE IF NOT EXISTS scan_results (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			symbol        TEXT NOT NULL,
			name          TEXT,
			category      TEXT,
			lookback_days INTEGER,
			return_pct    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scan_ts ON scan_results(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullable maps NaN to SQL NULL so warm-up oscillator rows stay queryable.
func nullable(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return v
}

func (r *SQLiteRecorder) RecordAnalysis(snap *AnalysisSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ind := snap.Indicators
	mom := snap.Momentum
	dec := snap.Decision

	_, err := r.db.Exec(`INSERT INTO analysis_snapshots
		(timestamp, symbol, close, rsi, macd, macd_signal, bb_high, bb_low,
		 mfi, obv, stoch_k, stoch_d,
		 momentum_score, momentum_signal, strength, recent_trend,
		 positive_months, total_months,
		 buy_prob, sell_prob, hold_prob)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), snap.Symbol,
		nullable(ind.Close), nullable(ind.RSI), nullable(ind.MACD), nullable(ind.MACDSignal),
		nullable(ind.BBHigh), nullable(ind.BBLow), nullable(ind.MFI), nullable(ind.OBV),
		nullable(ind.StochK), nullable(ind.StochD),
		mom.Score, string(mom.Signal), mom.Strength, string(mom.RecentTrend),
		mom.PositiveMonths, mom.TotalMonths,
		dec.BuyProb, dec.SellProb, dec.HoldProb,
	)
	return err
}

func (r *SQLiteRecorder) RecordScan(evt *ScanEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin scan tx: %w", err)
	}
	for _, res := range evt.Results {
		if _, err := tx.Exec(`INSERT INTO scan_results
			(timestamp, symbol, name, category, lookback_days, return_pct)
			VALUES (?,?,?,?,?,?)`,
			now, res.Symbol, res.Name, res.Category, evt.LookbackDays, res.ReturnPct,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert scan result %s: %w", res.Symbol, err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Name() string { return "sqlite" }

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
