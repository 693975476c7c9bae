package scheduler

import (
	"context"
	"strings"
	"testing"

	"StockCompass/internal/collector"
	"StockCompass/internal/decision"
	"StockCompass/internal/recorder"
	"StockCompass/internal/scanner"
)

func newTestScheduler(t *testing.T) *Scheduler {
	t.Helper()
	fetcher := &collector.MockFetcher{}
	col := collector.NewCollector(fetcher, "TEST", 100)
	scn := scanner.NewScanner(fetcher, 365)
	s := NewScheduler(context.Background(), col, scn, decision.DefaultConfig(), nil, recorder.NewNoopRecorder())
	if err := s.RegisterAll("0 0 22 * * 1-5", "0 0 8 * * 1"); err != nil {
		t.Fatalf("register tasks: %v", err)
	}
	return s
}

func TestHandleCommand_Status(t *testing.T) {
	s := newTestScheduler(t)
	reply := s.HandleCommand("/status")
	if reply == "" {
		t.Fatal("/status must reply synchronously")
	}
	for _, want := range []string{"TEST", "mock", "0 0 22 * * 1-5", "0 0 8 * * 1", "noop", "never"} {
		if !strings.Contains(reply, want) {
			t.Errorf("status reply missing %q:\n%s", want, reply)
		}
	}
}

func TestHandleCommand_StatusReportsRunTimes(t *testing.T) {
	s := newTestScheduler(t)
	if got := s.statusReport(); strings.Count(got, "never") != 2 {
		t.Errorf("fresh scheduler should report both runs as never:\n%s", got)
	}
}

func TestHandleCommand_HelpListsStatus(t *testing.T) {
	s := newTestScheduler(t)
	help := s.HandleCommand("/bogus")
	for _, want := range []string{"/analyze", "/scan", "/status"} {
		if !strings.Contains(help, want) {
			t.Errorf("help text missing %s:\n%s", want, help)
		}
	}
}

func TestRegisterAll_RejectsBadSpec(t *testing.T) {
	fetcher := &collector.MockFetcher{}
	col := collector.NewCollector(fetcher, "TEST", 100)
	s := NewScheduler(context.Background(), col, scanner.NewScanner(fetcher, 365), decision.DefaultConfig(), nil, recorder.NewNoopRecorder())
	if err := s.RegisterAll("not a cron spec", "0 0 8 * * 1"); err == nil {
		t.Error("expected error for invalid cron spec")
	}
}
