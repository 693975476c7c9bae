package model

import (
	"testing"
	"time"
)

func TestLastClose(t *testing.T) {
	empty := &PriceSeries{Symbol: "TEST"}
	if got := empty.LastClose(); got != 0 {
		t.Errorf("empty series should report 0, got %.2f", got)
	}

	series := &PriceSeries{
		Symbol: "TEST",
		Bars: []PricePoint{
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Close: 100},
			{Date: time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), Close: 104.5},
		},
	}
	if got := series.LastClose(); got != 104.5 {
		t.Errorf("expected most recent close 104.5, got %.2f", got)
	}
}
