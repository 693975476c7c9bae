package scanner

// BasketEntry names one scannable symbol.
type BasketEntry struct {
	Symbol string
	Name   string
}

// Basket groups related symbols under a category label.
type Basket struct {
	Category string
	Entries  []BasketEntry
}

// DefaultETFBaskets returns the built-in ETF universe.
func DefaultETFBaskets() []Basket {
	return []Basket{
		{
			Category: "Major Indices",
			Entries: []BasketEntry{
				{"SPY", "S&P 500"},
				{"QQQ", "Nasdaq 100"},
				{"MCHI", "China MSCI"},
				{"EWJ", "Japan MSCI"},
				{"VGK", "Europe FTSE"},
				{"EWZ", "Brazil MSCI"},
				{"EIDO", "Indonesia MSCI"},
				{"INDA", "India MSCI"},
				{"VNM", "Vietnam"},
				{"EWA", "Australia MSCI"},
			},
		},
		{
			Category: "Sectors",
			Entries: []BasketEntry{
				{"XLK", "Technology"},
				{"XLF", "Financials"},
				{"XLC", "Communication"},
				{"XLV", "Health Care"},
				{"XLE", "Energy"},
				{"XLI", "Industrials"},
				{"XLP", "Consumer Staples"},
				{"XLY", "Consumer Discretionary"},
			},
		},
		{
			Category: "Thematic",
			Entries: []BasketEntry{
				{"ARKK", "Innovation"},
				{"ARKG", "Genomics"},
				{"BOTZ", "Robotics & AI"},
				{"ICLN", "Clean Energy"},
				{"SMH", "Semiconductors"},
				{"IBB", "Biotech"},
				{"SKYY", "Cloud"},
				{"ROBO", "Robotics"},
				{"FINX", "Fintech"},
				{"HACK", "Cybersecurity"},
			},
		},
	}
}

// DefaultAssetBasket returns the global asset-class universe.
func DefaultAssetBasket() Basket {
	return Basket{
		Category: "Global Assets",
		Entries: []BasketEntry{
			{"SPY", "S&P 500"},
			{"QQQ", "NASDAQ"},
			{"EWY", "KOSPI"},
			{"SHY", "US Short-Term Bonds"},
			{"IEF", "US Mid-Term Bonds"},
			{"TLT", "US Long-Term Bonds"},
			{"GLD", "Gold"},
			{"DBC", "Commodities"},
			{"BITO", "Bitcoin"},
		},
	}
}
