package invest

// SampleData returns a demonstration portfolio, its target allocation and a
// planned contribution. Holdings have fixed IDs so that the sample is stable.
func SampleData() (Portfolio, Allocation, float64) {
	p := Portfolio{
		{ID: "1", Ticker: "PETR4", Class: "Stocks", Quantity: 100, Price: 32.50},
		{ID: "2", Ticker: "VALE3", Class: "Stocks", Quantity: 50, Price: 65.20},
		{ID: "3", Ticker: "HGLG11", Class: "Real Estate Funds", Quantity: 200, Price: 95.80},
		{ID: "4", Ticker: "BOVA11", Class: "Stocks", Quantity: 150, Price: 110.45},
		{ID: "5", Ticker: "CDI", Class: "Fixed Income", Quantity: 10000, Price: 1.00},
		{ID: "6", Ticker: "IVVB11", Class: "International", Quantity: 80, Price: 125.30},
		{ID: "7", Ticker: "BTC", Class: "Crypto", Quantity: 0.05, Price: 200000.00},
	}
	target := Allocation{
		"Stocks":            40,
		"Real Estate Funds": 20,
		"Fixed Income":      25,
		"International":     10,
		"Crypto":            5,
	}
	return p, target, 5000
}
