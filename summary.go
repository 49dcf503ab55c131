package perf

import "github.com/vkant/perf/date"

// Summary is the result of running both pipelines over one ledger: the
// enriched matched lots with their P&L aggregation, and the cash-flow
// series with its money-weighted return.
type Summary struct {
	Date     date.Date
	Lots     []MatchedLot
	PnL      *PnLReport
	Cashflow *CashflowSeries
	Rate     float64 // XIRR, as a ratio
}

// NewSummary computes a full performance summary of the ledger valued with
// the given prices on the given date.
func NewSummary(l *Ledger, prices map[string]Money, on date.Date, guess float64) (*Summary, error) {
	lots, err := l.MatchLots(prices, on)
	if err != nil {
		return nil, err
	}
	lots, err = CalculatePerformance(lots)
	if err != nil {
		return nil, err
	}

	cashflow, err := BuildCashflow(l, prices, on)
	if err != nil {
		return nil, err
	}
	rate, err := XIRR(cashflow, guess)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Date:     on,
		Lots:     lots,
		PnL:      AggregatePnL(lots),
		Cashflow: cashflow,
		Rate:     rate,
	}, nil
}
