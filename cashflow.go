package perf

import (
	"slices"

	"github.com/vkant/perf/date"
)

// CashflowSeries is a date-keyed series of signed amounts: negative for
// money invested, positive for money returned. Contributions on the same
// date accumulate.
type CashflowSeries struct {
	amounts map[date.Date]Money
}

// NewCashflowSeries returns an empty series.
func NewCashflowSeries() *CashflowSeries {
	return &CashflowSeries{amounts: make(map[date.Date]Money)}
}

// Add accumulates an amount on a date.
func (s *CashflowSeries) Add(on date.Date, amount Money) {
	s.amounts[on] = s.amounts[on].Add(amount)
}

// Amount returns the accumulated amount on a date, zero if none.
func (s *CashflowSeries) Amount(on date.Date) Money { return s.amounts[on] }

// Len returns the number of distinct dates in the series.
func (s *CashflowSeries) Len() int { return len(s.amounts) }

// Dates returns the series dates in chronological order.
func (s *CashflowSeries) Dates() []date.Date {
	dates := make([]date.Date, 0, len(s.amounts))
	for d := range s.amounts {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b date.Date) int { return a.Compare(b) })
	return dates
}

// BuildCashflow turns the ledger into a cash-flow series: each buy
// contributes an outflow and each sell an inflow on its date, and one
// terminal inflow on the valuation date carries the mark-to-market value of
// all open positions. The terminal entry accumulates with any trade that
// happened on the valuation date itself.
//
// A security left with a non-zero open quantity and no entry in prices is a
// *MissingPriceError.
func BuildCashflow(l *Ledger, prices map[string]Money, on date.Date) (*CashflowSeries, error) {
	series := NewCashflowSeries()
	held := make(map[string]Quantity)

	for _, r := range l.Records() {
		switch r.Action {
		case Buy:
			held[r.Security] = held[r.Security].Add(r.Quantity)
			series.Add(r.Date, r.Amount().Neg())
		case Sell:
			held[r.Security] = held[r.Security].Sub(r.Quantity)
			series.Add(r.Date, r.Amount())
		}
	}

	// Terminal entry: liquidation value of everything still held.
	var liquidation Money
	for _, sec := range l.Securities() {
		quantity := held[sec]
		if quantity.IsZero() {
			continue
		}
		price, ok := prices[sec]
		if !ok {
			return nil, &MissingPriceError{Security: sec}
		}
		liquidation = liquidation.Add(price.Mul(quantity))
	}
	series.Add(on, liquidation)

	return series, nil
}
