package perf

import (
	"math"
	"slices"
)

const daysPerYear = 365.0

// TotalKey is the PnLReport key aggregating all securities.
const TotalKey = "TOTAL"

// CalculatePerformance enriches matched lots with profit, return ratio,
// holding duration and CAGR. It returns a new slice, the input lots are
// left untouched.
//
// A lot whose sell date does not strictly follow its buy date fails with
// *InvalidDurationError, and a zero buy price fails with
// *ZeroBuyPriceError: both would otherwise silently produce NaN or Inf.
func CalculatePerformance(lots []MatchedLot) ([]MatchedLot, error) {
	enriched := make([]MatchedLot, 0, len(lots))
	for _, l := range lots {
		e, err := enrich(l)
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func enrich(l MatchedLot) (MatchedLot, error) {
	if l.BuyPrice.IsZero() {
		return l, &ZeroBuyPriceError{Security: l.Security, BuyDate: l.BuyDate}
	}
	days := l.BuyDate.DaysUntil(l.SellDate)
	years := float64(days) / daysPerYear
	if years <= 0 {
		return l, &InvalidDurationError{Security: l.Security, BuyDate: l.BuyDate, SellDate: l.SellDate}
	}

	l.Profit = l.SellPrice.Sub(l.BuyPrice).Mul(l.Quantity)
	l.Return = l.Profit.AsFloat() / l.CostBasis().AsFloat()
	l.Years = years
	l.CAGR = math.Pow(l.SellPrice.AsFloat()/l.BuyPrice.AsFloat(), 1/years) - 1
	return l, nil
}

// PnLBucket accumulates profit and cost basis for one security (or for
// TotalKey), split between realized and unrealized lots.
type PnLBucket struct {
	Security         string
	RealizedProfit   Money
	UnrealizedProfit Money
	RealizedCost     Money
	UnrealizedCost   Money
}

// RealizedReturn returns realized profit over realized cost basis as a
// ratio, or 0 when nothing was realized.
func (b *PnLBucket) RealizedReturn() float64 {
	if b.RealizedCost.IsZero() {
		return 0
	}
	return b.RealizedProfit.AsFloat() / b.RealizedCost.AsFloat()
}

// UnrealizedReturn returns unrealized profit over unrealized cost basis as
// a ratio, or 0 when nothing is open.
func (b *PnLBucket) UnrealizedReturn() float64 {
	if b.UnrealizedCost.IsZero() {
		return 0
	}
	return b.UnrealizedProfit.AsFloat() / b.UnrealizedCost.AsFloat()
}

// PnLReport maps securities to their P&L buckets, plus one TotalKey bucket
// over all securities.
type PnLReport struct {
	buckets map[string]*PnLBucket
}

// Bucket returns the bucket for a security (or TotalKey), nil if the
// security is not in the report.
func (r *PnLReport) Bucket(sec string) *PnLBucket { return r.buckets[sec] }

// Total returns the bucket aggregating all securities.
func (r *PnLReport) Total() *PnLBucket { return r.buckets[TotalKey] }

// Securities returns the report's securities in sorted order, TotalKey
// excluded.
func (r *PnLReport) Securities() []string {
	secs := make([]string, 0, len(r.buckets))
	for sec := range r.buckets {
		if sec != TotalKey {
			secs = append(secs, sec)
		}
	}
	slices.Sort(secs)
	return secs
}

// AggregatePnL folds enriched matched lots into fresh per-security buckets
// and one total bucket. Buckets for every security are created up front, so
// a security whose lots all netted to zero still reports zeroes rather than
// being absent.
func AggregatePnL(lots []MatchedLot) *PnLReport {
	report := &PnLReport{buckets: map[string]*PnLBucket{
		TotalKey: {Security: TotalKey},
	}}
	for _, l := range lots {
		if _, ok := report.buckets[l.Security]; !ok {
			report.buckets[l.Security] = &PnLBucket{Security: l.Security}
		}
	}

	for _, l := range lots {
		cost := l.CostBasis()
		for _, b := range []*PnLBucket{report.buckets[l.Security], report.buckets[TotalKey]} {
			if l.Realized {
				b.RealizedProfit = b.RealizedProfit.Add(l.Profit)
				b.RealizedCost = b.RealizedCost.Add(cost)
			} else {
				b.UnrealizedProfit = b.UnrealizedProfit.Add(l.Profit)
				b.UnrealizedCost = b.UnrealizedCost.Add(cost)
			}
		}
	}
	return report
}
