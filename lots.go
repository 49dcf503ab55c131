package perf

import "github.com/vkant/perf/date"

// lot is the matcher's mutable working copy of a record's outstanding
// quantity. Input records are never mutated.
type lot struct {
	date      date.Date
	price     Money
	remaining Quantity
}

// MatchedLot is a reconciled (buy, sell) pair produced by FIFO matching.
// Realized is true when the sell side comes from an actual sell record, and
// false when the lot was marked to market at the valuation date.
//
// Profit, Return, Years and CAGR are zero until the lot is enriched by
// CalculatePerformance.
type MatchedLot struct {
	Security  string
	BuyDate   date.Date
	BuyPrice  Money
	SellDate  date.Date
	SellPrice Money
	Quantity  Quantity
	Realized  bool

	Profit Money
	Return float64 // profit over cost basis, as a ratio
	Years  float64 // holding duration in years, actual/365
	CAGR   float64 // compound annual growth rate, as a ratio
}

// CostBasis returns the acquisition cost of the matched quantity.
func (m MatchedLot) CostBasis() Money { return m.BuyPrice.Mul(m.Quantity) }

// MatchSecurity reconciles the records of a single security under FIFO
// accounting: every buy lot is matched against the oldest outstanding sell
// lot, splitting whichever side is larger, and any buy quantity left after
// all sells are consumed is matched against a synthetic sell at the
// valuation price, dated on.
//
// It fails with *OversoldPositionError as soon as cumulative sells exceed
// cumulative buys at any point in the record stream.
func MatchSecurity(records []TransactionRecord, valuation Money, on date.Date) ([]MatchedLot, error) {
	if err := checkOversold(records); err != nil {
		return nil, err
	}

	// Two FIFO queues, oldest first. Records are already in chronological
	// order, pop from the front takes the oldest outstanding lot.
	var buys, sells []*lot
	for _, r := range records {
		l := &lot{date: r.Date, price: r.Price, remaining: r.Quantity}
		switch r.Action {
		case Buy:
			buys = append(buys, l)
		case Sell:
			sells = append(sells, l)
		}
	}

	var matched []MatchedLot
	security := ""
	if len(records) > 0 {
		security = records[0].Security
	}

	for len(buys) > 0 {
		buy := buys[0]
		buys = buys[1:]

		if len(sells) == 0 {
			// No sell left: the whole lot is open, mark it to market.
			matched = append(matched, MatchedLot{
				Security:  security,
				BuyDate:   buy.date,
				BuyPrice:  buy.price,
				SellDate:  on,
				SellPrice: valuation,
				Quantity:  buy.remaining,
				Realized:  false,
			})
			continue
		}

		sell := sells[0]
		sells = sells[1:]

		quantity := buy.remaining.Min(sell.remaining)
		switch {
		case buy.remaining.GreaterThan(sell.remaining):
			// Partial fill of the buy lot: its remainder stays the oldest
			// outstanding buy.
			buy.remaining = buy.remaining.Sub(quantity)
			buys = append([]*lot{buy}, buys...)
		case sell.remaining.GreaterThan(buy.remaining):
			// The sell spans several buy lots: its remainder stays the
			// oldest outstanding sell.
			sell.remaining = sell.remaining.Sub(quantity)
			sells = append([]*lot{sell}, sells...)
		default:
			// Equal quantities consume both lots entirely.
		}

		matched = append(matched, MatchedLot{
			Security:  security,
			BuyDate:   buy.date,
			BuyPrice:  buy.price,
			SellDate:  sell.date,
			SellPrice: sell.price,
			Quantity:  quantity,
			Realized:  true,
		})
	}

	return matched, nil
}

// checkOversold walks the records chronologically and fails the moment the
// running position goes negative.
func checkOversold(records []TransactionRecord) error {
	var position Quantity
	for _, r := range records {
		switch r.Action {
		case Buy:
			position = position.Add(r.Quantity)
		case Sell:
			position = position.Sub(r.Quantity)
		}
		if position.IsNegative() {
			return &OversoldPositionError{
				Security: r.Security,
				Date:     r.Date,
				Quantity: position.Neg(),
			}
		}
	}
	return nil
}

// MatchLots runs FIFO matching for every security in the ledger and returns
// all matched lots, securities in sorted order. prices supplies the
// valuation price per security; it is consulted only for securities with an
// open position, and a missing entry there is a *MissingPriceError.
func (l *Ledger) MatchLots(prices map[string]Money, on date.Date) ([]MatchedLot, error) {
	var matched []MatchedLot
	for _, sec := range l.Securities() {
		valuation, ok := prices[sec]
		if !ok && l.OpenQuantity(sec).IsPositive() {
			return nil, &MissingPriceError{Security: sec}
		}
		lots, err := MatchSecurity(l.Security(sec), valuation, on)
		if err != nil {
			return nil, err
		}
		matched = append(matched, lots...)
	}
	return matched, nil
}
