package perf

import (
	"errors"
	"testing"
)

func TestMatchSecurity_RoundTrip(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2022-01-01", Sell, "AAPL", 10, 150),
	}

	lots, err := MatchSecurity(records, USD(0), D("2022-06-01"))
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if len(lots) != 1 {
		t.Fatalf("got %d matched lots, want 1", len(lots))
	}

	lot := lots[0]
	if !lot.Realized {
		t.Errorf("lot.Realized = false, want true")
	}
	if !lot.Quantity.Equal(Q(10)) {
		t.Errorf("lot.Quantity = %s, want 10", lot.Quantity)
	}
	if lot.BuyDate != D("2021-01-01") || lot.SellDate != D("2022-01-01") {
		t.Errorf("lot dates = %s -> %s, want 2021-01-01 -> 2022-01-01", lot.BuyDate, lot.SellDate)
	}
	if !lot.BuyPrice.Equal(USD(100)) || !lot.SellPrice.Equal(USD(150)) {
		t.Errorf("lot prices = %s -> %s, want $100.00 -> $150.00", lot.BuyPrice, lot.SellPrice)
	}
}

func TestMatchSecurity_NoSells(t *testing.T) {
	on := D("2023-01-01")
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Buy, "AAPL", 5, 110),
	}

	lots, err := MatchSecurity(records, USD(130), on)
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("got %d matched lots, want 2", len(lots))
	}
	for i, lot := range lots {
		if lot.Realized {
			t.Errorf("lots[%d].Realized = true, want false", i)
		}
		if lot.SellDate != on {
			t.Errorf("lots[%d].SellDate = %s, want %s", i, lot.SellDate, on)
		}
		if !lot.SellPrice.Equal(USD(130)) {
			t.Errorf("lots[%d].SellPrice = %s, want $130.00", i, lot.SellPrice)
		}
	}
}

func TestMatchSecurity_PartialSplit(t *testing.T) {
	// Sell 8 consumes part of the oldest buy of 10: one realized lot of 8,
	// the remaining 2 stay outstanding and end up unrealized, before the
	// untouched second buy of 5.
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-02-01", Buy, "AAPL", 5, 110),
		rec("2021-06-01", Sell, "AAPL", 8, 120),
	}

	lots, err := MatchSecurity(records, USD(140), D("2022-01-01"))
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if len(lots) != 3 {
		t.Fatalf("got %d matched lots, want 3", len(lots))
	}

	if !lots[0].Realized || !lots[0].Quantity.Equal(Q(8)) || lots[0].BuyDate != D("2021-01-01") {
		t.Errorf("lots[0] = %+v, want realized 8 from the 2021-01-01 buy", lots[0])
	}
	if lots[1].Realized || !lots[1].Quantity.Equal(Q(2)) || lots[1].BuyDate != D("2021-01-01") {
		t.Errorf("lots[1] = %+v, want unrealized 2 left from the 2021-01-01 buy", lots[1])
	}
	if lots[2].Realized || !lots[2].Quantity.Equal(Q(5)) || lots[2].BuyDate != D("2021-02-01") {
		t.Errorf("lots[2] = %+v, want unrealized 5 from the 2021-02-01 buy", lots[2])
	}
}

func TestMatchSecurity_SellSpansSeveralBuys(t *testing.T) {
	// A single sell of 12 consumes the first buy entirely and part of the
	// second: the sell's remainder is requeued, not lost.
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-02-01", Buy, "AAPL", 5, 110),
		rec("2021-06-01", Sell, "AAPL", 12, 120),
	}

	lots, err := MatchSecurity(records, USD(140), D("2022-01-01"))
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if len(lots) != 3 {
		t.Fatalf("got %d matched lots, want 3", len(lots))
	}

	if !lots[0].Realized || !lots[0].Quantity.Equal(Q(10)) {
		t.Errorf("lots[0] = %+v, want realized 10", lots[0])
	}
	if !lots[1].Realized || !lots[1].Quantity.Equal(Q(2)) || lots[1].BuyDate != D("2021-02-01") {
		t.Errorf("lots[1] = %+v, want realized 2 from the 2021-02-01 buy", lots[1])
	}
	if lots[2].Realized || !lots[2].Quantity.Equal(Q(3)) {
		t.Errorf("lots[2] = %+v, want unrealized 3", lots[2])
	}
}

func TestMatchSecurity_EqualQuantitiesNoRequeue(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Sell, "AAPL", 10, 120),
		rec("2021-07-01", Buy, "AAPL", 4, 105),
		rec("2021-08-01", Sell, "AAPL", 4, 125),
	}

	lots, err := MatchSecurity(records, USD(0), D("2022-01-01"))
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("got %d matched lots, want 2", len(lots))
	}
	for i, lot := range lots {
		if !lot.Realized {
			t.Errorf("lots[%d].Realized = false, want true", i)
		}
	}
}

func TestMatchSecurity_Oversold(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Sell, "AAPL", 15, 120),
	}

	_, err := MatchSecurity(records, USD(0), D("2022-01-01"))
	var oversold *OversoldPositionError
	if !errors.As(err, &oversold) {
		t.Fatalf("MatchSecurity() error = %v, want *OversoldPositionError", err)
	}
	if oversold.Security != "AAPL" {
		t.Errorf("oversold.Security = %q, want %q", oversold.Security, "AAPL")
	}
	if !oversold.Quantity.Equal(Q(5)) {
		t.Errorf("oversold.Quantity = %s, want 5", oversold.Quantity)
	}
	if oversold.Date != D("2021-06-01") {
		t.Errorf("oversold.Date = %s, want 2021-06-01", oversold.Date)
	}
}

func TestMatchSecurity_SellBeforeBuyIsOversold(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Sell, "AAPL", 5, 120),
		rec("2021-06-01", Buy, "AAPL", 10, 100),
	}
	// NewLedger keeps chronological order, here the sell comes first.
	ledger := mustLedger(records...)

	_, err := MatchSecurity(ledger.Security("AAPL"), USD(0), D("2022-01-01"))
	var oversold *OversoldPositionError
	if !errors.As(err, &oversold) {
		t.Fatalf("MatchSecurity() error = %v, want *OversoldPositionError", err)
	}
}

func TestMatchSecurity_Conservation(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-02-01", Buy, "AAPL", 7, 105),
		rec("2021-03-01", Buy, "AAPL", 3, 95),
		rec("2021-04-01", Sell, "AAPL", 6, 110),
		rec("2021-05-01", Sell, "AAPL", 9, 115),
	}

	lots, err := MatchSecurity(records, USD(120), D("2022-01-01"))
	if err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}

	var matchedTotal, realizedTotal Quantity
	for _, lot := range lots {
		matchedTotal = matchedTotal.Add(lot.Quantity)
		if lot.Realized {
			realizedTotal = realizedTotal.Add(lot.Quantity)
		}
	}

	// All bought quantity is accounted for, realized or unrealized.
	if !matchedTotal.Equal(Q(20)) {
		t.Errorf("total matched quantity = %s, want 20 (total bought)", matchedTotal)
	}
	// Realized matched quantity equals historically sold quantity.
	if !realizedTotal.Equal(Q(15)) {
		t.Errorf("realized matched quantity = %s, want 15 (total sold)", realizedTotal)
	}
}

func TestMatchSecurity_InputRecordsNotMutated(t *testing.T) {
	records := []TransactionRecord{
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Sell, "AAPL", 8, 120),
	}

	if _, err := MatchSecurity(records, USD(140), D("2022-01-01")); err != nil {
		t.Fatalf("MatchSecurity() error = %v", err)
	}
	if !records[0].Quantity.Equal(Q(10)) || !records[1].Quantity.Equal(Q(8)) {
		t.Errorf("input records mutated: %s, %s", records[0].Quantity, records[1].Quantity)
	}
}

func TestLedger_MatchLots(t *testing.T) {
	ledger := mustLedger(
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Sell, "AAPL", 10, 150),
		rec("2021-02-01", Buy, "GOOG", 4, 1000),
	)
	prices := map[string]Money{"GOOG": USD(1200)}

	lots, err := ledger.MatchLots(prices, D("2022-01-01"))
	if err != nil {
		t.Fatalf("MatchLots() error = %v", err)
	}
	if len(lots) != 2 {
		t.Fatalf("got %d matched lots, want 2", len(lots))
	}
	// Securities in sorted order: AAPL then GOOG.
	if lots[0].Security != "AAPL" || !lots[0].Realized {
		t.Errorf("lots[0] = %+v, want realized AAPL", lots[0])
	}
	if lots[1].Security != "GOOG" || lots[1].Realized {
		t.Errorf("lots[1] = %+v, want unrealized GOOG", lots[1])
	}
}

func TestLedger_MatchLots_MissingPrice(t *testing.T) {
	ledger := mustLedger(rec("2021-01-01", Buy, "AAPL", 10, 100))

	_, err := ledger.MatchLots(map[string]Money{}, D("2022-01-01"))
	var missing *MissingPriceError
	if !errors.As(err, &missing) {
		t.Fatalf("MatchLots() error = %v, want *MissingPriceError", err)
	}
	if missing.Security != "AAPL" {
		t.Errorf("missing.Security = %q, want %q", missing.Security, "AAPL")
	}
}

func TestLedger_MatchLots_ClosedPositionNeedsNoPrice(t *testing.T) {
	ledger := mustLedger(
		rec("2021-01-01", Buy, "AAPL", 10, 100),
		rec("2021-06-01", Sell, "AAPL", 10, 150),
	)

	if _, err := ledger.MatchLots(map[string]Money{}, D("2022-01-01")); err != nil {
		t.Fatalf("MatchLots() error = %v, want nil for a fully closed position", err)
	}
}
