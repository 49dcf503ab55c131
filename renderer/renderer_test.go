package renderer

import (
	"strings"
	"testing"

	"github.com/vkant/perf"
	"github.com/vkant/perf/date"
)

func usd(v float64) perf.Money { return perf.M(v, "USD") }

func fixtureLedger(t *testing.T) *perf.Ledger {
	t.Helper()
	l, err := perf.NewLedger(
		perf.TransactionRecord{Date: date.MustParse("2021-01-01"), Action: perf.Buy, Security: "AAPL", Quantity: perf.Q(10), Price: usd(100)},
		perf.TransactionRecord{Date: date.MustParse("2022-01-01"), Action: perf.Sell, Security: "AAPL", Quantity: perf.Q(10), Price: usd(150)},
		perf.TransactionRecord{Date: date.MustParse("2021-06-01"), Action: perf.Buy, Security: "GOOG", Quantity: perf.Q(2), Price: usd(1000)},
	)
	if err != nil {
		t.Fatalf("NewLedger() error = %v", err)
	}
	return l
}

func fixtureSummary(t *testing.T) *perf.Summary {
	t.Helper()
	s, err := perf.NewSummary(fixtureLedger(t),
		map[string]perf.Money{"GOOG": usd(1100)},
		date.MustParse("2022-01-01"), perf.DefaultGuess)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}
	return s
}

func TestTransactionsMarkdown(t *testing.T) {
	got := TransactionsMarkdown(fixtureSummary(t).Lots)

	for _, want := range []string{
		"# Matched Transactions",
		"| AAPL | 2021-01-01 |",
		"| GOOG | 2021-06-01 |",
		"+$500.00",
		"+50.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("TransactionsMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestPnLMarkdown(t *testing.T) {
	got := PnLMarkdown(fixtureSummary(t).PnL)

	for _, want := range []string{
		"# Profit & Loss",
		"| AAPL |",
		"| GOOG |",
		"| **Total** |",
		"+$500.00",
		"+$200.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("PnLMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestCashflowMarkdown(t *testing.T) {
	got := CashflowMarkdown(fixtureSummary(t).Cashflow)

	for _, want := range []string{
		"# Cash Flows",
		"| 2021-01-01 | -$1,000.00 |",
		"| 2021-06-01 | -$2,000.00 |",
		"| 2022-01-01 | +$3,700.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("CashflowMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestSummaryMarkdown(t *testing.T) {
	got := SummaryMarkdown(fixtureSummary(t))

	for _, want := range []string{
		"Performance Summary on 2022-01-01",
		"2 matched lots (1 realized, 1 open)",
		"Profit & Loss",
		"AAPL",
		"Total",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("SummaryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	snapshots := []perf.Snapshot{
		{Date: date.MustParse("2021-01-01"), Cost: usd(1000), Value: usd(1050)},
		{Date: date.MustParse("2021-02-01"), Cost: usd(2000), Value: usd(2200)},
	}
	got := HistoryMarkdown(snapshots)

	for _, want := range []string{
		"Portfolio History",
		"2021-01-01",
		"2021-02-01",
		"+$200.00",
		"+10.00%",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("HistoryMarkdown() missing %q in:\n%s", want, got)
		}
	}
}
