package perf

import "github.com/vkant/perf/date"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// D is a helper for tests to create a date from its string form
func D(s string) date.Date { return date.MustParse(s) }

// rec is a helper for tests to create a transaction record
func rec(day string, action Action, sec string, quantity, price float64) TransactionRecord {
	return TransactionRecord{
		Date:     D(day),
		Action:   action,
		Security: sec,
		Quantity: Q(quantity),
		Price:    USD(price),
	}
}

// mustLedger is a helper for tests to create a ledger from records
func mustLedger(records ...TransactionRecord) *Ledger {
	l, err := NewLedger(records...)
	if err != nil {
		panic(err.Error())
	}
	return l
}
