package perf

import (
	"fmt"
	"slices"
	"strings"

	"github.com/vkant/perf/date"
)

// Action is the side of a transaction record.
type Action string

const (
	Buy  Action = "Buy"
	Sell Action = "Sell"
)

// ParseAction parses an action string, case-insensitively.
func ParseAction(s string) (Action, error) {
	switch strings.ToLower(s) {
	case "buy":
		return Buy, nil
	case "sell":
		return Sell, nil
	default:
		return "", fmt.Errorf("unknown action %q, want %q or %q", s, Buy, Sell)
	}
}

// TransactionRecord is a single historical trade: on Date, Quantity units
// of Security were bought or sold at Price per unit. Records are read-only
// inputs, the matcher works on its own copies.
type TransactionRecord struct {
	Date     date.Date
	Action   Action
	Security string
	Quantity Quantity
	Price    Money
}

// Amount returns the total traded amount, Quantity times Price.
func (r TransactionRecord) Amount() Money { return r.Price.Mul(r.Quantity) }

// Validate checks that the record is well formed.
func (r TransactionRecord) Validate() error {
	if r.Date.IsZero() {
		return &InvalidRecordError{Reason: "date is missing"}
	}
	if r.Action != Buy && r.Action != Sell {
		return &InvalidRecordError{Reason: fmt.Sprintf("unknown action %q", r.Action)}
	}
	if r.Security == "" {
		return &InvalidRecordError{Reason: "security is missing"}
	}
	if !r.Quantity.IsPositive() {
		return &InvalidRecordError{Reason: fmt.Sprintf("quantity must be positive, got %s", r.Quantity)}
	}
	if !r.Price.IsPositive() {
		return &InvalidRecordError{Reason: fmt.Sprintf("price must be positive, got %s", r.Price)}
	}
	return nil
}

// Ledger is an ordered collection of transaction records, sorted
// chronologically. Same-day records keep their insertion order.
type Ledger struct {
	records []TransactionRecord
}

// NewLedger validates the given records and returns a Ledger holding them
// in chronological order.
func NewLedger(records ...TransactionRecord) (*Ledger, error) {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return nil, err
		}
	}
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b TransactionRecord) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
	return &Ledger{records: sorted}, nil
}

// Len returns the number of records in the ledger.
func (l *Ledger) Len() int { return len(l.records) }

// Records returns the ledger's records in chronological order.
func (l *Ledger) Records() []TransactionRecord { return slices.Clone(l.records) }

// Security returns the chronological records for one security.
func (l *Ledger) Security(sec string) []TransactionRecord {
	var recs []TransactionRecord
	for _, r := range l.records {
		if r.Security == sec {
			recs = append(recs, r)
		}
	}
	return recs
}

// Securities returns the sorted set of securities traded in the ledger.
func (l *Ledger) Securities() []string {
	var secs []string
	for _, r := range l.records {
		if !slices.Contains(secs, r.Security) {
			secs = append(secs, r.Security)
		}
	}
	slices.Sort(secs)
	return secs
}

// OpenQuantity returns the net held quantity of a security: total bought
// minus total sold.
func (l *Ledger) OpenQuantity(sec string) Quantity {
	var open Quantity
	for _, r := range l.records {
		if r.Security != sec {
			continue
		}
		switch r.Action {
		case Buy:
			open = open.Add(r.Quantity)
		case Sell:
			open = open.Sub(r.Quantity)
		}
	}
	return open
}
