package perf

import (
	"fmt"

	"github.com/vkant/perf/date"
)

// The computations in this package are pure: every failure below is a
// property of the input, there is nothing to retry. Callers are expected to
// branch on the error type with errors.As and decide whether to skip the
// security, log, or abort.

// InvalidRecordError reports a transaction record with a malformed or
// missing field. Line is the 1-based source line when the record came from
// a file, 0 otherwise.
type InvalidRecordError struct {
	Line   int
	Reason string
}

func (e *InvalidRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("invalid record on line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("invalid record: %s", e.Reason)
}

// OversoldPositionError reports that cumulative sells exceeded cumulative
// buys for a security at some point in time. Quantity is the excess sold
// quantity on Date.
type OversoldPositionError struct {
	Security string
	Date     date.Date
	Quantity Quantity
}

func (e *OversoldPositionError) Error() string {
	return fmt.Sprintf("oversold position in %s: on %s sells exceed buys by %s", e.Security, e.Date, e.Quantity)
}

// InvalidDurationError reports a matched lot whose holding duration is zero
// or negative, which makes the CAGR undefined.
type InvalidDurationError struct {
	Security string
	BuyDate  date.Date
	SellDate date.Date
}

func (e *InvalidDurationError) Error() string {
	return fmt.Sprintf("invalid duration for %s: bought %s, sold %s", e.Security, e.BuyDate, e.SellDate)
}

// ZeroBuyPriceError reports a matched lot with a zero buy price, which
// makes both the return ratio and the CAGR undefined.
type ZeroBuyPriceError struct {
	Security string
	BuyDate  date.Date
}

func (e *ZeroBuyPriceError) Error() string {
	return fmt.Sprintf("zero buy price for %s bought on %s", e.Security, e.BuyDate)
}

// MissingPriceError reports a security holding an open quantity with no
// entry in the valuation price map. The valuation is never defaulted.
type MissingPriceError struct {
	Security string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("no valuation price for %s with an open position", e.Security)
}

// ConvergenceError reports that the XIRR root-finder failed to find a rate.
type ConvergenceError struct {
	Guess      float64
	Iterations int
	Reason     string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("xirr did not converge after %d iterations from guess %g: %s", e.Iterations, e.Guess, e.Reason)
}
