package perf

import "math"

// DefaultGuess is the initial rate used by XIRR when the caller has no
// better starting point.
const DefaultGuess = 0.10

const (
	maxIterations = 100
	tolerance     = 1e-9
)

// NPV discounts the series to its earliest date at the given annual rate,
// counting days on an actual/365 basis. The earliest flow contributes
// undiscounted.
func NPV(series *CashflowSeries, rate float64) float64 {
	dates := series.Dates()
	if len(dates) == 0 {
		return 0
	}
	first := dates[0]
	var npv float64
	for _, d := range dates {
		t := float64(first.DaysUntil(d)) / daysPerYear
		npv += series.Amount(d).AsFloat() * math.Pow(1+rate, -t)
	}
	return npv
}

// XIRR finds the annualized rate at which the series' net present value is
// zero, by Newton-Raphson iteration from guess. It fails with
// *ConvergenceError when no finite solution can exist (fewer than two
// flows, or all flows of one sign) and when the iteration escapes past the
// pole at rate -1, loses its derivative, or exhausts its budget.
func XIRR(series *CashflowSeries, guess float64) (float64, error) {
	dates := series.Dates()
	if len(dates) < 2 {
		return 0, &ConvergenceError{Guess: guess, Reason: "need at least two dated cash flows"}
	}

	positive, negative := false, false
	for _, d := range dates {
		amount := series.Amount(d)
		positive = positive || amount.IsPositive()
		negative = negative || amount.IsNegative()
	}
	if !positive || !negative {
		return 0, &ConvergenceError{Guess: guess, Reason: "cash flows must include an inflow and an outflow"}
	}

	first := dates[0]
	rate := guess
	for i := 0; i < maxIterations; i++ {
		if rate <= -1 {
			return 0, &ConvergenceError{Guess: guess, Iterations: i, Reason: "iteration crossed the pole at rate -1"}
		}

		// f(r) = sum cf*(1+r)^(-t), f'(r) = sum cf*(-t)*(1+r)^(-t-1)
		var f, df float64
		for _, d := range dates {
			t := float64(first.DaysUntil(d)) / daysPerYear
			cf := series.Amount(d).AsFloat()
			f += cf * math.Pow(1+rate, -t)
			df += cf * -t * math.Pow(1+rate, -t-1)
		}

		if math.Abs(df) < math.SmallestNonzeroFloat64 || math.IsNaN(df) || math.IsInf(df, 0) {
			return 0, &ConvergenceError{Guess: guess, Iterations: i, Reason: "derivative vanished"}
		}

		next := rate - f/df
		if math.IsNaN(next) || math.IsInf(next, 0) {
			return 0, &ConvergenceError{Guess: guess, Iterations: i, Reason: "iteration diverged"}
		}
		if math.Abs(next-rate) < tolerance {
			return next, nil
		}
		rate = next
	}
	return 0, &ConvergenceError{Guess: guess, Iterations: maxIterations, Reason: "iteration budget exhausted"}
}
