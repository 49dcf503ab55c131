package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vkant/perf"
)

// xirrCmd holds the flags for the 'xirr' subcommand.
type xirrCmd struct {
	guess float64
}

func (*xirrCmd) Name() string     { return "xirr" }
func (*xirrCmd) Synopsis() string { return "money-weighted annualized return of the whole portfolio" }
func (*xirrCmd) Usage() string {
	return `pfc xirr [-records <file>] [-prices <file>] [-d <date>] [-guess <rate>]

  Solves for the annualized rate at which the net present value of all
  cash flows is zero, valuing open positions on the -d date.
`
}

func (c *xirrCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.guess, "guess", perf.DefaultGuess, "Initial rate for the solver")
}

func (c *xirrCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, on, status := loadInputs()
	if status != subcommands.ExitSuccess {
		return status
	}
	series, err := perf.BuildCashflow(ledger, prices, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building cash flows: %v\n", err)
		return subcommands.ExitFailure
	}
	rate, err := perf.XIRR(series, c.guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error solving for the rate: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("XIRR on %s: %s\n", on, perf.Percent(100*rate).SignedString())
	return subcommands.ExitSuccess
}
