package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vkant/perf"
	"github.com/vkant/perf/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	guess float64
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "full performance summary of the portfolio" }
func (*summaryCmd) Usage() string {
	return `pfc summary [-records <file>] [-prices <file>] [-d <date>] [-guess <rate>]

  Runs the whole pipeline and reports per-security P&L together with the
  portfolio money-weighted return.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.guess, "guess", perf.DefaultGuess, "Initial rate for the XIRR solver")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, on, status := loadInputs()
	if status != subcommands.ExitSuccess {
		return status
	}
	summary, err := perf.NewSummary(ledger, prices, on, c.guess)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing summary: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(summary))
	return subcommands.ExitSuccess
}
