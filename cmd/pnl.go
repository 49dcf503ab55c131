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

type pnlCmd struct{}

func (*pnlCmd) Name() string     { return "pnl" }
func (*pnlCmd) Synopsis() string { return "realized and unrealized profit per security" }
func (*pnlCmd) Usage() string {
	return `pfc pnl [-records <file>] [-prices <file>] [-d <date>]

  Aggregates the matched lots per security into realized and unrealized
  profit and cost basis, with a portfolio-wide total.
`
}

func (*pnlCmd) SetFlags(f *flag.FlagSet) {}

func (c *pnlCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, on, status := loadInputs()
	if status != subcommands.ExitSuccess {
		return status
	}
	lots, err := matchAndEnrich(ledger, prices, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error matching lots: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.PnLMarkdown(perf.AggregatePnL(lots)))
	return subcommands.ExitSuccess
}
