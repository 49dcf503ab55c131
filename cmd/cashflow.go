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

type cashflowCmd struct{}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "dated external cash flows of the ledger" }
func (*cashflowCmd) Usage() string {
	return `pfc cashflow [-records <file>] [-prices <file>] [-d <date>]

  Builds the dated cash-flow series: buys as outflows, sells as inflows,
  and a final inflow valuing the open positions on the -d date.
`
}

func (*cashflowCmd) SetFlags(f *flag.FlagSet) {}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, on, status := loadInputs()
	if status != subcommands.ExitSuccess {
		return status
	}
	series, err := perf.BuildCashflow(ledger, prices, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building cash flows: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.CashflowMarkdown(series))
	return subcommands.ExitSuccess
}
