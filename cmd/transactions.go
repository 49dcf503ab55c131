package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/vkant/perf"
	"github.com/vkant/perf/date"
	"github.com/vkant/perf/renderer"
)

// transactionsCmd holds the flags for the 'transactions' subcommand.
type transactionsCmd struct {
	outputFile string
}

func (*transactionsCmd) Name() string     { return "transactions" }
func (*transactionsCmd) Synopsis() string { return "per-lot performance of matched buy/sell pairs" }
func (*transactionsCmd) Usage() string {
	return `pfc transactions [-records <file>] [-prices <file>] [-d <date>] [-o <file>]

  Matches buys against sells oldest-first and reports each resulting lot
  with its profit, simple return and annualized return. Open positions are
  valued at the -prices file prices on the -d date.
`
}

func (c *transactionsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputFile, "o", "", "Write the matched lots as CSV to this file instead of printing a report")
}

func (c *transactionsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, prices, on, status := loadInputs()
	if status != subcommands.ExitSuccess {
		return status
	}
	lots, err := matchAndEnrich(ledger, prices, on)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error matching lots: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.outputFile != "" {
		out, err := os.Create(c.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		if err := perf.ExportMatchedLots(out, lots); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file %q: %v\n", c.outputFile, err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.TransactionsMarkdown(lots))
	return subcommands.ExitSuccess
}

// loadInputs reads the records and prices files and parses the valuation
// date from the global flags. Shared by the reporting subcommands.
func loadInputs() (*perf.Ledger, map[string]perf.Money, date.Date, subcommands.ExitStatus) {
	var zero date.Date
	ledger, err := LoadLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading records: %v\n", err)
		return nil, nil, zero, subcommands.ExitFailure
	}
	prices, err := LoadPrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return nil, nil, zero, subcommands.ExitFailure
	}
	on, err := ValuationDate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing valuation date: %v\n", err)
		return nil, nil, zero, subcommands.ExitUsageError
	}
	return ledger, prices, on, subcommands.ExitSuccess
}

func matchAndEnrich(ledger *perf.Ledger, prices map[string]perf.Money, on date.Date) ([]perf.MatchedLot, error) {
	lots, err := ledger.MatchLots(prices, on)
	if err != nil {
		return nil, err
	}
	return perf.CalculatePerformance(lots)
}
