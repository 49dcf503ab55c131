// Package cmd implements the CLI application to report investment performance.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/vkant/perf"
	"github.com/vkant/perf/date"
)

// Commands lists every subcommand. A main package registers them all and
// executes the user-selected one.
var Commands = []subcommands.Command{
	&transactionsCmd{},
	&pnlCmd{},
	&cashflowCmd{},
	&xirrCmd{},
	&summaryCmd{},
	&historyCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var recordsFile = flag.String("records", "transactions.csv", "Path to the transaction records CSV file")
var pricesFile = flag.String("prices", "", "Path to the current prices CSV file (optional when all positions are closed)")
var defaultCurrency = flag.String("currency", "USD", "ISO 4217 currency code for amounts in the CSV files")
var valuationFlag = flag.String("d", date.Today().String(), "Valuation date for open positions")
var Verbose = flag.Bool("v", false, "Enable verbose output")

// LoadLedger reads and validates the transaction records file.
func LoadLedger() (*perf.Ledger, error) {
	f, err := os.Open(*recordsFile)
	if err != nil {
		return nil, fmt.Errorf("opening records file %q: %w", *recordsFile, err)
	}
	defer f.Close()
	ledger, err := perf.ImportRecords(f, perf.DefaultColumns(), *defaultCurrency)
	if err != nil {
		return nil, err
	}
	if *Verbose {
		log.Printf("loaded %d records from %s", ledger.Len(), *recordsFile)
	}
	return ledger, nil
}

// LoadPrices reads the current prices file. Without a -prices flag it
// returns an empty map, which is enough for fully closed ledgers.
func LoadPrices() (map[string]perf.Money, error) {
	if *pricesFile == "" {
		return map[string]perf.Money{}, nil
	}
	f, err := os.Open(*pricesFile)
	if err != nil {
		return nil, fmt.Errorf("opening prices file %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return perf.ImportPrices(f, perf.PriceColumns{}, *defaultCurrency)
}

// ValuationDate parses the -d flag.
func ValuationDate() (date.Date, error) {
	return date.Parse(*valuationFlag)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be built.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
