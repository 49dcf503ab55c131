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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	snapshotsDir string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "portfolio value over time from broker snapshots" }
func (*historyCmd) Usage() string {
	return `pfc history [-snapshots <dir>] [-currency <code>]

  Reads dated snapshot folders (YYYY-MM-DD) of broker CSV exports and
  reports the total cost basis and value per date. Several exports on the
  same date are summed.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.snapshotsDir, "snapshots", "snapshots", "Root folder holding the dated snapshot folders")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	snapshots, err := perf.CollectSnapshots(c.snapshotsDir, *defaultCurrency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading snapshots: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(snapshots) == 0 {
		fmt.Fprintf(os.Stderr, "No dated snapshot folders found under %q.\n", c.snapshotsDir)
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HistoryMarkdown(snapshots))
	return subcommands.ExitSuccess
}
