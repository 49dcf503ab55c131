package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/vkant/perf/cmd"
)

// completion describes the command tree for shell completion. It runs
// before flag parsing and exits on its own when invoked by the shell.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	c := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"records":  predict.Files("*.csv"),
			"prices":   predict.Files("*.csv"),
			"currency": predict.Set{"USD", "EUR", "GBP"},
			"d":        predict.Nothing,
		},
	}
	c.Complete("pfc")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
