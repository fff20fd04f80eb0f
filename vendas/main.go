package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/vendas/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
