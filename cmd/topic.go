package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/vendas/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

Show documentation for the given topics, or the list of topics.
Use '*' to print them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}

	// topic does not need the ledger, only the theme when one can be read.
	app, release, err := session(args, false)
	if err != nil {
		fmt.Fprint(os.Stdout, doc)
		return subcommands.ExitSuccess
	}
	defer release()
	app.printMarkdown(doc)

	return subcommands.ExitSuccess
}
