package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/etnz/vendas/date"
	"github.com/etnz/vendas/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests and exits when the process was
// started by the shell to complete a command line. It returns otherwise.
func Complete(name string) {
	completionCommand().Complete(name)
}

// completionCommand describes the vendas command line for the shell.
func completionCommand() *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = flagPredictor(f.Name)
	})
	for _, c := range Commands {
		fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
		c.SetFlags(fs)
		sub := &complete.Command{Flags: map[string]complete.Predictor{}}
		fs.VisitAll(func(f *flag.Flag) {
			sub.Flags[f.Name] = flagPredictor(f.Name)
		})
		switch c.Name() {
		case "theme":
			sub.Args = predict.Set{"toggle", "light", "dark"}
		case "topic":
			sub.Args = complete.PredictFunc(predictTopics)
		}
		root.Sub[c.Name()] = sub
	}
	return root
}

// flagPredictor returns the predictor of the flags shared by the commands.
func flagPredictor(name string) complete.Predictor {
	switch name {
	case "d":
		return complete.PredictFunc(predictDays)
	case "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "f":
		return predict.Set{"txt", "xlsx", "pdf"}
	case "o", "data-dir":
		return predict.Dirs("*")
	case "env":
		return predict.Files("*")
	case "store":
		return predict.Set{"dir", "sqlite", "memory"}
	case "y", "v":
		return predict.Nothing
	default:
		return predict.Something
	}
}

// predictDays suggests the known days in the DD-MM-YYYY form, which needs no quoting.
func predictDays(prefix string) []string {
	app, err := OpenApp()
	if err != nil {
		return nil
	}
	defer app.Close()

	var days []string
	for _, d := range app.Ledger.Days() {
		if s := d.Format(date.FileFormat); strings.HasPrefix(s, prefix) {
			days = append(days, s)
		}
	}
	return days
}

func predictTopics(prefix string) []string {
	all, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	var topics []string
	for _, t := range all {
		if strings.HasPrefix(t, prefix) {
			topics = append(topics, t)
		}
	}
	return topics
}

type completionCmd struct{}

func (*completionCmd) Name() string     { return "completion" }
func (*completionCmd) Synopsis() string { return "print the shell completion setup" }
func (*completionCmd) Usage() string {
	return `vendas completion

  Prints the line to add to your shell startup file to enable completion.
  Alternatively run 'COMP_INSTALL=1 vendas' to install it.
`
}

func (c *completionCmd) SetFlags(f *flag.FlagSet) {}

func (c *completionCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	bin, err := os.Executable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error locating the vendas binary: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("complete -C %s %s\n", bin, filepath.Base(bin))
	return subcommands.ExitSuccess
}
