package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/vendas"
)

// printMarkdown renders md for the terminal in the user's theme.
func (a *App) printMarkdown(md string) {
	if a.Plain {
		fmt.Fprint(a.Out, md)
		return
	}
	style := "light"
	if a.Prefs.Theme() == vendas.Dark {
		style = "dark"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(100))
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Fprint(a.Out, md)
		return
	}
	fmt.Fprint(a.Out, out)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// promptConfirmer reads the answer from in. Anything but yes is a no.
type promptConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

func newPromptConfirmer(in io.Reader, out io.Writer) *promptConfirmer {
	return &promptConfirmer{in: bufio.NewReader(in), out: out}
}

func (p *promptConfirmer) Confirm(question string) (bool, error) {
	fmt.Fprintf(p.out, "%s [s/N] ", question)
	answer, err := p.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "s", "sim", "y", "yes":
		return true, nil
	}
	return false, nil
}

// confirmer returns a Confirmer that always agrees when yes is set.
func (a *App) confirmer(yes bool) Confirmer {
	if yes {
		return alwaysYes{}
	}
	return newPromptConfirmer(a.In, a.Err)
}

type alwaysYes struct{}

func (alwaysYes) Confirm(string) (bool, error) { return true, nil }
