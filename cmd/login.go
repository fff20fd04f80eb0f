package cmd

import (
	"context"
	"crypto/subtle"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
	"golang.org/x/crypto/bcrypt"
)

// checkPasscode compares given with the configured passcode, which is either
// plain text or a bcrypt hash.
func checkPasscode(given, want string) bool {
	if strings.HasPrefix(want, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(want), []byte(given)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(given), []byte(want)) == 1
}

type loginCmd struct {
	passcode string
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "unlock the ledger commands" }
func (*loginCmd) Usage() string {
	return `vendas login -p <passcode>

  Opens a session when VENDAS_PASSCODE is set. Without a configured passcode
  every command is already unlocked. The passcode may be a bcrypt hash.
`
}

func (c *loginCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.passcode, "p", "", "The passcode.")
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, false)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	want := app.Config.Passcode
	if want == "" {
		fmt.Fprintln(app.Out, "No passcode configured: nothing to unlock.")
		return subcommands.ExitSuccess
	}
	if !checkPasscode(c.passcode, want) {
		fmt.Fprintln(app.Err, "Error: wrong passcode.")
		return subcommands.ExitFailure
	}
	if err := app.Prefs.SetSession(true); err != nil {
		return fail(app.Err, err)
	}
	fmt.Fprintln(app.Out, "✅ Logged in.")
	return subcommands.ExitSuccess
}

type logoutCmd struct{}

func (*logoutCmd) Name() string     { return "logout" }
func (*logoutCmd) Synopsis() string { return "close the session" }
func (*logoutCmd) Usage() string {
	return `vendas logout

  Closes the session opened by login.
`
}

func (c *logoutCmd) SetFlags(f *flag.FlagSet) {}

func (c *logoutCmd) Execute(_ context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, false)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	if err := app.Prefs.SetSession(false); err != nil {
		return fail(app.Err, err)
	}
	fmt.Fprintln(app.Out, "Logged out.")
	return subcommands.ExitSuccess
}
