// Package cmd implements the CLI application to record and report daily sales.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/etnz/vendas"
	"github.com/etnz/vendas/config"
	"github.com/etnz/vendas/logging"
	"github.com/etnz/vendas/store"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	envFile     = flag.String("env", ".env", "Path to an optional .env file with VENDAS_* variables.")
	dataDir     = flag.String("data-dir", "", "Directory holding the sales data. Overrides VENDAS_DATA_DIR.")
	storeDriver = flag.String("store", "", "Storage backend (dir, sqlite, memory). Overrides VENDAS_STORE.")
	verbose     = flag.Bool("v", false, "Log debug messages to stderr.")
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, groups[cmd.Name()])
	}
}

// Commands lists every vendas subcommand.
var Commands = []subcommands.Command{
	&addCmd{},
	&salesCmd{},
	&daysCmd{},
	&resetCmd{},

	&summaryCmd{},
	&chartCmd{},
	&exportCmd{},
	&inspectCmd{},

	&loginCmd{},
	&logoutCmd{},
	&themeCmd{},

	&serveCmd{},
	&topicCmd{},
	&completionCmd{},
}

var groups = map[string]string{
	"add": "sales", "sales": "sales", "days": "sales", "reset": "sales",
	"summary": "reports", "chart": "reports", "export": "reports", "inspect": "reports",
	"login": "session", "logout": "session", "theme": "session",
	"serve": "tools", "topic": "tools", "completion": "tools",
}

// errLocked is returned when a passcode is configured and no session is active.
var errLocked = errors.New("locked: run 'vendas login -p <passcode>' first")

// App holds what a command needs to run.
type App struct {
	Config   *config.Config
	KV       store.KV
	Ledger   *vendas.Ledger
	Prefs    *vendas.Preferences
	Currency vendas.Currency

	In  io.Reader
	Out io.Writer
	Err io.Writer
	// Plain prints markdown as is instead of rendering it for the terminal.
	Plain bool
}

// OpenApp loads the configuration and opens the ledger it points to.
func OpenApp() (*App, error) {
	cfg, err := config.Load(*envFile)
	if err != nil {
		return nil, err
	}
	if *dataDir != "" {
		cfg.Store.DataDir = *dataDir
	}
	if *storeDriver != "" {
		cfg.Store.Driver = *storeDriver
	}
	level := cfg.Log.Level
	if *verbose {
		level = "debug"
	}
	if err := logging.Setup(level, cfg.Log.Format, os.Stderr); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	kv, err := store.Open(cfg.Store.Driver, cfg.Store.DataDir, cfg.Store.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("could not open %s store: %w", cfg.Store.Driver, err)
	}
	clock := vendas.ClockFunc(func() time.Time { return time.Now().In(loc) })
	app, err := NewApp(cfg, kv, clock)
	if err != nil {
		kv.Close()
		return nil, err
	}
	return app, nil
}

// NewApp opens the ledger and preferences stored in kv. Today becomes a
// known day.
func NewApp(cfg *config.Config, kv store.KV, clock vendas.Clock) (*App, error) {
	ledger, err := vendas.Open(kv, vendas.WithClock(clock), vendas.WithLogger(logging.L))
	if err != nil {
		return nil, err
	}
	if err := ledger.EnsureDay(ledger.Today()); err != nil {
		return nil, err
	}
	prefs, err := vendas.LoadPreferences(kv)
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		KV:       kv,
		Ledger:   ledger,
		Prefs:    prefs,
		Currency: vendas.NewCurrency(cfg.Currency),
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
	}, nil
}

// Close releases the store.
func (a *App) Close() error { return a.KV.Close() }

// Locked reports whether the passcode gate refuses to run ledger commands.
func (a *App) Locked() bool { return a.Config.Passcode != "" && !a.Prefs.SessionActive() }

// session returns the App passed by the caller, or opens one. Gated commands
// fail with errLocked while the passcode gate is closed.
//
// release must be called once the command is done.
func session(args []interface{}, gated bool) (app *App, release func(), err error) {
	for _, arg := range args {
		if a, ok := arg.(*App); ok {
			app, release = a, func() {}
		}
	}
	if app == nil {
		if app, err = OpenApp(); err != nil {
			return nil, nil, err
		}
		release = func() {
			if err := app.Close(); err != nil {
				logging.L.WithError(err).Warn("could not close store")
			}
		}
	}
	if gated && app.Locked() {
		release()
		return nil, nil, errLocked
	}
	return app, release, nil
}

// fail prints err and maps it to an exit status.
func fail(w io.Writer, err error) subcommands.ExitStatus {
	fmt.Fprintf(w, "Error: %v\n", err)
	var verr *vendas.ValidationError
	if errors.As(err, &verr) {
		for _, p := range verr.Problems {
			fmt.Fprintf(w, "  - %s\n", p)
		}
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// stderr is where errors go before an App exists.
var stderr io.Writer = os.Stderr
