package cmd

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"github.com/etnz/vendas/logging"
	"github.com/etnz/vendas/server"
	"github.com/google/subcommands"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the ledger over HTTP" }
func (*serveCmd) Usage() string {
	return `vendas serve [-addr <host:port>]

  Serves the JSON API until interrupted. See 'vendas topic api'.
`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.addr, "addr", "", "Listen address. Overrides VENDAS_ADDR.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	app, release, err := session(args, true)
	if err != nil {
		return fail(stderr, err)
	}
	defer release()

	cfg := app.Config.Server
	addr := cfg.Addr
	if c.addr != "" {
		addr = c.addr
	}
	opts := []server.Option{
		server.WithLogger(logging.L),
		server.WithRequestTimeout(cfg.RequestTimeout),
	}
	if cfg.Metrics {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts = append(opts, server.WithMetrics(reg))
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(app.Ledger, app.Prefs, app.Currency, opts...)
	if err := srv.ListenAndServe(ctx, addr, cfg.ShutdownTimeout); err != nil {
		return fail(app.Err, err)
	}
	return subcommands.ExitSuccess
}
