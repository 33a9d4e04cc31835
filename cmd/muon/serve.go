package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sortiz4/muon/internal/config"
	"github.com/sortiz4/muon/pkg/markup"
	"github.com/sortiz4/muon/pkg/server"
	"github.com/spf13/cobra"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the example page over HTTP",
		Long: `Serve the example page over HTTP.

The page is rendered on every request. When metrics are enabled in
muon.json the Prometheus endpoint is mounted at metrics.path.

Examples:
  muon serve
  muon serve --addr=127.0.0.1:3000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			srv := newSiteServer(cfg, flags.verbose, cmd)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			success(cmd.OutOrStdout(), "Serving on http://%s", displayAddr(cfg.Server.Addr))
			return srv.ListenAndServe(ctx, cfg.Server.Addr, cfg.ReadTimeout())
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from muon.json)")

	return cmd
}

// newSiteServer wires the engine, metrics registry and pages for serve.
func newSiteServer(cfg *config.Config, verbose bool, cmd *cobra.Command) *server.Server {
	logger := newLogger(cmd.ErrOrStderr(), verbose)

	var (
		reg     *prometheus.Registry
		metrics http.Handler
	)
	if cfg.Metrics.Enabled {
		reg = prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}

	var registerer prometheus.Registerer
	if reg != nil {
		registerer = reg
	}
	engine := newEngine(cfg, logger, registerer)

	srv := server.New(server.Config{
		Engine:      engine,
		Logger:      logger,
		Metrics:     metrics,
		MetricsPath: cfg.Metrics.Path,
	})
	srv.Page("/", func(r *http.Request) markup.Element {
		doc := cfg.Document
		if t := r.URL.Query().Get("title"); t != "" {
			doc.Title = t
		}
		return examplePage(doc)
	})
	return srv
}

func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
