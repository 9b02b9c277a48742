package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/cmdform"
	"github.com/aretw0/cmdform/internal/cli"
	"github.com/aretw0/cmdform/internal/presentation/tui"
	httpAdapter "github.com/aretw0/cmdform/pkg/adapters/http"
	"github.com/aretw0/cmdform/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP form server",
	Long: `Serves the command tree over HTTP: an index page, one form page per command
path under /form/, JSON under /api/, an OpenAPI description and Prometheus
metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var metrics *httpAdapter.Metrics
		hooks := domain.LifecycleHooks{}
		if cfg.Metrics {
			metrics = httpAdapter.NewMetrics(prometheus.NewRegistry())
			hooks = metrics.Hooks()
		}

		engine, err := newEngine(cmd, hooks)
		if err != nil {
			return err
		}

		cache, closeCache, err := cli.NewPageCache(ctx, cfg.Cache, logger)
		if err != nil {
			return err
		}
		defer func() {
			if err := closeCache(); err != nil {
				logger.Warn("Failed to close page cache", "error", err)
			}
		}()

		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, cmdform.Version)
		}

		return cli.RunServe(ctx, engine, cli.ServeOptions{
			Addr:       cfg.Addr,
			Title:      cfg.Title,
			FormAction: cfg.FormAction,
			Cache:      cache,
			Metrics:    metrics,
		}, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", ":8080", "Address to listen on")
	serveCmd.Flags().String("title", "", "Page title (defaults to the root command name)")
	serveCmd.Flags().String("form-action", "", "Base URL forms are submitted to (no submit button when empty)")
	serveCmd.Flags().Bool("metrics", true, "Expose Prometheus metrics on /metrics")
	serveCmd.Flags().String("cache", "none", "Page cache backend: none, memory or redis")
	serveCmd.Flags().Duration("cache-ttl", 5*time.Minute, "Page cache entry lifetime")
	serveCmd.Flags().String("redis-addr", "localhost:6379", "Redis address for the redis cache")
	serveCmd.Flags().Int("redis-db", 0, "Redis database for the redis cache")
}
