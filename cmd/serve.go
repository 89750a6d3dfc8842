package cmd

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iksnae/activity-recap/internal"
	"github.com/iksnae/activity-recap/internal/server"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var (
	serveAddr    string
	serveNoCache bool
)

// serveCmd runs the HTTP recap service
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve recaps over HTTP",
	Long: `Run the HTTP recap service.

Endpoints:
  POST /v1/recaps                  Generate a recap from posted events
  GET  /v1/sessions/{id}/recap     Recap of a stored session (?profile=)
  GET  /healthz                    Liveness
  GET  /metrics                    Prometheus metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		internal.SetLogOutput(cmd.ErrOrStderr())
		defer internal.SetLogOutput(os.Stderr)

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		storage, closeStorage, err := openStorage()
		if err != nil {
			return err
		}
		defer closeStorage()

		var cache *internal.CacheManager
		if !serveNoCache {
			cache = internal.NewCacheManager(cfg.CacheDir)
		}

		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)

		mux := http.NewServeMux()
		server.NewHandler(storage, cache, reg).RegisterRoutes(mux)

		srv := server.NewServer(server.ServerConfig{
			Address:      addr,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  60 * time.Second,
		}, mux)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Run(ctx, srv, cfg.Server.ShutdownTimeout)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides server.addr)")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "Disable the recap cache")
}
