package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/opendap-go/varselect/internal/config"
	verrors "github.com/opendap-go/varselect/internal/errors"
	"github.com/opendap-go/varselect/internal/fileserver"
	"github.com/opendap-go/varselect/internal/logging"
	"github.com/opendap-go/varselect/pkg/middleware"
)

func serveCmd() *cobra.Command {
	var (
		configFile string
		root       string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory of data files",
		Long: `Serve a directory tree over HTTP with HTML indexes and XML catalogs.

Configuration is read from the file given with --config, then from
VARSELECT_* environment variables (VARSELECT_SERVER_PORT,
VARSELECT_FILE_FILTER_REGEX, ...); flags override both.

Examples:
  varselect serve --root /data
  varselect serve --config server.yaml
  varselect serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			if root != "" {
				cfg.Root = root
			}
			if addr != "" {
				host, port, err := splitAddr(addr)
				if err != nil {
					return err
				}
				cfg.Server.Host, cfg.Server.Port = host, port
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cmd.OutOrStdout(), cfg)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Config file (YAML)")
	cmd.Flags().StringVarP(&root, "root", "r", "", "Directory to serve (default from config)")
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address host:port (default from config)")

	return cmd
}

func splitAddr(addr string) (string, int, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err == nil {
		var port int
		if port, err = net.LookupPort("tcp", portStr); err == nil {
			return host, port, nil
		}
	}
	return "", 0, verrors.Newf(verrors.CategoryCLI, "invalid --addr %q", addr).
		WithSuggestion("Use host:port, for example 127.0.0.1:8001.").
		Wrap(err)
}

// newHandler builds the HTTP handler for cfg: the file server behind the
// request id, access log, tracing and metrics middleware, plus the
// Prometheus endpoint when enabled.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	filter, err := cfg.Filter()
	if err != nil {
		return nil, err
	}

	files, err := fileserver.New(fileserver.Config{
		Root:       cfg.Root,
		Catalog:    cfg.Catalog,
		Filter:     filter,
		Restrict:   cfg.Restrict(),
		Extensions: cfg.Extensions,
	}, fileserver.WithLogger(logger), fileserver.WithVersion(version))
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(logger))
	r.Use(middleware.Tracing())

	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics := middleware.NewMetrics(middleware.WithRegistry(reg))
		r.Use(metrics.Handler)
		r.Handle(cfg.Metrics.Path, promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	r.Mount("/", files)
	return r, nil
}

func runServe(ctx context.Context, out io.Writer, cfg *config.Config) error {
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	handler, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	printBanner(out)
	success(out, "Serving %s", cfg.Root)
	info(out, "Listening on http://%s", srv.Addr)
	if cfg.Metrics.Enabled {
		info(out, "Metrics at %s", cfg.Metrics.Path)
	}
	fmt.Fprintln(out)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return verrors.FromError(err, "E401").WithDetailf("listening on %s", srv.Addr)
		}
		return nil
	case <-ctx.Done():
	}

	fmt.Fprintln(out, "\n  Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("server stopped")
	return nil
}
