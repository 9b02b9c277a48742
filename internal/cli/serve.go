package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	httpAdapter "github.com/aretw0/cmdform/pkg/adapters/http"
	"github.com/aretw0/cmdform/pkg/ports"
)

const shutdownTimeout = 5 * time.Second

// ServeOptions configures RunServe.
type ServeOptions struct {
	Addr       string
	Title      string
	FormAction string
	Cache      ports.PageCache
	Metrics    *httpAdapter.Metrics
}

// RunServe serves the engine over HTTP until ctx is cancelled, then shuts the
// server down gracefully.
func RunServe(ctx context.Context, engine ports.FormEngine, opts ServeOptions, logger *slog.Logger) error {
	handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if opts.Title != "" {
		handlerOpts = append(handlerOpts, httpAdapter.WithTitle(opts.Title))
	}
	if opts.FormAction != "" {
		handlerOpts = append(handlerOpts, httpAdapter.WithFormAction(opts.FormAction))
	}
	if opts.Cache != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithCache(opts.Cache))
	}
	if opts.Metrics != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(opts.Metrics))
	}

	srv := &http.Server{
		Addr:              opts.Addr,
		Handler:           httpAdapter.NewHandler(engine, handlerOpts...),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to listen for errors coming from the listener.
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("Starting cmdform server", "addr", srv.Addr, "root", engine.Root().Name)
		serverErrors <- srv.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case <-ctx.Done():
		logger.Info("Start shutdown")

		// Give outstanding requests a deadline for completion.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
			return fmt.Errorf("graceful shutdown did not complete in %v: %w", shutdownTimeout, err)
		}
		logger.Info("Server stopped gracefully")
		return nil
	}
}
