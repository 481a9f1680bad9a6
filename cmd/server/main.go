package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/dailypick/internal/config"
	"github.com/mmynk/dailypick/internal/metrics"
	"github.com/mmynk/dailypick/internal/middleware"
	"github.com/mmynk/dailypick/internal/service"
	"github.com/mmynk/dailypick/internal/storage/sqlite"
	"github.com/mmynk/dailypick/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := getEnv("CONFIG_PATH", config.DefaultPath)
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	slog.Info("Config loaded", "path", configPath, "rosters", len(cfg.Rosters))

	// Rosters stored by pickctl are merged in after the file's own
	if cfg.DBPath != "" {
		if err := loadStoredRosters(cfg); err != nil {
			return err
		}
	}

	if err := cfg.Validate(time.Now()); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	registry, err := service.NewRegistry(cfg.RosterModels(), cfg.DefaultRosterName())
	if err != nil {
		return err
	}
	slog.Info("Rosters registered", "default", registry.DefaultName(), "timezone", loc.String())

	m := metrics.New()
	handler := newHandler(registry, loc, m)

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr: addr,
		// Wrap with h2c for HTTP/2 without TLS (required for Connect)
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "timeout", shutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

func loadStoredRosters(cfg *config.Config) error {
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initialize storage: %w", err)
	}
	defer store.Close()

	stored, err := store.ListRosters(context.Background())
	if err != nil {
		return fmt.Errorf("load stored rosters: %w", err)
	}
	cfg.AddRosters(stored)
	slog.Info("Storage initialized", "database", cfg.DBPath, "stored_rosters", len(stored))
	return nil
}

// newHandler builds the full HTTP handler: Connect services, /metrics and
// /healthz behind request-id, logging and CORS middleware.
func newHandler(registry *service.Registry, loc *time.Location, m *metrics.Metrics) http.Handler {
	interceptors := connect.WithInterceptors(middleware.LoggingInterceptor(m))

	mux := http.NewServeMux()

	selectionSvc := service.NewSelectionService(registry, loc, service.WithMetrics(m))
	selectionPath, selectionHandler := service.NewSelectionServiceHandler(selectionSvc, interceptors)
	mux.Handle(selectionPath, selectionHandler)

	rosterPath, rosterHandler := service.NewRosterServiceHandler(service.NewRosterService(registry), interceptors)
	mux.Handle(rosterPath, rosterHandler)

	mux.Handle("/metrics", m.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	})

	return middleware.RequestID(middleware.Logging(middleware.CORS(mux)))
}
