package internal

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"focustimer/internal/controllers"
	"focustimer/internal/providers"
	"focustimer/internal/structures"
	"focustimer/internal/timer"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	WebServer *http.Server

	conf   *structures.Config
	logger providers.Logger
	timer  *timer.Timer
	ticker *timer.Ticker
}

func NewApp(healthController *controllers.HealthController, t *timer.Timer, conf *structures.Config, logger providers.Logger, router providers.RouterProviderInterface, metrics providers.MetricsProviderInterface) *App {
	// Inner mux: API routes
	apiMux := http.NewServeMux()
	for _, route := range router.GetRoutes() {
		apiMux.Handle(route.Pattern(), route.Handler)
	}

	// Wrap API routes with metrics middleware
	instrumentedAPI := providers.MetricsMiddleware(metrics, apiMux)

	// Outer mux: infrastructure + instrumented API
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthController.Health)
	if conf.Metrics.Enabled {
		mux.Handle("/metrics", promhttp.Handler())
	}
	mux.Handle("/", instrumentedAPI)

	return &App{
		WebServer: &http.Server{
			Addr:         conf.WebServer.Host + ":" + strconv.Itoa(conf.WebServer.Port),
			Handler:      mux,
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		conf:   conf,
		logger: logger,
		timer:  t,
		ticker: timer.NewTicker(t),
	}
}

// Run serves until SIGINT or SIGTERM. An unfinished timer session is stopped
// and saved before returning; the store itself is flushed by the injector's
// cleanup.
func (a *App) Run() error {
	a.logger.Infof(providers.TypeApp, "Starting %s", a.conf.AppName)
	a.ticker.Start()

	serverErr := make(chan error, 1)
	go func() {
		a.logger.Infof(providers.TypeApp, "Listening HTTP clients on %s:%d", a.conf.WebServer.Host, a.conf.WebServer.Port)
		if err := a.WebServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-stop:
		a.logger.Infof(providers.TypeApp, "Shutdown signal received")
	case err := <-serverErr:
		a.ticker.Stop()
		a.saveRunningSession()
		return fmt.Errorf("server error: %w", err)
	}

	return a.shutdown()
}

// shutdown drains HTTP clients, then saves the running session whether or
// not the drain finished in time.
func (a *App) shutdown() error {
	a.ticker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	shutdownErr := a.WebServer.Shutdown(ctx)
	if shutdownErr != nil {
		a.logger.Errorf(providers.TypeApp, "HTTP shutdown: %s", shutdownErr)
	}

	a.saveRunningSession()

	if shutdownErr != nil {
		return shutdownErr
	}
	a.logger.Infof(providers.TypeApp, "gracefully stopped")
	return nil
}

// saveRunningSession uses its own context; the timer bounds the write.
func (a *App) saveRunningSession() {
	outcome, err := a.timer.StopAndSave(context.Background())
	if err != nil {
		a.logger.Errorf(providers.TypeApp, "Saving running session on shutdown failed: %s", err)
		return
	}
	if outcome != timer.OutcomeIgnored {
		a.logger.Infof(providers.TypeApp, "Running session on shutdown: %s", outcome)
	}
}

// Close releases the log files. Call it after the injector cleanup has
// flushed the store, so the flush is still logged.
func (a *App) Close() {
	a.logger.Close()
}
