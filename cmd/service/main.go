package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "tracker/internal/app"
	"tracker/internal/handlers/rest/deliveries_get"
	"tracker/internal/handlers/rest/deliveries_watch_get"
	"tracker/internal/handlers/rest/delivery_delete_stage_post"
	"tracker/internal/handlers/rest/delivery_events_get"
	"tracker/internal/handlers/rest/delivery_post"
	"tracker/internal/handlers/rest/delivery_put"
	"tracker/internal/handlers/rest/delivery_status_stage_post"
	"tracker/internal/handlers/rest/healthcheck_head"
	"tracker/internal/handlers/rest/login_post"
	"tracker/internal/handlers/rest/logout_post"
	"tracker/internal/handlers/rest/ping_get"
	"tracker/internal/handlers/rest/staff_delete_stage_post"
	"tracker/internal/handlers/rest/staff_get"
	"tracker/internal/handlers/rest/staff_post"
	"tracker/internal/handlers/rest/staff_put"
	"tracker/internal/handlers/rest/staff_watch_get"
	"tracker/internal/handlers/rest/stage_cancel_post"
	"tracker/internal/handlers/rest/stage_confirm_post"
	"tracker/internal/pkg/config"
	"tracker/internal/pkg/dotenv"
	metrics_system "tracker/internal/pkg/metrics"
	authmw "tracker/internal/pkg/middlewares/auth"
	"tracker/internal/pkg/middlewares/graceful_shutdown"
	"tracker/internal/pkg/middlewares/metrics"
	"tracker/internal/pkg/middlewares/rate_limiter"
	"tracker/internal/pkg/middlewares/timeout"
	"tracker/internal/pkg/postgres"
	"tracker/pkg/logger"
	"tracker/pkg/logger/zap_adapter"
	"tracker/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting delivery-tracker application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // Получаю предупреждения от линтера в местах де наследуюсь от context.Background(), хотя это часть gracefull shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		// WriteTimeout оборвал бы /deliveries/watch и /staff/watch,
		// живущие до отписки клиента.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()
	// основной http сервер

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}
	// pprof http сервер

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // if !cfg.Server.PprofEnabled будет nil по умолчанию, и данный кейс будет проигнорирован
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")
	router.Handle("/login", login_post.New(log, app.ServiceAuth)).Methods("POST")

	requireAuth := authmw.Middleware(log, app.ServiceAuth)
	withTimeout := timeout.Middleware(cfg.RequestTimeout)

	// апи с таймаутом на запрос
	api := func(h http.Handler) http.Handler {
		return withTimeout(requireAuth(h))
	}

	router.Handle("/logout", api(logout_post.New(log, app.ServiceAuth))).Methods("POST")

	router.Handle("/deliveries", api(deliveries_get.New(log, app.DeliveryFeed, app.StaffFeed))).Methods("GET")
	router.Handle("/delivery", api(delivery_post.New(log, app.ServiceDelivery))).Methods("POST")
	router.Handle("/delivery/{id}", api(delivery_put.New(log, app.ServiceDelivery))).Methods("PUT")
	router.Handle("/delivery/{id}/events", api(delivery_events_get.New(log, app.ServiceAudit))).Methods("GET")
	router.Handle("/delivery/{id}/status/stage", api(delivery_status_stage_post.New(log, app.ServiceStaging))).Methods("POST")
	router.Handle("/delivery/{id}/delete/stage", api(delivery_delete_stage_post.New(log, app.ServiceStaging))).Methods("POST")

	router.Handle("/staff", api(staff_get.New(log, app.StaffFeed))).Methods("GET")
	router.Handle("/staff", api(staff_post.New(log, app.ServiceStaff, app.ServiceAuth))).Methods("POST")
	router.Handle("/staff/{id}", api(staff_put.New(log, app.ServiceStaff, app.ServiceAuth))).Methods("PUT")
	router.Handle("/staff/{id}/delete/stage", api(staff_delete_stage_post.New(log, app.ServiceStaging, app.ServiceAuth))).Methods("POST")

	router.Handle("/stage/{id}/confirm", api(stage_confirm_post.New(log, app.ServiceStaging))).Methods("POST")
	router.Handle("/stage/{id}/cancel", api(stage_cancel_post.New(log, app.ServiceStaging))).Methods("POST")

	// SSE-ленты живут до отписки клиента, таймаут запроса им не ставится
	router.Handle("/deliveries/watch", requireAuth(deliveries_watch_get.New(log, app.DeliveryFeed, app.StaffFeed))).Methods("GET")
	router.Handle("/staff/watch", requireAuth(staff_watch_get.New(log, app.StaffFeed))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
