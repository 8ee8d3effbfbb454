package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	clerk "github.com/clerk/clerk-sdk-go/v2"
	gorilllaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"impactDashboardAPI/handlers"
	"impactDashboardAPI/internal/acceptance"
	"impactDashboardAPI/internal/challenge"
	"impactDashboardAPI/internal/config"
	"impactDashboardAPI/internal/impactapi"
	"impactDashboardAPI/internal/kv"
	"impactDashboardAPI/internal/logger"
	"impactDashboardAPI/internal/notification"
	"impactDashboardAPI/internal/workers"
	"impactDashboardAPI/middleware"
	"impactDashboardAPI/services"
)

const cleanupInterval = 15 * time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer zl.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to open state store", zap.String("backend", cfg.StateBackend), zap.Error(err))
	}
	defer func() {
		zl.Info("closing state store")
		if err := store.Close(); err != nil {
			zl.Warn("state store close failed", zap.Error(err))
		}
	}()

	if purger, ok := store.(workers.Purger); ok {
		workers.StartCleanupWorker(ctx, purger, cleanupInterval, zl)
	}

	var verify middleware.TokenVerifier = middleware.ClerkVerifier
	if cfg.AuthMode == config.AuthHS256 {
		verify = middleware.HS256Verifier([]byte(cfg.JWTSecret))
	} else {
		clerk.SetKey(cfg.ClerkSecretKey)
		zl.Info("clerk initialized")
	}

	middleware.InitPrometheus()
	services.InitPrometheus()
	impactapi.InitPrometheus()

	client := impactapi.NewClient(impactapi.Config{
		BaseURL: cfg.ImpactAPIURL,
		Timeout: cfg.ImpactAPITimeout,
	}, zl)

	catalog := challenge.Default()
	devices := notification.NewDeviceRegistry(store)

	dispatcher := services.NewCompletionDispatcher(client, zl, services.DispatcherOptions{})
	defer dispatcher.Stop()

	if cfg.PushEnabled() {
		fcmService, err := notification.NewFCMService(ctx, cfg.FCMServiceAccountJSON, cfg.FCMCredentialsFile, zl)
		if err != nil {
			zl.Warn("could not initialize FCM, completion pushes disabled", zap.Error(err))
		} else {
			dispatcher.SetPushProvider(fcmService, devices)
			zl.Info("fcm push provider initialized")
		}
	}

	dashboardService := services.NewDashboardService(client, cfg.MonthlyTargetFallback, zl)
	challengeService := services.NewChallengeService(catalog, acceptance.NewStore(store, catalog), dispatcher, zl)
	foodService := services.NewFoodService(client, zl)
	deviceService := services.NewDeviceService(devices, zl)

	dashboardHandler := handlers.NewDashboardHandler(dashboardService, zl)
	challengeHandler := handlers.NewChallengeHandler(challengeService, zl)
	foodHandler := handlers.NewFoodHandler(foodService, zl)
	deviceHandler := handlers.NewDeviceHandler(deviceService, zl)
	healthHandler := handlers.NewHealthHandler(store, zl)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	go limiter.CleanupVisitors(ctx)

	r := mux.NewRouter()
	r.Use(middleware.RequestLogger(zl))
	r.Use(limiter.Middleware)
	r.Use(middleware.MonitorMiddleware)

	r.Handle("/metrics", middleware.BasicAuthMiddleware(cfg.MetricsUser, cfg.MetricsPass)(promhttp.Handler()))
	r.HandleFunc("/health", healthHandler.Health).Methods("GET")

	api := r.PathPrefix("/api/v1").Subrouter()

	// Catalog reads need no identity.
	api.HandleFunc("/challenges", challengeHandler.ListChallenges).Methods("GET")
	api.HandleFunc("/challenges/categories", challengeHandler.GetCategories).Methods("GET")
	api.HandleFunc("/challenges/total-potential", challengeHandler.GetTotalPotential).Methods("GET")
	api.HandleFunc("/challenges/{id:[0-9]+}", challengeHandler.GetChallenge).Methods("GET")

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(verify, zl))

	protected.HandleFunc("/dashboard", dashboardHandler.GetDashboard).Methods("GET")

	protected.HandleFunc("/challenges/today", challengeHandler.GetToday).Methods("GET")
	protected.HandleFunc("/challenges/today/next", challengeHandler.NextChallenge).Methods("POST")
	protected.HandleFunc("/challenges/today/previous", challengeHandler.PreviousChallenge).Methods("POST")
	protected.HandleFunc("/challenges/today/toggle", challengeHandler.ToggleAcceptance).Methods("POST")

	protected.HandleFunc("/foods", foodHandler.ListFoods).Methods("GET")
	protected.HandleFunc("/foods/categories", foodHandler.GetCategories).Methods("GET")
	protected.HandleFunc("/foods/log", foodHandler.LogFood).Methods("POST")
	protected.HandleFunc("/foods/{id:[0-9]+}", foodHandler.GetFood).Methods("GET")
	protected.HandleFunc("/foods/{id:[0-9]+}/impact", foodHandler.GetImpactPreview).Methods("GET")
	protected.HandleFunc("/activity-logs", foodHandler.GetActivityLogs).Methods("GET")

	protected.HandleFunc("/devices", deviceHandler.RegisterDevice).Methods("POST")

	corsHandler := gorilllaHandlers.CORS(
		gorilllaHandlers.AllowedOrigins([]string{"*"}),
		gorilllaHandlers.AllowedMethods([]string{"GET", "POST", "OPTIONS"}),
		gorilllaHandlers.AllowedHeaders([]string{"Content-Type", "Authorization", middleware.RequestIDHeader}),
		gorilllaHandlers.ExposedHeaders([]string{"Content-Length", middleware.RequestIDHeader}),
	)

	server := http.Server{
		Addr:         cfg.Addr(),
		Handler:      corsHandler(r),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		zl.Info("starting server", zap.String("addr", cfg.Addr()), zap.String("state_backend", cfg.StateBackend))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("error starting server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown error", zap.Error(err))
	}

	zl.Info("server shutdown complete")
}

func openStore(ctx context.Context, cfg *config.Config, zl *zap.Logger) (kv.Store, error) {
	switch cfg.StateBackend {
	case config.BackendRedis:
		store, err := kv.NewRedisStore(kv.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, err
		}
		zl.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
		return store, nil
	case config.BackendPostgres:
		pool, err := kv.NewPostgresPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		store, err := kv.NewPostgresStore(ctx, pool)
		if err != nil {
			pool.Close()
			return nil, err
		}
		zl.Info("connected to postgres")
		return store, nil
	case config.BackendMemory:
		zl.Warn("using in-memory state store, acceptance state is lost on restart")
		return kv.NewMemoryStore(time.Minute), nil
	default:
		return nil, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}
}
