package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"finance-history/internal/cache"
	"finance-history/internal/clients/backend"
	"finance-history/internal/config"
	"finance-history/internal/database"
	"finance-history/internal/handlers"
	"finance-history/internal/middleware"
	"finance-history/internal/models"
	"finance-history/internal/repositories"
	"finance-history/internal/server"
	"finance-history/internal/services"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const shutdownTimeout = 15 * time.Second

// demoUserEmail owns the sample history seeded in development
const demoUserEmail = "demo@finance-history.local"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	setupLogger(cfg)

	db, err := database.Initialize(cfg)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	metrics := services.NewPrometheusMetrics()
	tokenService := services.NewTokenService(&cfg.JWT)

	transactionRepo := repositories.NewTransactionRepository(db.DB)
	preferenceRepo := repositories.NewPreferenceRepository(db.DB)

	source, breaker := newTransactionSource(cfg, transactionRepo, metrics)

	resolver := services.NewDateRangeResolver(time.Now)
	pipeline := services.NewFilterPipeline(
		resolver,
		source,
		services.NewTransactionFilter(),
		services.NewTransactionAggregator(),
		metrics,
	)
	preferences := services.NewPreferenceService(preferenceRepo, models.DateRangeToken(cfg.History.DefaultRange), metrics)
	sessions := cache.NewLRUCache[uuid.UUID, models.SelectionSession](cfg.History.SelectionCapacity, cfg.History.SelectionTTL)
	selections := services.NewSelectionService(sessions, time.Now, metrics)

	h := server.Handlers{
		History:    handlers.NewHistoryHandler(pipeline, preferences, resolver),
		Preference: handlers.NewPreferenceHandler(preferences),
		Selection:  handlers.NewSelectionHandler(selections),
		Health:     handlers.NewHealthCheckHandler(db, breaker),
	}

	if cfg.IsDevelopment() {
		generator := services.NewTransactionGenerator()
		h.Dev = handlers.NewDevHandler(transactionRepo, generator)

		if cfg.History.SeedSampleData && cfg.History.Source == config.HistorySourceDatabase {
			seedDemoHistory(transactionRepo, generator, tokenService, cfg.History.SeedTransactionCount)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rateLimiter := middleware.NewRateLimiter(cfg.Security.RateLimitPerSecond)
	go rateLimiter.Run(ctx)

	e := server.NewRouter(h, tokenService, metrics, server.Options{
		CORSAllowOrigins: cfg.Server.CORSAllowOrigins,
		RateLimiter:      rateLimiter,
	})
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	go func() {
		slog.Info("starting server",
			"address", addr,
			"environment", cfg.Server.Environment,
			"history_source", cfg.History.Source)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server stopped unexpectedly", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
}

func setupLogger(cfg *config.Config) {
	level := slog.LevelInfo
	if cfg.IsDevelopment() {
		level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}

// newTransactionSource picks where history is read from. The breaker is nil for the local database.
func newTransactionSource(
	cfg *config.Config,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics services.MetricsRecorderInterface,
) (services.TransactionSource, services.CircuitBreakerInterface) {
	if cfg.History.Source != config.HistorySourceRemote {
		return services.NewRepositoryTransactionSource(transactionRepo), nil
	}

	breaker := services.NewCircuitBreaker(services.CircuitBreakerConfig{
		Name:            "finance_backend",
		MaxFailures:     cfg.Backend.CircuitBreakerMaxFailures,
		ResetTimeout:    cfg.Backend.CircuitBreakerResetTimeout,
		HalfOpenMaxSucc: cfg.Backend.CircuitBreakerHalfOpenSucc,
	}, metrics)

	slog.Info("reading history from the finance backend", "base_url", cfg.Backend.BaseURL)
	return backend.NewClient(cfg.Backend, breaker, metrics), breaker
}

// seedDemoHistory fills an empty demo account with a year of history and logs a token for it
func seedDemoHistory(
	repo repositories.TransactionRepositoryInterface,
	generator services.TransactionGeneratorInterface,
	tokenService services.TokenServiceInterface,
	count int,
) {
	userID := models.StableID("user:" + demoUserEmail)

	existing, err := repo.CountByUser(userID)
	if err != nil {
		slog.Warn("skipping demo seed", "error", err)
		return
	}

	if existing == 0 {
		end := time.Now().UTC()
		start := end.AddDate(-1, 0, 0)

		generated := generator.GenerateHistory(userID, start, end, count)
		generated = append(generated, generator.GenerateMonthlyIncome(userID, start, end)...)

		batch := make([]models.Transaction, 0, len(generated))
		for _, tx := range generated {
			batch = append(batch, *tx)
		}
		if err := repo.CreateBatch(batch); err != nil {
			slog.Warn("failed to seed demo history", "error", err)
			return
		}
		slog.Info("seeded demo history", "user_id", userID, "transactions", len(batch))
	}

	token, expiresAt, err := tokenService.GenerateAccessToken(userID, demoUserEmail)
	if err != nil {
		slog.Info("demo history available; no signing key to mint a token", "user_id", userID)
		return
	}
	slog.Info("demo access token", "user_id", userID, "expires_at", expiresAt, "token", token)
}
