// FloWise Cycle Tracker API
//
// REST API for period tracking, cycle predictions and AI insights.
//
//	@title			FloWise Cycle Tracker API
//	@version		1.0
//	@description	Store questionnaire profiles and cycle logs, predict periods, fertile windows and phases, and generate AI insights.
//
//	@BasePath	/v1
//
//	@tag.name			users
//	@tag.description	User management endpoints
//
//	@tag.name			store
//	@tag.description	Snapshot and reset of everything stored for a user
//
//	@tag.name			profile
//	@tag.description	Questionnaire profile endpoints
//
//	@tag.name			entries
//	@tag.description	Append-only cycle and symptom logs
//
//	@tag.name			predictions
//	@tag.description	Calendar, day and dashboard predictions
//
//	@tag.name			insights
//	@tag.description	AI-generated cycle insights
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flowise/cycle-tracker/internal/api"
	"github.com/flowise/cycle-tracker/internal/api/handler"
	"github.com/flowise/cycle-tracker/internal/cache"
	"github.com/flowise/cycle-tracker/internal/config"
	"github.com/flowise/cycle-tracker/internal/langfuse"
	"github.com/flowise/cycle-tracker/internal/llm"
	"github.com/flowise/cycle-tracker/internal/logger"
	"github.com/flowise/cycle-tracker/internal/repository"
	"github.com/flowise/cycle-tracker/internal/seed"
	"github.com/flowise/cycle-tracker/internal/service"
	"github.com/flowise/cycle-tracker/internal/telemetry"
)

const shutdownTimeout = 15 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal("server exited", "error", err)
	}
}

func run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	// Tracing first so every later component picks up the global provider.
	shutdownTracer, err := telemetry.InitTracer(ctx, cfg, telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		if err := shutdownTracer(context.Background()); err != nil {
			log.Warn("tracer shutdown failed", "error", err)
		}
	}()

	// Connect to database
	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		return err
	}

	// Auto-migrate database schema
	if err := repository.Migrate(db); err != nil {
		return err
	}
	log.Info("database migration completed")

	if cfg.Seed {
		log.Info("seeding database with sample data (SEED=true)")
		if err := seed.Run(db, time.Now(), log); err != nil {
			return err
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	entryRepo := repository.NewEntryRepository(db)
	insightRepo := repository.NewInsightRepository(db)
	storeRepo := repository.NewStoreRepository(db)

	calendarCache := newCache(ctx, cfg, log)
	defer func() { _ = calendarCache.Close() }()

	langfuseClient := langfuse.NewClient(langfuse.Config{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		Environment: cfg.LangfuseEnv,
	}, log)
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := langfuseClient.Flush(flushCtx); err != nil {
			log.Warn("langfuse flush failed", "error", err)
		}
	}()

	systemPrompt, err := langfuse.LoadPrompt(ctx, langfuse.PromptLoaderConfig{
		BaseURL:     cfg.LangfuseBaseURL,
		PublicKey:   cfg.LangfusePublicKey,
		SecretKey:   cfg.LangfuseSecretKey,
		PromptName:  cfg.InsightsPromptName,
		PromptLabel: cfg.InsightsPromptLabel,
		SavePath:    cfg.InsightsPromptPath,
	}, log)
	if err != nil {
		log.Warn("insights prompt unavailable, using built-in prompt", "path", cfg.InsightsPromptPath, "error", err)
		systemPrompt = ""
	}

	// The OpenAI client is optional; without it the insights endpoint reports 503.
	var insightsLLM llm.InsightsLLM
	if client := llm.NewOpenAIClient(cfg.OpenAIAPIKey, cfg.OpenAIInsightsModel); client != nil {
		insightsLLM = client
	} else {
		log.Warn("OpenAI API key not configured, insights endpoint will be unavailable")
	}

	// Initialize services
	userService := service.NewUserService(userRepo)
	storeService := service.NewStoreService(userRepo, profileRepo, entryRepo, insightRepo, storeRepo)
	predictionService := service.NewPredictionService(userRepo, profileRepo, entryRepo, calendarCache, cfg.CacheTTL, log)
	insightsService := service.NewInsightsService(userRepo, storeService, insightRepo, insightsLLM, langfuseClient, systemPrompt, log)

	// Setup router
	router := api.NewRouter(api.Handlers{
		User:       handler.NewUserHandler(userService),
		Store:      handler.NewStoreHandler(storeService),
		Profile:    handler.NewProfileHandler(storeService),
		Entry:      handler.NewEntryHandler(storeService),
		Prediction: handler.NewPredictionHandler(predictionService),
		Insights:   handler.NewInsightsHandler(insightsService),
	}, log, cfg.CORSAllowedOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", "addr", srv.Addr, "env", cfg.AppEnv)
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

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// newCache prefers Redis when configured and falls back to process memory.
func newCache(ctx context.Context, cfg *config.Config, log *logger.Logger) cache.Cache {
	if cfg.RedisAddr == "" {
		return cache.NewMemory()
	}
	c, err := cache.NewRedis(ctx, cfg.RedisAddr, log)
	if err != nil {
		log.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		return cache.NewMemory()
	}
	log.Info("connected to redis", "addr", cfg.RedisAddr)
	return c
}
