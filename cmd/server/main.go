package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pulsecheck/internal/cache"
	"pulsecheck/internal/config"
	"pulsecheck/internal/insight"
	"pulsecheck/internal/repository"
	"pulsecheck/internal/service"
	"pulsecheck/internal/transport/rest"
	"pulsecheck/internal/transport/ws"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	cfg := config.Load()

	lexicon, err := insight.LoadLexicon(cfg.LexiconPath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.LexiconPath).Msg("failed to load lexicon")
	}
	if cfg.LexiconPath != "" {
		logger.Info().Str("path", cfg.LexiconPath).Msg("lexicon overrides loaded")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	logger.Info().Str("db", cfg.MongoDatabase).Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		logger.Fatal().Err(err).Msg("failed to ping Redis")
	}
	logger.Info().Str("addr", cfg.RedisAddr).Msg("connected to Redis")

	// Repositories
	surveyRepo := repository.NewSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	sessionRepo := repository.NewSessionRepo(db)
	reportRepo := repository.NewReportRepo(db)

	// Caches
	insightCache := cache.NewInsightCache(rdb)

	// Services
	authSvc := service.NewAuthService(cfg)
	surveySvc := service.NewSurveyService(surveyRepo)
	insightSvc := service.NewInsightService(surveyRepo, responseRepo, sessionRepo, reportRepo, insightCache, lexicon, logger)

	// WebSocket hub (implements service.Broadcaster)
	wsHub := ws.NewHub(logger)
	insightSvc.SetBroadcaster(wsHub)
	wsHandler := ws.NewHandler(wsHub, authSvc, logger)

	router := rest.NewRouter(&rest.Container{
		AuthService:    authSvc,
		SurveyService:  surveySvc,
		InsightService: insightSvc,
		WSHandler:      wsHandler,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}
	logger.Info().Msg("server exited")
}
