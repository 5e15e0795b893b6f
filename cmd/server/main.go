package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/analytics"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/assistant"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/auth"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/config"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/corpus"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/llm"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/logger"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/middleware"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/reviews"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/store"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/websearch"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer log.Sync()
	ctx := context.Background()

	// ── PostgreSQL ────────────────────────────────────────────
	pgPool, err := pgxpool.New(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatal("postgres connect", zap.Error(err))
	}
	defer pgPool.Close()
	pgStore := store.NewPostgresStore(pgPool)
	if err := pgStore.Migrate(ctx); err != nil {
		log.Fatal("postgres migrate", zap.Error(err))
	}
	if cfg.AdminPassword != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("hash admin password", zap.Error(err))
		}
		if err := pgStore.EnsureAdmin(ctx, cfg.AdminUsername, string(hashed)); err != nil {
			log.Fatal("bootstrap admin", zap.Error(err))
		}
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("mongo connect", zap.Error(err))
	}
	defer mongoClient.Disconnect(ctx)
	corpusStore := store.NewCorpusStore(mongoClient.Database(cfg.MongoDB))

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatal("redis connect", zap.Error(err))
	}
	defer rdb.Close()
	sessions := auth.NewSessionStore(rdb)
	answerCache := assistant.NewAnswerCache(rdb)

	// ── MinIO ────────────────────────────────────────────────
	snapshots, err := store.NewSnapshotStore(
		ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
		cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
	)
	if err != nil {
		log.Fatal("minio connect", zap.Error(err))
	}

	// ── Corpus index ─────────────────────────────────────────
	// Mongo is the corpus of record; the MinIO snapshot and the local
	// file cover fresh deployments where ingestion hasn't run yet.
	index := corpus.NewIndex(corpus.Chain{
		corpusStore,
		snapshots,
		corpus.FileProvider{Path: cfg.CorpusFile},
	}, log)
	if err := index.Reload(ctx); err != nil {
		log.Warn("initial corpus load failed, starting with empty corpus", zap.Error(err))
	}

	// ── Gateways ─────────────────────────────────────────────
	webGateway := websearch.NewGateway(cfg.SerperURL, cfg.SerperAPIKey, log)
	reviewGateway := reviews.NewGateway(cfg.GoogleAPIKey, log)

	primary := llm.NewClient("openai", cfg.OpenAIURL, cfg.OpenAIAPIKey, cfg.OpenAIModel, 0.2)
	fallback := llm.NewClient("openrouter", cfg.OpenRouterURL, cfg.OpenRouterAPIKey, cfg.OpenRouterModel, 0.3)
	generator := llm.NewFallbackGenerator(primary, fallback, log)

	// ── Handlers ─────────────────────────────────────────────
	pipeline := assistant.NewPipeline(index, webGateway, reviewGateway, generator, log)
	chatHandler := assistant.NewHandler(pipeline, answerCache, pgStore, log)
	adminHandler := auth.NewHandler(pgStore, sessions, index, log)
	analyticsHandler := analytics.NewHandler(pgStore, log)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	// The chat widget is embeddable anywhere.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Chat routes (public)
	r.Route("/api/chat", func(r chi.Router) {
		r.Post("/ask", chatHandler.Ask)
	})

	// Admin routes
	r.Route("/api/admin", func(r chi.Router) {
		r.Post("/login", adminHandler.Login)
		r.Post("/logout", adminHandler.Logout)
		r.With(middleware.RequireAdmin(sessions)).Post("/reload", adminHandler.Reload)
	})

	// Analytics routes (protected)
	r.Route("/api/analytics", func(r chi.Router) {
		r.Use(middleware.RequireAdmin(sessions))
		r.Get("/questions", analyticsHandler.Questions)
		r.Get("/intents", analyticsHandler.Intents)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
	}

	go func() {
		log.Info("backend listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
