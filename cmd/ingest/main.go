// Ingestion CLI: reads the curated data files, writes the corpus
// snapshot to disk, and pushes it to MongoDB and MinIO when configured.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/config"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/ingest"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/logger"
	"github.com/tanyasbaking/bakery-assistant/backend/internal/store"
)

func main() {
	godotenv.Load()
	cfg := config.Load()
	log := logger.New(cfg.LogLevel, "console")
	defer log.Sync()

	dataDir := flag.String("data", "data", "directory holding the curated data files")
	localOnly := flag.Bool("local-only", false, "write the snapshot file only, skip Mongo and MinIO")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	docs, err := ingest.Run(*dataDir)
	if err != nil {
		log.Fatal("ingest failed", zap.Error(err))
	}
	log.Info("ingested documents", zap.Int("count", len(docs)))

	snapshot, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		log.Fatal("marshal snapshot", zap.Error(err))
	}
	outPath := filepath.Join(*dataDir, "ingested_docs.json")
	if err := os.WriteFile(outPath, snapshot, 0o644); err != nil {
		log.Fatal("write snapshot", zap.Error(err))
	}
	log.Info("snapshot written", zap.String("path", outPath))

	if *localOnly {
		return
	}

	if cfg.MongoURI != "" {
		mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
		if err != nil {
			log.Fatal("mongo connect", zap.Error(err))
		}
		defer mongoClient.Disconnect(ctx)

		corpusStore := store.NewCorpusStore(mongoClient.Database(cfg.MongoDB))
		if err := corpusStore.Replace(ctx, docs); err != nil {
			log.Fatal("mongo corpus replace", zap.Error(err))
		}
		log.Info("corpus stored in mongo", zap.String("db", cfg.MongoDB))
	}

	if cfg.MinioAccessKey != "" {
		snapshots, err := store.NewSnapshotStore(
			ctx, cfg.MinioEndpoint, cfg.MinioAccessKey,
			cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL,
		)
		if err != nil {
			log.Fatal("minio connect", zap.Error(err))
		}
		if err := snapshots.Upload(ctx, snapshot); err != nil {
			log.Fatal("minio snapshot upload", zap.Error(err))
		}
		log.Info("snapshot uploaded to minio", zap.String("bucket", cfg.MinioBucket))
	}
}
