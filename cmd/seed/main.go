package main

import (
	"context"
	"log"
	"time"

	"rjgems-backend/internal/config"
	"rjgems-backend/internal/database"
	"rjgems-backend/internal/logger"
)

func main() {
	cfg := config.LoadConfig()

	zl, err := logger.New(cfg.AppEnv)
	if err != nil {
		log.Fatal("failed to build logger:", err)
	}
	defer zl.Sync()

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		zl.Fatal("failed to connect to MongoDB", "error", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	collection := client.Database(cfg.MongoDB).Collection("products")
	inserted, err := database.Seed(ctx, collection)
	if err != nil {
		zl.Fatal("seeding failed", "error", err)
	}

	zl.Info("✅ catalog seeded", "products", inserted)
}
