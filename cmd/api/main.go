package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"rjgems-backend/internal/assistant"
	"rjgems-backend/internal/cache"
	"rjgems-backend/internal/config"
	"rjgems-backend/internal/database"
	"rjgems-backend/internal/handlers"
	"rjgems-backend/internal/logger"
	"rjgems-backend/internal/recommend"
	"rjgems-backend/internal/repository"
	"rjgems-backend/internal/routes"
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
	db := client.Database(cfg.MongoDB)

	productRepo := repository.NewProductRepository(db.Collection("products"))
	cartRepo := repository.NewCartRepository(db.Collection("carts"))

	strategy := recommend.NewStrategy(cfg.RecStrategy, productRepo, zl)
	zl.Info("✅ recommendation strategy selected", "strategy", cfg.RecStrategy)

	generator, err := assistant.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel, zl)
	if err != nil {
		zl.Fatal("failed to build Gemini client", "error", err)
	}

	responseCache := cache.New(5 * time.Minute)

	productHandler := handlers.NewProductHandler(productRepo, strategy, responseCache, zl)
	cartHandler := handlers.NewCartHandler(cartRepo, productRepo, zl)
	chatHandler := handlers.NewChatHandler(productRepo, generator, zl)

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	routes.RegisterRoutes(router, productHandler, cartHandler, chatHandler)

	zl.Info("🚀 Server running", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", "error", err)
	}
}
