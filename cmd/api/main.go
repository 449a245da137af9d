package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/amalynlocs/salon-api/internal/config"
	dbpkg "github.com/amalynlocs/salon-api/internal/db"
	"github.com/amalynlocs/salon-api/internal/kv"
	"github.com/amalynlocs/salon-api/internal/middleware"
	"github.com/amalynlocs/salon-api/internal/routes"
	"github.com/amalynlocs/salon-api/internal/storage"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()

	redisClient := dbpkg.NewRedis(cfg)
	store := kv.NewRedisStore(redisClient)
	blobs := storage.NewS3Store(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := blobs.EnsureBuckets(ctx, cfg.Buckets()); err != nil {
		log.Printf("error initializing storage: %v", err)
	}

	if err := dbpkg.SeedAdmin(ctx, store, cfg); err != nil {
		log.Fatalf("failed to seed admin account: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, store, blobs, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
