package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"ocv-hull/internal/api/handlers"
	"ocv-hull/internal/api/middleware"
	"ocv-hull/internal/config"
	"ocv-hull/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Optional server-side defaults (e_li_bulk, resolutions) from a config
	// file. Requests can still override per call.
	var base config.PipelineConfig
	if cfgPath := os.Getenv("CONFIG_PATH"); cfgPath != "" {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", cfgPath, err)
		}
		base = cfg.Pipeline
		log.Printf("Loaded pipeline defaults from %s", cfgPath)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Stored results expire; RESULT_TTL accepts Go durations like "30m".
	ttl := time.Hour
	if ttlStr := os.Getenv("RESULT_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			ttl = parsed
		}
	}
	store := data.NewResultStore(ttl)

	// Initialize handlers
	ocvHandler := handlers.NewOCVHandler(store, base)
	hullHandler := handlers.NewHullHandler()
	sweepHandler := handlers.NewSweepHandler(base)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/ocv", ocvHandler.RunOCV)
		api.GET("/ocv/:id", ocvHandler.GetResult)
		api.POST("/hull", hullHandler.ComputeHull)
		api.POST("/sweep", sweepHandler.RunSweep)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
