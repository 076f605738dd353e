package main

import (
	"log"
	"net/http"
	"os"

	"github.com/BryanJamesMedia/youtube-transcript-api/internal/api"
	"github.com/BryanJamesMedia/youtube-transcript-api/internal/captions"
	"github.com/BryanJamesMedia/youtube-transcript-api/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode (default to release mode)
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	proxyURL := cfg.ProxyURL()
	provider := captions.NewYouTubeProvider(proxyURL)
	if proxyURL != nil {
		log.Printf("Caption provider initialized: %s (Webshare proxy enabled)", provider.Name())
	} else {
		log.Printf("Caption provider initialized: %s (direct connection)", provider.Name())
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Printf("Panic recovered: %v", recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"detail": "Internal Server Error"})
	}))
	r.Use(corsMiddleware())
	r.Use(requestIDMiddleware())

	h := api.NewHandler(provider)
	h.RegisterRoutes(r)

	log.Printf("YouTube transcript service running on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// corsMiddleware allows any origin to call the API
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "*")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

// requestIDMiddleware tags every response with a request ID, keeping an
// incoming X-Request-ID when the caller supplies one
func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
