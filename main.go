package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"leadrelay/pkg/api"
	"leadrelay/pkg/clients/resend"
	"leadrelay/pkg/config"
	"leadrelay/pkg/middleware"
	"leadrelay/pkg/services"
)

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	// Initialize configuration
	cfg := config.LoadConfig()

	// Initialize API clients
	resendClient := resend.NewClient(cfg.ResendAPIKey, cfg.ResendBaseURL)

	// Initialize services
	leadService := services.NewLeadService(resendClient, cfg)

	// Set Gin to release mode in production
	gin.SetMode(gin.DebugMode)

	// Create a new Gin router; custom recovery keeps the response
	// shape consistent with the rest of the API
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS())

	// Initialize handlers
	handlers := api.NewHandlers(leadService, cfg)

	// Register routes
	router.HandleMethodNotAllowed = true
	router.NoMethod(handlers.MethodNotAllowed)
	router.POST("/api/lead", handlers.HandleLead)
	router.GET("/health", handlers.HealthCheck)

	// Get port from environment or default to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
