package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/tailorcv/backend/auth"
	"github.com/tailorcv/backend/config"
	_ "github.com/tailorcv/backend/docs"
	"github.com/tailorcv/backend/gemini"
	"github.com/tailorcv/backend/handlers"
	"github.com/tailorcv/backend/mcp"
	"github.com/tailorcv/backend/storage"
	"github.com/tailorcv/backend/tools"
	"github.com/tailorcv/backend/typeset"
)

// @title TailorCV API
// @version 1.0
// @description Resume tailoring backend with job ad tracking, AI resume generation, and career advice.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@tailorcv.app

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Set Gin mode based on debug setting
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create context for initialization
	ctx := context.Background()

	// Initialize Firestore client
	log.Println("Initializing Firestore client...")
	firestoreClient, err := storage.NewFirestoreClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Firestore client: %v", err)
	}
	defer firestoreClient.Close()
	log.Println("Firestore client initialized successfully")

	// Initialize Cloud Storage client
	log.Println("Initializing Cloud Storage client...")
	storageClient, err := storage.NewCloudStorageClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage client: %v", err)
	}
	defer storageClient.Close()
	log.Println("Cloud Storage client initialized successfully")

	// Initialize Gemini client
	log.Println("Initializing Gemini client...")
	geminiClient, err := gemini.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	defer geminiClient.Close()
	log.Println("Gemini client initialized successfully")

	// Initialize auth services
	jwtService := auth.NewJWTService(cfg)
	googleAuthService := auth.NewGoogleAuthService(cfg)

	// Typesetting service client
	typesetClient := typeset.NewClient(cfg)

	// Create handlers
	authHandler := handlers.NewAuthHandler(firestoreClient, storageClient, jwtService, googleAuthService)
	profileHandler := handlers.NewProfileHandler(firestoreClient, geminiClient)
	jobsHandler := handlers.NewJobsHandler(firestoreClient, storageClient, geminiClient)
	resumesHandler := handlers.NewResumesHandler(firestoreClient, storageClient, geminiClient, typesetClient)
	adviceHandler := handlers.NewAdviceHandler()

	// Create MCP server with tool registry
	toolRegistry := tools.NewToolRegistry()
	toolRegistry.Register(tools.NewParseJobAdTool(geminiClient))
	toolRegistry.Register(tools.NewMatchScoreTool())
	toolRegistry.Register(tools.NewCareerAdviceTool())

	mcpServer := mcp.NewServer(toolRegistry)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	// Configure CORS for the web frontend
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173", "*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Register routes
	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		// Auth endpoints (public)
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/google", authHandler.GoogleLogin)
		}

		// Protected auth endpoints (require authentication)
		authProtected := api.Group("/auth")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.GET("/profile", authHandler.GetProfile)
			authProtected.PUT("/profile", authHandler.UpdateProfile)
			authProtected.POST("/resume-upload", authHandler.UploadResume)
		}

		// Resume profile endpoints
		profile := api.Group("/profile")
		profile.Use(auth.AuthMiddleware(jwtService))
		{
			profile.GET("/resume", profileHandler.GetResumeFields)
			profile.PUT("/resume", profileHandler.UpdateResumeFields)
			profile.POST("/parse", profileHandler.ParseResume)
			profile.POST("/parse-file", profileHandler.ParseResumeFile)
		}

		// Career advice endpoint (public; userId carried in the body)
		api.POST("/jobs/advice", adviceHandler.GenerateAdvice)

		// Job ad endpoints
		jobs := api.Group("/jobs")
		jobs.Use(auth.AuthMiddleware(jwtService))
		{
			jobs.GET("", jobsHandler.ListJobAds)
			jobs.POST("", jobsHandler.ParseJobAd)
			jobs.PUT("/:jobID", jobsHandler.UpdateJobAd)
			jobs.DELETE("/:jobID", jobsHandler.DeleteJobAd)
			jobs.POST("/:jobID/applied", jobsHandler.MarkApplied)
		}

		// Tailored resume endpoints
		resumes := api.Group("/resumes")
		resumes.Use(auth.AuthMiddleware(jwtService))
		{
			resumes.POST("/generate", resumesHandler.GenerateResume)
			resumes.POST("/format", resumesHandler.FormatResume)
		}

		// Stored artifact endpoints
		api.GET("/user/job-applications", auth.AuthMiddleware(jwtService), resumesHandler.ListApplications)
		api.GET("/templates", auth.AuthMiddleware(jwtService), resumesHandler.ListTemplates)
		api.GET("/blob-proxy", auth.AuthMiddleware(jwtService), resumesHandler.DownloadFile)

		// Tools introspection endpoint
		api.GET("/tools", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"tools": toolRegistry.GetToolDefinitions(),
			})
		})

		// MCP endpoints for external AI agents
		mcpServer.RegisterRoutes(api)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Starting server on port %s...", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Give outstanding requests 30 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
