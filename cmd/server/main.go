package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-directory-backend/internal/config"
	"hospital-directory-backend/internal/database"
	"hospital-directory-backend/internal/handler"
	"hospital-directory-backend/internal/middleware"
	"hospital-directory-backend/internal/repository"
	"hospital-directory-backend/internal/service"
	"hospital-directory-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize database connection
	db := database.Connect(cfg)

	// 3. Initialize repositories
	hospitalRepo := repository.NewHospitalRepo(db)

	// 4. Initialize services
	hospitalService := service.NewHospitalService(hospitalRepo)
	monitorService := service.NewMonitorService(database.Client(), cfg.Monitor.PingInterval)

	// 5. Start store monitor in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go monitorService.Start(ctx)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg))

	// Install custom binding rules
	handler.RegisterValidations()

	// 8. Register handlers
	hospitalHandler := handler.NewHospitalHandler(hospitalService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-directory-backend",
		})
	})

	hospitals := r.Group("/hospitals")
	{
		hospitals.GET("", hospitalHandler.GetAllHospitals)
		hospitals.POST("", hospitalHandler.CreateHospital)
		hospitals.PUT("/:id", hospitalHandler.UpdateHospital)
		hospitals.DELETE("/:id", hospitalHandler.DeleteHospital)
		hospitals.PATCH("/:id/status", hospitalHandler.UpdateStatus)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Cancel store monitor context and release the connection
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	database.Disconnect(shutdownCtx)

	log.Println("Server exited")
}
