package internal

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pulse-feed/pkg/config"
	"pulse-feed/pkg/logger"
	"pulse-feed/pkg/queue"
	contentHTTP "pulse-feed/services/content/internal/controller/http"
	"pulse-feed/services/content/internal/events"
	"pulse-feed/services/content/internal/repo/persistent"
	"pulse-feed/services/content/internal/usecase"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run(cfg *config.Config, log *logger.Logger, db *gorm.DB, queueClient *queue.Client) {
	// Initialize event dispatcher (post-commit, fire-and-forget)
	dispatcher := events.NewDispatcher(queueClient, log, cfg.EventBufferSize)

	// Initialize repositories
	contentRepo := persistent.NewContentRepository(db)

	// Initialize use cases
	contentUseCase := usecase.NewContentUseCase(contentRepo, dispatcher, log)

	// Initialize HTTP handlers
	contentHandler := contentHTTP.NewContentHandler(contentUseCase, log)

	// Setup router
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api/v1")
	{
		api.POST("/posts", contentHandler.CreatePost)
		api.GET("/posts/:id", contentHandler.GetPost)
		api.PUT("/posts/:id", contentHandler.UpdatePost)
		api.DELETE("/posts/:id", contentHandler.DeletePost)
		api.GET("/posts", contentHandler.ListPosts)
		api.GET("/posts/:id/view", contentHandler.ViewPost)
		api.POST("/posts/:id/liked", contentHandler.LikePost)
		api.POST("/posts/:id/comment", contentHandler.CommentPost)
		api.GET("/posts/:id/comment", contentHandler.ListComments)
		api.POST("/users/register", contentHandler.RegisterUser)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// Start server in a goroutine
	go func() {
		log.Info("Content service starting on port %s", cfg.ServerPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("Failed to start server: %v", err)
			panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down content service...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown server first so no new events get produced
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	// Drain pending events before closing the broker connection
	dispatcher.Close()

	if queueClient != nil {
		queueClient.Close()
	}

	// Close database connection
	sqlDB, err := db.DB()
	if err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database: %v", err)
		}
	}

	log.Info("Content service exited")
}
