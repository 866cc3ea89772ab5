package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/recipehub/backend/config"
	"github.com/recipehub/backend/internal/api"
	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/router"
	"github.com/recipehub/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *gorm.DB
}

// New wires the services and handlers into a server instance. redisClient
// and s3Config may be nil; rate limiting and image upload are then disabled.
func New(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) *Server {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db)

	authHandler := api.NewAuthHandler(authService)
	recipeHandler := api.NewRecipeHandler(recipeService, authService)

	var imageHandler *api.ImageHandler
	if s3Config != nil {
		imageHandler = api.NewImageHandler(service.NewImageService(s3Config), recipeService, authService)
	}

	var creationLimiter, modificationLimiter *middleware.RateLimiter
	if redisClient != nil {
		creationLimiter = middleware.NewRecipeCreationRateLimiter(redisClient)
		modificationLimiter = middleware.NewRecipeModificationRateLimiter(redisClient)
	}

	r := router.SetupRouter(db, authHandler, recipeHandler, imageHandler, creationLimiter, modificationLimiter)

	return &Server{
		router: r,
		db:     db,
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: r,
		},
	}
}

// Handler exposes the configured router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the server and blocks until it stops.
func (s *Server) Start() error {
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
