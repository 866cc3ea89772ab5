package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/recipehub/backend/internal/api"
	"github.com/recipehub/backend/internal/database"
	"github.com/recipehub/backend/internal/middleware"
)

// SetupRouter configures the application routes. imageHandler and the rate
// limiters may be nil when S3 or redis is not configured.
func SetupRouter(
	db *gorm.DB,
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	imageHandler *api.ImageHandler,
	creationLimiter *middleware.RateLimiter,
	modificationLimiter *middleware.RateLimiter,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery())

	// CORS middleware
	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := database.HealthCheck(ctx, db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	authHandler.RegisterRoutes(v1)
	recipeHandler.RegisterRoutes(v1, creationLimiter, modificationLimiter)
	if imageHandler != nil {
		imageHandler.RegisterRoutes(v1)
	}

	return router
}
