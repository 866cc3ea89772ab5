package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/recipehub/backend/internal/middleware"
	"github.com/recipehub/backend/internal/service"
)

const maxImageSize = 5 << 20 // 5 MiB

// ImageHandler accepts recipe image uploads and stores them in S3.
type ImageHandler struct {
	imageService  *service.ImageService
	recipeService *service.RecipeService
	authService   *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, recipeService *service.RecipeService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService:  imageService,
		recipeService: recipeService,
		authService:   authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/recipes/:id/image", middleware.AuthMiddleware(h.authService), h.UploadRecipeImage)
}

// UploadRecipeImage reads a multipart "image" file, uploads it, and records
// the resulting URL on the recipe.
func (h *ImageHandler) UploadRecipeImage(c *gin.Context) {
	id, ok := recipeID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image file is required"})
		return
	}
	if fileHeader.Size > maxImageSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image exceeds the 5MB limit"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read image"})
		return
	}

	url, err := h.imageService.UploadRecipeImage(c.Request.Context(), data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image"})
		return
	}

	if err := h.recipeService.SetImageURL(c.Request.Context(), id, url); err != nil {
		if errors.Is(err, service.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update recipe"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
