package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/easyevent/server/internal/models"
	"github.com/easyevent/server/internal/services"
)

// UploadGalleryHandler accepts up to ten multipart files under the "images"
// field.
func UploadGalleryHandler(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid multipart form"))
			return
		}
		files := form.File["images"]

		save := func(file *multipart.FileHeader, dst string) error {
			return c.SaveUploadedFile(file, dst)
		}

		gallery, err := gs.Upload(c.Request.Context(), claims.UserID(), files, save)
		if err != nil {
			writeServiceError(c, err)
			return
		}

		c.JSON(http.StatusCreated, models.SuccessResponse(gallery, "Images uploaded successfully"))
	}
}

func GetMyGalleryHandler(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		gallery, err := gs.GetGallery(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gallery, ""))
	}
}

func DeleteGalleryImageHandler(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		gallery, err := gs.DeleteImage(c.Request.Context(), claims.UserID(), c.Param("imageId"))
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gallery, "Image deleted successfully"))
	}
}

func DeleteAllGalleryHandler(gs *services.GalleryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := currentClaims(c)
		if claims == nil {
			return
		}

		gallery, err := gs.DeleteAll(c.Request.Context(), claims.UserID())
		if err != nil {
			writeServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(gallery, "Gallery cleared"))
	}
}
