package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/Akotch/ig-preview/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GetFeed возвращает ленту, создавая ее при первом обращении.
func (h *Handler) GetFeed(c *gin.Context) {
	feed, err := h.Feeds.GetOrCreateFeed(c.Request.Context())
	if err != nil {
		log.Printf("failed to load feed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load feed"})
		return
	}
	c.JSON(http.StatusOK, feed)
}

func (h *Handler) UploadFiles(c *gin.Context) {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed id"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["files"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No files provided"})
		return
	}

	photos, err := h.Photos.UploadFiles(c.Request.Context(), feedID, files)
	if err != nil {
		log.Printf("failed to upload files: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload files"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"photos": photos})
}

// GetFeedPhotos возвращает фотографии ленты с подписанными ссылками.
// Фотография с неудачной подписью остается в списке с пустой ссылкой.
func (h *Handler) GetFeedPhotos(c *gin.Context) {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed id"})
		return
	}
	photos, err := h.Gallery.FeedPhotos(c.Request.Context(), feedID)
	if err != nil {
		log.Printf("failed to load feed photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"photos": photos, "total": len(photos)})
}

func (h *Handler) UpdatePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}
	var input model.UpdatePhotoRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Photos.UpdateMeta(c.Request.Context(), photoID, input.Caption, input.Tags); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		log.Printf("failed to update photo %s: %v", photoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) DeletePhoto(c *gin.Context) {
	photoID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid photo id"})
		return
	}
	if err := h.Photos.DeletePhoto(c.Request.Context(), photoID); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		log.Printf("failed to delete photo %s: %v", photoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ReorderPhotos принимает полный упорядоченный список id фотографий
// ленты из маршрута. Фотография другой ленты в списке дает 404.
// Обновления идут последовательно; при сбое на середине порядок
// остается частично примененным и чинится повторной отправкой.
func (h *Handler) ReorderPhotos(c *gin.Context) {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed id"})
		return
	}
	var input model.ReorderRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if err := h.Photos.Reorder(c.Request.Context(), feedID, input.PhotoIDs); err != nil {
		if errors.Is(err, service.ErrPhotoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Photo not found"})
			return
		}
		log.Printf("failed to reorder photos: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reorder photos"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GeneratePreviewLink выдает новый токен и публичную ссылку на ленту.
func (h *Handler) GeneratePreviewLink(c *gin.Context) {
	feedID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid feed id"})
		return
	}
	preview, err := h.Previews.Issue(c.Request.Context(), feedID)
	if err != nil {
		log.Printf("failed to issue preview token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate preview link"})
		return
	}
	c.JSON(http.StatusCreated, model.PreviewLinkResponse{
		Token:     preview.Token,
		URL:       fmt.Sprintf("%s/preview/%s", h.PublicBaseURL, preview.Token),
		ExpiresAt: preview.ExpiresAt,
	})
}
