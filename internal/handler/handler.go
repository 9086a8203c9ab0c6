package handler

import (
	"net/http"
	"strings"

	"github.com/Akotch/ig-preview/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	Users    *service.UserService
	Feeds    *service.FeedService
	Photos   *service.PhotoService
	Previews *service.PreviewService
	Gallery  *service.GalleryService

	// Базовый URL для генерации публичных preview-ссылок
	PublicBaseURL string
}

func NewHandler(
	users *service.UserService,
	feeds *service.FeedService,
	photos *service.PhotoService,
	previews *service.PreviewService,
	gallery *service.GalleryService,
	publicBaseURL string,
) *Handler {
	return &Handler{
		Users:         users,
		Feeds:         feeds,
		Photos:        photos,
		Previews:      previews,
		Gallery:       gallery,
		PublicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" || !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing token"})
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")
		userID, err := service.ParseToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}
		c.Set("user_id", userID)
		c.Next()
	}
}
