package handler

import (
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log"
	"net/http"

	"github.com/Akotch/ig-preview/internal/service"
	"github.com/gin-gonic/gin"
)

//go:embed templates/preview.html
var templatesFS embed.FS

var previewTmpl = template.Must(template.ParseFS(templatesFS, "templates/preview.html"))

// SignedURLs — единственная реализация разрешения токена. Обе публичные
// точки входа (/api/signed-urls и /functions/signed-urls) используют ее,
// поэтому коды ответов не могут разойтись: 400 — нет токена, 404 — токен
// не найден, 410 — истек, 500 — сбой хранилища.
func (h *Handler) SignedURLs(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Token is required"})
		return
	}

	gallery, err := h.Gallery.Resolve(c.Request.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPreviewNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired preview link"})
		case errors.Is(err, service.ErrPreviewExpired):
			c.JSON(http.StatusGone, gin.H{"error": "Preview link has expired"})
		default:
			log.Printf("failed to resolve preview token: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}
	c.JSON(http.StatusOK, gallery)
}

type previewPageData struct {
	Token      string
	Denied     bool
	PhotosJSON template.JS
}

// PreviewPage рендерит публичную галерею на сервере. При недействительном
// токене показывается панель Access Denied; при сбое хранилища отдается
// оболочка страницы, и клиент сам запрашивает /api/signed-urls.
func (h *Handler) PreviewPage(c *gin.Context) {
	token := c.Param("token")
	data := previewPageData{Token: token}

	gallery, err := h.Gallery.Resolve(c.Request.Context(), token)
	switch {
	case err == nil:
		if b, merr := json.Marshal(gallery); merr == nil {
			data.PhotosJSON = template.JS(b)
		}
	case errors.Is(err, service.ErrPreviewNotFound), errors.Is(err, service.ErrPreviewExpired):
		data.Denied = true
	default:
		// Рендер без данных: страница добирает галерею клиентским запросом
		log.Printf("failed to resolve preview token during render: %v", err)
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := previewTmpl.Execute(c.Writer, data); err != nil {
		log.Printf("failed to render preview page: %v", err)
	}
}
