package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorMessage — тело любого ответа с ошибкой
type ErrorMessage struct {
	Error string `json:"error"`
}

type RegisterRequest struct {
	UserName string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
}

type ProfileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// PhotoView — фотография, готовая к показу: поля записи плюс
// временная подписанная ссылка в объектное хранилище.
type PhotoView struct {
	ID        uuid.UUID `json:"id"`
	Caption   *string   `json:"caption"`
	Tags      []string  `json:"tags"`
	SignedURL string    `json:"signedUrl"`
}

// Gallery — результат разрешения preview-токена
type Gallery struct {
	Photos []PhotoView `json:"photos"`
	Total  int         `json:"total"`
}

type UpdatePhotoRequest struct {
	Caption *string  `json:"caption"`
	Tags    []string `json:"tags"`
}

type ReorderRequest struct {
	PhotoIDs []uuid.UUID `json:"photo_ids" binding:"required"`
}

type PreviewLinkResponse struct {
	Token     string     `json:"token"`
	URL       string     `json:"url"`
	ExpiresAt *time.Time `json:"expires_at"`
}
