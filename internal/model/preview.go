package model

import (
	"time"

	"github.com/google/uuid"
)

// Preview — токен доступа к ленте без авторизации.
// ExpiresAt = nil означает бессрочный токен; истечение проверяется только при чтении.
type Preview struct {
	ID        uuid.UUID  `json:"id"`
	FeedID    uuid.UUID  `json:"feed_id"`
	Token     string     `json:"token"`
	ExpiresAt *time.Time `json:"expires_at"`
	CreatedAt time.Time  `json:"created_at"`
}

// Expired сообщает, истек ли токен на момент now.
// Сам граничный момент еще считается действительным.
func (p *Preview) Expired(now time.Time) bool {
	return p.ExpiresAt != nil && p.ExpiresAt.Before(now)
}
