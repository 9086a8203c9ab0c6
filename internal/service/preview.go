package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/Akotch/ig-preview/internal/shared"
	"github.com/google/uuid"
)

// Срок действия preview-токена по умолчанию
const DefaultPreviewTTL = time.Hour

type PreviewStore interface {
	CreatePreview(ctx context.Context, preview model.Preview) (*model.Preview, error)
	GetPreviewByToken(ctx context.Context, token string) (*model.Preview, error)
}

// PreviewService выдает и проверяет токены доступа к ленте.
// Отзыва токена нет: безопасность держится на непредсказуемости
// токена и коротком TTL.
type PreviewService struct {
	Storage PreviewStore
	TTL     time.Duration
	Now     func() time.Time
}

func NewPreviewService(s PreviewStore, ttl time.Duration) *PreviewService {
	if ttl <= 0 {
		ttl = DefaultPreviewTTL
	}
	return &PreviewService{Storage: s, TTL: ttl}
}

func (s *PreviewService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Issue создает новый токен для ленты. Каждый вызов создает новую
// запись, существующие токены не переиспользуются.
func (s *PreviewService) Issue(ctx context.Context, feedID uuid.UUID) (*model.Preview, error) {
	token, err := shared.NewToken()
	if err != nil {
		return nil, err
	}
	expiresAt := s.now().Add(s.TTL)
	preview := model.Preview{
		FeedID:    feedID,
		Token:     token,
		ExpiresAt: &expiresAt,
	}
	created, err := s.Storage.CreatePreview(ctx, preview)
	if err != nil {
		return nil, fmt.Errorf("failed to create preview: %w", err)
	}
	return created, nil
}

// Validate разрешает токен в id ленты. Одно логическое чтение:
// проверка истечения ничего не модифицирует.
func (s *PreviewService) Validate(ctx context.Context, token string) (uuid.UUID, error) {
	preview, err := s.Storage.GetPreviewByToken(ctx, token)
	if err != nil {
		if isNoRows(err) {
			return uuid.Nil, ErrPreviewNotFound
		}
		return uuid.Nil, fmt.Errorf("failed to look up preview: %w", err)
	}
	if preview.Expired(s.now()) {
		return uuid.Nil, ErrPreviewExpired
	}
	return preview.FeedID, nil
}
