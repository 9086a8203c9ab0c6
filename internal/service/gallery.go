package service

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/google/uuid"
)

// Срок действия подписанной ссылки по умолчанию
const DefaultSignedURLTTL = time.Hour

type PhotoStore interface {
	GetFeedPhotos(ctx context.Context, feedID uuid.UUID) ([]model.Photo, error)
}

type URLSigner interface {
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// GalleryService разрешает preview-токен в упорядоченный список
// фотографий с подписанными ссылками.
type GalleryService struct {
	Previews     *PreviewService
	Storage      PhotoStore
	Signer       URLSigner
	SignedURLTTL time.Duration
}

func NewGalleryService(previews *PreviewService, s PhotoStore, signer URLSigner, ttl time.Duration) *GalleryService {
	if ttl <= 0 {
		ttl = DefaultSignedURLTTL
	}
	return &GalleryService{
		Previews:     previews,
		Storage:      s,
		Signer:       signer,
		SignedURLTTL: ttl,
	}
}

// Resolve проверяет токен, читает фотографии ленты и подписывает
// ссылки. Ошибка БД фатальна для запроса; неудача подписи одной
// фотографии не фатальна — такая фотография молча выпадает из ответа.
func (s *GalleryService) Resolve(ctx context.Context, token string) (*model.Gallery, error) {
	feedID, err := s.Previews.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	photos, err := s.Storage.GetFeedPhotos(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}

	views := s.signPhotos(ctx, photos)

	// Лучше показать меньше фотографий, чем ни одной
	result := make([]model.PhotoView, 0, len(views))
	for _, v := range views {
		if v.SignedURL != "" {
			result = append(result, v)
		}
	}
	return &model.Gallery{Photos: result, Total: len(result)}, nil
}

// FeedPhotos возвращает фотографии ленты для админки. В отличие от
// Resolve, фотографии с неудачной подписью остаются с пустой ссылкой.
func (s *GalleryService) FeedPhotos(ctx context.Context, feedID uuid.UUID) ([]model.PhotoView, error) {
	photos, err := s.Storage.GetFeedPhotos(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch photos: %w", err)
	}
	return s.signPhotos(ctx, photos), nil
}

// signPhotos подписывает ссылки параллельно: все запросы уходят сразу,
// результат собирается по исходному индексу, порядок сохраняется.
func (s *GalleryService) signPhotos(ctx context.Context, photos []model.Photo) []model.PhotoView {
	views := make([]model.PhotoView, len(photos))

	var wg sync.WaitGroup
	for i, photo := range photos {
		wg.Add(1)
		go func(i int, photo model.Photo) {
			defer wg.Done()
			views[i] = model.PhotoView{
				ID:      photo.ID,
				Caption: photo.Caption,
				Tags:    photo.Tags,
			}
			url, err := s.Signer.PresignGet(ctx, photo.StoragePath, s.SignedURLTTL)
			if err != nil {
				log.Printf("failed to sign URL for photo %s: %v", photo.ID, err)
				return
			}
			views[i].SignedURL = url
		}(i, photo)
	}
	wg.Wait()

	return views
}
