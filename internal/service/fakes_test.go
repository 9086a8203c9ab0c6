package service

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/google/uuid"
)

// fakePreviewStore хранит токены в памяти.
type fakePreviewStore struct {
	previews map[string]model.Preview
	err      error
}

func newFakePreviewStore() *fakePreviewStore {
	return &fakePreviewStore{previews: make(map[string]model.Preview)}
}

func (f *fakePreviewStore) CreatePreview(_ context.Context, preview model.Preview) (*model.Preview, error) {
	if f.err != nil {
		return nil, f.err
	}
	preview.ID = uuid.New()
	preview.CreatedAt = time.Now()
	f.previews[preview.Token] = preview
	return &preview, nil
}

func (f *fakePreviewStore) GetPreviewByToken(_ context.Context, token string) (*model.Preview, error) {
	if f.err != nil {
		return nil, f.err
	}
	p, ok := f.previews[token]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return &p, nil
}

type orderUpdate struct {
	photoID    uuid.UUID
	orderIndex int
}

// fakePhotoStore реализует PhotoStore и PhotoAdminStore поверх среза.
// GetFeedPhotos повторяет контракт сортировки реального хранилища.
type fakePhotoStore struct {
	photos []model.Photo

	queryErr     error
	orderLog     []orderUpdate
	failOrderAt  int // 1-based номер вызова UpdatePhotoOrder, падающий с ошибкой
	orderCallNum int
}

func (f *fakePhotoStore) GetFeedPhotos(_ context.Context, feedID uuid.UUID) ([]model.Photo, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	var result []model.Photo
	for _, p := range f.photos {
		if p.FeedID == feedID {
			result = append(result, p)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].OrderIndex != result[j].OrderIndex {
			return result[i].OrderIndex < result[j].OrderIndex
		}
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.Before(result[j].CreatedAt)
		}
		return result[i].ID.String() < result[j].ID.String()
	})
	return result, nil
}

func (f *fakePhotoStore) SavePhoto(_ context.Context, photo *model.Photo) (*model.Photo, error) {
	photo.ID = uuid.New()
	photo.CreatedAt = time.Now()
	f.photos = append(f.photos, *photo)
	return photo, nil
}

func (f *fakePhotoStore) GetPhoto(_ context.Context, photoID uuid.UUID) (*model.Photo, error) {
	for _, p := range f.photos {
		if p.ID == photoID {
			p := p
			return &p, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (f *fakePhotoStore) CountFeedPhotos(_ context.Context, feedID uuid.UUID) (int, error) {
	count := 0
	for _, p := range f.photos {
		if p.FeedID == feedID {
			count++
		}
	}
	return count, nil
}

func (f *fakePhotoStore) UpdatePhotoMeta(_ context.Context, photoID uuid.UUID, caption *string, tags []string) error {
	for i := range f.photos {
		if f.photos[i].ID == photoID {
			f.photos[i].Caption = caption
			f.photos[i].Tags = tags
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakePhotoStore) UpdatePhotoOrder(_ context.Context, feedID uuid.UUID, photoID uuid.UUID, orderIndex int) error {
	f.orderCallNum++
	if f.failOrderAt > 0 && f.orderCallNum == f.failOrderAt {
		return fmt.Errorf("connection reset")
	}
	for i := range f.photos {
		if f.photos[i].ID == photoID && f.photos[i].FeedID == feedID {
			f.photos[i].OrderIndex = orderIndex
			f.orderLog = append(f.orderLog, orderUpdate{photoID: photoID, orderIndex: orderIndex})
			return nil
		}
	}
	return sql.ErrNoRows
}

func (f *fakePhotoStore) DeletePhoto(_ context.Context, photoID uuid.UUID) error {
	for i := range f.photos {
		if f.photos[i].ID == photoID {
			f.photos = append(f.photos[:i], f.photos[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// fakeSigner подписывает ссылки детерминированно; ключи из failKeys
// имитируют сбой объектного хранилища.
type fakeSigner struct {
	failKeys map[string]bool
}

func (f *fakeSigner) PresignGet(_ context.Context, key string, _ time.Duration) (string, error) {
	if f.failKeys[key] {
		return "", fmt.Errorf("object store unavailable")
	}
	return "https://signed.example/" + key, nil
}

// fakeObjectStore записывает загруженные ключи.
type fakeObjectStore struct {
	uploaded []string
	deleted  []string
}

func (f *fakeObjectStore) UploadPhoto(_ context.Context, feedID uuid.UUID, fileName string, _ []byte, _ string) (string, error) {
	key := fmt.Sprintf("feeds/%s/originals/%s", feedID, fileName)
	f.uploaded = append(f.uploaded, key)
	return key, nil
}

func (f *fakeObjectStore) DeleteFile(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
