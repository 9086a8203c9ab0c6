package service

import (
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/Akotch/ig-preview/internal/storage/s3"
	"github.com/google/uuid"
)

type PhotoAdminStore interface {
	SavePhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error)
	GetPhoto(ctx context.Context, photoID uuid.UUID) (*model.Photo, error)
	CountFeedPhotos(ctx context.Context, feedID uuid.UUID) (int, error)
	UpdatePhotoMeta(ctx context.Context, photoID uuid.UUID, caption *string, tags []string) error
	UpdatePhotoOrder(ctx context.Context, feedID uuid.UUID, photoID uuid.UUID, orderIndex int) error
	DeletePhoto(ctx context.Context, photoID uuid.UUID) error
}

type ObjectStore interface {
	UploadPhoto(ctx context.Context, feedID uuid.UUID, fileName string, data []byte, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}

// PhotoService — операции админки над фотографиями: загрузка,
// удаление, перестановка, подписи. Многошаговые операции выполняются
// последовательно и без транзакций; частичный сбой оставляет
// осиротевший объект или неполный порядок, это принятый риск.
type PhotoService struct {
	Storage PhotoAdminStore
	Objects ObjectStore
}

func NewPhotoService(s PhotoAdminStore, objects ObjectStore) *PhotoService {
	return &PhotoService{Storage: s, Objects: objects}
}

// UploadFiles загружает файлы: сначала байты в объектное хранилище,
// затем запись в БД. order_index продолжает счет с текущего количества
// фотографий; после удалений индексы могут стать разреженными,
// перенумерация не выполняется.
func (s *PhotoService) UploadFiles(ctx context.Context, feedID uuid.UUID, files []*multipart.FileHeader) ([]model.Photo, error) {
	count, err := s.Storage.CountFeedPhotos(ctx, feedID)
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	var results []model.Photo
	for i, fileHeader := range files {
		src, err := fileHeader.Open()
		if err != nil {
			return results, err
		}

		buf, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			return results, err
		}

		key, err := s.Objects.UploadPhoto(ctx, feedID, fileHeader.Filename, buf, fileHeader.Header.Get("Content-Type"))
		if err != nil {
			return results, fmt.Errorf("failed to upload file to object store: %w", err)
		}

		photo := &model.Photo{
			FeedID:      feedID,
			StoragePath: key,
			OrderIndex:  count + i,
		}
		saved, err := s.Storage.SavePhoto(ctx, photo)
		if err != nil {
			// Объект уже в хранилище; запись не создана — осиротевший
			// объект остается до ручной чистки
			return results, fmt.Errorf("failed to save photo record: %w", err)
		}
		results = append(results, *saved)
	}
	return results, nil
}

// DeletePhoto удаляет сначала объекты из хранилища, затем запись.
// Ошибка удаления объекта логируется и не прерывает удаление записи.
func (s *PhotoService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	photo, err := s.Storage.GetPhoto(ctx, photoID)
	if err != nil {
		if isNoRows(err) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to load photo: %w", err)
	}

	if err := s.Objects.DeleteFile(ctx, photo.StoragePath); err != nil {
		log.Printf("failed to delete object %s: %v", photo.StoragePath, err)
	}
	if err := s.Objects.DeleteFile(ctx, s3.ThumbnailKey(photo.StoragePath)); err != nil {
		log.Printf("failed to delete thumbnail for %s: %v", photo.StoragePath, err)
	}

	if err := s.Storage.DeletePhoto(ctx, photoID); err != nil {
		if isNoRows(err) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to delete photo record: %w", err)
	}
	return nil
}

// Reorder переписывает order_index по новому списку, по одной записи
// за раз. Обновления ограничены лентой: чужая фотография в списке
// дает ErrPhotoNotFound. Первая ошибка прерывает остаток; уже
// примененные обновления не откатываются — порядок восстанавливается
// повторной попыткой.
func (s *PhotoService) Reorder(ctx context.Context, feedID uuid.UUID, photoIDs []uuid.UUID) error {
	for i, id := range photoIDs {
		if err := s.Storage.UpdatePhotoOrder(ctx, feedID, id, i); err != nil {
			if isNoRows(err) {
				return fmt.Errorf("photo %s: %w", id, ErrPhotoNotFound)
			}
			return fmt.Errorf("failed to update order for photo %s: %w", id, err)
		}
	}
	return nil
}

func (s *PhotoService) UpdateMeta(ctx context.Context, photoID uuid.UUID, caption *string, tags []string) error {
	if err := s.Storage.UpdatePhotoMeta(ctx, photoID, caption, tags); err != nil {
		if isNoRows(err) {
			return ErrPhotoNotFound
		}
		return fmt.Errorf("failed to update photo: %w", err)
	}
	return nil
}
