package postgres

import (
	"context"
	"database/sql"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/google/uuid"
)

func (s *Storage) SavePhoto(ctx context.Context, photo *model.Photo) (*model.Photo, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO photos (feed_id, storage_path, caption, tags, order_index)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		photo.FeedID, photo.StoragePath, photo.Caption, photo.Tags, photo.OrderIndex,
	)
	if err := row.Scan(&photo.ID, &photo.CreatedAt); err != nil {
		return nil, err
	}
	return photo, nil
}

// GetFeedPhotos возвращает фотографии ленты в порядке отображения.
// Совпадающие order_index стабилизируются по created_at, затем по id.
func (s *Storage) GetFeedPhotos(ctx context.Context, feedID uuid.UUID) ([]model.Photo, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, feed_id, storage_path, caption, tags, order_index, created_at
		FROM photos
		WHERE feed_id = $1
		ORDER BY order_index ASC, created_at ASC, id ASC
	`, feedID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Photo
	for rows.Next() {
		var p model.Photo
		if err := rows.Scan(&p.ID, &p.FeedID, &p.StoragePath, &p.Caption, &p.Tags,
			&p.OrderIndex, &p.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}

func (s *Storage) GetPhoto(ctx context.Context, photoID uuid.UUID) (*model.Photo, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT id, feed_id, storage_path, caption, tags, order_index, created_at
		FROM photos
		WHERE id = $1`, photoID)

	var p model.Photo
	if err := row.Scan(&p.ID, &p.FeedID, &p.StoragePath, &p.Caption, &p.Tags,
		&p.OrderIndex, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Storage) CountFeedPhotos(ctx context.Context, feedID uuid.UUID) (int, error) {
	var count int
	err := s.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM photos WHERE feed_id = $1`, feedID,
	).Scan(&count)
	return count, err
}

func (s *Storage) UpdatePhotoMeta(ctx context.Context, photoID uuid.UUID, caption *string, tags []string) error {
	res, err := s.DB.Exec(ctx, `
		UPDATE photos
		SET caption = $1, tags = $2
		WHERE id = $3
	`, caption, tags, photoID)
	if err != nil {
		return err
	}
	rowsAffected := res.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// UpdatePhotoOrder переписывает order_index одной фотографии в рамках
// ленты. Фотография из другой ленты не затрагивается и дает
// sql.ErrNoRows. Пакет reorder вызывает его последовательно, без
// транзакции.
func (s *Storage) UpdatePhotoOrder(ctx context.Context, feedID uuid.UUID, photoID uuid.UUID, orderIndex int) error {
	res, err := s.DB.Exec(ctx, `
		UPDATE photos
		SET order_index = $1
		WHERE id = $2 AND feed_id = $3
	`, orderIndex, photoID, feedID)
	if err != nil {
		return err
	}
	rowsAffected := res.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Storage) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	res, err := s.DB.Exec(ctx, `
		DELETE FROM photos
		WHERE id = $1
	`, photoID)
	if err != nil {
		return err
	}
	rowsAffected := res.RowsAffected()
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
