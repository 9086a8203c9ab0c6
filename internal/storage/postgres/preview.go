package postgres

import (
	"context"
	"time"

	"github.com/Akotch/ig-preview/internal/model"
)

func (s *Storage) CreatePreview(ctx context.Context, preview model.Preview) (*model.Preview, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO previews (feed_id, token, expires_at)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		preview.FeedID, preview.Token, preview.ExpiresAt,
	)
	if err := row.Scan(&preview.ID, &preview.CreatedAt); err != nil {
		return nil, err
	}
	return &preview, nil
}

// GetPreviewByToken — единственное чтение токена; проверка истечения
// выполняется сервисом, записи здесь не модифицируются.
func (s *Storage) GetPreviewByToken(ctx context.Context, token string) (*model.Preview, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT id, feed_id, token, expires_at, created_at
		FROM previews
		WHERE token = $1
	`, token)

	var p model.Preview
	if err := row.Scan(&p.ID, &p.FeedID, &p.Token, &p.ExpiresAt, &p.CreatedAt); err != nil {
		return nil, err
	}
	return &p, nil
}

// PruneExpiredPreviews удаляет истекшие записи. Используется только
// командой обслуживания, на проверку при чтении не влияет.
func (s *Storage) PruneExpiredPreviews(ctx context.Context, now time.Time) (int64, error) {
	res, err := s.DB.Exec(ctx, `
		DELETE FROM previews
		WHERE expires_at IS NOT NULL AND expires_at < $1
	`, now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected(), nil
}
