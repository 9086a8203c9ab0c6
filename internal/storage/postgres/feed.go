package postgres

import (
	"context"

	"github.com/Akotch/ig-preview/internal/model"
)

func (s *Storage) CreateFeed(ctx context.Context, feed model.Feed) (*model.Feed, error) {
	row := s.DB.QueryRow(ctx,
		`INSERT INTO feeds (title)
		 VALUES ($1)
		 RETURNING id, title, created_at`,
		feed.Title,
	)
	var f model.Feed
	if err := row.Scan(&f.ID, &f.Title, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}

// GetFirstFeed возвращает первую по времени создания ленту.
// Отсутствие ленты приходит как pgx.ErrNoRows.
func (s *Storage) GetFirstFeed(ctx context.Context) (*model.Feed, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT id, title, created_at
		FROM feeds
		ORDER BY created_at ASC
		LIMIT 1
	`)
	var f model.Feed
	if err := row.Scan(&f.ID, &f.Title, &f.CreatedAt); err != nil {
		return nil, err
	}
	return &f, nil
}
