package service

import (
	"context"
	"fmt"

	"github.com/Akotch/ig-preview/internal/model"
)

// Заголовок ленты, создаваемой при первом визите
const defaultFeedTitle = "Draft IG Grid"

type FeedStore interface {
	CreateFeed(ctx context.Context, feed model.Feed) (*model.Feed, error)
	GetFirstFeed(ctx context.Context) (*model.Feed, error)
}

type FeedService struct {
	Storage FeedStore
}

func NewFeedService(s FeedStore) *FeedService {
	return &FeedService{Storage: s}
}

// GetOrCreateFeed возвращает ленту, создавая ее лениво при первом
// обращении. Приложение работает с одной лентой.
func (s *FeedService) GetOrCreateFeed(ctx context.Context) (*model.Feed, error) {
	feed, err := s.Storage.GetFirstFeed(ctx)
	if err == nil {
		return feed, nil
	}
	if !isNoRows(err) {
		return nil, fmt.Errorf("failed to load feed: %w", err)
	}

	title := defaultFeedTitle
	feed, err = s.Storage.CreateFeed(ctx, model.Feed{Title: &title})
	if err != nil {
		return nil, fmt.Errorf("failed to create feed: %w", err)
	}
	return feed, nil
}
