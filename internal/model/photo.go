package model

import (
	"time"

	"github.com/google/uuid"
)

// Photo — запись фотографии в ленте. OrderIndex задает порядок отображения;
// дубликаты возможны, сортировка стабилизируется по created_at, затем по id.
type Photo struct {
	ID          uuid.UUID `json:"id"`
	FeedID      uuid.UUID `json:"feed_id"`
	StoragePath string    `json:"storage_path"`
	Caption     *string   `json:"caption"`
	Tags        []string  `json:"tags"`
	OrderIndex  int       `json:"order_index"`
	CreatedAt   time.Time `json:"created_at"`
}
