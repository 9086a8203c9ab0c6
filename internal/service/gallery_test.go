package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/Akotch/ig-preview/internal/model"
	"github.com/google/uuid"
)

func newGalleryFixture(t *testing.T) (*GalleryService, *fakePhotoStore, *fakeSigner, uuid.UUID, string) {
	t.Helper()

	previews := NewPreviewService(newFakePreviewStore(), time.Hour)
	photos := &fakePhotoStore{}
	signer := &fakeSigner{failKeys: make(map[string]bool)}
	gallery := NewGalleryService(previews, photos, signer, time.Hour)

	feedID := uuid.New()
	preview, err := previews.Issue(context.Background(), feedID)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	return gallery, photos, signer, feedID, preview.Token
}

func addPhoto(store *fakePhotoStore, feedID uuid.UUID, key string, orderIndex int, createdAt time.Time) model.Photo {
	p := model.Photo{
		ID:          uuid.New(),
		FeedID:      feedID,
		StoragePath: key,
		OrderIndex:  orderIndex,
		CreatedAt:   createdAt,
	}
	store.photos = append(store.photos, p)
	return p
}

func TestResolveUnknownToken(t *testing.T) {
	gallery, _, _, _, _ := newGalleryFixture(t)

	_, err := gallery.Resolve(context.Background(), "no-such-token")
	if !errors.Is(err, ErrPreviewNotFound) {
		t.Fatalf("expected ErrPreviewNotFound, got %v", err)
	}
}

func TestResolveExpiredToken(t *testing.T) {
	gallery, _, _, _, token := newGalleryFixture(t)

	gallery.Previews.Now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err := gallery.Resolve(context.Background(), token)
	if !errors.Is(err, ErrPreviewExpired) {
		t.Fatalf("expected ErrPreviewExpired, got %v", err)
	}
}

// Порядок в ответе — возрастающий order_index, независимо от порядка
// вставки и от порядка завершения подписи.
func TestResolveOrdering(t *testing.T) {
	gallery, photos, _, feedID, token := newGalleryFixture(t)

	now := time.Now()
	a := addPhoto(photos, feedID, "a.jpg", 2, now)
	b := addPhoto(photos, feedID, "b.jpg", 0, now)
	c := addPhoto(photos, feedID, "c.jpg", 1, now)

	result, err := gallery.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := []uuid.UUID{b.ID, c.ID, a.ID}
	if len(result.Photos) != len(want) {
		t.Fatalf("got %d photos, want %d", len(result.Photos), len(want))
	}
	for i, id := range want {
		if result.Photos[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, result.Photos[i].ID, id)
		}
	}
	if result.Total != 3 {
		t.Fatalf("total = %d, want 3", result.Total)
	}
}

func TestResolveOrderingTiesStable(t *testing.T) {
	gallery, photos, _, feedID, token := newGalleryFixture(t)

	now := time.Now()
	first := addPhoto(photos, feedID, "first.jpg", 5, now)
	second := addPhoto(photos, feedID, "second.jpg", 5, now.Add(time.Second))

	result, err := gallery.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Photos[0].ID != first.ID || result.Photos[1].ID != second.ID {
		t.Fatal("tied order_index not broken by created_at")
	}
}

// Сбой подписи одной фотографии не фатален: она выпадает из ответа,
// остальные сохраняют порядок.
func TestResolveDropsFailedSigning(t *testing.T) {
	gallery, photos, signer, feedID, token := newGalleryFixture(t)

	now := time.Now()
	var ids []uuid.UUID
	for i := 0; i < 5; i++ {
		p := addPhoto(photos, feedID, fmt.Sprintf("p%d.jpg", i), i, now)
		ids = append(ids, p.ID)
	}
	signer.failKeys["p2.jpg"] = true

	result, err := gallery.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(result.Photos) != 4 {
		t.Fatalf("got %d photos, want 4", len(result.Photos))
	}
	if result.Total != 4 {
		t.Fatalf("total = %d, want 4", result.Total)
	}
	want := []uuid.UUID{ids[0], ids[1], ids[3], ids[4]}
	for i, id := range want {
		if result.Photos[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, result.Photos[i].ID, id)
		}
		if result.Photos[i].SignedURL == "" {
			t.Fatalf("position %d: empty signed URL in public result", i)
		}
	}
}

// Ошибка БД фатальна для запроса и не маскируется под NotFound.
func TestResolveStoreFailureIsFatal(t *testing.T) {
	gallery, photos, _, _, token := newGalleryFixture(t)

	photos.queryErr = fmt.Errorf("connection refused")

	_, err := gallery.Resolve(context.Background(), token)
	if err == nil {
		t.Fatal("expected error")
	}
	if errors.Is(err, ErrPreviewNotFound) || errors.Is(err, ErrPreviewExpired) {
		t.Fatalf("store failure reported as token error: %v", err)
	}
}

// Админский список не выбрасывает фотографии с неудачной подписью.
func TestFeedPhotosKeepsUnsigned(t *testing.T) {
	gallery, photos, signer, feedID, _ := newGalleryFixture(t)

	now := time.Now()
	addPhoto(photos, feedID, "ok.jpg", 0, now)
	addPhoto(photos, feedID, "broken.jpg", 1, now)
	signer.failKeys["broken.jpg"] = true

	views, err := gallery.FeedPhotos(context.Background(), feedID)
	if err != nil {
		t.Fatalf("FeedPhotos: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("got %d views, want 2", len(views))
	}
	if views[0].SignedURL == "" {
		t.Fatal("signed photo has empty URL")
	}
	if views[1].SignedURL != "" {
		t.Fatal("failed photo should have empty URL, not be dropped")
	}
}

func TestResolveEmptyFeed(t *testing.T) {
	gallery, _, _, _, token := newGalleryFixture(t)

	result, err := gallery.Resolve(context.Background(), token)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if result.Total != 0 || len(result.Photos) != 0 {
		t.Fatalf("expected empty gallery, got total=%d", result.Total)
	}
}
