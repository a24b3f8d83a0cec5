package services

import (
	"context"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

type stubGallery struct {
	models.GalleryRepo
	galleries map[primitive.ObjectID]*models.Gallery
}

func newStubGallery() *stubGallery {
	return &stubGallery{galleries: make(map[primitive.ObjectID]*models.Gallery)}
}

func (s *stubGallery) AddGalleryImages(ctx context.Context, ownerId primitive.ObjectID, images []models.GalleryImage) (*models.Gallery, error) {
	g, ok := s.galleries[ownerId]
	if !ok {
		g = &models.Gallery{ID: primitive.NewObjectID(), OwnerID: ownerId}
		s.galleries[ownerId] = g
	}
	g.Images = append(g.Images, images...)
	return g, nil
}

func (s *stubGallery) GetGalleryByOwner(ctx context.Context, ownerId primitive.ObjectID) (*models.Gallery, error) {
	g, ok := s.galleries[ownerId]
	if !ok {
		return nil, models.ErrNotFound
	}
	return g, nil
}

func (s *stubGallery) RemoveGalleryImage(ctx context.Context, ownerId, imageId primitive.ObjectID) (*models.Gallery, error) {
	g, ok := s.galleries[ownerId]
	if !ok {
		return nil, models.ErrNotFound
	}
	kept := g.Images[:0]
	for _, img := range g.Images {
		if img.ID != imageId {
			kept = append(kept, img)
		}
	}
	g.Images = kept
	return g, nil
}

func (s *stubGallery) ClearGallery(ctx context.Context, ownerId primitive.ObjectID) (*models.Gallery, error) {
	g, ok := s.galleries[ownerId]
	if !ok {
		return nil, models.ErrNotFound
	}
	g.Images = []models.GalleryImage{}
	return g, nil
}

func newTestGalleryService(t *testing.T) (*GalleryService, *stubGallery, string) {
	t.Helper()
	dir := t.TempDir()
	repo := newStubGallery()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewGalleryService(repo, dir, "/static/gallery", logger), repo, dir
}

func seedImage(t *testing.T, repo *stubGallery, dir string, ownerId primitive.ObjectID) models.GalleryImage {
	t.Helper()
	img := models.GalleryImage{
		ID:         primitive.NewObjectID(),
		FileName:   primitive.NewObjectID().Hex() + ".jpg",
		UploadedAt: time.Now(),
	}
	img.URL = "/static/gallery/" + img.FileName
	if err := os.WriteFile(filepath.Join(dir, img.FileName), []byte("img"), 0o644); err != nil {
		t.Fatalf("failed to seed image file: %v", err)
	}
	if _, err := repo.AddGalleryImages(context.Background(), ownerId, []models.GalleryImage{img}); err != nil {
		t.Fatalf("failed to seed gallery: %v", err)
	}
	return img
}

func TestGalleryUpload(t *testing.T) {
	svc, _, dir := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()

	files := []*multipart.FileHeader{
		{Filename: "wedding.jpg"},
		{Filename: "stage.png"},
	}
	save := func(file *multipart.FileHeader, dst string) error {
		return os.WriteFile(dst, []byte(file.Filename), 0o644)
	}

	gallery, err := svc.Upload(context.Background(), ownerId.Hex(), files, save)
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	if len(gallery.Images) != 2 {
		t.Fatalf("gallery has %d images, want 2", len(gallery.Images))
	}
	for _, img := range gallery.Images {
		if _, err := os.Stat(filepath.Join(dir, img.FileName)); err != nil {
			t.Errorf("expected %s on disk: %v", img.FileName, err)
		}
		if img.URL != "/static/gallery/"+img.FileName {
			t.Errorf("unexpected image URL %s", img.URL)
		}
	}
}

func TestGalleryUploadRejectsUnsupportedType(t *testing.T) {
	svc, repo, dir := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()

	files := []*multipart.FileHeader{
		{Filename: "venue.jpg"},
		{Filename: "setup.exe"},
	}
	save := func(file *multipart.FileHeader, dst string) error {
		return os.WriteFile(dst, []byte(file.Filename), 0o644)
	}

	if _, err := svc.Upload(context.Background(), ownerId.Hex(), files, save); err == nil {
		t.Fatal("expected rejection of a non-image extension")
	}
	// The file saved before the failure is cleaned up again.
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading upload dir: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("upload dir still holds %d files", len(entries))
	}
	if len(repo.galleries) != 0 {
		t.Error("no gallery document should be written on failure")
	}
}

func TestGalleryDeleteImageRemovesFile(t *testing.T) {
	svc, repo, dir := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()
	img := seedImage(t, repo, dir, ownerId)

	gallery, err := svc.DeleteImage(context.Background(), ownerId.Hex(), img.ID.Hex())
	if err != nil {
		t.Fatalf("DeleteImage failed: %v", err)
	}
	if len(gallery.Images) != 0 {
		t.Errorf("gallery still has %d images", len(gallery.Images))
	}
	if _, err := os.Stat(filepath.Join(dir, img.FileName)); !os.IsNotExist(err) {
		t.Error("expected image file to be removed from disk")
	}
}

func TestGalleryDeleteImageIsIdempotent(t *testing.T) {
	svc, repo, dir := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()
	img := seedImage(t, repo, dir, ownerId)

	if _, err := svc.DeleteImage(context.Background(), ownerId.Hex(), img.ID.Hex()); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	// Second delete of the same id, file already gone.
	if _, err := svc.DeleteImage(context.Background(), ownerId.Hex(), img.ID.Hex()); err != nil {
		t.Fatalf("repeated delete failed: %v", err)
	}
}

func TestGalleryDeleteAll(t *testing.T) {
	svc, repo, dir := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()
	a := seedImage(t, repo, dir, ownerId)
	b := seedImage(t, repo, dir, ownerId)

	gallery, err := svc.DeleteAll(context.Background(), ownerId.Hex())
	if err != nil {
		t.Fatalf("DeleteAll failed: %v", err)
	}
	if len(gallery.Images) != 0 {
		t.Errorf("gallery still has %d images", len(gallery.Images))
	}
	for _, img := range []models.GalleryImage{a, b} {
		if _, err := os.Stat(filepath.Join(dir, img.FileName)); !os.IsNotExist(err) {
			t.Errorf("expected %s to be removed from disk", img.FileName)
		}
	}
}

func TestGalleryForOwnerWithoutUploads(t *testing.T) {
	svc, _, _ := newTestGalleryService(t)
	ownerId := primitive.NewObjectID()

	gallery, err := svc.GetGallery(context.Background(), ownerId.Hex())
	if err != nil {
		t.Fatalf("GetGallery failed: %v", err)
	}
	if len(gallery.Images) != 0 {
		t.Errorf("expected empty gallery, got %d images", len(gallery.Images))
	}

	if _, err := svc.DeleteAll(context.Background(), ownerId.Hex()); err != nil {
		t.Fatalf("DeleteAll on empty gallery failed: %v", err)
	}
}
