package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/easyevent/server/internal/models"
)

const MaxGalleryUpload = 10

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".gif":  true,
}

// GalleryService stores uploaded images on local disk and tracks them in a
// per-owner gallery document. File removal is idempotent: deleting a file
// that is already gone is not an error.
type GalleryService struct {
	galleryRepo models.GalleryRepo
	uploadDir   string
	publicPath  string
	logger      *slog.Logger
}

type SaveFileFunc func(file *multipart.FileHeader, dst string) error

func NewGalleryService(galleryRepo models.GalleryRepo, uploadDir, publicPath string, logger *slog.Logger) *GalleryService {
	return &GalleryService{
		galleryRepo: galleryRepo,
		uploadDir:   uploadDir,
		publicPath:  strings.TrimSuffix(publicPath, "/"),
		logger:      logger,
	}
}

// Upload stores up to MaxGalleryUpload files and appends them to the owner's
// gallery. Files written before a failure are cleaned up.
func (gs *GalleryService) Upload(ctx context.Context, ownerId string, files []*multipart.FileHeader, save SaveFileFunc) (*models.Gallery, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no images provided")
	}
	if len(files) > MaxGalleryUpload {
		return nil, fmt.Errorf("a maximum of %d images can be uploaded at once", MaxGalleryUpload)
	}

	if err := os.MkdirAll(gs.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory: %v", err)
	}

	var saved []models.GalleryImage
	for _, file := range files {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !allowedImageExts[ext] {
			gs.cleanupFiles(saved)
			return nil, fmt.Errorf("unsupported image type: %s", ext)
		}

		imageId := primitive.NewObjectID()
		fileName := imageId.Hex() + ext
		dst := filepath.Join(gs.uploadDir, fileName)

		if err := save(file, dst); err != nil {
			gs.cleanupFiles(saved)
			return nil, fmt.Errorf("error saving image %s: %v", file.Filename, err)
		}

		saved = append(saved, models.GalleryImage{
			ID:         imageId,
			URL:        gs.publicPath + "/" + fileName,
			FileName:   fileName,
			UploadedAt: time.Now(),
		})
	}

	gallery, err := gs.galleryRepo.AddGalleryImages(ctx, oid, saved)
	if err != nil {
		gs.cleanupFiles(saved)
		return nil, err
	}
	return gallery, nil
}

func (gs *GalleryService) GetGallery(ctx context.Context, ownerId string) (*models.Gallery, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	gallery, err := gs.galleryRepo.GetGalleryByOwner(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		// An owner with no uploads gets an empty gallery, not a 404.
		return &models.Gallery{OwnerID: oid, Images: []models.GalleryImage{}}, nil
	}
	if err != nil {
		return nil, err
	}
	return gallery, nil
}

// DeleteImage removes a single image from the gallery document and from
// disk. Repeating the call for the same id succeeds.
func (gs *GalleryService) DeleteImage(ctx context.Context, ownerId, imageId string) (*models.Gallery, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}
	iid, err := models.ParseObjectID(imageId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	gallery, err := gs.galleryRepo.GetGalleryByOwner(ctx, oid)
	if err != nil {
		return nil, err
	}

	var fileName string
	for _, img := range gallery.Images {
		if img.ID == iid {
			fileName = img.FileName
			break
		}
	}

	updated, err := gs.galleryRepo.RemoveGalleryImage(ctx, oid, iid)
	if err != nil {
		return nil, err
	}

	if fileName != "" {
		gs.removeFile(fileName)
	}
	return updated, nil
}

// DeleteAll clears the owner's gallery and removes every file from disk.
func (gs *GalleryService) DeleteAll(ctx context.Context, ownerId string) (*models.Gallery, error) {
	oid, err := models.ParseObjectID(ownerId)
	if err != nil {
		return nil, models.ErrNotFound
	}

	gallery, err := gs.galleryRepo.GetGalleryByOwner(ctx, oid)
	if errors.Is(err, models.ErrNotFound) {
		return &models.Gallery{OwnerID: oid, Images: []models.GalleryImage{}}, nil
	}
	if err != nil {
		return nil, err
	}

	// Capture the image list before the clear: the repo may hand back the
	// same document, at which point gallery.Images is already empty.
	images := gallery.Images

	cleared, err := gs.galleryRepo.ClearGallery(ctx, oid)
	if err != nil {
		return nil, err
	}

	for _, img := range images {
		gs.removeFile(img.FileName)
	}
	return cleared, nil
}

func (gs *GalleryService) removeFile(fileName string) {
	path := filepath.Join(gs.uploadDir, filepath.Base(fileName))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		gs.logger.Error("failed to remove gallery file", "file", fileName, "error", err)
	}
}

func (gs *GalleryService) cleanupFiles(images []models.GalleryImage) {
	for _, img := range images {
		gs.removeFile(img.FileName)
	}
}
