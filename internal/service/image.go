package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"blogapi/internal/model"
	"blogapi/internal/storage"
)

const imagePrefix = "images"

var (
	ErrReaderNil        = errors.New("reader is nil")
	ErrFilenameRequired = errors.New("filename is required")
)

// ImageService stores the image files that posts and contents reference by filename.
type ImageService interface {
	// Upload stores the file under a generated name that keeps the original extension.
	Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Image, error)

	// URL returns a presigned download URL for a stored filename.
	URL(ctx context.Context, filename string) (string, error)
}

type imageService struct {
	store  storage.Storage
	expiry time.Duration
}

// NewImageService constructs a new ImageService whose URLs expire after expiry.
func NewImageService(store storage.Storage, expiry time.Duration) ImageService {
	return &imageService{store: store, expiry: expiry}
}

func (s *imageService) Upload(ctx context.Context, r io.Reader, originalFilename string, contentType string, size int64) (*model.Image, error) {
	if r == nil {
		return nil, ErrReaderNil
	}
	if originalFilename == "" {
		return nil, ErrFilenameRequired
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalFilename))
	info, err := s.store.Put(ctx, imageKey(name), r, storage.PutObjectOptions{
		Size:        size,
		ContentType: contentType,
		Metadata: map[string]string{
			"original-filename": originalFilename,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	return &model.Image{
		Filename:    name,
		StoragePath: info.Key,
		Size:        info.Size,
		ContentType: info.ContentType,
	}, nil
}

func (s *imageService) URL(ctx context.Context, filename string) (string, error) {
	// Filenames are opaque names produced by Upload; anything path-like is rejected.
	if filename == "" || filename != path.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrFilenameRequired
	}
	key := imageKey(filename)

	if _, err := s.store.Stat(ctx, key); err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("stat image: %w", err)
	}

	u, err := s.store.PresignGet(ctx, key, s.expiry)
	if err != nil {
		return "", fmt.Errorf("presign image: %w", err)
	}
	return u, nil
}

func imageKey(name string) string {
	return path.Join(imagePrefix, name)
}
