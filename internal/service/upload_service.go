package service

import (
	"context"
	"errors"
	"log/slog"

	"studio-api/internal/model"
	"studio-api/internal/repository"
	"studio-api/internal/storage"
)

var (
	ErrFileNotFound       = errors.New("file not found")
	ErrPresignUnavailable = errors.New("direct media upload is not configured")
)

type UploadService interface {
	Upload(ctx context.Context, uploaderID int64, originalFilename string, content []byte, category string, altText *string) (*model.UploadedFile, error)
	PresignMediaUpload(ctx context.Context, filename, category string) (objectKey string, uploadURL string, err error)
	ListFiles(ctx context.Context, filter repository.FileFilter) ([]model.UploadedFile, int64, error)
	UpdateFileMeta(ctx context.Context, id int64, altText *string, category *string, isUsed *bool) (*model.UploadedFile, error)
	DeleteFile(ctx context.Context, id int64) error
}

type uploadService struct {
	fileRepo  repository.FileRepository
	store     *storage.DiskStore
	presigner *storage.MediaPresigner
}

// NewUploadService wires the disk store and, when configured, the S3
// presigner. presigner may be nil.
func NewUploadService(fileRepo repository.FileRepository, store *storage.DiskStore, presigner *storage.MediaPresigner) UploadService {
	return &uploadService{
		fileRepo:  fileRepo,
		store:     store,
		presigner: presigner,
	}
}

func (s *uploadService) Upload(ctx context.Context, uploaderID int64, originalFilename string, content []byte, category string, altText *string) (*model.UploadedFile, error) {
	saved, err := s.store.Save(originalFilename, content, category)
	if err != nil {
		return nil, err
	}

	file := &model.UploadedFile{
		UploadedByID:     &uploaderID,
		OriginalFilename: originalFilename,
		StoredFilename:   saved.StoredFilename,
		FilePath:         saved.FilePath,
		FileURL:          saved.FileURL,
		FileSize:         saved.FileSize,
		MimeType:         saved.MimeType,
		FileExtension:    saved.Extension,
		Category:         saved.Category,
		AltText:          altText,
		Hash:             saved.Hash,
		ThumbnailURL:     saved.ThumbnailURL,
	}

	newID, err := s.fileRepo.Create(ctx, file)
	if err != nil {
		// metadata insert failed, do not leave the orphan on disk
		_ = s.store.Remove(saved.FilePath, saved.ThumbnailURL)
		return nil, err
	}

	return s.fileRepo.FindByID(ctx, newID)
}

func (s *uploadService) PresignMediaUpload(ctx context.Context, filename, category string) (string, string, error) {
	if s.presigner == nil {
		return "", "", ErrPresignUnavailable
	}

	return s.presigner.PresignUpload(ctx, filename, category)
}

func (s *uploadService) ListFiles(ctx context.Context, filter repository.FileFilter) ([]model.UploadedFile, int64, error) {
	return s.fileRepo.List(ctx, filter)
}

func (s *uploadService) UpdateFileMeta(ctx context.Context, id int64, altText *string, category *string, isUsed *bool) (*model.UploadedFile, error) {
	if _, err := s.fileRepo.FindByID(ctx, id); err != nil {
		return nil, ErrFileNotFound
	}

	if err := s.fileRepo.UpdateMeta(ctx, id, altText, category, isUsed); err != nil {
		return nil, err
	}

	return s.fileRepo.FindByID(ctx, id)
}

// DeleteFile removes the disk file and its thumbnail; the DB row goes
// away even when the disk cleanup fails.
func (s *uploadService) DeleteFile(ctx context.Context, id int64) error {
	file, err := s.fileRepo.FindByID(ctx, id)
	if err != nil {
		return ErrFileNotFound
	}

	if err := s.store.Remove(file.FilePath, file.ThumbnailURL); err != nil {
		slog.WarnContext(ctx, "Failed to remove stored file", "file_id", id, "path", file.FilePath, "error", err)
	}

	return s.fileRepo.Delete(ctx, id)
}
