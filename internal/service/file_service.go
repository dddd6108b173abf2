package service

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/repository"
	"github.com/95Seo/gachicoding/pkg/storage"
)

// presignExpiry how long a download link stays usable
const presignExpiry = 15 * time.Minute

// FileService attachment logic. Bytes go to object storage under the
// canonical CATEGORY/idx/savefilename key; metadata rows go to the database.
type FileService interface {
	Upload(ctx context.Context, category domain.ArticleCategory, articleIdx int64, originFilename string, size int64, contentType string, body io.Reader) (*domain.FileResponse, error)
	ListByArticle(category domain.ArticleCategory, articleIdx int64) ([]*domain.FileResponse, error)
	DownloadURL(ctx context.Context, idx int64) (string, error)
	RemoveByArticle(ctx context.Context, category domain.ArticleCategory, articleIdx int64) error
}

type fileService struct {
	repo  repository.FileRepository
	store storage.ObjectStorage
}

// NewFileService creates a new FileService
func NewFileService(repo repository.FileRepository, store storage.ObjectStorage) FileService {
	return &fileService{repo: repo, store: store}
}

// Upload stores the bytes and records the metadata row. The save filename
// is randomized so colliding origin names cannot overwrite each other.
func (s *fileService) Upload(ctx context.Context, category domain.ArticleCategory, articleIdx int64, originFilename string, size int64, contentType string, body io.Reader) (*domain.FileResponse, error) {
	if s.store == nil {
		return nil, common.ErrStorageUnavailable
	}

	ext := strings.TrimPrefix(filepath.Ext(originFilename), ".")
	saveFilename := uuid.NewString()
	if ext != "" {
		saveFilename += "." + ext
	}

	path := domain.FilePath(category, articleIdx, saveFilename)
	if err := s.store.Upload(ctx, path, body, contentType); err != nil {
		return nil, err
	}

	file := &domain.File{
		ArticleIdx:      articleIdx,
		ArticleCategory: category,
		OriginFilename:  originFilename,
		SaveFilename:    saveFilename,
		Extension:       ext,
		Size:            size,
		Path:            path,
	}
	if err := s.repo.Create(file); err != nil {
		// keep storage consistent with the metadata table
		_ = s.store.Delete(ctx, path)
		return nil, err
	}

	return file.ToResponse(), nil
}

func (s *fileService) ListByArticle(category domain.ArticleCategory, articleIdx int64) ([]*domain.FileResponse, error) {
	files, err := s.repo.ListByArticle(category, articleIdx)
	if err != nil {
		return nil, err
	}

	responses := make([]*domain.FileResponse, len(files))
	for i, f := range files {
		responses[i] = f.ToResponse()
	}
	return responses, nil
}

// DownloadURL returns a short-lived pre-signed link for one attachment.
func (s *fileService) DownloadURL(ctx context.Context, idx int64) (string, error) {
	if s.store == nil {
		return "", common.ErrStorageUnavailable
	}

	file, err := s.repo.FindByIdx(idx)
	if err != nil {
		return "", common.ErrFileNotFound
	}
	return s.store.PresignedURL(ctx, file.Path, presignExpiry)
}

// RemoveByArticle deletes all attachments of one content item, bytes and
// metadata both.
func (s *fileService) RemoveByArticle(ctx context.Context, category domain.ArticleCategory, articleIdx int64) error {
	files, err := s.repo.ListByArticle(category, articleIdx)
	if err != nil {
		return err
	}

	if s.store != nil {
		for _, f := range files {
			if err := s.store.Delete(ctx, f.Path); err != nil {
				return err
			}
		}
	}

	return s.repo.DeleteByArticle(category, articleIdx)
}
