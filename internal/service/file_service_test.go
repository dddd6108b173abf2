package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
)

func TestUploadFile_Success(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "QUESTION/10/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return(nil)
	repo.On("Create", mock.AnythingOfType("*domain.File")).Return(nil)

	body := strings.NewReader("fake image bytes")
	result, err := svc.Upload(context.Background(), domain.CategoryQuestion, 10, "screenshot.png", int64(body.Len()), "image/png", body)

	assert.NoError(t, err)
	assert.Equal(t, "screenshot.png", result.OriginFilename)
	assert.Equal(t, "png", result.Extension)
	assert.True(t, strings.HasPrefix(result.Path, "QUESTION/10/"))
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadFile_MetadataFailureCleansUp(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	repo.On("Create", mock.AnythingOfType("*domain.File")).Return(errors.New("db error"))
	store.On("Delete", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Upload(context.Background(), domain.CategoryNotice, 3, "doc.pdf", 12, "application/pdf", strings.NewReader("pdf"))

	assert.Error(t, err)
	store.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestUploadFile_StorageFailure(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	store.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("bucket gone"))

	_, err := svc.Upload(context.Background(), domain.CategoryNotice, 3, "doc.pdf", 12, "application/pdf", strings.NewReader("pdf"))

	assert.Error(t, err)
	repo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestDownloadURL_NotFound(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	repo.On("FindByIdx", int64(999)).Return(nil, errors.New("record not found"))

	_, err := svc.DownloadURL(context.Background(), 999)

	assert.ErrorIs(t, err, common.ErrFileNotFound)
}

func TestDownloadURL_Success(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	file := &domain.File{Idx: 1, Path: "NOTICE/3/abc.pdf"}
	repo.On("FindByIdx", int64(1)).Return(file, nil)
	store.On("PresignedURL", mock.Anything, file.Path, presignExpiry).
		Return("https://bucket.example/signed", nil)

	url, err := svc.DownloadURL(context.Background(), 1)

	assert.NoError(t, err)
	assert.Equal(t, "https://bucket.example/signed", url)
}

func TestRemoveByArticle_DeletesBytesAndRows(t *testing.T) {
	repo := new(mockFileRepo)
	store := new(mockObjectStorage)
	svc := NewFileService(repo, store)

	files := []*domain.File{
		{Idx: 1, Path: "NOTICE/3/a.png"},
		{Idx: 2, Path: "NOTICE/3/b.png"},
	}
	repo.On("ListByArticle", domain.CategoryNotice, int64(3)).Return(files, nil)
	store.On("Delete", mock.Anything, "NOTICE/3/a.png").Return(nil)
	store.On("Delete", mock.Anything, "NOTICE/3/b.png").Return(nil)
	repo.On("DeleteByArticle", domain.CategoryNotice, int64(3)).Return(nil)

	err := svc.RemoveByArticle(context.Background(), domain.CategoryNotice, 3)

	assert.NoError(t, err)
	store.AssertExpectations(t)
	repo.AssertExpectations(t)
}
