package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// maxUploadSize caps a single attachment at 10 MiB
const maxUploadSize = 10 << 20

// FileHandler handles HTTP requests for attachments
type FileHandler struct {
	service service.FileService
}

// NewFileHandler creates a new FileHandler
func NewFileHandler(service service.FileService) *FileHandler {
	return &FileHandler{service: service}
}

// Upload godoc
// @Summary      첨부파일 업로드
// @Description  대상 컨텐츠에 multipart 파일을 업로드합니다
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        category  path      string  true  "대상 종류 (NOTICE/QUESTION/ANSWER)"
// @Param        idx       path      int     true  "대상 번호"
// @Param        file      formData  file    true  "업로드 파일"
// @Success      201  {object}  common.APIResponse{data=domain.FileResponse}
// @Failure      400  {object}  common.APIResponse
// @Router       /files/{category}/{idx} [post]
func (h *FileHandler) Upload(c *gin.Context) {
	category := domain.ArticleCategory(c.Param("category"))
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid article idx", err)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, 400, "Missing file field", err)
		return
	}
	if fileHeader.Size > maxUploadSize {
		common.ErrorResponse(c, 400, "File too large", nil)
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		common.ErrorResponse(c, 400, "Failed to read upload", err)
		return
	}
	defer src.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	data, err := h.service.Upload(c.Request.Context(), category, idx, fileHeader.Filename, fileHeader.Size, contentType, src)
	if errors.Is(err, common.ErrStorageUnavailable) {
		common.ErrorResponse(c, 503, "File storage is not configured", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to store file", err)
		return
	}

	common.CreatedResponse(c, data)
}

// ListByArticle godoc
// @Summary      첨부파일 목록 조회
// @Tags         files
// @Produce      json
// @Param        category  path  string  true  "대상 종류"
// @Param        idx       path  int     true  "대상 번호"
// @Success      200  {object}  common.APIResponse{data=[]domain.FileResponse}
// @Router       /files/{category}/{idx} [get]
func (h *FileHandler) ListByArticle(c *gin.Context) {
	category := domain.ArticleCategory(c.Param("category"))
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid article idx", err)
		return
	}

	data, err := h.service.ListByArticle(category, idx)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch files", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Download godoc
// @Summary      첨부파일 다운로드 링크 발급
// @Description  짧은 유효기간의 pre-signed URL을 발급합니다
// @Tags         files
// @Produce      json
// @Param        idx  path  int  true  "파일 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /files/download/{idx} [get]
func (h *FileHandler) Download(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid file idx", err)
		return
	}

	url, err := h.service.DownloadURL(c.Request.Context(), idx)
	if errors.Is(err, common.ErrStorageUnavailable) {
		common.ErrorResponse(c, 503, "File storage is not configured", err)
		return
	}
	if errors.Is(err, common.ErrFileNotFound) {
		common.ErrorResponse(c, 404, "File not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to issue download link", err)
		return
	}

	common.SuccessResponse(c, gin.H{"url": url}, nil)
}
