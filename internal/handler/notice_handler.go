package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// NoticeHandler handles HTTP requests for notices
type NoticeHandler struct {
	service service.NoticeService
}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler(service service.NoticeService) *NoticeHandler {
	return &NoticeHandler{service: service}
}

// List godoc
// @Summary      공지 목록 조회
// @Description  활성화된 공지를 키워드 검색하여 최신순으로 조회합니다
// @Tags         notices
// @Produce      json
// @Param        keyword  query  string  false  "검색 키워드"
// @Param        page     query  int     false  "페이지 번호"  default(1)
// @Param        limit    query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.NoticeResponse}
// @Router       /notice/list [get]
func (h *NoticeHandler) List(c *gin.Context) {
	keyword := c.Query("keyword")
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, meta, err := h.service.GetList(keyword, page, limit)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch notices", err)
		return
	}

	common.SuccessResponse(c, data, meta)
}

// Detail godoc
// @Summary      공지 상세 조회
// @Tags         notices
// @Produce      json
// @Param        idx  path  int  true  "공지 번호"
// @Success      200  {object}  common.APIResponse{data=domain.NoticeResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /notice/{idx} [get]
func (h *NoticeHandler) Detail(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid notice idx", err)
		return
	}

	data, err := h.service.GetDetail(idx)
	if errors.Is(err, common.ErrNoticeNotFound) {
		common.ErrorResponse(c, 404, "Notice not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch notice", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Register godoc
// @Summary      공지 등록
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.NoticeSaveRequest  true  "등록 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /notice [post]
func (h *NoticeHandler) Register(c *gin.Context) {
	var req domain.NoticeSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	idx, err := h.service.Register(&req)
	if writeValidationError(c, err) {
		return
	}
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "Writer not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to create notice", err)
		return
	}

	common.CreatedResponse(c, gin.H{"idx": idx})
}

// Modify godoc
// @Summary      공지 수정
// @Tags         notices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.NoticeUpdateRequest  true  "수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.NoticeResponse}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /notice/modify [put]
func (h *NoticeHandler) Modify(c *gin.Context) {
	var req domain.NoticeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Modify(&req)
	if writeValidationError(c, err) {
		return
	}
	if errors.Is(err, common.ErrNoticeNotFound) {
		common.ErrorResponse(c, 404, "Notice not found", err)
		return
	}
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "Requester not found", err)
		return
	}
	if errors.Is(err, common.ErrUnauthorized) {
		common.ErrorResponse(c, 403, "Not the writer", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update notice", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Enable godoc
// @Summary      공지 활성화
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "공지 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /notice/enable/{idx} [put]
func (h *NoticeHandler) Enable(c *gin.Context) {
	h.toggle(c, h.service.Enable, common.ErrAlreadyActive, "Notice already active")
}

// Disable godoc
// @Summary      공지 비활성화
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "공지 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /notice/disable/{idx} [put]
func (h *NoticeHandler) Disable(c *gin.Context) {
	h.toggle(c, h.service.Disable, common.ErrAlreadyInactive, "Notice already inactive")
}

func (h *NoticeHandler) toggle(c *gin.Context, op func(int64) error, conflict error, conflictMsg string) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid notice idx", err)
		return
	}

	err = op(idx)
	if errors.Is(err, common.ErrNoticeNotFound) {
		common.ErrorResponse(c, 404, "Notice not found", err)
		return
	}
	if errors.Is(err, conflict) {
		common.ErrorResponse(c, 409, conflictMsg, err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update notice state", err)
		return
	}

	common.SuccessResponse(c, gin.H{"idx": idx}, nil)
}

// Remove godoc
// @Summary      공지 삭제
// @Tags         notices
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "공지 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /notice/remove/{idx} [delete]
func (h *NoticeHandler) Remove(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid notice idx", err)
		return
	}

	err = h.service.Remove(idx)
	if errors.Is(err, common.ErrNoticeNotFound) {
		common.ErrorResponse(c, 404, "Notice not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to delete notice", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
