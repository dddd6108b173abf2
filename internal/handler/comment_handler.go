package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// CommentHandler handles HTTP requests for comments
type CommentHandler struct {
	service service.CommentService
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(service service.CommentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// ListByArticle godoc
// @Summary      댓글 목록 조회
// @Description  대상 컨텐츠의 활성화된 댓글을 등록순으로 조회합니다
// @Tags         comments
// @Produce      json
// @Param        category  query  string  true   "대상 종류 (NOTICE/QUESTION/ANSWER)"
// @Param        article   query  int     true   "대상 번호"
// @Param        page      query  int     false  "페이지 번호"  default(1)
// @Param        limit     query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.CommentResponse}
// @Router       /comment/list [get]
func (h *CommentHandler) ListByArticle(c *gin.Context) {
	category := domain.ArticleCategory(c.Query("category"))
	articleIdx := int64(ginutil.QueryInt(c, "article", 0))
	if category == "" || articleIdx == 0 {
		common.ErrorResponse(c, 400, "Missing category or article idx", nil)
		return
	}
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, meta, err := h.service.GetListByArticle(category, articleIdx, page, limit)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch comments", err)
		return
	}

	common.SuccessResponse(c, data, meta)
}

// Register godoc
// @Summary      댓글 등록
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CommentSaveRequest  true  "등록 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comment [post]
func (h *CommentHandler) Register(c *gin.Context) {
	var req domain.CommentSaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	idx, err := h.service.Register(&req)
	if writeValidationError(c, err) {
		return
	}
	switch {
	case errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, 404, "Writer not found", err)
	case errors.Is(err, common.ErrNoticeNotFound),
		errors.Is(err, common.ErrQuestionNotFound),
		errors.Is(err, common.ErrAnswerNotFound),
		errors.Is(err, common.ErrCommentNotFound):
		common.ErrorResponse(c, 404, "Comment target not found", err)
	case errors.Is(err, common.ErrQuestionInactive), errors.Is(err, common.ErrAnswerInactive):
		common.ErrorResponse(c, 409, "Comment target is inactive", err)
	case err != nil:
		common.ErrorResponse(c, 500, "Failed to create comment", err)
	default:
		common.CreatedResponse(c, gin.H{"idx": idx})
	}
}

// Modify godoc
// @Summary      댓글 수정
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.CommentUpdateRequest  true  "수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.CommentResponse}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comment/modify [put]
func (h *CommentHandler) Modify(c *gin.Context) {
	var req domain.CommentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Modify(&req)
	if writeValidationError(c, err) {
		return
	}
	if errors.Is(err, common.ErrCommentNotFound) {
		common.ErrorResponse(c, 404, "Comment not found", err)
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
		common.ErrorResponse(c, 500, "Failed to update comment", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Enable godoc
// @Summary      댓글 활성화
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "댓글 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /comment/enable/{idx} [put]
func (h *CommentHandler) Enable(c *gin.Context) {
	h.toggle(c, h.service.Enable, common.ErrAlreadyActive, "Comment already active")
}

// Disable godoc
// @Summary      댓글 비활성화
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "댓글 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /comment/disable/{idx} [put]
func (h *CommentHandler) Disable(c *gin.Context) {
	h.toggle(c, h.service.Disable, common.ErrAlreadyInactive, "Comment already inactive")
}

func (h *CommentHandler) toggle(c *gin.Context, op func(int64) error, conflict error, conflictMsg string) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid comment idx", err)
		return
	}

	err = op(idx)
	if errors.Is(err, common.ErrCommentNotFound) {
		common.ErrorResponse(c, 404, "Comment not found", err)
		return
	}
	if errors.Is(err, conflict) {
		common.ErrorResponse(c, 409, conflictMsg, err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update comment state", err)
		return
	}

	common.SuccessResponse(c, gin.H{"idx": idx}, nil)
}

// Remove godoc
// @Summary      댓글 삭제
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "댓글 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /comment/remove/{idx} [delete]
func (h *CommentHandler) Remove(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid comment idx", err)
		return
	}

	err = h.service.Remove(idx)
	if errors.Is(err, common.ErrCommentNotFound) {
		common.ErrorResponse(c, 404, "Comment not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to delete comment", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
