package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// QuestionHandler handles HTTP requests for questions
type QuestionHandler struct {
	service service.QuestionService
}

// NewQuestionHandler creates a new QuestionHandler
func NewQuestionHandler(service service.QuestionService) *QuestionHandler {
	return &QuestionHandler{service: service}
}

// List godoc
// @Summary      질문 목록 조회
// @Description  활성화된 질문을 키워드 검색하여 최신순으로 조회합니다
// @Tags         questions
// @Produce      json
// @Param        keyword  query  string  false  "검색 키워드"
// @Param        page     query  int     false  "페이지 번호"  default(1)
// @Param        limit    query  int     false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.QuestionResponse}
// @Router       /question/list [get]
func (h *QuestionHandler) List(c *gin.Context) {
	keyword := c.Query("keyword")
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, meta, err := h.service.GetList(keyword, page, limit)
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch questions", err)
		return
	}

	common.SuccessResponse(c, data, meta)
}

// Detail godoc
// @Summary      질문 상세 조회
// @Tags         questions
// @Produce      json
// @Param        idx  path  int  true  "질문 번호"
// @Success      200  {object}  common.APIResponse{data=domain.QuestionResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /question/{idx} [get]
func (h *QuestionHandler) Detail(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid question idx", err)
		return
	}

	data, err := h.service.GetDetail(idx)
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch question", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Register godoc
// @Summary      질문 등록
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.QuestionSaveRequest  true  "등록 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /question [post]
func (h *QuestionHandler) Register(c *gin.Context) {
	var req domain.QuestionSaveRequest
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
		common.ErrorResponse(c, 500, "Failed to create question", err)
		return
	}

	common.CreatedResponse(c, gin.H{"idx": idx})
}

// Modify godoc
// @Summary      질문 수정
// @Tags         questions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.QuestionUpdateRequest  true  "수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.QuestionResponse}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /question/modify [put]
//
//nolint:dupl // notice and question modify flows handle different types
func (h *QuestionHandler) Modify(c *gin.Context) {
	var req domain.QuestionUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Modify(&req)
	if writeValidationError(c, err) {
		return
	}
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
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
		common.ErrorResponse(c, 500, "Failed to update question", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Enable godoc
// @Summary      질문 활성화
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "질문 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /question/enable/{idx} [put]
func (h *QuestionHandler) Enable(c *gin.Context) {
	h.toggle(c, h.service.Enable, common.ErrAlreadyActive, "Question already active")
}

// Disable godoc
// @Summary      질문 비활성화
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "질문 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /question/disable/{idx} [put]
func (h *QuestionHandler) Disable(c *gin.Context) {
	h.toggle(c, h.service.Disable, common.ErrAlreadyInactive, "Question already inactive")
}

func (h *QuestionHandler) toggle(c *gin.Context, op func(int64) error, conflict error, conflictMsg string) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid question idx", err)
		return
	}

	err = op(idx)
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
		return
	}
	if errors.Is(err, conflict) {
		common.ErrorResponse(c, 409, conflictMsg, err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update question state", err)
		return
	}

	common.SuccessResponse(c, gin.H{"idx": idx}, nil)
}

// Remove godoc
// @Summary      질문 삭제
// @Description  질문과 그에 달린 답변/댓글/태그/파일을 함께 삭제합니다
// @Tags         questions
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "질문 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /question/remove/{idx} [delete]
func (h *QuestionHandler) Remove(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid question idx", err)
		return
	}

	err = h.service.Remove(idx)
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to delete question", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
