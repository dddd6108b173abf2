package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// AnswerHandler handles HTTP requests for answers
type AnswerHandler struct {
	service service.AnswerService
}

// NewAnswerHandler creates a new AnswerHandler
func NewAnswerHandler(service service.AnswerService) *AnswerHandler {
	return &AnswerHandler{service: service}
}

// ListByQuestion godoc
// @Summary      질문별 답변 목록 조회
// @Description  채택된 답변이 먼저, 이후 등록순으로 조회합니다
// @Tags         answers
// @Produce      json
// @Param        question  query  int  true   "질문 번호"
// @Param        page      query  int  false  "페이지 번호"  default(1)
// @Param        limit     query  int  false  "페이지당 항목 수"  default(20)
// @Success      200  {object}  common.APIResponse{data=[]domain.AnswerResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /answer/list [get]
func (h *AnswerHandler) ListByQuestion(c *gin.Context) {
	questionIdx := int64(ginutil.QueryInt(c, "question", 0))
	if questionIdx == 0 {
		common.ErrorResponse(c, 400, "Missing question idx", nil)
		return
	}
	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	data, meta, err := h.service.GetListByQuestion(questionIdx, page, limit)
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch answers", err)
		return
	}

	common.SuccessResponse(c, data, meta)
}

// Register godoc
// @Summary      답변 등록
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.AnswerSaveRequest  true  "등록 요청"
// @Success      201  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /answer [post]
func (h *AnswerHandler) Register(c *gin.Context) {
	var req domain.AnswerSaveRequest
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
	if errors.Is(err, common.ErrQuestionNotFound) {
		common.ErrorResponse(c, 404, "Question not found", err)
		return
	}
	if errors.Is(err, common.ErrQuestionInactive) {
		common.ErrorResponse(c, 409, "Question is inactive", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to create answer", err)
		return
	}

	common.CreatedResponse(c, gin.H{"idx": idx})
}

// Modify godoc
// @Summary      답변 수정
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.AnswerUpdateRequest  true  "수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.AnswerResponse}
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /answer/modify [put]
func (h *AnswerHandler) Modify(c *gin.Context) {
	var req domain.AnswerUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Modify(&req)
	if writeValidationError(c, err) {
		return
	}
	if errors.Is(err, common.ErrAnswerNotFound) {
		common.ErrorResponse(c, 404, "Answer not found", err)
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
		common.ErrorResponse(c, 500, "Failed to update answer", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Select godoc
// @Summary      답변 채택
// @Description  질문 작성자가 답변을 채택합니다. 질문은 해결 상태가 되며 한 번만 가능합니다
// @Tags         answers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body  domain.AnswerSelectRequest  true  "채택 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /answer/select [put]
func (h *AnswerHandler) Select(c *gin.Context) {
	var req domain.AnswerSelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	err := h.service.Select(&req)
	switch {
	case errors.Is(err, common.ErrAnswerNotFound):
		common.ErrorResponse(c, 404, "Answer not found", err)
	case errors.Is(err, common.ErrQuestionNotFound):
		common.ErrorResponse(c, 404, "Question not found", err)
	case errors.Is(err, common.ErrUserNotFound):
		common.ErrorResponse(c, 404, "Requester not found", err)
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, 403, "Only the question writer may select an answer", err)
	case errors.Is(err, common.ErrQuestionInactive):
		common.ErrorResponse(c, 409, "Question is inactive", err)
	case errors.Is(err, common.ErrAnswerInactive):
		common.ErrorResponse(c, 409, "Answer is inactive", err)
	case errors.Is(err, common.ErrQuestionAlreadySolved):
		common.ErrorResponse(c, 409, "Question already solved", err)
	case errors.Is(err, common.ErrAnswerAlreadySelected):
		common.ErrorResponse(c, 409, "Answer already selected", err)
	case err != nil:
		common.ErrorResponse(c, 500, "Failed to select answer", err)
	default:
		common.SuccessResponse(c, gin.H{"selected": true}, nil)
	}
}

// Enable godoc
// @Summary      답변 활성화
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "답변 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /answer/enable/{idx} [put]
func (h *AnswerHandler) Enable(c *gin.Context) {
	h.toggle(c, h.service.Enable, common.ErrAlreadyActive, "Answer already active")
}

// Disable godoc
// @Summary      답변 비활성화
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "답변 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /answer/disable/{idx} [put]
func (h *AnswerHandler) Disable(c *gin.Context) {
	h.toggle(c, h.service.Disable, common.ErrAlreadyInactive, "Answer already inactive")
}

func (h *AnswerHandler) toggle(c *gin.Context, op func(int64) error, conflict error, conflictMsg string) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid answer idx", err)
		return
	}

	err = op(idx)
	if errors.Is(err, common.ErrAnswerNotFound) {
		common.ErrorResponse(c, 404, "Answer not found", err)
		return
	}
	if errors.Is(err, conflict) {
		common.ErrorResponse(c, 409, conflictMsg, err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update answer state", err)
		return
	}

	common.SuccessResponse(c, gin.H{"idx": idx}, nil)
}

// Remove godoc
// @Summary      답변 삭제
// @Tags         answers
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "답변 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      404  {object}  common.APIResponse
// @Router       /answer/remove/{idx} [delete]
func (h *AnswerHandler) Remove(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid answer idx", err)
		return
	}

	err = h.service.Remove(idx)
	if errors.Is(err, common.ErrAnswerNotFound) {
		common.ErrorResponse(c, 404, "Answer not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to delete answer", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
