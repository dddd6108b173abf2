package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/middleware"
	"github.com/95Seo/gachicoding/internal/service"
	"github.com/95Seo/gachicoding/pkg/ginutil"
)

// UserHandler handles HTTP requests for user accounts
type UserHandler struct {
	service service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Me godoc
// @Summary      내 정보 조회
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  common.APIResponse{data=domain.UserResponse}
// @Failure      404  {object}  common.APIResponse
// @Router       /user/me [get]
func (h *UserHandler) Me(c *gin.Context) {
	email := middleware.GetUserEmail(c)

	data, err := h.service.GetByEmail(email)
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "User not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to fetch user", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Update godoc
// @Summary      회원 정보 수정
// @Description  닉네임/비밀번호 등 변경 가능 필드를 수정합니다 (본인만 가능)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        idx      path  int                       true  "회원 번호"
// @Param        request  body  domain.UpdateUserRequest  true  "수정 요청"
// @Success      200  {object}  common.APIResponse{data=domain.UserResponse}
// @Failure      403  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /user/{idx} [put]
func (h *UserHandler) Update(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid user idx", err)
		return
	}

	var req domain.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.service.Update(middleware.GetUserEmail(c), idx, &req)
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "User not found", err)
		return
	}
	if errors.Is(err, common.ErrUnauthorized) {
		common.ErrorResponse(c, 403, "Not the account owner", err)
		return
	}
	if errors.Is(err, common.ErrDuplicateNickname) {
		common.ErrorResponse(c, 409, "Nickname already in use", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to update user", err)
		return
	}

	common.SuccessResponse(c, data, nil)
}

// Remove godoc
// @Summary      회원 탈퇴
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        idx  path  int  true  "회원 번호"
// @Success      200  {object}  common.APIResponse
// @Failure      403  {object}  common.APIResponse
// @Router       /user/{idx} [delete]
func (h *UserHandler) Remove(c *gin.Context) {
	idx, err := ginutil.ParamInt64(c, "idx")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid user idx", err)
		return
	}

	err = h.service.Remove(middleware.GetUserEmail(c), idx)
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "User not found", err)
		return
	}
	if errors.Is(err, common.ErrUnauthorized) {
		common.ErrorResponse(c, 403, "Not the account owner", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to delete user", err)
		return
	}

	common.SuccessResponse(c, gin.H{"deleted": true}, nil)
}
