package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/common"
	"github.com/95Seo/gachicoding/internal/domain"
	"github.com/95Seo/gachicoding/internal/service"
)

// AuthHandler handles signup, login, token refresh and email confirmation
type AuthHandler struct {
	users    service.UserService
	auth     service.AuthService
	emailSvc service.EmailConfirmService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(users service.UserService, auth service.AuthService, emailSvc service.EmailConfirmService) *AuthHandler {
	return &AuthHandler{users: users, auth: auth, emailSvc: emailSvc}
}

// Signup godoc
// @Summary      회원 가입
// @Description  계정을 생성하고 이메일 인증 토큰을 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  domain.CreateUserRequest  true  "가입 요청"
// @Success      201  {object}  common.APIResponse{data=domain.UserResponse}
// @Failure      400  {object}  common.APIResponse
// @Failure      409  {object}  common.APIResponse
// @Router       /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req domain.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	data, err := h.users.Register(&req)
	if errors.Is(err, common.ErrDuplicateEmail) || errors.Is(err, common.ErrDuplicateNickname) {
		common.ErrorResponse(c, 409, err.Error(), err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to create account", err)
		return
	}

	common.CreatedResponse(c, data)
}

// Login godoc
// @Summary      로그인
// @Description  이메일/비밀번호를 검증하고 토큰 쌍을 발급합니다
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  service.LoginRequest  true  "로그인 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	pair, profile, err := h.auth.Login(&req)
	if errors.Is(err, common.ErrInvalidCredentials) {
		common.ErrorResponse(c, 401, "Invalid email or password", err)
		return
	}
	if errors.Is(err, common.ErrUnauthorized) {
		common.ErrorResponse(c, 403, "Account is not confirmed or is locked", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to log in", err)
		return
	}

	common.SuccessResponse(c, gin.H{"tokens": pair, "user": profile}, nil)
}

// Refresh godoc
// @Summary      토큰 재발급
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  handler.RefreshRequest  true  "재발급 요청"
// @Success      200  {object}  common.APIResponse
// @Failure      401  {object}  common.APIResponse
// @Router       /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	pair, err := h.auth.Refresh(req.RefreshToken)
	if errors.Is(err, common.ErrExpiredToken) {
		common.ErrorResponse(c, 401, "Refresh token expired", err)
		return
	}
	if errors.Is(err, common.ErrInvalidToken) || errors.Is(err, common.ErrUserNotFound) || errors.Is(err, common.ErrUnauthorized) {
		common.ErrorResponse(c, 401, "Invalid refresh token", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to refresh tokens", err)
		return
	}

	common.SuccessResponse(c, pair, nil)
}

// Confirm godoc
// @Summary      이메일 인증
// @Description  인증 토큰을 확인하고 계정을 활성화합니다
// @Tags         auth
// @Produce      json
// @Param        token  query  string  true  "인증 토큰"
// @Success      200  {object}  common.APIResponse
// @Failure      400  {object}  common.APIResponse
// @Router       /auth/confirm [get]
func (h *AuthHandler) Confirm(c *gin.Context) {
	tokenID := c.Query("token")
	if tokenID == "" {
		common.ErrorResponse(c, 400, "Missing token", nil)
		return
	}

	err := h.emailSvc.Confirm(tokenID)
	if errors.Is(err, common.ErrExpiredToken) {
		common.ErrorResponse(c, 400, "Confirmation token expired", err)
		return
	}
	if errors.Is(err, common.ErrInvalidToken) {
		common.ErrorResponse(c, 400, "Invalid confirmation token", err)
		return
	}
	if errors.Is(err, common.ErrUserNotFound) {
		common.ErrorResponse(c, 404, "Account not found", err)
		return
	}
	if err != nil {
		common.ErrorResponse(c, 500, "Failed to confirm email", err)
		return
	}

	common.SuccessResponse(c, gin.H{"confirmed": true}, nil)
}

// ResendConfirm godoc
// @Summary      인증 메일 재발송
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body  handler.ResendConfirmRequest  true  "재발송 요청"
// @Success      200  {object}  common.APIResponse
// @Router       /auth/confirm/resend [post]
func (h *AuthHandler) ResendConfirm(c *gin.Context) {
	var req ResendConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, 400, "Invalid request body", err)
		return
	}

	if _, err := h.emailSvc.Issue(req.Email); err != nil {
		common.ErrorResponse(c, 500, "Failed to issue confirmation token", err)
		return
	}

	common.SuccessResponse(c, gin.H{"sent": true}, nil)
}

// RefreshRequest token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// ResendConfirmRequest confirmation resend payload
type ResendConfirmRequest struct {
	Email string `json:"email" binding:"required,email"`
}
