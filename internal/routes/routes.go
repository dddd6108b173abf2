package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/95Seo/gachicoding/internal/handler"
	"github.com/95Seo/gachicoding/internal/middleware"
	"github.com/95Seo/gachicoding/pkg/jwt"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	noticeHandler *handler.NoticeHandler,
	questionHandler *handler.QuestionHandler,
	answerHandler *handler.AnswerHandler,
	commentHandler *handler.CommentHandler,
	fileHandler *handler.FileHandler,
	jwtManager *jwt.Manager,
) {
	api := router.Group("/api")
	authed := middleware.JWTAuth(jwtManager)

	// 인증 (auth endpoints are public)
	auth := api.Group("/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/refresh", authHandler.Refresh)
	auth.GET("/confirm", authHandler.Confirm)
	auth.POST("/confirm/resend", authHandler.ResendConfirm)

	// 회원
	user := api.Group("/user")
	user.GET("/me", authed, userHandler.Me)
	user.PUT("/:idx", authed, userHandler.Update)
	user.DELETE("/:idx", authed, userHandler.Remove)

	// 공지
	notice := api.Group("/notice")
	{
		notice.GET("/list", noticeHandler.List)
		notice.GET("/:idx", noticeHandler.Detail)
		notice.POST("", authed, noticeHandler.Register)
		notice.PUT("/modify", authed, noticeHandler.Modify)
		notice.PUT("/enable/:idx", authed, noticeHandler.Enable)
		notice.PUT("/disable/:idx", authed, noticeHandler.Disable)
		notice.DELETE("/remove/:idx", authed, noticeHandler.Remove)
	}

	// 질문
	question := api.Group("/question")
	{
		question.GET("/list", questionHandler.List)
		question.GET("/:idx", questionHandler.Detail)
		question.POST("", authed, questionHandler.Register)
		question.PUT("/modify", authed, questionHandler.Modify)
		question.PUT("/enable/:idx", authed, questionHandler.Enable)
		question.PUT("/disable/:idx", authed, questionHandler.Disable)
		question.DELETE("/remove/:idx", authed, questionHandler.Remove)
	}

	// 답변
	answer := api.Group("/answer")
	{
		answer.GET("/list", answerHandler.ListByQuestion)
		answer.POST("", authed, answerHandler.Register)
		answer.PUT("/modify", authed, answerHandler.Modify)
		answer.PUT("/select", authed, answerHandler.Select)
		answer.PUT("/enable/:idx", authed, answerHandler.Enable)
		answer.PUT("/disable/:idx", authed, answerHandler.Disable)
		answer.DELETE("/remove/:idx", authed, answerHandler.Remove)
	}

	// 댓글
	comment := api.Group("/comment")
	{
		comment.GET("/list", commentHandler.ListByArticle)
		comment.POST("", authed, commentHandler.Register)
		comment.PUT("/modify", authed, commentHandler.Modify)
		comment.PUT("/enable/:idx", authed, commentHandler.Enable)
		comment.PUT("/disable/:idx", authed, commentHandler.Disable)
		comment.DELETE("/remove/:idx", authed, commentHandler.Remove)
	}

	// 첨부파일
	files := api.Group("/files")
	{
		files.GET("/download/:idx", fileHandler.Download)
		files.GET("/:category/:idx", fileHandler.ListByArticle)
		files.POST("/:category/:idx", authed, fileHandler.Upload)
	}
}
