package common

import "errors"

// Business logic errors
var (
	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateEmail     = errors.New("email already in use")
	ErrDuplicateNickname  = errors.New("nickname already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")

	// Content errors
	ErrNoticeNotFound   = errors.New("notice not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrAnswerNotFound   = errors.New("answer not found")
	ErrCommentNotFound  = errors.New("comment not found")

	// Activation toggle errors (same-state toggles are rejected, not ignored)
	ErrAlreadyActive   = errors.New("already active")
	ErrAlreadyInactive = errors.New("already inactive")

	// Answer selection workflow errors
	ErrQuestionInactive      = errors.New("question is inactive")
	ErrAnswerInactive        = errors.New("answer is inactive")
	ErrQuestionAlreadySolved = errors.New("question already solved")
	ErrAnswerAlreadySelected = errors.New("answer already selected")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")

	// File errors
	ErrFileNotFound       = errors.New("file not found")
	ErrStorageUnavailable = errors.New("object storage unavailable")
)
