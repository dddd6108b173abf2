package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewEmailConfirmToken(t *testing.T) {
	token := NewEmailConfirmToken("a@test.com")

	assert.NotEmpty(t, token.TokenID)
	assert.Equal(t, "a@test.com", token.TargetEmail)
	assert.False(t, token.Confirmed)
	assert.WithinDuration(t, time.Now().Add(TokenExpiration), token.ExpiredAt, time.Second)
}

func TestEmailConfirmToken_Valid(t *testing.T) {
	token := NewEmailConfirmToken("a@test.com")

	assert.True(t, token.Valid(token.TokenID))
	assert.False(t, token.Valid("not-the-id"))
}

func TestEmailConfirmToken_ValidExpired(t *testing.T) {
	token := NewEmailConfirmToken("a@test.com")
	token.ExpiredAt = time.Now().Add(-time.Minute)

	assert.False(t, token.Valid(token.TokenID))
	// a failed check must not mutate the token
	assert.False(t, token.Confirmed)
}

func TestEmailConfirmToken_Confirm(t *testing.T) {
	token := NewEmailConfirmToken("a@test.com")

	token.Confirm()

	assert.True(t, token.Confirmed)
}
