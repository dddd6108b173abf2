package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenExpiration is how long an email confirmation token stays valid
// after issuance.
const TokenExpiration = 5 * time.Minute

// EmailConfirmToken one-time token for verifying an email address
// (email_confirm_token table).
type EmailConfirmToken struct {
	TokenID     string    `gorm:"column:token_id;primaryKey;size:36" json:"token_id"`
	TargetEmail string    `gorm:"column:target_email;size:255;not null;index" json:"target_email"`
	ExpiredAt   time.Time `gorm:"column:expired_at;not null" json:"expired_at"`
	Confirmed   bool      `gorm:"column:confirmed;not null;default:false" json:"confirmed"`
}

func (EmailConfirmToken) TableName() string {
	return "email_confirm_token"
}

// NewEmailConfirmToken issues a token for the given address, expiring a
// fixed offset from now.
func NewEmailConfirmToken(targetEmail string) *EmailConfirmToken {
	return &EmailConfirmToken{
		TokenID:     uuid.NewString(),
		TargetEmail: targetEmail,
		ExpiredAt:   time.Now().Add(TokenExpiration),
	}
}

// Valid reports whether the supplied id matches this token and the token
// has not expired. It never mutates the token.
func (t *EmailConfirmToken) Valid(tokenID string) bool {
	if t.TokenID != tokenID {
		return false
	}
	return time.Now().Before(t.ExpiredAt)
}

// Confirm marks the token as used. Calling Confirm on an already-confirmed
// token is not guarded; validity is checked separately via Valid.
func (t *EmailConfirmToken) Confirm() {
	t.Confirmed = true
}
