package domain

import (
	"time"
)

// RoleType user role
type RoleType string

const (
	RoleUser  RoleType = "ROLE_USER"
	RoleAdmin RoleType = "ROLE_ADMIN"
)

// User domain model (user table)
type User struct {
	Idx       int64     `gorm:"column:user_idx;primaryKey;autoIncrement" json:"idx"`
	Name      string    `gorm:"column:user_name;not null" json:"name"`
	Nick      string    `gorm:"column:user_nick;uniqueIndex;not null" json:"nick"`
	Email     string    `gorm:"column:user_email;uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"column:user_password;not null" json:"-"`
	Enabled   bool      `gorm:"column:user_enabled;not null;default:false" json:"enabled"`
	Locked    bool      `gorm:"column:user_locked;not null;default:false" json:"locked"`
	Role      RoleType  `gorm:"column:user_role;not null;default:ROLE_USER" json:"role"`
	CreatedAt time.Time `gorm:"column:user_created_at" json:"created_at"`
}

func (User) TableName() string {
	return "user"
}

// IsMe reports whether the given email identifies this user.
func (u *User) IsMe(email string) bool {
	return u.Email == email
}

// Enable marks the account as email-confirmed.
func (u *User) Enable() {
	u.Enabled = true
}

// ChangePassword replaces the stored (already hashed) credential.
func (u *User) ChangePassword(hashed string) {
	u.Password = hashed
}

// UpdateNick replaces the nickname.
func (u *User) UpdateNick(nick string) {
	u.Nick = nick
}

// UserResponse public projection of a user
type UserResponse struct {
	Idx       int64    `json:"idx"`
	Name      string   `json:"name"`
	Nick      string   `json:"nick"`
	Email     string   `json:"email"`
	Role      RoleType `json:"role"`
	Enabled   bool     `json:"enabled"`
	CreatedAt string   `json:"created_at"`
}

// ToResponse converts a User to its public projection
func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		Idx:       u.Idx,
		Name:      u.Name,
		Nick:      u.Nick,
		Email:     u.Email,
		Role:      u.Role,
		Enabled:   u.Enabled,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}

// CreateUserRequest signup request
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Nick     string `json:"nick" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// UpdateUserRequest mutable-field update request; only the owning user may
// apply it. Zero values leave the corresponding field untouched.
type UpdateUserRequest struct {
	Nick     string `json:"nick"`
	Password string `json:"password"`
	Locked   *bool  `json:"locked"`
	Enabled  *bool  `json:"enabled"`
}
