package models

import "time"

/** --------------------ENTITIES-------------------- */

// User is an administrative account able to obtain API tokens. Quiz takers
// are identified only by the opaque user_id carried in user-answer rows and
// are not modeled here.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"column:username;size:64;not null;uniqueIndex" json:"username"`
	Email     string    `gorm:"column:email;size:256" json:"email"`
	Password  string    `gorm:"column:password;size:128;not null" json:"-"`
	IsAdmin   bool      `gorm:"column:is_admin;not null;default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

/** -------------------- DTOs -------------------- */

// LoginRequest represents the credentials for obtaining a token
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the signed JWT and the account it belongs to
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UserResponse is the serialized admin account
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}
