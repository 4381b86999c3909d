package models

import "time"

// User represents an account that owns tasks.
type User struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	Username       string    `json:"username" gorm:"uniqueIndex;type:varchar(100);not null"`
	Email          string    `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	HashedPassword string    `json:"-" gorm:"type:varchar(255);not null"` // never serialised
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	IsAdmin        bool      `json:"is_admin" gorm:"not null;default:false"`
	Slug           string    `json:"slug" gorm:"type:text"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// CreateUserRequest is the body of POST /user/create.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=1,max=72"`
}

// UpdateUserRequest is the body of PUT /user/:user_id. Every field is written.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Email    string `json:"email" validate:"required,email"`
	IsActive bool   `json:"is_active"`
	IsAdmin  bool   `json:"is_admin"`
}
