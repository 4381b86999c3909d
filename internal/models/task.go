package models

import "time"

// Task represents a unit of work owned by a User.
type Task struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"type:varchar(200);not null"`
	Content   string    `json:"content" gorm:"type:text"`
	Priority  int       `json:"priority" gorm:"not null;default:0"`
	Completed bool      `json:"completed" gorm:"not null;default:false"`
	Slug      string    `json:"slug" gorm:"type:text"`
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateTaskRequest is the body of POST /tasks/create. The owner is passed
// as the user_id query parameter.
type CreateTaskRequest struct {
	Title    string `json:"title" validate:"required,min=1,max=200"`
	Content  string `json:"content" validate:"omitempty,max=2000"`
	Priority int    `json:"priority" validate:"gte=0"`
}

// UpdateTaskRequest is the body of PUT /tasks/update.
type UpdateTaskRequest struct {
	Title     string `json:"title" validate:"required,min=1,max=200"`
	Content   string `json:"content" validate:"omitempty,max=2000"`
	Priority  int    `json:"priority" validate:"gte=0"`
	Completed bool   `json:"completed"`
}
