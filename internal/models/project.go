package models

import "time"

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Status      string    `json:"status"` // "planning" | "in-progress" | "completed"
	Progress    int       `json:"progress"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// InsertProject is the create payload. ID and timestamps are always
// assigned by the store, never taken from the caller.
type InsertProject struct {
	Title       string  `json:"title" validate:"required,min=1"`
	Description *string `json:"description"`
	Status      string  `json:"status" validate:"required,oneof=planning in-progress completed"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

// UpdateProject carries a partial update. Nil fields are left untouched.
type UpdateProject struct {
	Title       *string `json:"title" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=planning in-progress completed"`
	Progress    *int    `json:"progress" validate:"omitempty,gte=0,lte=100"`
}

func (r *InsertProject) Validate() error {
	return validate.Struct(r)
}

func (r *UpdateProject) Validate() error {
	return validate.Struct(r)
}
