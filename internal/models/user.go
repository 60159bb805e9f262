package models

import "time"

// User is an account record. PasswordHash is a bcrypt hash and is never
// serialized.
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

type InsertUser struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=8"`
}

func (r *InsertUser) Validate() error {
	return validate.Struct(r)
}
