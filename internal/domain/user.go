package domain

import (
	"time"

	"github.com/google/uuid"
)

// User owns one profile and its entries. Timezone decides what "today" is
// for every prediction made on the user's behalf.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Timezone  string    `gorm:"type:varchar(64);not null;default:'UTC'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Location resolves the user's timezone, falling back to UTC.
func (u *User) Location() *time.Location {
	if u == nil || u.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(u.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// CreateUserRequest is the request body for creating a user
type CreateUserRequest struct {
	Timezone string `json:"timezone" validate:"required,timezone" example:"Europe/Prague"`
}

// UserResponse is the response body for user endpoints
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Timezone  string    `json:"timezone"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:        u.ID,
		Timezone:  u.Timezone,
		CreatedAt: u.CreatedAt,
	}
}
