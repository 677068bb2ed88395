package model

import (
	"time"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Username       string    `json:"username" gorm:"not null;uniqueIndex"`
	Email          *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	FullName       *string   `json:"full_name,omitempty"`
	HashedPassword string    `json:"-" gorm:"not null"`
	Role           string    `json:"role" gorm:"not null;default:'user'"`
	IsActive       bool      `json:"is_active" gorm:"not null;default:true"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// IsAdmin is the single capability check used by every mutating endpoint.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
