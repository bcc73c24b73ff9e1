package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent     UserRole = "student"
	RoleDistributor UserRole = "distributor"
)

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role UserRole) bool {
	return role == RoleStudent || role == RoleDistributor
}

// User is a registered account. Accounts are created at signup and never
// updated or deleted by this service.
type User struct {
	ID           uint     `json:"id" gorm:"primaryKey"`
	Name         string   `json:"name" gorm:"not null;size:100"`
	Email        string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	PasswordHash string   `json:"-" gorm:"not null;size:255"`
	Role         UserRole `json:"role" gorm:"not null;size:20;default:student"`

	// Profile info
	Photo *string `json:"photo" gorm:"type:text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
