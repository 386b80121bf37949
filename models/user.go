package models

import (
	"time"
)

// Role represents user role types
type Role string

const (
	RoleAdmin Role = "admin"
)

// User represents a reviewer account in the system
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Role      Role      `json:"role" gorm:"type:varchar(10);default:'admin'"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
