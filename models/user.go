package models

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"not null;default:'user'"`
	CreatedAt    time.Time `json:"created_at"`

	// Relationships
	Results []Result `json:"results,omitempty" gorm:"foreignKey:UserID"`
}
