package models

import "time"

// Result is an immutable record of one scored submission. Every call to
// submit appends a new row; rows are never updated afterwards.
type Result struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`
	QuizID    uint      `json:"quiz_id" gorm:"not null;index"`
	Score     int       `json:"score" gorm:"not null"`
	Total     int       `json:"total" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
