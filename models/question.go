package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList stores an ordered list of choices as a JSON-encoded text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("cannot scan %T into StringList", value)
	}
}

type Question struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	QuizID       uint       `json:"quiz_id" gorm:"not null;index"`
	Text         string     `json:"text" gorm:"not null"`
	Choices      StringList `json:"choices" gorm:"type:text;not null"`
	CorrectIndex int        `json:"correct_index" gorm:"not null"`
}
