package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamAttempt is written once per submission and never mutated.
type ExamAttempt struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Score     int       `json:"score" gorm:"not null"`
	Date      time.Time `json:"date" gorm:"not null"`
	UserID    string    `json:"userId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`

	// Relationships
	User User `json:"user,omitempty"`
}

func (a *ExamAttempt) BeforeCreate(_ *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	if a.Date.IsZero() {
		a.Date = time.Now().UTC()
	}
	return nil
}
