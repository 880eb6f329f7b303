package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Choice struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	Text       string    `json:"text" gorm:"not null"`
	IsCorrect  bool      `json:"isCorrect" gorm:"not null;default:false"`
	QuestionID string    `json:"questionId" gorm:"type:uuid;not null;index"`
	Position   int       `json:"position" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relationships
	Question Question `json:"question,omitempty"`
}

func (c *Choice) BeforeCreate(_ *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
