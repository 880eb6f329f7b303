package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Topic names are unique across the whole catalog, not per subject.
type Topic struct {
	ID        string    `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	SubjectID string    `json:"subjectId" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relationships
	Subject   Subject    `json:"subject,omitempty"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:TopicID;constraint:OnDelete:RESTRICT"`
}

func (t *Topic) BeforeCreate(_ *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
