package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User mirrors an account owned by the external identity provider.
// There is no password column: credential verification is delegated
// entirely to the provider.
type User struct {
	ID         string    `json:"id" gorm:"type:uuid;primaryKey"`
	FirebaseID string    `json:"firebaseId" gorm:"uniqueIndex;not null"`
	Email      string    `json:"email" gorm:"not null"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relationships
	Attempts []ExamAttempt `json:"attempts,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
