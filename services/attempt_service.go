package services

import (
	"errors"

	"quizbank/models"

	"gorm.io/gorm"
)

// AttemptService records scored exam submissions.
type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

// RecordAttempt persists one immutable attempt row for the user. The date is
// server-assigned at creation. Score bounds are the caller's policy; none
// are enforced here.
func (s *AttemptService) RecordAttempt(userID string, score int) (*models.ExamAttempt, error) {
	var user models.User
	if err := s.db.Select("id").Where("id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	attempt := models.ExamAttempt{
		Score:  score,
		UserID: userID,
	}

	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, err
	}

	return &attempt, nil
}

// GetAttempt reads one attempt back by id.
func (s *AttemptService) GetAttempt(id string) (*models.ExamAttempt, error) {
	var attempt models.ExamAttempt
	if err := s.db.Where("id = ?", id).First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// ListUserAttempts returns a user's attempts, most recent first.
func (s *AttemptService) ListUserAttempts(userID string) ([]models.ExamAttempt, error) {
	var attempts []models.ExamAttempt
	err := s.db.Where("user_id = ?", userID).
		Order("date DESC").
		Find(&attempts).Error
	return attempts, err
}
