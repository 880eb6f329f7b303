package services

import (
	"fmt"
	"strings"

	"quizbank/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CatalogService owns subject/topic resolution and bulk question creation.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

type CreateQuizRequest struct {
	SubjectName string                  `json:"subjectName" binding:"required"`
	TopicName   string                  `json:"topicName" binding:"required"`
	Questions   []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

type CreateQuestionRequest struct {
	Text    string                `json:"text" binding:"required"`
	Choices []CreateChoiceRequest `json:"choices" binding:"required,min=1,dive"`
}

type CreateChoiceRequest struct {
	Text      string `json:"text" binding:"required"`
	IsCorrect bool   `json:"isCorrect"`
}

// CreateQuiz resolves (or creates) the subject and topic by name, then
// creates every question with its choices. Each question+choices pair is
// one transaction; there is no transaction spanning the whole call, so a
// failure partway leaves earlier questions committed.
func (s *CatalogService) CreateQuiz(req *CreateQuizRequest) ([]models.Question, error) {
	subjectName := strings.TrimSpace(req.SubjectName)
	topicName := strings.TrimSpace(req.TopicName)
	if subjectName == "" || topicName == "" {
		return nil, ErrEmptyName
	}
	if len(req.Questions) == 0 {
		return nil, ErrNoQuestions
	}
	for _, qReq := range req.Questions {
		if strings.TrimSpace(qReq.Text) == "" {
			return nil, ErrNoQuestions
		}
		if len(qReq.Choices) == 0 {
			return nil, ErrNoChoices
		}
	}

	subject, err := s.upsertSubject(subjectName)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	topic, err := s.upsertTopic(topicName, subject.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to create quiz: %w", err)
	}

	created := make([]models.Question, 0, len(req.Questions))
	for _, qReq := range req.Questions {
		question := models.Question{
			Text:    qReq.Text,
			TopicID: topic.ID,
		}

		err := s.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&question).Error; err != nil {
				return err
			}

			for i, cReq := range qReq.Choices {
				choice := models.Choice{
					Text:       cReq.Text,
					IsCorrect:  cReq.IsCorrect,
					QuestionID: question.ID,
					Position:   i,
				}

				if err := tx.Create(&choice).Error; err != nil {
					return err
				}
				question.Choices = append(question.Choices, choice)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create quiz: %w", err)
		}

		created = append(created, question)
	}

	return created, nil
}

// upsertSubject inserts the subject unless a row with the same name already
// exists; the unique constraint arbitrates concurrent creators and the
// winning row is read back afterwards. No read-then-write check in here.
func (s *CatalogService) upsertSubject(name string) (*models.Subject, error) {
	row := models.Subject{Name: name}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var subject models.Subject
	if err := s.db.Where("name = ?", name).First(&subject).Error; err != nil {
		return nil, err
	}
	return &subject, nil
}

// upsertTopic behaves like upsertSubject. When the topic name already exists
// under a different subject the existing association is left untouched:
// topic names are globally unique and the first creator wins.
func (s *CatalogService) upsertTopic(name, subjectID string) (*models.Topic, error) {
	row := models.Topic{Name: name, SubjectID: subjectID}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var topic models.Topic
	if err := s.db.Where("name = ?", name).First(&topic).Error; err != nil {
		return nil, err
	}
	return &topic, nil
}
