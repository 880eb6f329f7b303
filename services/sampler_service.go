package services

import (
	"errors"
	"math/rand/v2"

	"quizbank/models"

	"gorm.io/gorm"
)

// SamplerService serves randomized question sets for exam taking.
type SamplerService struct {
	db *gorm.DB
}

func NewSamplerService(db *gorm.DB) *SamplerService {
	return &SamplerService{db: db}
}

// SampledQuestion is the exam-taking view of a question. It deliberately has
// no correctness field anywhere, so it cannot leak answers regardless of how
// it is serialized.
type SampledQuestion struct {
	ID      string          `json:"id"`
	Text    string          `json:"text"`
	TopicID string          `json:"topicId"`
	Choices []SampledChoice `json:"choices"`
}

type SampledChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// SampleQuestions returns up to count distinct questions from the topic,
// chosen by a uniform random sample without replacement. When count exceeds
// the number of stored questions every question is returned. Output order is
// whatever the shuffle produced.
func (s *SamplerService) SampleQuestions(topicName string, count int) ([]SampledQuestion, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	var topic models.Topic
	if err := s.db.Where("name = ?", topicName).First(&topic).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	var ids []string
	if err := s.db.Model(&models.Question{}).Where("topic_id = ?", topic.ID).Pluck("id", &ids).Error; err != nil {
		return nil, err
	}

	// Fisher-Yates over the eligible ids, then take the prefix. Every
	// question has equal inclusion probability.
	rand.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})
	if count < len(ids) {
		ids = ids[:count]
	}

	if len(ids) == 0 {
		return []SampledQuestion{}, nil
	}

	var questions []models.Question
	err := s.db.Where("id IN ?", ids).
		Preload("Choices", func(db *gorm.DB) *gorm.DB {
			return db.Order("choices.position")
		}).
		Find(&questions).Error
	if err != nil {
		return nil, err
	}

	// Reorder the rows into the shuffled order; the IN clause returns them
	// in whatever order the store likes.
	byID := make(map[string]models.Question, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}

	sampled := make([]SampledQuestion, 0, len(ids))
	for _, id := range ids {
		q, ok := byID[id]
		if !ok {
			continue
		}

		choices := make([]SampledChoice, 0, len(q.Choices))
		for _, c := range q.Choices {
			choices = append(choices, SampledChoice{ID: c.ID, Text: c.Text})
		}

		sampled = append(sampled, SampledQuestion{
			ID:      q.ID,
			Text:    q.Text,
			TopicID: q.TopicID,
			Choices: choices,
		})
	}

	return sampled, nil
}
