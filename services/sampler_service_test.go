package services

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"quizbank/models"

	"gorm.io/gorm"
)

func seedTopic(t *testing.T, db *gorm.DB, questionCount, choiceCount int) []models.Question {
	t.Helper()
	questions, err := NewCatalogService(db).CreateQuiz(quizFixture(questionCount, choiceCount))
	if err != nil {
		t.Fatalf("seed quiz: %v", err)
	}
	return questions
}

func TestSampleQuestionsReturnsDistinctSubset(t *testing.T) {
	db := newTestDB(t)
	created := seedTopic(t, db, 3, 4)
	svc := NewSamplerService(db)

	sampled, err := svc.SampleQuestions("Algebra", 2)
	if err != nil {
		t.Fatalf("SampleQuestions: %v", err)
	}
	if len(sampled) != 2 {
		t.Fatalf("sampled %d questions, want 2", len(sampled))
	}

	createdIDs := make(map[string]bool, len(created))
	for _, q := range created {
		createdIDs[q.ID] = true
	}

	seen := make(map[string]bool, len(sampled))
	for _, q := range sampled {
		if seen[q.ID] {
			t.Fatalf("duplicate question id %s in one sample", q.ID)
		}
		seen[q.ID] = true
		if !createdIDs[q.ID] {
			t.Fatalf("sampled id %s was never created", q.ID)
		}
		if len(q.Choices) != 4 {
			t.Errorf("question %s has %d choices, want 4", q.ID, len(q.Choices))
		}
	}
}

func TestSampleQuestionsOverRequestReturnsAll(t *testing.T) {
	db := newTestDB(t)
	seedTopic(t, db, 3, 2)
	svc := NewSamplerService(db)

	sampled, err := svc.SampleQuestions("Algebra", 10)
	if err != nil {
		t.Fatalf("SampleQuestions: %v", err)
	}
	if len(sampled) != 3 {
		t.Fatalf("sampled %d questions, want all 3", len(sampled))
	}
}

func TestSampleQuestionsUnknownTopic(t *testing.T) {
	svc := NewSamplerService(newTestDB(t))

	if _, err := svc.SampleQuestions("Geometry", 2); !errors.Is(err, ErrTopicNotFound) {
		t.Fatalf("err = %v, want ErrTopicNotFound", err)
	}
}

func TestSampleQuestionsInvalidCount(t *testing.T) {
	db := newTestDB(t)
	seedTopic(t, db, 1, 2)
	svc := NewSamplerService(db)

	for _, count := range []int{0, -3} {
		if _, err := svc.SampleQuestions("Algebra", count); !errors.Is(err, ErrInvalidCount) {
			t.Errorf("count=%d: err = %v, want ErrInvalidCount", count, err)
		}
	}
}

func TestSampleQuestionsNeverExposesCorrectness(t *testing.T) {
	db := newTestDB(t)
	seedTopic(t, db, 3, 4)
	svc := NewSamplerService(db)

	sampled, err := svc.SampleQuestions("Algebra", 3)
	if err != nil {
		t.Fatalf("SampleQuestions: %v", err)
	}

	data, err := json.Marshal(sampled)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	body := strings.ToLower(string(data))
	if strings.Contains(body, "iscorrect") || strings.Contains(body, "is_correct") {
		t.Fatalf("serialized sample leaks correctness: %s", body)
	}
}

func TestSampleQuestionsPreservesChoiceOrder(t *testing.T) {
	db := newTestDB(t)
	seedTopic(t, db, 1, 4)
	svc := NewSamplerService(db)

	sampled, err := svc.SampleQuestions("Algebra", 1)
	if err != nil {
		t.Fatalf("SampleQuestions: %v", err)
	}
	if len(sampled) != 1 {
		t.Fatalf("sampled %d questions, want 1", len(sampled))
	}

	want := []string{"choice a", "choice b", "choice c", "choice d"}
	for i, c := range sampled[0].Choices {
		if c.Text != want[i] {
			t.Errorf("choice[%d] = %q, want %q", i, c.Text, want[i])
		}
	}
}

// Repeated single-question samples should reach every question in the topic;
// a selection biased to one row would fail this with overwhelming
// probability.
func TestSampleQuestionsCoversAllQuestions(t *testing.T) {
	db := newTestDB(t)
	created := seedTopic(t, db, 3, 2)
	svc := NewSamplerService(db)

	seen := make(map[string]bool)
	for i := 0; i < 100 && len(seen) < len(created); i++ {
		sampled, err := svc.SampleQuestions("Algebra", 1)
		if err != nil {
			t.Fatalf("SampleQuestions: %v", err)
		}
		if len(sampled) != 1 {
			t.Fatalf("sampled %d questions, want 1", len(sampled))
		}
		seen[sampled[0].ID] = true
	}

	if len(seen) != len(created) {
		t.Fatalf("100 single samples reached %d of %d questions", len(seen), len(created))
	}
}
