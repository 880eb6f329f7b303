package services

import (
	"testing"

	"quizbank/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an in-memory sqlite database migrated with the full
// schema. A single connection keeps every query on the same in-memory
// store.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Subject{},
		&models.Topic{},
		&models.Question{},
		&models.Choice{},
		&models.ExamAttempt{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}

	return db
}

func quizFixture(questionCount, choiceCount int) *CreateQuizRequest {
	req := &CreateQuizRequest{
		SubjectName: "Math",
		TopicName:   "Algebra",
	}
	for i := 0; i < questionCount; i++ {
		q := CreateQuestionRequest{Text: "question " + string(rune('A'+i))}
		for j := 0; j < choiceCount; j++ {
			q.Choices = append(q.Choices, CreateChoiceRequest{
				Text:      "choice " + string(rune('a'+j)),
				IsCorrect: j == 0,
			})
		}
		req.Questions = append(req.Questions, q)
	}
	return req
}
