package services

import "errors"

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidCount  = errors.New("count must be a positive integer")
	ErrNoQuestions   = errors.New("quiz must contain at least one question")
	ErrNoChoices     = errors.New("question must contain at least one choice")
	ErrEmptyName     = errors.New("subject and topic names must not be empty")
	ErrInvalidToken  = errors.New("invalid or expired token")
)
