package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quizbank/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	catalogService *services.CatalogService
	samplerService *services.SamplerService
}

func NewQuizHandler(catalogService *services.CatalogService, samplerService *services.SamplerService) *QuizHandler {
	return &QuizHandler{
		catalogService: catalogService,
		samplerService: samplerService,
	}
}

func (h *QuizHandler) CreateQuiz(c *gin.Context) {
	var req services.CreateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	questions, err := h.catalogService.CreateQuiz(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyName),
			errors.Is(err, services.ErrNoQuestions),
			errors.Is(err, services.ErrNoChoices):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			log.Printf("create quiz failed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create quiz"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "quiz created successfully",
		"questions": questions,
	})
}

func (h *QuizHandler) RandomQuestions(c *gin.Context) {
	topicName := c.Query("topicName")
	countParam := c.Query("count")
	if topicName == "" || countParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topicName and count query parameters are required"})
		return
	}

	count, err := strconv.Atoi(countParam)
	if err != nil || count < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "count must be a positive integer"})
		return
	}

	questions, err := h.samplerService.SampleQuestions(topicName, count)
	if err != nil {
		if errors.Is(err, services.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "topic not found"})
			return
		}
		log.Printf("sample questions failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch questions"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
