package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"quizbank/services"

	"github.com/gin-gonic/gin"
)

type AttemptHandler struct {
	attemptService     *services.AttemptService
	leaderboardService *services.LeaderboardService
}

func NewAttemptHandler(attemptService *services.AttemptService, leaderboardService *services.LeaderboardService) *AttemptHandler {
	return &AttemptHandler{
		attemptService:     attemptService,
		leaderboardService: leaderboardService,
	}
}

type SubmitAttemptRequest struct {
	UserID string `json:"userId" binding:"required"`
	Score  *int   `json:"score" binding:"required"`
}

func (h *AttemptHandler) SubmitAttempt(c *gin.Context) {
	var req SubmitAttemptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	attempt, err := h.attemptService.RecordAttempt(req.UserID, *req.Score)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("record attempt failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to record attempt"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "attempt recorded successfully",
		"attempt": attempt,
	})
}

func (h *AttemptHandler) Leaderboard(c *gin.Context) {
	limit := 10
	if param := c.Query("limit"); param != "" {
		parsed, err := strconv.Atoi(param)
		if err != nil || parsed < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = parsed
	}

	entries, err := h.leaderboardService.TopScores(c.Request.Context(), limit)
	if err != nil {
		log.Printf("leaderboard fetch failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch leaderboard"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
