package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"quizbank/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const leaderboardTTL = 30 * time.Second

// Cache is the small slice of Redis the leaderboard needs. Get reports a
// miss with ok=false rather than an error.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

type redisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", false, nil
		}
		return "", false, err
	}
	return value, true, nil
}

func (c *redisCache) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

type LeaderboardEntry struct {
	UserID    string `json:"userId"`
	Email     string `json:"email"`
	BestScore int    `json:"bestScore"`
}

// LeaderboardService aggregates the best attempt score per user. Results are
// cached with a short TTL; cache trouble degrades to the database query and
// is logged, never surfaced.
type LeaderboardService struct {
	db    *gorm.DB
	cache Cache
}

func NewLeaderboardService(db *gorm.DB, cache Cache) *LeaderboardService {
	return &LeaderboardService{db: db, cache: cache}
}

func (s *LeaderboardService) TopScores(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit < 1 {
		limit = 10
	}

	key := fmt.Sprintf("leaderboard:top:%d", limit)
	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, key); err != nil {
			log.Printf("leaderboard cache read failed: %v", err)
		} else if ok {
			var entries []LeaderboardEntry
			if err := json.Unmarshal([]byte(cached), &entries); err != nil {
				log.Printf("leaderboard cache entry corrupt, refetching: %v", err)
			} else {
				return entries, nil
			}
		}
	}

	var entries []LeaderboardEntry
	err := s.db.Model(&models.ExamAttempt{}).
		Select("exam_attempts.user_id AS user_id, users.email AS email, MAX(exam_attempts.score) AS best_score").
		Joins("JOIN users ON users.id = exam_attempts.user_id").
		Group("exam_attempts.user_id, users.email").
		Order("best_score DESC").
		Limit(limit).
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(entries); err == nil {
			if err := s.cache.Set(ctx, key, string(data), leaderboardTTL); err != nil {
				log.Printf("leaderboard cache write failed: %v", err)
			}
		}
	}

	return entries, nil
}
