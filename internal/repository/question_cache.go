package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"exam-service/internal/models"

	"github.com/redis/go-redis/v9"
)

// QuestionCache is a read-through cache in front of the question collection.
// Every answer submission resolves its question row, so the hot path reads
// redis first. Cache writes are best-effort: a redis failure is logged and
// the caller still gets the mongo row. Invalidation is delete-on-update with
// a TTL backstop.
type QuestionCache struct {
	client *redis.Client
	repo   *QuestionRepository
	ttl    time.Duration
}

func NewQuestionCache(client *redis.Client, repo *QuestionRepository) *QuestionCache {
	return &QuestionCache{client: client, repo: repo, ttl: 24 * time.Hour}
}

func cacheKey(id string) string { return "exam:question:" + id }

func (c *QuestionCache) FindByID(ctx context.Context, id string) (*models.Question, error) {
	if c.client != nil {
		raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
		if err == nil {
			var q models.Question
			if err := json.Unmarshal(raw, &q); err == nil {
				return &q, nil
			}
			log.Printf("question cache: bad payload for %s, falling through", id)
		}
	}

	q, err := c.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.client != nil {
		if raw, err := json.Marshal(q); err == nil {
			if err := c.client.Set(ctx, cacheKey(id), raw, c.ttl).Err(); err != nil {
				log.Printf("question cache: set %s failed: %v", id, err)
			}
		}
	}
	return q, nil
}

func (c *QuestionCache) Invalidate(ctx context.Context, id string) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		log.Printf("question cache: invalidate %s failed: %v", id, err)
	}
}
