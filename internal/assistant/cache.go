package assistant

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tanyasbaking/bakery-assistant/backend/internal/models"
)

// AnswerTTL is how long a cached answer stays fresh.
const AnswerTTL = 15 * time.Minute

// AnswerCache wraps Redis for short-lived answer caching on the HTTP
// path. Misses and Redis errors both read as "not cached".
type AnswerCache struct {
	rdb *redis.Client
}

func NewAnswerCache(rdb *redis.Client) *AnswerCache {
	return &AnswerCache{rdb: rdb}
}

func cacheKey(question string) string {
	return "answer:" + strings.Join(strings.Fields(strings.ToLower(question)), " ")
}

func (c *AnswerCache) Get(ctx context.Context, question string) (*models.Answer, bool) {
	val, err := c.rdb.Get(ctx, cacheKey(question)).Result()
	if err != nil {
		return nil, false
	}
	var ans models.Answer
	if err := json.Unmarshal([]byte(val), &ans); err != nil {
		return nil, false
	}
	return &ans, true
}

func (c *AnswerCache) Set(ctx context.Context, question string, ans *models.Answer) error {
	data, err := json.Marshal(ans)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, cacheKey(question), data, AnswerTTL).Err()
}
