package recommender

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/studhub/eventrec/pkg/models"
)

// ResultCache is an optional Redis cache for scored result lists. The key
// covers the full request payload (profile, history, catalog, reference
// table, count), so a hit is always call-equivalent to recomputing from
// scratch; any new attendance record changes the key and invalidates the
// entry implicitly.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *logrus.Logger
}

type cachedResult struct {
	Mode            Mode                    `json:"mode"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// NewResultCache returns a cache backed by client; a nil client disables
// caching and turns Get/Set into no-ops.
func NewResultCache(client *redis.Client, ttl time.Duration, logger *logrus.Logger) *ResultCache {
	return &ResultCache{client: client, ttl: ttl, logger: logger}
}

func (c *ResultCache) Key(request *models.RecommendationRequest) string {
	payload, err := json.Marshal(request)
	if err != nil {
		return ""
	}
	h := fnv.New64a()
	h.Write(payload)
	return fmt.Sprintf("recommendations:%d:%x", request.UserProfile.UserID, h.Sum64())
}

func (c *ResultCache) Get(ctx context.Context, key string) ([]models.Recommendation, Mode, bool) {
	if c.client == nil || key == "" {
		return nil, "", false
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.WithError(err).Debug("Recommendation cache read failed")
		}
		return nil, "", false
	}

	var cached cachedResult
	if err := json.Unmarshal(data, &cached); err != nil {
		c.logger.WithError(err).Warn("Dropping malformed recommendation cache entry")
		c.client.Del(ctx, key)
		return nil, "", false
	}
	return cached.Recommendations, cached.Mode, true
}

func (c *ResultCache) Set(ctx context.Context, key string, recommendations []models.Recommendation, mode Mode) {
	if c.client == nil || key == "" {
		return
	}

	data, err := json.Marshal(cachedResult{Mode: mode, Recommendations: recommendations})
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.logger.WithError(err).Debug("Recommendation cache write failed")
	}
}
