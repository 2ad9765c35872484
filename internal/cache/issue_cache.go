// Package cache provides a Redis-backed read cache for issue listings. The
// two list endpoints are read-heavy relative to mutations, so listings are
// cached with a short TTL and dropped on every write.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/civic-issue-service/internal/domain"
)

const (
	allIssuesKey   = "issues:all"
	ownerKeyPrefix = "issues:owner:"
)

// ErrMiss is returned when no cached listing exists for the key.
var ErrMiss = errors.New("cache miss")

// IssueCache stores serialized issue listings.
type IssueCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewIssueCache builds the cache. A nil client or zero TTL yields a cache
// that misses on every read and ignores writes.
func NewIssueCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *IssueCache {
	return &IssueCache{client: client, ttl: ttl, logger: logger}
}

// GetAll returns the cached full listing.
func (c *IssueCache) GetAll(ctx context.Context) ([]domain.Issue, error) {
	return c.get(ctx, allIssuesKey)
}

// GetByOwner returns the cached listing for one owner email.
func (c *IssueCache) GetByOwner(ctx context.Context, email string) ([]domain.Issue, error) {
	return c.get(ctx, ownerKeyPrefix+email)
}

// SetAll caches the full listing.
func (c *IssueCache) SetAll(ctx context.Context, issues []domain.Issue) {
	c.set(ctx, allIssuesKey, issues)
}

// SetByOwner caches one owner's listing.
func (c *IssueCache) SetByOwner(ctx context.Context, email string, issues []domain.Issue) {
	c.set(ctx, ownerKeyPrefix+email, issues)
}

// Invalidate drops the full listing and the given owner's listing. Called on
// every issue mutation.
func (c *IssueCache) Invalidate(ctx context.Context, email string) {
	if !c.enabled() {
		return
	}
	keys := []string{allIssuesKey}
	if email != "" {
		keys = append(keys, ownerKeyPrefix+email)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("issue cache invalidation failed", zap.Error(err))
	}
}

// InvalidateAll drops every cached listing. Used when the owner of a mutated
// issue is unknown, such as delete-by-id.
func (c *IssueCache) InvalidateAll(ctx context.Context) {
	if !c.enabled() {
		return
	}
	iter := c.client.Scan(ctx, 0, ownerKeyPrefix+"*", 0).Iterator()
	keys := []string{allIssuesKey}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Warn("issue cache scan failed", zap.Error(err))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Warn("issue cache invalidation failed", zap.Error(err))
	}
}

func (c *IssueCache) get(ctx context.Context, key string) ([]domain.Issue, error) {
	if !c.enabled() {
		return nil, ErrMiss
	}
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("issue cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, ErrMiss
	}
	var issues []domain.Issue
	if err := json.Unmarshal(raw, &issues); err != nil {
		return nil, ErrMiss
	}
	return issues, nil
}

func (c *IssueCache) set(ctx context.Context, key string, issues []domain.Issue) {
	if !c.enabled() {
		return
	}
	raw, err := json.Marshal(issues)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("issue cache write failed", zap.String("key", key), zap.Error(err))
	}
}

func (c *IssueCache) enabled() bool {
	return c != nil && c.client != nil && c.ttl > 0
}
