package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sellora-inc/sellora/internal/application/tenant/dto"
	"github.com/sellora-inc/sellora/internal/shared/logger"
)

const (
	entitlementKeyPrefix = "tenant:entitlements:"
	baseEntitlementTTL   = 10 * time.Minute
	entitlementTTLJitter = 5 * time.Minute // anti-stampede
)

// RedisEntitlementCache caches the per-tenant entitlement view. It is the
// concrete implementation behind both the read-through cache and the
// invalidator the write paths use.
type RedisEntitlementCache struct {
	client *redis.Client
	logger logger.Interface
}

func NewRedisEntitlementCache(client *redis.Client, logger logger.Interface) *RedisEntitlementCache {
	return &RedisEntitlementCache{
		client: client,
		logger: logger,
	}
}

func (c *RedisEntitlementCache) key(tenantID uint) string {
	return fmt.Sprintf("%s%d", entitlementKeyPrefix, tenantID)
}

// Get returns the cached entitlement view, nil on a miss.
func (c *RedisEntitlementCache) Get(ctx context.Context, tenantID uint) (*dto.EntitlementsDTO, error) {
	data, err := c.client.Get(ctx, c.key(tenantID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get entitlements from cache: %w", err)
	}

	var entitlements dto.EntitlementsDTO
	if err := json.Unmarshal(data, &entitlements); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		c.logger.Warnw("dropping corrupt entitlement cache entry", "tenant_id", tenantID, "error", err)
		c.client.Del(ctx, c.key(tenantID))
		return nil, nil
	}

	return &entitlements, nil
}

// Set stores the entitlement view with a jittered TTL.
func (c *RedisEntitlementCache) Set(ctx context.Context, tenantID uint, entitlements *dto.EntitlementsDTO) error {
	data, err := json.Marshal(entitlements)
	if err != nil {
		return fmt.Errorf("failed to marshal entitlements: %w", err)
	}

	ttl := baseEntitlementTTL + rand.N(entitlementTTLJitter)
	if err := c.client.Set(ctx, c.key(tenantID), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set entitlements in cache: %w", err)
	}

	return nil
}

// Invalidate drops the cached view so the next read hits the store.
func (c *RedisEntitlementCache) Invalidate(ctx context.Context, tenantID uint) error {
	if err := c.client.Del(ctx, c.key(tenantID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate entitlement cache: %w", err)
	}
	return nil
}
