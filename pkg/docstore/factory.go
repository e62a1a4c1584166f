package docstore

import (
	"time"

	"github.com/redis/go-redis/v9"
)

// StoreType represents the backing driver.
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

type storeConfig struct {
	redisClient *redis.Client
	redisTTL    time.Duration
}

// StoreOption configures NewStore.
type StoreOption func(*storeConfig)

// WithRedisClient supplies the redis client for the redis driver.
func WithRedisClient(client *redis.Client) StoreOption {
	return func(c *storeConfig) {
		c.redisClient = client
	}
}

// WithRedisTTL sets the per-document expiry for the redis driver.
// Zero keeps documents indefinitely.
func WithRedisTTL(ttl time.Duration) StoreOption {
	return func(c *storeConfig) {
		c.redisTTL = ttl
	}
}

// NewStore creates a Store for the given driver type.
// The redis driver requires WithRedisClient.
func NewStore(storeType StoreType, opts ...StoreOption) (Store, error) {
	config := &storeConfig{}
	for _, opt := range opts {
		opt(config)
	}

	switch storeType {
	case StoreTypeMemory:
		return &memoryStore{
			documents: make(map[string][]byte),
		}, nil

	case StoreTypeRedis:
		if config.redisClient == nil {
			return nil, ErrInvalidConfig
		}
		return &redisStore{
			client: config.redisClient,
			ttl:    config.redisTTL,
		}, nil

	default:
		return nil, ErrInvalidStoreType
	}
}
