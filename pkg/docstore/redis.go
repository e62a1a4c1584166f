package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// redisStore implements Store on top of redis. Documents are JSON blobs
// keyed "collection:id".
type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func (s *redisStore) Put(ctx context.Context, collection, id string, doc any) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, docKey(collection, id), data, s.ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, collection, id string, out any) error {
	data, err := s.client.Get(ctx, docKey(collection, id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return err
	}
	return json.Unmarshal(data, out)
}

func (s *redisStore) Delete(ctx context.Context, collection, id string) error {
	return s.client.Del(ctx, docKey(collection, id)).Err()
}

func (s *redisStore) Close() error {
	return s.client.Close()
}
