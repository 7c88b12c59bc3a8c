package cart

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/go-redis/redis/v8"
)

// keyNamespace matches the storage key the web client used for its
// local cart snapshots.
const keyNamespace = "cart-storage:"

// RedisStore persists cart snapshots in Redis, one key per owner.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, owner string, lines []LineItem) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyNamespace+owner, data, 0).Err()
}

func (s *RedisStore) Load(ctx context.Context, owner string) ([]LineItem, error) {
	data, err := s.client.Get(ctx, keyNamespace+owner).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var lines []LineItem
	if err := json.Unmarshal(data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}
