package cart

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Storage is the write-through persistence behind the cart service. A
// Load that finds nothing (or finds garbage) returns (nil, nil): the
// caller falls back to a fresh empty cart and the shopper never sees a
// storage problem.
//
//go:generate mockgen -source=cart_storage.go -destination=../mock/cart/cart_storage_mock.go -package=mock
type Storage interface {
	Load(ctx context.Context, key string) (*Cart, error)
	Save(ctx context.Context, key string, c Cart) error
	Delete(ctx context.Context, key string) error
}

const (
	storageKeyPrefix = "tangry:cart:"
	cartTTL          = 30 * 24 * time.Hour
)

type redisStorage struct {
	client *redis.Client
	logger *zap.Logger
}

func NewRedisStorage(client *redis.Client, logger *zap.Logger) Storage {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &redisStorage{client: client, logger: logger}
}

func (s *redisStorage) Load(ctx context.Context, key string) (*Cart, error) {
	raw, err := s.client.Get(ctx, storageKeyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	c, ok := s.decodeCart(raw)
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (s *redisStorage) Save(ctx context.Context, key string, c Cart) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, storageKeyPrefix+key, raw, cartTTL).Err()
}

func (s *redisStorage) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, storageKeyPrefix+key).Err()
}

// decodeCart tolerates malformed persisted data: a record that cannot
// be parsed is treated the same as a missing one.
func (s *redisStorage) decodeCart(raw []byte) (*Cart, bool) {
	var c Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		s.logger.Warn("discarding malformed cart record", zap.Error(err))
		return nil, false
	}
	if c.ID == "" {
		s.logger.Warn("discarding cart record without id")
		return nil, false
	}
	if c.Items == nil {
		c.Items = []CartItem{}
	}
	return &c, true
}

// memoryStorage backs tests and local runs without Redis.
type memoryStorage struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewMemoryStorage() Storage {
	return &memoryStorage{carts: make(map[string]Cart)}
}

func (s *memoryStorage) Load(_ context.Context, key string) (*Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[key]
	if !ok {
		return nil, nil
	}
	c.Items = append([]CartItem(nil), c.Items...)
	return &c, nil
}

func (s *memoryStorage) Save(_ context.Context, key string, c Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.Items = append([]CartItem(nil), c.Items...)
	s.carts[key] = c
	return nil
}

func (s *memoryStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, key)
	return nil
}
