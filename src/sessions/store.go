package sessions

import (
	"context"
	"errors"
	"time"

	"backoffice/src/utils"
	redis_utils "backoffice/src/utils/redis"
)

type Store interface {
	Save(ctx context.Context, sess *Session, ttl time.Duration) error
	Load(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// MemoryStore keeps sessions in process. Sessions are lost on restart and
// not shared between instances; use the Redis store for that.
type MemoryStore struct {
	cache *utils.Cache[string, Session]
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cache: utils.NewCache[string, Session]()}
}

func (m *MemoryStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	m.cache.Set(sess.ID, *sess, ttl)
	return nil
}

func (m *MemoryStore) Load(ctx context.Context, id string) (*Session, error) {
	sess, ok := m.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return &sess, nil
}

func (m *MemoryStore) Delete(ctx context.Context, id string) error {
	m.cache.Delete(id)
	return nil
}

// Purge drops expired sessions.
func (m *MemoryStore) Purge() int {
	return m.cache.Purge()
}

type RedisStore struct {
	redis *redis_utils.RedisHandler
}

func NewRedisStore(handler *redis_utils.RedisHandler) *RedisStore {
	return &RedisStore{redis: handler}
}

func (s *RedisStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	return s.redis.Set(ctx, sess.ID, sess, ttl)
}

func (s *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	var sess Session
	err := s.redis.Get(ctx, id, &sess)
	if errors.Is(err, redis_utils.ErrKeyNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.redis.Delete(ctx, id)
}
