package session

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	redisKeyPrefix      = "session:"
	redisPhysicianIndex = "physician-sessions:"
)

var _ Store = (*RedisStore)(nil)

type RedisStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client, now: time.Now}
}

// NewRedisClient conecta pela REDIS_URL e testa com PING.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}
	return client, nil
}

func (s *RedisStore) Create(ctx context.Context, physicianID uint, ttl time.Duration) (*Session, error) {
	sess := newSession(physicianID, ttl, s.now())

	payload, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}

	// índice por médico para DeleteByPhysician; vive tanto quanto a sessão mais nova
	index := physicianIndexKey(physicianID)
	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, redisKeyPrefix+sess.ID, payload, ttl)
		pipe.SAdd(ctx, index, sess.ID)
		pipe.Expire(ctx, index, ttl)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) (*Session, error) {
	raw, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, err
	}
	if !sess.ExpiresAt.After(s.now()) {
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *RedisStore) DeleteByPhysician(ctx context.Context, physicianID uint) error {
	index := physicianIndexKey(physicianID)

	ids, err := s.client.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, redisKeyPrefix+id)
	}
	keys = append(keys, index)

	return s.client.Del(ctx, keys...).Err()
}

func physicianIndexKey(physicianID uint) string {
	return redisPhysicianIndex + strconv.FormatUint(uint64(physicianID), 10)
}
