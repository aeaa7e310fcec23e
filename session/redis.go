package session

import (
	"context"
	"encoding/json"
	"time"

	"fortune-dashboard/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/yanun0323/errors"
)

const keyPrefix = "dashboard:session:"

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStore(addr, password string, db int, ttl time.Duration) *RedisStore {
	return &RedisStore{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
		ttl: ttl,
	}
}

// Ping checks connectivity at startup.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "ping redis")
	}
	return nil
}

func (s *RedisStore) Put(ctx context.Context, companies []models.Company) (string, error) {
	b, err := json.Marshal(companies)
	if err != nil {
		return "", errors.Wrap(err, "encode session")
	}

	id := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+id, b, s.ttl).Err(); err != nil {
		return "", errors.Wrap(err, "store session")
	}
	return id, nil
}

func (s *RedisStore) Get(ctx context.Context, id string) ([]models.Company, bool, error) {
	b, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "load session")
	}

	var companies []models.Company
	if err := json.Unmarshal(b, &companies); err != nil {
		return nil, false, errors.Wrap(err, "decode session")
	}
	return companies, true, nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
