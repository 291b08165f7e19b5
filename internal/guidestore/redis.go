package guidestore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/studivo/studivo-backend/internal/logger"
	"github.com/studivo/studivo-backend/internal/types"
)

const redisKeyPrefix = "guide:"

type redisStore struct {
	log *logger.Logger
	rdb *redis.Client
}

// NewRedisStore connects to REDIS_ADDR and fails fast when the server
// is unreachable so the caller can fall back to the in-memory store.
func NewRedisStore(log *logger.Logger) (Store, error) {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:        addr,
		Password:    os.Getenv("REDIS_PASSWORD"),
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &redisStore{
		log: log.With("service", "GuideStore"),
		rdb: rdb,
	}, nil
}

func redisKey(sessionID uuid.UUID) string {
	return redisKeyPrefix + sessionID.String()
}

func (s *redisStore) Get(ctx context.Context, sessionID uuid.UUID) (types.ExecutionGuide, bool, error) {
	raw, err := s.rdb.Get(ctx, redisKey(sessionID)).Bytes()
	if err == redis.Nil {
		return types.ExecutionGuide{}, false, nil
	}
	if err != nil {
		return types.ExecutionGuide{}, false, err
	}
	var g types.ExecutionGuide
	if err := json.Unmarshal(raw, &g); err != nil {
		return types.ExecutionGuide{}, false, fmt.Errorf("bad guide payload for %s: %w", sessionID, err)
	}
	return g, true, nil
}

func (s *redisStore) GetAll(ctx context.Context) (map[uuid.UUID]types.ExecutionGuide, error) {
	out := map[uuid.UUID]types.ExecutionGuide{}

	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 200).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id, err := uuid.Parse(strings.TrimPrefix(key, redisKeyPrefix))
		if err != nil {
			s.log.Warn("skipping malformed guide key", "key", key)
			continue
		}
		raw, err := s.rdb.Get(ctx, key).Bytes()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			return nil, err
		}
		var g types.ExecutionGuide
		if err := json.Unmarshal(raw, &g); err != nil {
			s.log.Warn("skipping malformed guide payload", "key", key, "error", err)
			continue
		}
		out[id] = g
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *redisStore) Set(ctx context.Context, guide types.ExecutionGuide) error {
	raw, err := json.Marshal(guide)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, redisKey(guide.SessionID), raw, 0).Err()
}

func (s *redisStore) SetMany(ctx context.Context, guides []types.ExecutionGuide) error {
	if len(guides) == 0 {
		return nil
	}
	pipe := s.rdb.Pipeline()
	for _, g := range guides {
		raw, err := json.Marshal(g)
		if err != nil {
			return err
		}
		pipe.Set(ctx, redisKey(g.SessionID), raw, 0)
	}
	_, err := pipe.Exec(ctx)
	return err
}

func (s *redisStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	return s.rdb.Del(ctx, redisKey(sessionID)).Err()
}

func (s *redisStore) DeleteAll(ctx context.Context) error {
	iter := s.rdb.Scan(ctx, 0, redisKeyPrefix+"*", 200).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

func (s *redisStore) Close() error {
	return s.rdb.Close()
}
