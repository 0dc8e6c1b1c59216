package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"stayfinder/internal/platform/config"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps sessions in redis so they survive restarts and are shared
// between server instances. Keys expire after the configured TTL.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisStore() *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDB,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Could not connect to Redis: %v", err)
	}
	log.Println("Connected to Redis.")

	return &RedisStore{rdb: rdb, ttl: config.AppConfig.SessionTTL}
}

func (s *RedisStore) Close() {
	if s.rdb != nil {
		s.rdb.Close()
		log.Println("Redis connection closed.")
	}
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

func (s *RedisStore) Create(ctx context.Context, userID int) (string, error) {
	sessionID := uuid.NewString()
	if err := s.rdb.Set(ctx, sessionKey(sessionID), userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("RedisStore.Create: %w", err)
	}
	return sessionID, nil
}

func (s *RedisStore) UserID(ctx context.Context, sessionID string) (int, error) {
	val, err := s.rdb.Get(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNoSession
		}
		return 0, fmt.Errorf("RedisStore.UserID: %w", err)
	}
	userID, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("RedisStore.UserID: malformed session value %q: %w", val, err)
	}
	return userID, nil
}

func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("RedisStore.Delete: %w", err)
	}
	return nil
}
