// Package sessions keeps browser login state server-side in Redis. The
// client only ever sees an opaque id carried in an HTTP-only cookie.
package sessions

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

var ErrNoSession = errors.New("session not found")

const keyPrefix = "session:"

type Store struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Store {
	return &Store{client: client, ttl: ttl}
}

// Create issues a fresh session id for the user and stores it with the
// configured TTL.
func (s *Store) Create(ctx context.Context, userId int64) (string, error) {
	id := uuid.NewString()

	err := s.client.Set(ctx, keyPrefix+id, strconv.FormatInt(userId, 10), s.ttl).Err()
	if err != nil {
		return "", err
	}

	return id, nil
}

// Get resolves a session id to the user it belongs to, refreshing the TTL on
// the way. Missing or expired ids yield ErrNoSession.
func (s *Store) Get(ctx context.Context, id string) (int64, error) {
	val, err := s.client.Get(ctx, keyPrefix+id).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSession
	}
	if err != nil {
		return 0, err
	}

	userId, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, ErrNoSession
	}

	s.client.Expire(ctx, keyPrefix+id, s.ttl)
	return userId, nil
}

// Destroy removes the session. Destroying an unknown id is not an error.
func (s *Store) Destroy(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}
