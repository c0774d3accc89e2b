package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-apartment-listings/internal/logger"
)

// SessionRepository keeps issued refresh tokens in Redis so they can be revoked.
type SessionRepository struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(tokenID string) string {
	return fmt.Sprintf("refresh_token:%s", tokenID)
}

// Save stores the refresh token id for ttl.
func (r *SessionRepository) Save(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	key := sessionKey(tokenID)
	err := r.client.Set(ctx, key, userID.String(), ttl).Err()

	logger.Log.Infow("session saved",
		"key", key,
		"ttl", ttl,
		"error", err,
	)

	return err
}

// Exists reports whether the refresh token id is still active.
func (r *SessionRepository) Exists(ctx context.Context, tokenID string) (bool, error) {
	key := sessionKey(tokenID)
	_, err := r.client.Get(ctx, key).Result()

	logger.Log.Infow("session lookup",
		"key", key,
		"error", err,
	)

	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Delete revokes the refresh token id. Deleting a missing id is not an error.
func (r *SessionRepository) Delete(ctx context.Context, tokenID string) error {
	key := sessionKey(tokenID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("session deleted",
		"key", key,
		"error", err,
	)

	return err
}
