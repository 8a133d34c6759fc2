package trainee

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"trainspot/models"
	"trainspot/utils"
)

// SessionStore keeps the trainee's session-scoped reference point in Redis.
// The geolocation source reports the position once at session start; it lives
// here with a TTL instead of as ambient client-held state.
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore constructs a session store over the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Start caches the reference point and returns the new session id.
func (s *SessionStore) Start(ctx context.Context, ref models.GeoPoint) (string, error) {
	sessionID := uuid.New().String()
	data, err := json.Marshal(ref)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session reference: %w", err)
	}
	key := utils.SessionCachePrefix + sessionID
	if err := s.client.Set(ctx, key, data, utils.SessionCacheTTL).Err(); err != nil {
		return "", fmt.Errorf("failed to cache session: %w", err)
	}
	return sessionID, nil
}

// Reference returns the session's reference point, or nil when the session is
// unknown or expired.
func (s *SessionStore) Reference(ctx context.Context, sessionID string) (*models.GeoPoint, error) {
	key := utils.SessionCachePrefix + sessionID
	data, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var ref models.GeoPoint
	if err := json.Unmarshal([]byte(data), &ref); err != nil {
		return nil, fmt.Errorf("failed to parse session reference: %w", err)
	}
	return &ref, nil
}
