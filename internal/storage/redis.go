package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"online-ordering/internal/domain"
)

// RedisSessionStore keeps anonymous sessions under a TTL matching their
// expiry, plus a resume index so a returning customer lands back in the same
// session for the same public menu. A missing key is returned as a zero
// value, not an error.
type RedisSessionStore struct {
	Client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{Client: client}
}

func sessionKey(token string) string {
	return "online:session:" + token
}

func resumeKey(customerIdentifier, publicID string) string {
	return "online:customer:" + customerIdentifier + ":" + publicID
}

func (s *RedisSessionStore) Save(ctx context.Context, session *domain.Session, ttl time.Duration) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	if err := s.Client.Set(ctx, sessionKey(session.Token), payload, ttl).Err(); err != nil {
		return err
	}
	return s.Client.Set(ctx, resumeKey(session.CustomerIdentifier, session.PublicID), session.Token, ttl).Err()
}

func (s *RedisSessionStore) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	payload, err := s.Client.Get(ctx, sessionKey(token)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) ResumeToken(ctx context.Context, customerIdentifier, publicID string) (string, error) {
	token, err := s.Client.Get(ctx, resumeKey(customerIdentifier, publicID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return token, err
}

func (s *RedisSessionStore) Delete(ctx context.Context, session *domain.Session) error {
	return s.Client.Del(ctx,
		sessionKey(session.Token),
		resumeKey(session.CustomerIdentifier, session.PublicID),
	).Err()
}
