package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fixmycity/internal/i18n"
	"fixmycity/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService wraps Redis with JSON marshaling and the portal's key scheme.
// It backs the session store, per-user language preferences, and OTP codes.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

// Key generation
func (s *CacheService) GenerateKey(entityType, keyType string, value interface{}) string {
	return fmt.Sprintf("%s:%s:%v", entityType, keyType, value)
}

// SaveSession stores the serialized session object for a user.
func (s *CacheService) SaveSession(ctx context.Context, sess *models.Session) error {
	return s.Set(ctx, s.GenerateKey("session", "user", sess.UserID), sess)
}

// GetSession loads a user's session. Corrupted session data is discarded
// (the entry is cleared) and the user is treated as logged out instead of
// surfacing an error.
func (s *CacheService) GetSession(ctx context.Context, userID uint) (*models.Session, error) {
	key := s.GenerateKey("session", "user", userID)
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	sess, ok := decodeSession(data)
	if !ok {
		_ = s.client.Del(ctx, key).Err()
		return nil, nil
	}
	return sess, nil
}

// decodeSession parses a stored session entry. ok=false means the data is
// corrupted and the entry must be discarded, never surfaced as an error.
func decodeSession(data []byte) (*models.Session, bool) {
	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, false
	}
	return &sess, true
}

// ClearSession removes a user's session entry.
func (s *CacheService) ClearSession(ctx context.Context, userID uint) error {
	return s.Delete(ctx, s.GenerateKey("session", "user", userID))
}

// SetLanguage persists a user's language preference.
func (s *CacheService) SetLanguage(ctx context.Context, userID uint, code string) error {
	return s.client.Set(ctx, s.GenerateKey("language", "user", userID), code, 0).Err()
}

// GetLanguage loads a user's language preference, falling back to the
// default for missing or unsupported stored codes.
func (s *CacheService) GetLanguage(ctx context.Context, userID uint) string {
	code, err := s.client.Get(ctx, s.GenerateKey("language", "user", userID)).Result()
	if err != nil || !i18n.Supported(code) {
		return i18n.DefaultLanguage
	}
	return code
}

// SaveOTP stores a one-time passcode for a mobile number with a TTL.
func (s *CacheService) SaveOTP(ctx context.Context, mobile, code string, ttl time.Duration) error {
	return s.client.Set(ctx, s.GenerateKey("otp", "mobile", mobile), code, ttl).Err()
}

// GetOTP returns the pending passcode for a mobile number, if any.
func (s *CacheService) GetOTP(ctx context.Context, mobile string) (string, bool, error) {
	code, err := s.client.Get(ctx, s.GenerateKey("otp", "mobile", mobile)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return code, true, nil
}

// DeleteOTP removes a pending passcode after verification.
func (s *CacheService) DeleteOTP(ctx context.Context, mobile string) error {
	return s.Delete(ctx, s.GenerateKey("otp", "mobile", mobile))
}

// Close closes the underlying Redis connection.
func (s *CacheService) Close() error {
	return s.client.Close()
}
