package verify

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/example/faceverify/internal/logging"
	"github.com/example/faceverify/internal/repository"
)

// Cache abstracts the Redis operations used by the service to make
// testing easier. Only serialized outcomes are cached, never decoded
// images or embeddings.
type Cache interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

// RedisCache is a concrete implementation backed by go-redis.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constructs a new Redis-backed cache adapter.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Set writes a value to Redis.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return c.client.Set(ctx, key, value, expiration).Err()
}

// Get retrieves a cached value from Redis.
func (c *RedisCache) Get(ctx context.Context, key string) (string, error) {
	return c.client.Get(ctx, key).Result()
}

type cachedVerification struct {
	RequestID  string    `json:"request_id"`
	EmpID      string    `json:"emp_id"`
	Matched    bool      `json:"matched"`
	Distance   float64   `json:"distance"`
	Confidence float64   `json:"confidence"`
	Success    bool      `json:"success"`
	Details    string    `json:"details"`
	CreatedAt  time.Time `json:"created_at"`
}

// GetResult retrieves a past verification outcome by request id,
// preferring the cache and falling back to the audit repository.
func (s *Service) GetResult(ctx context.Context, requestID string) (*repository.VerificationLog, error) {
	if s.cache != nil {
		if cached, err := s.withCacheGet(ctx, requestID, "cache.get.result", cacheKey(requestID)); err == nil {
			var payload cachedVerification
			if err := json.Unmarshal([]byte(cached), &payload); err != nil {
				logging.WithOperation(s.logger, "verify.get_result", requestID).Warn("failed to decode cached result", zap.Error(err))
			} else if payload.RequestID != "" {
				return &repository.VerificationLog{
					RequestID:  payload.RequestID,
					EmpID:      payload.EmpID,
					Matched:    payload.Matched,
					Distance:   payload.Distance,
					Confidence: payload.Confidence,
					Success:    payload.Success,
					Details:    payload.Details,
					CreatedAt:  payload.CreatedAt,
				}, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logging.WithOperation(s.logger, "verify.get_result", requestID).Warn("failed to read cache", zap.Error(err))
		}
	}

	if s.repo == nil {
		return nil, errors.New("result not found")
	}
	return s.repo.FindByRequestID(ctx, requestID)
}

func (s *Service) withCacheRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if s.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := s.initialBackoff
	opLogger := logging.WithOperation(s.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < s.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= s.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("cache operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if !isTransientError(err) || attempt == s.retryAttempts-1 {
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient cache error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (s *Service) withCacheGet(ctx context.Context, requestID, operation, key string) (string, error) {
	var result string
	err := s.withCacheRetry(ctx, requestID, operation, func() error {
		value, err := s.cache.Get(ctx, key)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}
