package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Sarvesh-Vishnu/EduAid-College-Financial-Aid-Navigator/config"
)

// Client wraps the Redis connection. It carries the per-session comparison
// selections and the fetch-route rate-limit counters; the server runs without
// it when the connection fails.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	logger.Info("redis connected", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// ── session selections ──

const selectionPrefix = "session:selection:"

// SaveSelection stores the ordered school selection of a session.
func (c *Client) SaveSelection(ctx context.Context, sessionID string, names []string, ttl time.Duration) error {
	payload, err := json.Marshal(names)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, selectionPrefix+sessionID, payload, ttl).Err()
}

// LoadSelection returns the selection for a session. A missing key reports
// found=false, not an error.
func (c *Client) LoadSelection(ctx context.Context, sessionID string) ([]string, bool, error) {
	raw, err := c.rdb.Get(ctx, selectionPrefix+sessionID).Result()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, false, err
	}
	return names, true, nil
}

// DeleteSelection removes a session's selection.
func (c *Client) DeleteSelection(ctx context.Context, sessionID string) error {
	return c.rdb.Del(ctx, selectionPrefix+sessionID).Err()
}

// ── rate limiting ──

// CheckRateLimit counts a request against key within a fixed window and
// reports whether it is still allowed.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := c.rdb.Expire(ctx, key, window).Err(); err != nil {
			return false, err
		}
	}
	return n <= int64(limit), nil
}

// Close closes the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
