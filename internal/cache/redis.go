package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

const browseKey = "tn:turfs:browse"

// Client caches the unfiltered browse listing as raw JSON so cache hits skip
// the marshal round-trip. The cache is strictly optional; the server runs
// without it when Redis is unreachable.
type Client struct {
	client *redis.Client
	ttl    time.Duration
}

func NewClient() (*Client, error) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	password := os.Getenv("REDIS_PASSWORD")

	ttl := 30 * time.Second
	if v := os.Getenv("CACHE_TTL_SEC"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			ttl = d
		}
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
		DialTimeout:  5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &Client{client: rdb, ttl: ttl}, nil
}

// GetBrowseRaw returns the cached unfiltered browse response, if any.
func (c *Client) GetBrowseRaw(ctx context.Context) ([]byte, error) {
	data, err := c.client.Get(ctx, browseKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("browse listing not in cache")
		}
		return nil, fmt.Errorf("cache lookup error: %w", err)
	}
	return data, nil
}

// SetBrowse stores the unfiltered browse response. Failures are ignored; the
// cache is best-effort.
func (c *Client) SetBrowse(ctx context.Context, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.client.Set(ctx, browseKey, data, c.ttl)
}

// InvalidateBrowse drops the cached listing after a catalogue mutation.
func (c *Client) InvalidateBrowse(ctx context.Context) {
	c.client.Del(ctx, browseKey)
}

func (c *Client) Close() error {
	return c.client.Close()
}
