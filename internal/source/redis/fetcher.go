// Package redis implements source.Fetcher over a Redis instance holding the
// staged CSV snapshots as plain string values, one key per source ID.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"

	"github.com/moodflix/moodflix/internal/source"
)

// Compile-time check: Fetcher implements source.Fetcher.
var _ source.Fetcher = (*Fetcher)(nil)

// Config holds connection parameters for a Redis-backed source store.
type Config struct {
	Addrs     []string
	Username  string
	Password  string
	DB        int
	KeyPrefix string
}

// Fetcher retrieves staged tabular sources from Redis.
type Fetcher struct {
	client rueidis.Client
	prefix string
}

// New creates a Redis fetcher via rueidis.
func New(cfg Config) (*Fetcher, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Username:     cfg.Username,
		Password:     cfg.Password,
		SelectDB:     cfg.DB,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &Fetcher{client: client, prefix: cfg.KeyPrefix}, nil
}

// Fetch retrieves a source snapshot by ID. Returns source.ErrNotFound when
// the key is absent.
func (f *Fetcher) Fetch(ctx context.Context, sourceID string) ([]byte, error) {
	cmd := f.client.B().Get().Key(f.prefix + sourceID).Build()
	data, err := f.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if rueidis.IsRedisNil(err) {
			return nil, fmt.Errorf("%w: %s", source.ErrNotFound, sourceID)
		}
		return nil, fmt.Errorf("fetch source %s: %w", sourceID, err)
	}
	return data, nil
}

// Stage stores a source snapshot under its ID, used by ops tooling to seed
// the store before the engine starts.
func (f *Fetcher) Stage(ctx context.Context, sourceID string, data []byte) error {
	cmd := f.client.B().Set().Key(f.prefix + sourceID).Value(string(data)).Build()
	if err := f.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("stage source %s: %w", sourceID, err)
	}
	return nil
}

// Ping checks connectivity.
func (f *Fetcher) Ping(ctx context.Context) error {
	cmd := f.client.B().Ping().Build()
	if err := f.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// WaitForReady polls Ping until the store responds or the timeout expires.
func (f *Fetcher) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for source store: %w", ctx.Err())
		case <-ticker.C:
			if err := f.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// Close shuts down the client.
func (f *Fetcher) Close() {
	f.client.Close()
}
