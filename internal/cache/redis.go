package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/yzho285/public-holidays-display/internal/model"
)

const redisKeyPrefix = "holidays:resolution:"

// RedisConfig configures the Redis cache backend.
type RedisConfig struct {
	Addr     string // e.g. "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // server-side expiry for stored entries
}

// Redis is an optional cache backend sharing resolutions across processes.
// Failures are treated as cache misses so the resolver degrades to a remote
// fetch rather than an error.
type Redis struct {
	client *goredis.Client
	clock  Clock
	ttl    time.Duration
}

// Client returns the underlying Redis client for health checks.
func (r *Redis) Client() *goredis.Client { return r.client }

// NewRedis connects to Redis and pings the server.
func NewRedis(cfg RedisConfig, clock Clock) (*Redis, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	log.Printf("[cache] redis connected at %s", cfg.Addr)
	return &Redis{client: client, clock: clock, ttl: cfg.TTL}, nil
}

type redisEntry struct {
	Holidays []model.Holiday `json:"holidays"`
	StoredAt time.Time       `json:"storedAt"`
}

// Get fetches and decodes the entry for the key. Any Redis or decode error
// is a miss.
func (r *Redis) Get(key Key) (Entry, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := r.client.Get(ctx, redisKeyPrefix+key.String()).Result()
	if err != nil {
		return Entry{}, false
	}
	var stored redisEntry
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		log.Printf("[cache] corrupt redis entry for %s: %v", key, err)
		return Entry{}, false
	}
	return Entry{Holidays: stored.Holidays, StoredAt: stored.StoredAt}, true
}

// Put stores the entry with the configured TTL. Write failures are logged
// and dropped; the cache is an optimization, not a system of record.
func (r *Redis) Put(key Key, entry Entry) {
	if entry.StoredAt.IsZero() {
		entry.StoredAt = r.clock()
	}
	data, err := json.Marshal(redisEntry{Holidays: entry.Holidays, StoredAt: entry.StoredAt})
	if err != nil {
		log.Printf("[cache] marshal entry for %s: %v", key, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.client.Set(ctx, redisKeyPrefix+key.String(), data, r.ttl).Err(); err != nil {
		log.Printf("[cache] WARNING: failed to persist entry %s: %v", key, err)
	}
}
