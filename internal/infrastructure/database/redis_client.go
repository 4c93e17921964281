package database

import (
	"context"
	"log"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// ConnectRedis opens the hosted KV store from a redis:// or rediss:// URL and
// verifies it answers before the server starts taking requests.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.Wrap(err, "invalid redis url")
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrapf(err, "redis ping %s", opts.Addr)
	}
	log.Printf("[kv][redis] connected addr=%s db=%d", opts.Addr, opts.DB)
	return rdb, nil
}
