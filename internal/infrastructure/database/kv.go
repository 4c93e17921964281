package database

import (
	"context"
	"log"

	"towdispatch/internal/infrastructure/config"
	"towdispatch/internal/infrastructure/kvstore"

	"github.com/cockroachdb/errors"
)

// OpenStore builds the configured KV backend. The returned close func is
// always safe to call.
func OpenStore(ctx context.Context, cfg config.KVConfig) (kvstore.Store, func(), error) {
	switch cfg.Backend {
	case "redis":
		rdb, err := ConnectRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, func() {}, err
		}
		return kvstore.NewRedisStore(rdb), func() { _ = rdb.Close() }, nil
	case "dynamodb":
		ddb, err := ConnectDynamoDB(ctx)
		if err != nil {
			return nil, func() {}, err
		}
		log.Printf("[kv][dynamodb] using table=%s", cfg.Table)
		return kvstore.NewDynamoStore(ddb, cfg.Table), func() {}, nil
	case "", "memory":
		log.Printf("[kv][memory] using in-process store; data is lost on restart")
		return kvstore.NewMemoryStore(), func() {}, nil
	default:
		return nil, func() {}, errors.Newf("unknown kv backend %q", cfg.Backend)
	}
}
