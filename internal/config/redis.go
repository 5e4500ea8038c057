package config

import (
	"context"
	"crypto/tls"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds the client backing the auth rate limiter and the
// catalog response cache. Address resolution order: REDIS_ADDR, then
// REDIS_HOST/REDIS_PORT, then localhost:6379. REDIS_PASSWORD, REDIS_DB
// and REDIS_TLS are honored when set.
//
// Redis is an accelerator here, not a dependency: when the ping fails
// the function logs once and returns nil, and both middlewares treat a
// nil client as "feature off". Ticket sales never stall on a cache
// outage.
func NewRedisClient() *redis.Client {
	addr := envStr("REDIS_ADDR", "")
	if addr == "" {
		addr = envStr("REDIS_HOST", "localhost") + ":" + envStr("REDIS_PORT", "6379")
	}

	opts := &redis.Options{
		Addr:     addr,
		Password: envStr("REDIS_PASSWORD", ""),
		DB:       envInt("REDIS_DB", 0),
	}
	if envBool("REDIS_TLS", false) {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("config: redis unreachable at %s, rate limiting and response caching disabled: %v", addr, err)
		_ = client.Close()
		return nil
	}
	return client
}
