package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/realestate-seo-api/internal/config"
	"github.com/vfg2006/realestate-seo-api/pkg/middleware"
)

const (
	keyPrefix      = "seo:ratelimit:"
	commandTimeout = 250 * time.Millisecond
	pingTimeout    = 2 * time.Second
)

// counterStore é o subconjunto de comandos do redis usado pelo limiter
type counterStore interface {
	Incr(ctx context.Context, key string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// RedisRateLimiter conta requisições em janelas fixas com INCR + EXPIRE.
// Falhas do Redis liberam a requisição.
type RedisRateLimiter struct {
	client  *redis.Client
	store   counterStore
	prefix  string
	timeout time.Duration
}

// Connect abre o cliente e valida a conexão com PING
func Connect(ctx context.Context, cfg config.Redis) (*RedisRateLimiter, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis em %s: %w", cfg.Addr, err)
	}

	return NewRedisRateLimiter(client), nil
}

func NewRedisRateLimiter(client *redis.Client) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:  client,
		store:   client,
		prefix:  keyPrefix,
		timeout: commandTimeout,
	}
}

func (rl *RedisRateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) middleware.RateDecision {
	if limit <= 0 {
		return middleware.RateDecision{Allowed: true}
	}
	if window <= 0 {
		window = time.Minute
	}

	ctx, cancel := context.WithTimeout(ctx, rl.timeout)
	defer cancel()

	redisKey := rl.prefix + key

	counter, err := rl.store.Incr(ctx, redisKey).Result()
	if err != nil {
		logrus.WithError(err).WithField("op", "incr").Warn("Erro no rate limit do redis, liberando requisição")
		return middleware.RateDecision{Allowed: true}
	}

	if counter == 1 {
		rl.expire(ctx, redisKey, window)
	}

	ttl, err := rl.store.TTL(ctx, redisKey).Result()
	if err == nil && ttl < 0 {
		// chave sem TTL: rearma a janela
		rl.expire(ctx, redisKey, window)
	}
	if err != nil || ttl <= 0 {
		ttl = window
	}

	return middleware.RateDecision{
		Allowed:   int(counter) <= limit,
		Count:     int(counter),
		WindowEnd: time.Now().Add(ttl),
	}
}

func (rl *RedisRateLimiter) expire(ctx context.Context, key string, window time.Duration) {
	if err := rl.store.Expire(ctx, key, window).Err(); err != nil {
		logrus.WithError(err).WithField("op", "expire").Warn("Erro no rate limit do redis")
	}
}

func (rl *RedisRateLimiter) Close() error {
	if rl.client == nil {
		return nil
	}
	return rl.client.Close()
}
