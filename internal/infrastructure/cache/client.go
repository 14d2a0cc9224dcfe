package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Client é o contrato de cache consumido pelo rate limiter (DIP):
// a camada HTTP não conhece Redis diretamente.
type Client interface {
	// Incr incrementa o contador da chave e retorna o valor novo.
	// Na primeira escrita da janela, aplica o TTL.
	Incr(ctx context.Context, key string, janela time.Duration) (int64, error)
	Delete(ctx context.Context, key string) error
}

// RedisClient implementação de Client sobre Redis.
type RedisClient struct {
	rdb *redis.Client
}

// NewRedisClient conecta ao Redis e valida a conexão com PING.
func NewRedisClient(addr string) (*RedisClient, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &RedisClient{rdb: rdb}, nil
}

// Incr incrementa o contador; a primeira escrita da janela recebe o TTL.
func (c *RedisClient) Incr(ctx context.Context, key string, janela time.Duration) (int64, error) {
	val, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if val == 1 {
		if err := c.rdb.Expire(ctx, key, janela).Err(); err != nil {
			return 0, err
		}
	}
	return val, nil
}

// Delete remove a chave (0 deletadas se não existir não é erro).
func (c *RedisClient) Delete(ctx context.Context, key string) error {
	return c.rdb.Del(ctx, key).Err()
}
