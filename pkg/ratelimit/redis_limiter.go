package ratelimit

import (
	"errors"
	"fmt"
	"time"

	"context"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LimitConfig configura o comportamento do limitador
type LimitConfig struct {
	Key    string        // Chave única para identificar o limite
	Limit  int           // Número máximo de requisições
	Period time.Duration // Período de tempo para o limite
}

// RedisLimiter implementa rate limiting de janela fixa usando Redis.
// Usado para conter força bruta nos endpoints de credenciais.
type RedisLimiter struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisLimiter cria um novo limitador baseado em Redis
func NewRedisLimiter(client *redis.Client, logger *zap.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		logger: logger,
	}
}

// Allow verifica se a requisição é permitida dentro do limite de taxa.
// Retorna: permitido, restante, tempo até o reset, erro. Em caso de erro
// de infraestrutura a requisição é permitida (fail-open).
func (r *RedisLimiter) Allow(ctx context.Context, config LimitConfig) (bool, int, time.Duration, error) {
	if config.Limit <= 0 {
		return true, 0, 0, errors.New("limite deve ser maior que zero")
	}
	if config.Period <= 0 {
		return true, 0, 0, errors.New("período deve ser maior que zero")
	}

	key := fmt.Sprintf("ratelimit:%s", config.Key)
	now := time.Now().Unix()
	periodSeconds := int64(config.Period.Seconds())
	expireAt := now - (now % periodSeconds) + periodSeconds
	resetAfter := time.Duration(expireAt-now) * time.Second

	script := redis.NewScript(`
            local key = KEYS[1]
            local limit = tonumber(ARGV[1])
            local expireAt = tonumber(ARGV[2])

            local count = redis.call('INCR', key)
            if count == 1 then
                redis.call('EXPIREAT', key, expireAt)
            end

            return count
        `)

	count, err := script.Run(ctx, r.client, []string{key}, config.Limit, expireAt).Int()
	if err != nil {
		r.logger.Error("erro ao executar script de rate limit", zap.Error(err))
		return true, config.Limit, resetAfter, err
	}

	remaining := config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= config.Limit, remaining, resetAfter, nil
}
