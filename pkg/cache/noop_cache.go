package cache

import (
	"context"
	"time"
)

// NoopCache é usado quando o cache está desabilitado na configuração.
// Toda leitura é um miss e toda escrita é descartada.
type NoopCache struct{}

// NewNoopCache cria um cache inerte
func NewNoopCache() *NoopCache {
	return &NoopCache{}
}

func (c *NoopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return nil
}

func (c *NoopCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	return false, nil
}

func (c *NoopCache) Delete(ctx context.Context, key string) error {
	return nil
}

func (c *NoopCache) Clear(ctx context.Context) error {
	return nil
}

func (c *NoopCache) Ping(ctx context.Context) error {
	return nil
}
