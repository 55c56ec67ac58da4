// Package cache implementa el cache Redis del working set de la grilla de lentes.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mazvaris/optiapp/internal/application/lens"
	"github.com/mazvaris/optiapp/internal/domain/entity"
	"github.com/mazvaris/optiapp/pkg/logger"
)

const gridKey = "optiapp:lens:grid"

var _ lens.GridCache = (*RedisGridCache)(nil)

// RedisGridCache guarda un snapshot JSON del working set con TTL corto.
// Los errores de Redis se loguean y se tratan como miss: el cache nunca
// bloquea una lectura de la grilla.
type RedisGridCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
}

// NewRedisGridCache construye el cache. client nil lo deja desactivado (siempre miss).
func NewRedisGridCache(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisGridCache {
	return &RedisGridCache{client: client, ttl: ttl, log: log}
}

// GetWorkingSet devuelve el snapshot cacheado. ok=false en miss, error o cache desactivado.
func (c *RedisGridCache) GetWorkingSet(ctx context.Context) ([]*entity.LensStock, bool) {
	if c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, gridKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("cache: error leyendo snapshot de grilla")
		}
		return nil, false
	}
	var records []*entity.LensStock
	if err := json.Unmarshal(raw, &records); err != nil {
		c.log.Warn().Err(err).Msg("cache: snapshot de grilla corrupto, descartado")
		c.Invalidate(ctx)
		return nil, false
	}
	return records, true
}

// SetWorkingSet guarda el snapshot con el TTL configurado.
func (c *RedisGridCache) SetWorkingSet(ctx context.Context, records []*entity.LensStock) {
	if c.client == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		c.log.Warn().Err(err).Msg("cache: error serializando snapshot de grilla")
		return
	}
	if err := c.client.Set(ctx, gridKey, raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: error guardando snapshot de grilla")
	}
}

// Invalidate borra el snapshot. Toda mutación de stock lo llama.
func (c *RedisGridCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, gridKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("cache: error invalidando snapshot de grilla")
	}
}
