package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/seu-usuario/vendas-campo/internal/application/catalogo"
	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/application/movimentacao"
)

var _ catalogo.SnapshotCache = (*CatalogoCache)(nil)
var _ movimentacao.SnapshotInvalidator = (*CatalogoCache)(nil)

const snapshotKey = "catalogo:snapshot"

// CatalogoCache guarda o snapshot de catálogo serializado em Redis sob uma
// única chave com TTL curto. Uma aprovação de movimentação invalida a chave
// para que o próximo snapshot reflita o estoque novo.
type CatalogoCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogoCache constrói o cache sobre um cliente Redis já conectado.
func NewCatalogoCache(client *redis.Client, ttl time.Duration) *CatalogoCache {
	return &CatalogoCache{client: client, ttl: ttl}
}

// Get devolve o snapshot cacheado, ou (nil, nil) em cache miss.
func (c *CatalogoCache) Get(ctx context.Context) ([]dto.ProdutoResponse, error) {
	raw, err := c.client.Get(ctx, snapshotKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get snapshot: %w", err)
	}
	var produtos []dto.ProdutoResponse
	if err := json.Unmarshal(raw, &produtos); err != nil {
		// payload corrompido conta como miss
		_ = c.client.Del(ctx, snapshotKey).Err()
		return nil, nil
	}
	return produtos, nil
}

// Set grava o snapshot com o TTL configurado.
func (c *CatalogoCache) Set(ctx context.Context, produtos []dto.ProdutoResponse) error {
	raw, err := json.Marshal(produtos)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := c.client.Set(ctx, snapshotKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set snapshot: %w", err)
	}
	return nil
}

// Invalidate remove o snapshot cacheado.
func (c *CatalogoCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, snapshotKey).Err(); err != nil {
		return fmt.Errorf("redis del snapshot: %w", err)
	}
	return nil
}
