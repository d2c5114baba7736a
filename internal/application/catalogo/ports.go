package catalogo

import (
	"context"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
)

// SnapshotCache guarda o snapshot de catálogo já no formato do contrato HTTP.
// Get devolve (nil, nil) em cache miss. Falhas de cache nunca derrubam a
// leitura: o caso de uso cai para o banco.
type SnapshotCache interface {
	Get(ctx context.Context) ([]dto.ProdutoResponse, error)
	Set(ctx context.Context, produtos []dto.ProdutoResponse) error
	Invalidate(ctx context.Context) error
}
