package movimentacao

import (
	"context"

	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela transação. Garante atomicidade entre a decisão
// sobre a movimentação e o ajuste de estoque.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error) error
}

// SnapshotInvalidator descarta o snapshot de catálogo em cache depois que uma
// aprovação altera o estoque autoritativo, para que a próxima leitura reflita
// o novo valor.
type SnapshotInvalidator interface {
	Invalidate(ctx context.Context) error
}
