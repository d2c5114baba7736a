package orcamento

import (
	"context"

	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// TxRunner executa uma função dentro de uma transação de banco, passando
// repositórios atados àquela transação. Garante que cabeçalho e itens do
// orçamento sejam gravados atomicamente.
type TxRunner interface {
	RunOrcamento(ctx context.Context, fn func(
		produtoRepo repository.ProdutoRepository,
		orcamentoRepo repository.OrcamentoRepository,
	) error) error
}

// PDFGenerator gera a representação em PDF de um orçamento para envio ao cliente.
type PDFGenerator interface {
	GerarOrcamentoPDF(
		ctx context.Context,
		orc *entity.Orcamento,
		cliente *entity.Cliente,
		vendedor *entity.Usuario,
		itens []*entity.OrcamentoItem,
	) ([]byte, error)
}
