package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seu-usuario/vendas-campo/internal/application/movimentacao"
	"github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

var _ movimentacao.TxRunner = (*TxRunner)(nil)
var _ orcamento.TxRunner = (*TxRunner)(nil)

// TxRunner executa callbacks dentro de uma transação PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner constrói o runner com o pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia uma transação, executa fn com repos atados à tx e faz
// Commit ou Rollback. Usado pelo processador de aprovação de movimentações.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimentacaoRepository,
	produtoRepo repository.ProdutoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewMovimentacaoRepository(tx), NewProdutoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunOrcamento inicia uma transação com repos de produto e orçamento
// (criação atômica de cabeçalho + itens).
func (r *TxRunner) RunOrcamento(ctx context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	orcamentoRepo repository.OrcamentoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewProdutoRepository(tx), NewOrcamentoRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
