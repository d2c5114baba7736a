package movimentacao

import (
	"context"
	"time"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// AprovacaoUseCase é o processador de aprovação: o único dono das transições
// PENDENTE → APROVADA e PENDENTE → REJEITADA (ambas terminais). A aprovação
// aplica o delta no estoque do produto dentro da mesma transação da decisão,
// com bloqueio de linha (SELECT FOR UPDATE) na pendência e no produto.
type AprovacaoUseCase struct {
	txRunner    TxRunner
	invalidator SnapshotInvalidator // pode ser nil (sem cache)
}

// NewAprovacaoUseCase constrói o caso de uso. invalidator pode ser nil.
func NewAprovacaoUseCase(txRunner TxRunner, invalidator SnapshotInvalidator) *AprovacaoUseCase {
	return &AprovacaoUseCase{txRunner: txRunner, invalidator: invalidator}
}

// Aprovar aplica uma movimentação PENDENTE ao estoque autoritativo:
// ENTRADA soma, SAIDA subtrai. SAIDA maior que o estoque atual falha com
// ErrInsufficientStock e a pendência permanece PENDENTE (rejeitar é uma
// decisão explícita do aprovador, não um efeito colateral).
func (uc *AprovacaoUseCase) Aprovar(ctx context.Context, id, decididoPor int64) (*dto.MovimentacaoResponse, error) {
	var aprovada *entity.Movimentacao

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		produtoRepo repository.ProdutoRepository,
	) error {
		mov, err := movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Status != entity.MovimentacaoStatusPendente {
			return domain.ErrConflict // transição já decidida é terminal
		}

		produto, err := produtoRepo.GetForUpdate(mov.ProdutoID)
		if err != nil {
			return err
		}
		if produto == nil {
			return domain.ErrNotFound
		}

		novoEstoque := produto.EstoqueDisponivel
		switch mov.Tipo {
		case entity.MovimentacaoTipoEntrada:
			novoEstoque += mov.Quantidade
		case entity.MovimentacaoTipoSaida:
			if produto.EstoqueDisponivel < mov.Quantidade {
				return domain.ErrInsufficientStock
			}
			novoEstoque -= mov.Quantidade
		default:
			return domain.ErrInvalidInput
		}
		if err := produtoRepo.UpdateEstoque(produto.ID, novoEstoque); err != nil {
			return err
		}

		now := time.Now()
		mov.Status = entity.MovimentacaoStatusAprovada
		mov.DecididoPor = &decididoPor
		mov.DecididoEm = &now
		if err := movRepo.UpdateDecisao(mov); err != nil {
			return err
		}
		aprovada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	// O snapshot em cache ficou para trás do estoque recém-alterado.
	if uc.invalidator != nil {
		_ = uc.invalidator.Invalidate(ctx)
	}

	resp := dto.ToMovimentacaoResponse(aprovada)
	return &resp, nil
}

// Rejeitar encerra uma pendência sem tocar no estoque. Uma movimentação
// REJEITADA não é reeditável: o entregador registra uma nova, se for o caso.
func (uc *AprovacaoUseCase) Rejeitar(ctx context.Context, id, decididoPor int64, motivo string) (*dto.MovimentacaoResponse, error) {
	var rejeitada *entity.Movimentacao

	err := uc.txRunner.Run(ctx, func(
		movRepo repository.MovimentacaoRepository,
		_ repository.ProdutoRepository,
	) error {
		mov, err := movRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if mov == nil {
			return domain.ErrNotFound
		}
		if mov.Status != entity.MovimentacaoStatusPendente {
			return domain.ErrConflict
		}
		now := time.Now()
		mov.Status = entity.MovimentacaoStatusRejeitada
		mov.DecididoPor = &decididoPor
		mov.DecididoEm = &now
		mov.Motivo = motivo
		if err := movRepo.UpdateDecisao(mov); err != nil {
			return err
		}
		rejeitada = mov
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := dto.ToMovimentacaoResponse(rejeitada)
	return &resp, nil
}
