package movimentacao

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// MovimentacaoUseCase registra e consulta movimentações de estoque propostas
// pelos entregadores. Uma proposta nasce PENDENTE e não mexe em estoque — o
// estoque autoritativo só muda quando o processador de aprovação decide.
type MovimentacaoUseCase struct {
	movRepo     repository.MovimentacaoRepository
	produtoRepo repository.ProdutoRepository
}

// NewMovimentacaoUseCase constrói o caso de uso.
func NewMovimentacaoUseCase(movRepo repository.MovimentacaoRepository, produtoRepo repository.ProdutoRepository) *MovimentacaoUseCase {
	return &MovimentacaoUseCase{movRepo: movRepo, produtoRepo: produtoRepo}
}

// Propor cria uma movimentação PENDENTE para o produto informado.
// Não há ajuste otimista de estoque aqui: seria uma segunda fonte de verdade.
func (uc *MovimentacaoUseCase) Propor(ctx context.Context, solicitadoPor int64, in dto.ProporMovimentacaoRequest) (*dto.MovimentacaoResponse, error) {
	if in.Tipo != entity.MovimentacaoTipoEntrada && in.Tipo != entity.MovimentacaoTipoSaida {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantidade <= 0 || in.ProdutoID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	produto, err := uc.produtoRepo.GetByID(in.ProdutoID)
	if err != nil || produto == nil {
		return nil, domain.ErrNotFound
	}
	mov := &entity.Movimentacao{
		TransactionID: uuid.New().String(),
		Tipo:          in.Tipo,
		ProdutoID:     in.ProdutoID,
		Quantidade:    in.Quantidade,
		SolicitadoPor: solicitadoPor,
		Status:        entity.MovimentacaoStatusPendente,
		CreatedAt:     time.Now(),
	}
	if err := uc.movRepo.Create(mov); err != nil {
		return nil, err
	}
	resp := dto.ToMovimentacaoResponse(mov)
	return &resp, nil
}

// Listar devolve movimentações, opcionalmente filtradas por status.
func (uc *MovimentacaoUseCase) Listar(ctx context.Context, filtro repository.MovimentacaoFiltro, limit, offset int) ([]dto.MovimentacaoResponse, error) {
	switch filtro.Status {
	case "", entity.MovimentacaoStatusPendente, entity.MovimentacaoStatusAprovada, entity.MovimentacaoStatusRejeitada:
	default:
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.movRepo.List(filtro, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimentacaoResponse, 0, len(list))
	for _, m := range list {
		out = append(out, dto.ToMovimentacaoResponse(m))
	}
	return out, nil
}

// GetByID devolve uma movimentação.
func (uc *MovimentacaoUseCase) GetByID(ctx context.Context, id int64) (*dto.MovimentacaoResponse, error) {
	mov, err := uc.movRepo.GetByID(id)
	if err != nil || mov == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToMovimentacaoResponse(mov)
	return &resp, nil
}
