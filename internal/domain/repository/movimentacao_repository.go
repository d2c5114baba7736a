package repository

import "github.com/seu-usuario/vendas-campo/internal/domain/entity"

// MovimentacaoFiltro filtros opcionais de listagem de movimentações.
type MovimentacaoFiltro struct {
	Status        string
	ProdutoID     int64
	SolicitadoPor int64
}

// MovimentacaoRepository define o porto de persistência para Movimentacao.
type MovimentacaoRepository interface {
	Create(mov *entity.Movimentacao) error
	GetByID(id int64) (*entity.Movimentacao, error)
	// GetForUpdate bloqueia a linha da movimentação (SELECT FOR UPDATE) para
	// que duas decisões concorrentes sobre a mesma pendência não se cruzem.
	GetForUpdate(id int64) (*entity.Movimentacao, error)
	// UpdateDecisao grava o desfecho (APROVADA ou REJEITADA) com autor, data e motivo.
	UpdateDecisao(mov *entity.Movimentacao) error
	List(filtro MovimentacaoFiltro, limit, offset int) ([]*entity.Movimentacao, error)
}
