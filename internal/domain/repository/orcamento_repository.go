package repository

import (
	"time"

	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// OrcamentoFiltro filtros opcionais de listagem de orçamentos.
type OrcamentoFiltro struct {
	Status    string
	ClienteID int64
	UsuarioID int64
	De        *time.Time
	Ate       *time.Time
}

// OrcamentoRepository define o porto de persistência para Orcamento e itens.
type OrcamentoRepository interface {
	Create(orcamento *entity.Orcamento) error
	CreateItem(item *entity.OrcamentoItem) error
	GetByID(id int64) (*entity.Orcamento, error)
	GetItensByOrcamentoID(orcamentoID int64) ([]*entity.OrcamentoItem, error)
	// UpdateStatus muda o status do orçamento já persistido (RASCUNHO → ENVIADA).
	UpdateStatus(id int64, status string) error
	List(filtro OrcamentoFiltro, limit, offset int) ([]*entity.Orcamento, error)
}
