package repository

import "github.com/seu-usuario/vendas-campo/internal/domain/entity"

// ClienteRepository define o porto de persistência para Cliente.
type ClienteRepository interface {
	Create(cliente *entity.Cliente) error
	GetByID(id int64) (*entity.Cliente, error)
	List(limit, offset int) ([]*entity.Cliente, error)
}
