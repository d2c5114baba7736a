package repository

import "github.com/seu-usuario/vendas-campo/internal/domain/entity"

// ProdutoRepository define o porto de persistência para Produto (DIP).
type ProdutoRepository interface {
	Create(produto *entity.Produto) error
	GetByID(id int64) (*entity.Produto, error)
	GetByCodigo(codigo string) (*entity.Produto, error)
	Update(produto *entity.Produto) error
	// GetForUpdate bloqueia a linha do produto (SELECT FOR UPDATE); usar
	// dentro de transação ao aplicar movimentações aprovadas.
	GetForUpdate(id int64) (*entity.Produto, error)
	// UpdateEstoque grava o novo estoque disponível do produto.
	UpdateEstoque(id int64, estoque int64) error
	List(limit, offset int) ([]*entity.Produto, error)
	Delete(id int64) error
}
