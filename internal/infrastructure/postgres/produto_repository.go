package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

var _ repository.ProdutoRepository = (*ProdutoRepo)(nil)

const produtoCols = `id, nome, codigo, preco, estoque_disponivel, categoria, unidade_medida, created_at, updated_at`

// ProdutoRepo implementação do porto ProdutoRepository sobre PostgreSQL
// (usável com pool ou tx).
type ProdutoRepo struct {
	q Querier
}

// NewProdutoRepository constrói o adaptador de persistência para produtos.
// Passar pool ou tx (Querier).
func NewProdutoRepository(q Querier) *ProdutoRepo {
	return &ProdutoRepo{q: q}
}

// Create persiste um produto novo e preenche o ID atribuído pelo banco.
func (r *ProdutoRepo) Create(p *entity.Produto) error {
	query := `
		INSERT INTO produtos (nome, codigo, preco, estoque_disponivel, categoria, unidade_medida, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		p.Nome, p.Codigo, p.Preco, p.EstoqueDisponivel, p.Categoria, p.UnidadeMedida,
		p.CreatedAt, p.UpdatedAt,
	).Scan(&p.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert produto: %w", err)
	}
	return nil
}

// GetByID obtém um produto por ID.
func (r *ProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoCols+` FROM produtos WHERE id = $1`, id)
}

// GetByCodigo obtém um produto pelo código único.
func (r *ProdutoRepo) GetByCodigo(codigo string) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoCols+` FROM produtos WHERE codigo = $1`, codigo)
}

// GetForUpdate obtém o produto e bloqueia a linha (SELECT FOR UPDATE).
// Usar dentro de transação ao aplicar movimentações aprovadas.
func (r *ProdutoRepo) GetForUpdate(id int64) (*entity.Produto, error) {
	return r.get(`SELECT `+produtoCols+` FROM produtos WHERE id = $1 FOR UPDATE`, id)
}

func (r *ProdutoRepo) get(query string, arg any) (*entity.Produto, error) {
	var p entity.Produto
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&p.ID, &p.Nome, &p.Codigo, &p.Preco, &p.EstoqueDisponivel,
		&p.Categoria, &p.UnidadeMedida, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get produto: %w", err)
	}
	return &p, nil
}

// Update atualiza os dados cadastrais. Estoque não passa por aqui: só muda
// via UpdateEstoque, chamado pelo processador de aprovação.
func (r *ProdutoRepo) Update(p *entity.Produto) error {
	query := `
		UPDATE produtos SET nome = $2, codigo = $3, preco = $4, categoria = $5, unidade_medida = $6, updated_at = $7
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.Nome, p.Codigo, p.Preco, p.Categoria, p.UnidadeMedida, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update produto: %w", err)
	}
	return nil
}

// UpdateEstoque grava o novo estoque disponível do produto.
func (r *ProdutoRepo) UpdateEstoque(id int64, estoque int64) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE produtos SET estoque_disponivel = $2, updated_at = now() WHERE id = $1`,
		id, estoque,
	)
	if err != nil {
		return fmt.Errorf("update estoque: %w", err)
	}
	return nil
}

// List lista produtos em ordem alfabética com paginação.
func (r *ProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	query := `SELECT ` + produtoCols + ` FROM produtos ORDER BY nome ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list produtos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Produto
	for rows.Next() {
		var p entity.Produto
		if err := rows.Scan(&p.ID, &p.Nome, &p.Codigo, &p.Preco, &p.EstoqueDisponivel,
			&p.Categoria, &p.UnidadeMedida, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan produto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

// Delete remove um produto por ID.
func (r *ProdutoRepo) Delete(id int64) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM produtos WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete produto: %w", err)
	}
	return nil
}
