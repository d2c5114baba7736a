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

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

// ClienteRepo implementação de ClienteRepository sobre PostgreSQL.
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

// Create persiste um cliente e preenche o ID atribuído pelo banco.
func (r *ClienteRepo) Create(c *entity.Cliente) error {
	query := `
		INSERT INTO clientes (nome, documento, telefone, endereco, cidade, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		c.Nome, c.Documento, c.Telefone, c.Endereco, c.Cidade, c.CreatedAt,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtém um cliente por ID.
func (r *ClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	query := `SELECT id, nome, documento, telefone, endereco, cidade, created_at FROM clientes WHERE id = $1`
	var c entity.Cliente
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&c.ID, &c.Nome, &c.Documento, &c.Telefone, &c.Endereco, &c.Cidade, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return &c, nil
}

// List lista clientes por nome com paginação.
func (r *ClienteRepo) List(limit, offset int) ([]*entity.Cliente, error) {
	query := `SELECT id, nome, documento, telefone, endereco, cidade, created_at FROM clientes ORDER BY nome ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Cliente
	for rows.Next() {
		var c entity.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.Documento, &c.Telefone, &c.Endereco, &c.Cidade, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}
