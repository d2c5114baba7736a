package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

var _ repository.OrcamentoRepository = (*OrcamentoRepo)(nil)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// OrcamentoRepo implementação de OrcamentoRepository sobre PostgreSQL.
type OrcamentoRepo struct {
	q Querier
}

// NewOrcamentoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewOrcamentoRepository(q Querier) *OrcamentoRepo {
	return &OrcamentoRepo{q: q}
}

// Create persiste o cabeçalho do orçamento e preenche o ID.
func (r *OrcamentoRepo) Create(o *entity.Orcamento) error {
	query := `
		INSERT INTO orcamentos (cliente_id, usuario_id, condicao_pagamento, status, total, data_criacao, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		o.ClienteID, o.UsuarioID, o.CondicaoPagamento, o.Status, o.Total, o.DataCriacao, o.UpdatedAt,
	).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("insert orcamento: %w", err)
	}
	return nil
}

// CreateItem persiste uma linha do orçamento e preenche o ID.
func (r *OrcamentoRepo) CreateItem(item *entity.OrcamentoItem) error {
	query := `
		INSERT INTO orcamento_itens (orcamento_id, produto_id, nome_produto_personalizado, quantidade, preco_unitario_congelado, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		item.OrcamentoID, item.ProdutoID, item.NomeProdutoPersonalizado,
		item.Quantidade, item.PrecoUnitarioCongelado, item.Subtotal,
	).Scan(&item.ID)
	if err != nil {
		return fmt.Errorf("insert orcamento item: %w", err)
	}
	return nil
}

const orcamentoCols = `id, cliente_id, usuario_id, condicao_pagamento, status, total, data_criacao, updated_at`

// GetByID obtém o cabeçalho de um orçamento.
func (r *OrcamentoRepo) GetByID(id int64) (*entity.Orcamento, error) {
	var o entity.Orcamento
	err := r.q.QueryRow(context.Background(),
		`SELECT `+orcamentoCols+` FROM orcamentos WHERE id = $1`, id,
	).Scan(&o.ID, &o.ClienteID, &o.UsuarioID, &o.CondicaoPagamento, &o.Status, &o.Total, &o.DataCriacao, &o.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get orcamento: %w", err)
	}
	return &o, nil
}

// GetItensByOrcamentoID obtém as linhas de um orçamento na ordem de inserção.
func (r *OrcamentoRepo) GetItensByOrcamentoID(orcamentoID int64) ([]*entity.OrcamentoItem, error) {
	query := `
		SELECT id, orcamento_id, produto_id, nome_produto_personalizado, quantidade, preco_unitario_congelado, subtotal
		FROM orcamento_itens WHERE orcamento_id = $1 ORDER BY id ASC`
	rows, err := r.q.Query(context.Background(), query, orcamentoID)
	if err != nil {
		return nil, fmt.Errorf("list orcamento itens: %w", err)
	}
	defer rows.Close()
	var itens []*entity.OrcamentoItem
	for rows.Next() {
		var it entity.OrcamentoItem
		if err := rows.Scan(&it.ID, &it.OrcamentoID, &it.ProdutoID, &it.NomeProdutoPersonalizado,
			&it.Quantidade, &it.PrecoUnitarioCongelado, &it.Subtotal); err != nil {
			return nil, fmt.Errorf("scan orcamento item: %w", err)
		}
		itens = append(itens, &it)
	}
	return itens, rows.Err()
}

// UpdateStatus muda o status do orçamento (RASCUNHO → ENVIADA).
func (r *OrcamentoRepo) UpdateStatus(id int64, status string) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE orcamentos SET status = $2, updated_at = now() WHERE id = $1`,
		id, status,
	)
	if err != nil {
		return fmt.Errorf("update orcamento status: %w", err)
	}
	return nil
}

// List lista orçamentos com filtros opcionais, mais recentes primeiro.
func (r *OrcamentoRepo) List(filtro repository.OrcamentoFiltro, limit, offset int) ([]*entity.Orcamento, error) {
	builder := psql.Select(orcamentoCols).
		From("orcamentos").
		OrderBy("data_criacao DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if filtro.Status != "" {
		builder = builder.Where(sq.Eq{"status": filtro.Status})
	}
	if filtro.ClienteID > 0 {
		builder = builder.Where(sq.Eq{"cliente_id": filtro.ClienteID})
	}
	if filtro.UsuarioID > 0 {
		builder = builder.Where(sq.Eq{"usuario_id": filtro.UsuarioID})
	}
	if filtro.De != nil {
		builder = builder.Where(sq.GtOrEq{"data_criacao": *filtro.De})
	}
	if filtro.Ate != nil {
		builder = builder.Where(sq.LtOrEq{"data_criacao": *filtro.Ate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query orcamentos: %w", err)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orcamentos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Orcamento
	for rows.Next() {
		var o entity.Orcamento
		if err := rows.Scan(&o.ID, &o.ClienteID, &o.UsuarioID, &o.CondicaoPagamento,
			&o.Status, &o.Total, &o.DataCriacao, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan orcamento: %w", err)
		}
		list = append(list, &o)
	}
	return list, rows.Err()
}
