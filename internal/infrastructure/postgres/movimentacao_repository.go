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

var _ repository.MovimentacaoRepository = (*MovimentacaoRepo)(nil)

const movimentacaoCols = `id, transaction_id, tipo, produto_id, quantidade, solicitado_por, status, decidido_por, decidido_em, motivo, created_at`

// MovimentacaoRepo implementação de MovimentacaoRepository sobre PostgreSQL.
type MovimentacaoRepo struct {
	q Querier
}

// NewMovimentacaoRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewMovimentacaoRepository(q Querier) *MovimentacaoRepo {
	return &MovimentacaoRepo{q: q}
}

// Create persiste uma movimentação proposta (status PENDENTE) e preenche o ID.
func (r *MovimentacaoRepo) Create(m *entity.Movimentacao) error {
	query := `
		INSERT INTO movimentacoes (transaction_id, tipo, produto_id, quantidade, solicitado_por, status, motivo, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		m.TransactionID, m.Tipo, m.ProdutoID, m.Quantidade, m.SolicitadoPor, m.Status, m.Motivo, m.CreatedAt,
	).Scan(&m.ID)
	if err != nil {
		return fmt.Errorf("insert movimentacao: %w", err)
	}
	return nil
}

// GetByID obtém uma movimentação por ID.
func (r *MovimentacaoRepo) GetByID(id int64) (*entity.Movimentacao, error) {
	return r.get(`SELECT ` + movimentacaoCols + ` FROM movimentacoes WHERE id = $1`, id)
}

// GetForUpdate obtém a movimentação bloqueando a linha (SELECT FOR UPDATE)
// para serializar decisões concorrentes sobre a mesma pendência.
func (r *MovimentacaoRepo) GetForUpdate(id int64) (*entity.Movimentacao, error) {
	return r.get(`SELECT `+movimentacaoCols+` FROM movimentacoes WHERE id = $1 FOR UPDATE`, id)
}

func (r *MovimentacaoRepo) get(query string, id int64) (*entity.Movimentacao, error) {
	var m entity.Movimentacao
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.TransactionID, &m.Tipo, &m.ProdutoID, &m.Quantidade,
		&m.SolicitadoPor, &m.Status, &m.DecididoPor, &m.DecididoEm, &m.Motivo, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movimentacao: %w", err)
	}
	return &m, nil
}

// UpdateDecisao grava o desfecho terminal da movimentação.
func (r *MovimentacaoRepo) UpdateDecisao(m *entity.Movimentacao) error {
	query := `
		UPDATE movimentacoes SET status = $2, decidido_por = $3, decidido_em = $4, motivo = $5
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query,
		m.ID, m.Status, m.DecididoPor, m.DecididoEm, m.Motivo,
	)
	if err != nil {
		return fmt.Errorf("update movimentacao decisao: %w", err)
	}
	return nil
}

// List lista movimentações com filtros opcionais, mais recentes primeiro.
func (r *MovimentacaoRepo) List(filtro repository.MovimentacaoFiltro, limit, offset int) ([]*entity.Movimentacao, error) {
	builder := psql.Select(movimentacaoCols).
		From("movimentacoes").
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if filtro.Status != "" {
		builder = builder.Where(sq.Eq{"status": filtro.Status})
	}
	if filtro.ProdutoID > 0 {
		builder = builder.Where(sq.Eq{"produto_id": filtro.ProdutoID})
	}
	if filtro.SolicitadoPor > 0 {
		builder = builder.Where(sq.Eq{"solicitado_por": filtro.SolicitadoPor})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query movimentacoes: %w", err)
	}
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list movimentacoes: %w", err)
	}
	defer rows.Close()
	var list []*entity.Movimentacao
	for rows.Next() {
		var m entity.Movimentacao
		if err := rows.Scan(&m.ID, &m.TransactionID, &m.Tipo, &m.ProdutoID, &m.Quantidade,
			&m.SolicitadoPor, &m.Status, &m.DecididoPor, &m.DecididoEm, &m.Motivo, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimentacao: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
