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

var _ repository.UsuarioRepository = (*UsuarioRepo)(nil)

// UsuarioRepo implementação de UsuarioRepository sobre PostgreSQL.
type UsuarioRepo struct {
	q Querier
}

// NewUsuarioRepository constrói o adaptador. Passar pool ou tx (Querier).
func NewUsuarioRepository(q Querier) *UsuarioRepo {
	return &UsuarioRepo{q: q}
}

// Create persiste um usuário e preenche o ID atribuído pelo banco.
func (r *UsuarioRepo) Create(u *entity.Usuario) error {
	query := `
		INSERT INTO usuarios (nome, email, senha_hash, papel, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`
	err := r.q.QueryRow(context.Background(), query,
		u.Nome, u.Email, u.SenhaHash, u.Papel, u.Status, u.CreatedAt, u.UpdatedAt,
	).Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("insert usuario: %w", err)
	}
	return nil
}

// GetByID obtém um usuário por ID.
func (r *UsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	return r.get(`SELECT id, nome, email, senha_hash, papel, status, created_at, updated_at FROM usuarios WHERE id = $1`, id)
}

// FindByEmail obtém um usuário pelo e-mail.
func (r *UsuarioRepo) FindByEmail(email string) (*entity.Usuario, error) {
	return r.get(`SELECT id, nome, email, senha_hash, papel, status, created_at, updated_at FROM usuarios WHERE email = $1`, email)
}

func (r *UsuarioRepo) get(query string, arg any) (*entity.Usuario, error) {
	var u entity.Usuario
	err := r.q.QueryRow(context.Background(), query, arg).Scan(
		&u.ID, &u.Nome, &u.Email, &u.SenhaHash, &u.Papel, &u.Status, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get usuario: %w", err)
	}
	return &u, nil
}
