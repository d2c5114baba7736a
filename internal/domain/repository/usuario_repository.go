package repository

import "github.com/seu-usuario/vendas-campo/internal/domain/entity"

// UsuarioRepository define o porto de persistência para Usuario.
type UsuarioRepository interface {
	Create(usuario *entity.Usuario) error
	GetByID(id int64) (*entity.Usuario, error)
	FindByEmail(email string) (*entity.Usuario, error)
}
