package auth

import (
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
	"github.com/seu-usuario/vendas-campo/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// RegisterUser cria um usuário: faz hash da senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o e-mail já está cadastrado.
func (uc *AuthUseCase) RegisterUser(in dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Papel {
	case "", entity.PapelVendedor, entity.PapelEntregador, entity.PapelAdmin:
	default:
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.usuarioRepo.FindByEmail(email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	nome := in.Nome
	if nome == "" {
		nome = email
	}
	papel := in.Papel
	if papel == "" {
		papel = entity.PapelVendedor
	}
	user := &entity.Usuario{
		Nome:      nome,
		Email:     email,
		SenhaHash: string(hash),
		Papel:     papel,
		Status:    "active",
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.usuarioRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// Login verifica e-mail/senha, gera o JWT e devolve token + usuário.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.usuarioRepo.FindByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.SenhaHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if user.Status != "active" {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.Usuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Nome:      u.Nome,
		Email:     u.Email,
		Papel:     u.Papel,
		Status:    u.Status,
		CreatedAt: u.CreatedAt,
	}
}
