package cliente

import (
	"context"
	"strings"
	"time"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// ClienteUseCase cadastro e consulta de clientes atendidos pelos vendedores.
type ClienteUseCase struct {
	clienteRepo repository.ClienteRepository
}

// NewClienteUseCase constrói o caso de uso.
func NewClienteUseCase(clienteRepo repository.ClienteRepository) *ClienteUseCase {
	return &ClienteUseCase{clienteRepo: clienteRepo}
}

// Criar cadastra um cliente novo.
func (uc *ClienteUseCase) Criar(ctx context.Context, in dto.CriarClienteRequest) (*dto.ClienteResponse, error) {
	if strings.TrimSpace(in.Nome) == "" {
		return nil, domain.ErrInvalidInput
	}
	c := &entity.Cliente{
		Nome:      in.Nome,
		Documento: in.Documento,
		Telefone:  in.Telefone,
		Endereco:  in.Endereco,
		Cidade:    in.Cidade,
		CreatedAt: time.Now(),
	}
	if err := uc.clienteRepo.Create(c); err != nil {
		return nil, err
	}
	return toResponse(c), nil
}

// GetByID devolve um cliente.
func (uc *ClienteUseCase) GetByID(ctx context.Context, id int64) (*dto.ClienteResponse, error) {
	c, err := uc.clienteRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	return toResponse(c), nil
}

// Listar devolve clientes paginados por nome.
func (uc *ClienteUseCase) Listar(ctx context.Context, limit, offset int) ([]dto.ClienteResponse, error) {
	list, err := uc.clienteRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ClienteResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toResponse(c))
	}
	return out, nil
}

func toResponse(c *entity.Cliente) *dto.ClienteResponse {
	return &dto.ClienteResponse{
		ID:        c.ID,
		Nome:      c.Nome,
		Documento: c.Documento,
		Telefone:  c.Telefone,
		Cidade:    c.Cidade,
	}
}
