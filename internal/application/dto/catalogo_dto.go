package dto

import (
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// ProdutoResponse é o formato de produto no snapshot de catálogo.
type ProdutoResponse struct {
	ID                int64           `json:"id"`
	Nome              string          `json:"nome"`
	Codigo            string          `json:"codigo"`
	Preco             decimal.Decimal `json:"preco"`
	EstoqueDisponivel int64           `json:"estoque_disponivel"`
	Categoria         string          `json:"categoria"`
	UnidadeMedida     string          `json:"unidade_medida"`
}

// ToProdutoResponse converte a entidade para o contrato de catálogo.
func ToProdutoResponse(p *entity.Produto) ProdutoResponse {
	return ProdutoResponse{
		ID:                p.ID,
		Nome:              p.Nome,
		Codigo:            p.Codigo,
		Preco:             p.Preco,
		EstoqueDisponivel: p.EstoqueDisponivel,
		Categoria:         p.Categoria,
		UnidadeMedida:     p.UnidadeMedida,
	}
}

// CriarProdutoRequest corpo para POST /api/produtos.
type CriarProdutoRequest struct {
	Nome              string          `json:"nome"`
	Codigo            string          `json:"codigo"`
	Preco             decimal.Decimal `json:"preco"`
	EstoqueDisponivel int64           `json:"estoque_disponivel"`
	Categoria         string          `json:"categoria"`
	UnidadeMedida     string          `json:"unidade_medida"`
}
