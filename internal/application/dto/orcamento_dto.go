package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CriarOrcamentoRequest corpo para POST /api/orcamentos. É o mesmo formato do
// pedido montado pelo núcleo de carrinho (carrinho.Montar).
type CriarOrcamentoRequest struct {
	ClienteID         int64                `json:"cliente_id"`
	CondicaoPagamento string               `json:"condicao_pagamento"`
	Status            string               `json:"status"` // RASCUNHO | ENVIADA
	Itens             []ItemOrcamentoInput `json:"itens"`
}

// ItemOrcamentoInput uma linha do pedido: catálogo (produto_id) ou
// personalizada (nome_produto_personalizado) — exatamente um dos dois.
type ItemOrcamentoInput struct {
	ProdutoID                int64           `json:"produto_id,omitempty"`
	NomeProdutoPersonalizado string          `json:"nome_produto_personalizado,omitempty"`
	Quantidade               int64           `json:"quantidade"`
	PrecoUnitario            decimal.Decimal `json:"preco_unitario"`
}

// OrcamentoResponse orçamento persistido, com id e data atribuídos pelo backend.
type OrcamentoResponse struct {
	ID                int64                   `json:"id"`
	Status            string                  `json:"status"`
	CondicaoPagamento string                  `json:"condicao_pagamento"`
	Total             decimal.Decimal         `json:"total"`
	DataCriacao       time.Time               `json:"data_criacao"`
	Cliente           *ClienteResponse        `json:"cliente,omitempty"`
	Usuario           *UsuarioResumoResponse  `json:"usuario,omitempty"`
	Itens             []ItemOrcamentoResponse `json:"itens"`
}

// ItemOrcamentoResponse linha persistida do orçamento. O campo
// preco_unitario_congelado confirma a semântica de congelamento: é o preço
// contratual gravado no momento da criação.
type ItemOrcamentoResponse struct {
	ID                       int64           `json:"id"`
	ProdutoID                *int64          `json:"produto_id,omitempty"`
	NomeProdutoPersonalizado string          `json:"nome_produto_personalizado,omitempty"`
	Quantidade               int64           `json:"quantidade"`
	PrecoUnitarioCongelado   decimal.Decimal `json:"preco_unitario_congelado"`
	Subtotal                 decimal.Decimal `json:"subtotal"`
}

// ClienteResponse dados do cliente aninhados na resposta de orçamento.
type ClienteResponse struct {
	ID        int64  `json:"id"`
	Nome      string `json:"nome"`
	Documento string `json:"documento,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Cidade    string `json:"cidade,omitempty"`
}

// UsuarioResumoResponse identificação resumida do vendedor autor.
type UsuarioResumoResponse struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}
