package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status de um orçamento persistido.
const (
	OrcamentoStatusRascunho = "RASCUNHO" // salvo, ainda não enviado ao cliente
	OrcamentoStatusEnviada  = "ENVIADA"  // enviado ao cliente
)

// Orcamento representa o cabeçalho de um orçamento persistido.
// Depois de criado é um objeto-valor: correções exigem um novo orçamento
// ou uma operação de atualização explícita sobre o registro.
type Orcamento struct {
	ID                int64
	ClienteID         int64
	UsuarioID         int64 // vendedor que criou
	CondicaoPagamento string
	Status            string // RASCUNHO | ENVIADA
	Total             decimal.Decimal
	DataCriacao       time.Time
	UpdatedAt         time.Time
}

// OrcamentoItem representa uma linha imutável de um orçamento.
// Exatamente um entre ProdutoID e NomeProdutoPersonalizado é preenchido.
// PrecoUnitarioCongelado é o preço editado pelo vendedor no momento do envio;
// o congelamento é irreversível do ponto de vista do cliente.
type OrcamentoItem struct {
	ID                       int64
	OrcamentoID              int64
	ProdutoID                *int64 // nil para item personalizado
	NomeProdutoPersonalizado string // vazio para item de catálogo
	Quantidade               int64
	PrecoUnitarioCongelado   decimal.Decimal
	Subtotal                 decimal.Decimal
}
