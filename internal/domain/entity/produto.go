package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Produto representa um item do catálogo com estoque e preço de tabela.
// EstoqueDisponivel só é alterado pelo processador de aprovação de movimentações
// (nunca pela criação de orçamentos).
type Produto struct {
	ID                int64
	Nome              string
	Codigo            string // código único do produto
	Preco             decimal.Decimal // preço de tabela (venda)
	EstoqueDisponivel int64
	Categoria         string
	UnidadeMedida     string // UN, CX, KG...
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
