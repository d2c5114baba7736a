package carrinho

import (
	"github.com/shopspring/decimal"

	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// Pedido é o payload imutável de criação de um orçamento, no formato do
// contrato HTTP do backend. Depois de montado não é alterado: correções
// exigem montar um novo pedido ou atualizar o registro já persistido.
type Pedido struct {
	ClienteID         int64        `json:"cliente_id"`
	CondicaoPagamento string       `json:"condicao_pagamento"`
	Status            string       `json:"status"` // RASCUNHO | ENVIADA
	Itens             []ItemPedido `json:"itens"`
}

// ItemPedido é uma linha congelada do pedido. Campos de apresentação do
// carrinho (estoque disponível, preço de tabela) não fazem parte do contrato.
type ItemPedido struct {
	ProdutoID                int64           `json:"produto_id,omitempty"`
	NomeProdutoPersonalizado string          `json:"nome_produto_personalizado,omitempty"`
	Quantidade               int64           `json:"quantidade"`
	PrecoUnitario            decimal.Decimal `json:"preco_unitario"`
}

// Total devolve a soma de quantidade × preço unitário dos itens congelados.
func (p *Pedido) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range p.Itens {
		total = total.Add(decimal.NewFromInt(it.Quantidade).Mul(it.PrecoUnitario))
	}
	return total
}

// Montar congela um carrinho em um Pedido com o status alvo (RASCUNHO ou
// ENVIADA). É o único ponto em que o preço editável vira preço contratual:
// o valor congelado não acompanha edições posteriores do carrinho. Montar é
// uma transformação pura, sem chamada de rede; falha com ErrEmptyCart em
// carrinho sem linhas e ErrInvalidInput em status desconhecido.
func Montar(c *Carrinho, status string) (*Pedido, error) {
	if status != entity.OrcamentoStatusRascunho && status != entity.OrcamentoStatusEnviada {
		return nil, domain.ErrInvalidInput
	}
	if c == nil || c.Vazio() {
		return nil, domain.ErrEmptyCart
	}
	pedido := &Pedido{
		ClienteID:         c.ClienteID,
		CondicaoPagamento: c.CondicaoPagamento,
		Status:            status,
		Itens:             make([]ItemPedido, 0, len(c.linhas)),
	}
	for _, l := range c.linhas {
		item := ItemPedido{
			Quantidade:    l.quantidade,
			PrecoUnitario: l.precoUnitario,
		}
		if l.Catalogo() {
			item.ProdutoID = l.produtoID
		} else {
			item.NomeProdutoPersonalizado = l.nome
		}
		pedido.Itens = append(pedido.Itens, item)
	}
	return pedido, nil
}
