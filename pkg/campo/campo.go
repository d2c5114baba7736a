// Package campo é o SDK do agente de campo: o motor de carrinho re-exportado
// para o código de apresentação, um cliente HTTP do contrato da API e o
// rastreador local de movimentações pendentes. Falhas de transporte viram
// ErrTransient e nunca descartam estado local, então repetir a operação é
// sempre seguro.
package campo

import (
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/carrinho"
)

// Superfície do motor de carrinho. Os aliases permitem ao consumidor externo
// montar carrinhos e pedidos sem importar pacotes internal.
type (
	Carrinho   = carrinho.Carrinho
	Linha      = carrinho.Linha
	Ref        = carrinho.Ref
	Produto    = carrinho.Produto
	Pedido     = carrinho.Pedido
	ItemPedido = carrinho.ItemPedido
)

// NovoCarrinho cria um carrinho vazio para o cliente informado.
var NovoCarrinho = carrinho.Novo

// Montar congela um carrinho em um Pedido imutável (RASCUNHO ou ENVIADA).
var Montar = carrinho.Montar

// Sentinelas de erro do domínio, re-exportadas para o consumidor do SDK.
var (
	ErrTransient         = domain.ErrTransient
	ErrInvalidInput      = domain.ErrInvalidInput
	ErrInsufficientStock = domain.ErrInsufficientStock
	ErrEmptyCart         = domain.ErrEmptyCart
	ErrNotFound          = domain.ErrNotFound
	ErrUnauthorized      = domain.ErrUnauthorized
	ErrForbidden         = domain.ErrForbidden
	ErrConflict          = domain.ErrConflict
)
