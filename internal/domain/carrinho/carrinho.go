// Package carrinho implementa o motor de montagem de orçamentos usado pelos
// vendedores em campo: linhas de catálogo validadas contra um snapshot de
// estoque, linhas personalizadas sem validação de estoque e preço unitário
// editável por linha. O pacote é puro (sem I/O); a persistência acontece só
// no envio do pedido montado por Montar.
package carrinho

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/vendas-campo/internal/domain"
)

// Produto é o snapshot de catálogo contra o qual o carrinho valida estoque.
// É uma leitura pontual: o motor não reconsulta o backend a cada edição; o
// backend revalida o estoque no aceite do orçamento.
type Produto struct {
	ID                int64
	Nome              string
	Codigo            string
	Preco             decimal.Decimal // preço de tabela
	EstoqueDisponivel int64
	UnidadeMedida     string
}

// Ref identifica uma linha dentro de um carrinho. Permanece estável quando
// outras linhas são removidas.
type Ref int

// Linha é uma linha do carrinho: de catálogo ou personalizada. Os campos são
// privados e as únicas formas de construir uma linha são AdicionarProduto e
// AdicionarPersonalizado, o que garante o invariante "exatamente um entre
// produto e nome personalizado".
type Linha struct {
	ref               Ref
	produtoID         int64  // 0 para linha personalizada
	nome              string // denormalizado do produto ou nome personalizado
	quantidade        int64
	estoqueDisponivel int64           // snapshot no momento da adição (só catálogo)
	precoTabela       decimal.Decimal // só catálogo
	precoUnitario     decimal.Decimal // editável; inicia no preço de tabela
}

// Ref devolve o identificador estável da linha no carrinho.
func (l Linha) Ref() Ref { return l.ref }

// Catalogo informa se a linha é de catálogo (true) ou personalizada (false).
func (l Linha) Catalogo() bool { return l.produtoID != 0 }

func (l Linha) ProdutoID() int64                 { return l.produtoID }
func (l Linha) Nome() string                     { return l.nome }
func (l Linha) Quantidade() int64                { return l.quantidade }
func (l Linha) EstoqueDisponivel() int64         { return l.estoqueDisponivel }
func (l Linha) PrecoTabela() decimal.Decimal     { return l.precoTabela }
func (l Linha) PrecoUnitario() decimal.Decimal   { return l.precoUnitario }

// Subtotal devolve quantidade × preço unitário da linha.
func (l Linha) Subtotal() decimal.Decimal {
	return decimal.NewFromInt(l.quantidade).Mul(l.precoUnitario)
}

// Carrinho é um orçamento em montagem: pertence a uma única sessão de
// vendedor, nunca é persistido enquanto está sendo montado e é descartado
// no envio ou no cancelamento. Todas as mutações são síncronas.
type Carrinho struct {
	ClienteID         int64
	CondicaoPagamento string

	linhas  []Linha
	proxRef Ref
}

// Novo cria um carrinho vazio para o cliente informado. A identidade do
// cliente e a condição de pagamento são contexto explícito do carrinho,
// não estado global da aplicação.
func Novo(clienteID int64, condicaoPagamento string) *Carrinho {
	return &Carrinho{
		ClienteID:         clienteID,
		CondicaoPagamento: condicaoPagamento,
		proxRef:           1,
	}
}

// AdicionarProduto adiciona uma linha de catálogo com a quantidade informada.
// Se já existe linha para o mesmo produto, as quantidades são somadas e o
// snapshot de estoque é renovado com o produto recebido; a soma precisa caber
// no estoque, senão a adição é rejeitada por inteiro (sem merge parcial).
// O preço unitário de uma linha nova inicia no preço de tabela.
func (c *Carrinho) AdicionarProduto(p Produto, quantidade int64) (Ref, error) {
	if p.ID <= 0 || quantidade <= 0 {
		return 0, domain.ErrInvalidInput
	}
	if quantidade > p.EstoqueDisponivel {
		return 0, domain.ErrInsufficientStock
	}
	for i := range c.linhas {
		if c.linhas[i].produtoID != p.ID {
			continue
		}
		total := c.linhas[i].quantidade + quantidade
		if total > p.EstoqueDisponivel {
			// Rejeição integral: a linha existente permanece intocada.
			return 0, domain.ErrInsufficientStock
		}
		c.linhas[i].quantidade = total
		c.linhas[i].estoqueDisponivel = p.EstoqueDisponivel
		return c.linhas[i].ref, nil
	}
	linha := Linha{
		ref:               c.proxRef,
		produtoID:         p.ID,
		nome:              p.Nome,
		quantidade:        quantidade,
		estoqueDisponivel: p.EstoqueDisponivel,
		precoTabela:       p.Preco,
		precoUnitario:     p.Preco,
	}
	c.proxRef++
	c.linhas = append(c.linhas, linha)
	return linha.ref, nil
}

// AdicionarPersonalizado adiciona uma linha fora do catálogo (serviço, frete,
// item avulso). Não há validação de estoque; nome vazio, quantidade não
// positiva ou preço negativo são entrada inválida.
func (c *Carrinho) AdicionarPersonalizado(nome string, quantidade int64, precoUnitario decimal.Decimal) (Ref, error) {
	if strings.TrimSpace(nome) == "" || quantidade <= 0 || precoUnitario.IsNegative() {
		return 0, domain.ErrInvalidInput
	}
	linha := Linha{
		ref:           c.proxRef,
		nome:          nome,
		quantidade:    quantidade,
		precoUnitario: precoUnitario,
	}
	c.proxRef++
	c.linhas = append(c.linhas, linha)
	return linha.ref, nil
}

// DefinirQuantidade altera a quantidade de uma linha. Linhas de catálogo são
// revalidadas contra o snapshot de estoque tirado na adição; se a quantidade
// excede o snapshot, nada muda (a edição fora do limite é ignorada, não
// truncada).
func (c *Carrinho) DefinirQuantidade(ref Ref, quantidade int64) error {
	i := c.indice(ref)
	if i < 0 {
		return domain.ErrNotFound
	}
	if quantidade <= 0 {
		return domain.ErrInvalidInput
	}
	if c.linhas[i].Catalogo() && quantidade > c.linhas[i].estoqueDisponivel {
		return domain.ErrInsufficientStock
	}
	c.linhas[i].quantidade = quantidade
	return nil
}

// DefinirPrecoUnitario sobrescreve o preço da linha. Qualquer valor não
// negativo é aceito: a autoridade de preço é do vendedor e o motor não impõe
// piso nem teto em relação ao preço de tabela.
func (c *Carrinho) DefinirPrecoUnitario(ref Ref, preco decimal.Decimal) error {
	i := c.indice(ref)
	if i < 0 {
		return domain.ErrNotFound
	}
	if preco.IsNegative() {
		return domain.ErrInvalidInput
	}
	c.linhas[i].precoUnitario = preco
	return nil
}

// RemoverLinha remove a linha referenciada. Remover uma referência inexistente
// é um no-op, não um erro.
func (c *Carrinho) RemoverLinha(ref Ref) {
	i := c.indice(ref)
	if i < 0 {
		return
	}
	c.linhas = append(c.linhas[:i], c.linhas[i+1:]...)
}

// Linhas devolve uma cópia das linhas na ordem de apresentação.
func (c *Carrinho) Linhas() []Linha {
	out := make([]Linha, len(c.linhas))
	copy(out, c.linhas)
	return out
}

// Vazio informa se o carrinho não tem linhas.
func (c *Carrinho) Vazio() bool { return len(c.linhas) == 0 }

// Total é derivado, nunca armazenado: soma de quantidade × preço unitário,
// recalculada a cada leitura para não dessincronizar das edições de linha.
func (c *Carrinho) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.linhas {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Carrinho) indice(ref Ref) int {
	for i := range c.linhas {
		if c.linhas[i].ref == ref {
			return i
		}
	}
	return -1
}
