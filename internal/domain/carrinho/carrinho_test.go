package carrinho_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/carrinho"
)

// produtoTeste devolve um snapshot de catálogo padrão para os testes.
func produtoTeste(id int64, estoque int64, preco string) carrinho.Produto {
	return carrinho.Produto{
		ID:                id,
		Nome:              "Produto Teste",
		Codigo:            "PRD-001",
		Preco:             decimal.RequireFromString(preco),
		EstoqueDisponivel: estoque,
		UnidadeMedida:     "UN",
	}
}

// Caso 1: adição dentro do estoque aumenta o total em quantidade × preço de tabela.
func TestAdicionarProduto_DentroDoEstoque(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")
	antes := c.Total()

	ref, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 3)
	require.NoError(t, err)

	linhas := c.Linhas()
	require.Len(t, linhas, 1)
	assert.Equal(t, ref, linhas[0].Ref())
	assert.True(t, linhas[0].Catalogo())
	assert.EqualValues(t, 3, linhas[0].Quantidade())
	assert.True(t, linhas[0].PrecoUnitario().Equal(decimal.RequireFromString("10.00")),
		"preço unitário deve iniciar no preço de tabela")
	assert.True(t, c.Total().Sub(antes).Equal(decimal.RequireFromString("30.00")),
		"o total deve crescer exatamente quantidade × preço de tabela")
}

// Caso 2: quantidade acima do estoque falha e o carrinho permanece idêntico.
func TestAdicionarProduto_EstoqueInsuficiente(t *testing.T) {
	c := carrinho.Novo(42, "à vista")

	_, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, c.Linhas(), "nenhuma linha deve ser criada na rejeição")
	assert.True(t, c.Total().IsZero())
}

// Caso 3: quantidade não positiva é entrada inválida, não erro de estoque.
func TestAdicionarProduto_QuantidadeInvalida(t *testing.T) {
	c := carrinho.Novo(42, "à vista")

	_, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.AdicionarProduto(produtoTeste(7, 5, "10.00"), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Merge: segunda adição do mesmo produto equivale a uma única adição com a
// soma das quantidades, enquanto a soma cabe no estoque.
func TestAdicionarProduto_MergeDentroDoEstoque(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")

	ref1, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 2)
	require.NoError(t, err)
	ref2, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 3)
	require.NoError(t, err)

	assert.Equal(t, ref1, ref2, "o merge deve reutilizar a linha existente")
	linhas := c.Linhas()
	require.Len(t, linhas, 1)
	assert.EqualValues(t, 5, linhas[0].Quantidade())
	assert.True(t, c.Total().Equal(decimal.RequireFromString("50.00")))
}

// Merge sem estoque: a adição é rejeitada por inteiro e a linha original
// permanece intocada (sem merge parcial).
func TestAdicionarProduto_MergeSemEstoqueNaoAlteraLinha(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")

	_, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 4)
	require.NoError(t, err)

	_, err = c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 2)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	linhas := c.Linhas()
	require.Len(t, linhas, 1)
	assert.EqualValues(t, 4, linhas[0].Quantidade(), "a quantidade original deve permanecer")
	assert.True(t, c.Total().Equal(decimal.RequireFromString("40.00")))
}

// Linha personalizada: sem validação de estoque; nome vazio e quantidade não
// positiva são rejeitados.
func TestAdicionarPersonalizado(t *testing.T) {
	c := carrinho.Novo(42, "à vista")

	ref, err := c.AdicionarPersonalizado("Frete expresso", 1, decimal.RequireFromString("25.50"))
	require.NoError(t, err)

	linhas := c.Linhas()
	require.Len(t, linhas, 1)
	assert.Equal(t, ref, linhas[0].Ref())
	assert.False(t, linhas[0].Catalogo())
	assert.Equal(t, "Frete expresso", linhas[0].Nome())

	_, err = c.AdicionarPersonalizado("   ", 1, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "nome em branco é inválido")

	_, err = c.AdicionarPersonalizado("Serviço", 0, decimal.NewFromInt(10))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = c.AdicionarPersonalizado("Serviço", 1, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "preço negativo é inválido")

	// Preço zero é permitido em linha personalizada (brinde, cortesia).
	_, err = c.AdicionarPersonalizado("Brinde", 1, decimal.Zero)
	assert.NoError(t, err)
}

// Cenário do fluxo de edição: linha com estoque 5, quantidade 3; tentar subir
// para 6 falha com estoque insuficiente e nada muda.
func TestDefinirQuantidade_RevalidaContraSnapshot(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")
	ref, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 3)
	require.NoError(t, err)
	require.True(t, c.Total().Equal(decimal.RequireFromString("30.00")))

	err = c.DefinirQuantidade(ref, 6)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)

	linhas := c.Linhas()
	assert.EqualValues(t, 3, linhas[0].Quantidade(), "quantidade deve permanecer 3")
	assert.True(t, c.Total().Equal(decimal.RequireFromString("30.00")), "total deve permanecer 30.00")

	// Dentro do snapshot a edição é aplicada.
	require.NoError(t, c.DefinirQuantidade(ref, 5))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("50.00")))
}

// Linha personalizada não tem snapshot de estoque: qualquer quantidade positiva vale.
func TestDefinirQuantidade_PersonalizadaSemLimite(t *testing.T) {
	c := carrinho.Novo(42, "à vista")
	ref, err := c.AdicionarPersonalizado("Serviço de montagem", 1, decimal.NewFromInt(100))
	require.NoError(t, err)

	require.NoError(t, c.DefinirQuantidade(ref, 999))
	assert.EqualValues(t, 999, c.Linhas()[0].Quantidade())

	assert.ErrorIs(t, c.DefinirQuantidade(ref, 0), domain.ErrInvalidInput)
}

// Preço unitário: qualquer valor não negativo é aceito, inclusive acima ou
// abaixo do preço de tabela; negativo é entrada inválida.
func TestDefinirPrecoUnitario(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")
	ref, err := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 2)
	require.NoError(t, err)

	require.NoError(t, c.DefinirPrecoUnitario(ref, decimal.RequireFromString("7.35")))
	assert.True(t, c.Total().Equal(decimal.RequireFromString("14.70")))

	require.NoError(t, c.DefinirPrecoUnitario(ref, decimal.RequireFromString("99.99")),
		"não há teto em relação ao preço de tabela")

	err = c.DefinirPrecoUnitario(ref, decimal.NewFromInt(-1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// RemoverLinha é idempotente: referência inexistente é no-op.
func TestRemoverLinha(t *testing.T) {
	c := carrinho.Novo(42, "à vista")
	ref1, _ := c.AdicionarProduto(produtoTeste(7, 5, "10.00"), 1)
	ref2, _ := c.AdicionarPersonalizado("Frete", 1, decimal.NewFromInt(20))

	c.RemoverLinha(ref1)
	require.Len(t, c.Linhas(), 1)
	assert.Equal(t, ref2, c.Linhas()[0].Ref(), "a referência da linha restante permanece estável")

	c.RemoverLinha(ref1) // repetir não é erro
	c.RemoverLinha(carrinho.Ref(9999))
	assert.Len(t, c.Linhas(), 1)
}

// Total é recalculado a cada leitura e acompanha todas as edições.
func TestTotal_SempreDerivado(t *testing.T) {
	c := carrinho.Novo(42, "30 dias")
	refA, _ := c.AdicionarProduto(produtoTeste(1, 10, "2.50"), 4)  // 10.00
	refB, _ := c.AdicionarPersonalizado("Entrega", 1, decimal.NewFromInt(15)) // 15.00
	assert.True(t, c.Total().Equal(decimal.RequireFromString("25.00")))

	require.NoError(t, c.DefinirPrecoUnitario(refA, decimal.NewFromInt(3))) // 12 + 15
	assert.True(t, c.Total().Equal(decimal.RequireFromString("27.00")))

	c.RemoverLinha(refB)
	assert.True(t, c.Total().Equal(decimal.RequireFromString("12.00")))

	c.RemoverLinha(refA)
	assert.True(t, c.Total().IsZero())
}
