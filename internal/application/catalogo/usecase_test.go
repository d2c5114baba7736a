package catalogo_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/vendas-campo/internal/application/catalogo"
	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

type fakeProdutoRepo struct {
	produtos []*entity.Produto
	leituras int
}

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { p.ID = 99; return nil }
func (f *fakeProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	for _, p := range f.produtos {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProdutoRepo) GetByCodigo(string) (*entity.Produto, error)     { return nil, nil }
func (f *fakeProdutoRepo) GetForUpdate(id int64) (*entity.Produto, error)  { return f.GetByID(id) }
func (f *fakeProdutoRepo) Update(*entity.Produto) error                    { return nil }
func (f *fakeProdutoRepo) UpdateEstoque(int64, int64) error                { return nil }
func (f *fakeProdutoRepo) Delete(int64) error                              { return nil }
func (f *fakeProdutoRepo) List(limit, offset int) ([]*entity.Produto, error) {
	f.leituras++
	return f.produtos, nil
}

// fakeCache implementa SnapshotCache em memória.
type fakeCache struct {
	snapshot     []dto.ProdutoResponse
	sets         int
	invalidacoes int
}

func (f *fakeCache) Get(context.Context) ([]dto.ProdutoResponse, error) { return f.snapshot, nil }
func (f *fakeCache) Set(_ context.Context, produtos []dto.ProdutoResponse) error {
	f.snapshot = produtos
	f.sets++
	return nil
}
func (f *fakeCache) Invalidate(context.Context) error {
	f.snapshot = nil
	f.invalidacoes++
	return nil
}

func repoComProdutos() *fakeProdutoRepo {
	return &fakeProdutoRepo{produtos: []*entity.Produto{
		{ID: 1, Nome: "Água Mineral 500ml", Codigo: "AGUA-500", Categoria: "Bebidas",
			Preco: decimal.RequireFromString("2.50"), EstoqueDisponivel: 120, UnidadeMedida: "UN"},
		{ID: 2, Nome: "Café Torrado 1kg", Codigo: "CAFE-1KG", Categoria: "Mercearia",
			Preco: decimal.RequireFromString("38.90"), EstoqueDisponivel: 15, UnidadeMedida: "KG"},
		{ID: 3, Nome: "Pão de Açúcar", Codigo: "PAO-ACUCAR", Categoria: "Padaria",
			Preco: decimal.RequireFromString("8.00"), EstoqueDisponivel: 30, UnidadeMedida: "UN"},
	}}
}

func TestBuscar_IgnoraAcentosECaixa(t *testing.T) {
	uc := catalogo.NewCatalogoUseCase(repoComProdutos(), nil)
	ctx := context.Background()

	// "agua" encontra "Água".
	out, err := uc.Buscar(ctx, "agua")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Água Mineral 500ml", out[0].Nome)

	// "AÇÚCAR" encontra "Açúcar" por nome; busca também cobre código.
	out, err = uc.Buscar(ctx, "ACUCAR")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, int64(3), out[0].ID)

	// Busca por categoria.
	out, err = uc.Buscar(ctx, "mercearia")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Café Torrado 1kg", out[0].Nome)
}

func TestBuscar_TermoVazioDevolveTudo(t *testing.T) {
	uc := catalogo.NewCatalogoUseCase(repoComProdutos(), nil)
	out, err := uc.Buscar(context.Background(), "   ")
	require.NoError(t, err)
	assert.Len(t, out, 3)
}

func TestListar_CacheReadThrough(t *testing.T) {
	repo := repoComProdutos()
	cache := &fakeCache{}
	uc := catalogo.NewCatalogoUseCase(repo, cache)
	ctx := context.Background()

	// Primeiro acesso: miss → banco → set.
	out, err := uc.Listar(ctx)
	require.NoError(t, err)
	assert.Len(t, out, 3)
	assert.Equal(t, 1, repo.leituras)
	assert.Equal(t, 1, cache.sets)

	// Segundo acesso: hit, o banco não é consultado de novo.
	_, err = uc.Listar(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.leituras)
}

func TestCriarProduto_InvalidaSnapshot(t *testing.T) {
	repo := repoComProdutos()
	cache := &fakeCache{}
	uc := catalogo.NewCatalogoUseCase(repo, cache)
	ctx := context.Background()

	_, err := uc.Listar(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, cache.sets)

	_, err = uc.CriarProduto(ctx, dto.CriarProdutoRequest{
		Nome: "Feijão Preto 1kg", Codigo: "FEIJAO-1KG",
		Preco: decimal.RequireFromString("9.50"), EstoqueDisponivel: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, cache.invalidacoes, "cadastro deve invalidar o snapshot")
}

func TestListar_SemCacheFuncionaSoComBanco(t *testing.T) {
	repo := repoComProdutos()
	uc := catalogo.NewCatalogoUseCase(repo, nil)

	out, err := uc.Listar(context.Background())
	require.NoError(t, err)
	assert.Len(t, out, 3)
}
