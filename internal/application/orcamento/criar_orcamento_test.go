package orcamento_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes em memória
// ──────────────────────────────────────────────────────────────────────────────

type fakeClienteRepo struct{ porID map[int64]*entity.Cliente }

func (f *fakeClienteRepo) Create(c *entity.Cliente) error { f.porID[c.ID] = c; return nil }
func (f *fakeClienteRepo) GetByID(id int64) (*entity.Cliente, error) {
	c, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}
func (f *fakeClienteRepo) List(int, int) ([]*entity.Cliente, error) { return nil, nil }

type fakeUsuarioRepo struct{ porID map[int64]*entity.Usuario }

func (f *fakeUsuarioRepo) Create(u *entity.Usuario) error { f.porID[u.ID] = u; return nil }
func (f *fakeUsuarioRepo) GetByID(id int64) (*entity.Usuario, error) {
	u, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	return u, nil
}
func (f *fakeUsuarioRepo) FindByEmail(string) (*entity.Usuario, error) { return nil, nil }

type fakeProdutoRepo struct{ porID map[int64]*entity.Produto }

func (f *fakeProdutoRepo) Create(p *entity.Produto) error { f.porID[p.ID] = p; return nil }
func (f *fakeProdutoRepo) GetByID(id int64) (*entity.Produto, error) {
	p, ok := f.porID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (f *fakeProdutoRepo) GetByCodigo(string) (*entity.Produto, error)       { return nil, nil }
func (f *fakeProdutoRepo) GetForUpdate(id int64) (*entity.Produto, error)    { return f.GetByID(id) }
func (f *fakeProdutoRepo) Update(*entity.Produto) error                      { return nil }
func (f *fakeProdutoRepo) UpdateEstoque(id, estoque int64) error             { f.porID[id].EstoqueDisponivel = estoque; return nil }
func (f *fakeProdutoRepo) List(int, int) ([]*entity.Produto, error)          { return nil, nil }
func (f *fakeProdutoRepo) Delete(int64) error                                { return nil }

type fakeOrcamentoRepo struct {
	orcamentos map[int64]*entity.Orcamento
	itens      []*entity.OrcamentoItem
	proxID     int64
}

func newFakeOrcamentoRepo() *fakeOrcamentoRepo {
	return &fakeOrcamentoRepo{orcamentos: map[int64]*entity.Orcamento{}}
}

func (f *fakeOrcamentoRepo) Create(o *entity.Orcamento) error {
	f.proxID++
	o.ID = f.proxID
	cp := *o
	f.orcamentos[o.ID] = &cp
	return nil
}
func (f *fakeOrcamentoRepo) CreateItem(item *entity.OrcamentoItem) error {
	f.proxID++
	item.ID = f.proxID
	cp := *item
	f.itens = append(f.itens, &cp)
	return nil
}
func (f *fakeOrcamentoRepo) GetByID(id int64) (*entity.Orcamento, error) {
	o, ok := f.orcamentos[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}
func (f *fakeOrcamentoRepo) GetItensByOrcamentoID(orcamentoID int64) ([]*entity.OrcamentoItem, error) {
	var out []*entity.OrcamentoItem
	for _, it := range f.itens {
		if it.OrcamentoID == orcamentoID {
			out = append(out, it)
		}
	}
	return out, nil
}
func (f *fakeOrcamentoRepo) UpdateStatus(id int64, status string) error {
	f.orcamentos[id].Status = status
	return nil
}
func (f *fakeOrcamentoRepo) List(repository.OrcamentoFiltro, int, int) ([]*entity.Orcamento, error) {
	var out []*entity.Orcamento
	for _, o := range f.orcamentos {
		out = append(out, o)
	}
	return out, nil
}

type fakeTxRunner struct {
	produtoRepo   *fakeProdutoRepo
	orcamentoRepo *fakeOrcamentoRepo
}

func (f *fakeTxRunner) RunOrcamento(_ context.Context, fn func(
	produtoRepo repository.ProdutoRepository,
	orcamentoRepo repository.OrcamentoRepository,
) error) error {
	return fn(f.produtoRepo, f.orcamentoRepo)
}

type fakePDF struct{}

func (fakePDF) GerarOrcamentoPDF(context.Context, *entity.Orcamento, *entity.Cliente, *entity.Usuario, []*entity.OrcamentoItem) ([]byte, error) {
	return []byte("%PDF-1.4"), nil
}

func cenario(t *testing.T) (*orcamento.CriarOrcamentoUseCase, *fakeProdutoRepo, *fakeOrcamentoRepo) {
	t.Helper()
	clienteRepo := &fakeClienteRepo{porID: map[int64]*entity.Cliente{
		7: {ID: 7, Nome: "Mercado São José", Cidade: "Campinas", CreatedAt: time.Now()},
	}}
	usuarioRepo := &fakeUsuarioRepo{porID: map[int64]*entity.Usuario{
		3: {ID: 3, Nome: "Ana Vendedora", Email: "ana@exemplo.com", Papel: entity.PapelVendedor},
	}}
	produtoRepo := &fakeProdutoRepo{porID: map[int64]*entity.Produto{
		1: {ID: 1, Nome: "Arroz 5kg", Codigo: "ARROZ-5",
			Preco: decimal.RequireFromString("25.00"), EstoqueDisponivel: 10},
	}}
	orcamentoRepo := newFakeOrcamentoRepo()
	uc := orcamento.NewCriarOrcamentoUseCase(
		&fakeTxRunner{produtoRepo: produtoRepo, orcamentoRepo: orcamentoRepo},
		clienteRepo, usuarioRepo, produtoRepo, orcamentoRepo, fakePDF{},
	)
	return uc, produtoRepo, orcamentoRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestCriarOrcamento_CongelaPrecoComoRecebido(t *testing.T) {
	uc, produtoRepo, _ := cenario(t)

	// Preço editado abaixo da tabela: a autoridade de preço é do vendedor.
	out, err := uc.CriarOrcamento(context.Background(), 3, dto.CriarOrcamentoRequest{
		ClienteID:         7,
		CondicaoPagamento: "30 dias",
		Status:            entity.OrcamentoStatusEnviada,
		Itens: []dto.ItemOrcamentoInput{
			{ProdutoID: 1, Quantidade: 4, PrecoUnitario: decimal.RequireFromString("20.00")},
			{NomeProdutoPersonalizado: "Frete expresso", Quantidade: 1, PrecoUnitario: decimal.RequireFromString("15.00")},
		},
	})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, entity.OrcamentoStatusEnviada, out.Status)
	assert.True(t, out.Total.Equal(decimal.RequireFromString("95.00")))
	require.Len(t, out.Itens, 2)
	assert.True(t, out.Itens[0].PrecoUnitarioCongelado.Equal(decimal.RequireFromString("20.00")),
		"o preço congelado é o recebido, não o de tabela")
	assert.Nil(t, out.Itens[1].ProdutoID)
	assert.Equal(t, "Frete expresso", out.Itens[1].NomeProdutoPersonalizado)

	require.NotNil(t, out.Cliente)
	assert.Equal(t, "Mercado São José", out.Cliente.Nome)
	require.NotNil(t, out.Usuario)
	assert.Equal(t, "Ana Vendedora", out.Usuario.Nome)

	// Orçamento não debita estoque.
	produto, _ := produtoRepo.GetByID(1)
	assert.Equal(t, int64(10), produto.EstoqueDisponivel)
}

func TestCriarOrcamento_ItemComAmbosOuNenhum(t *testing.T) {
	uc, _, _ := cenario(t)
	ctx := context.Background()

	// Nenhum dos dois.
	_, err := uc.CriarOrcamento(ctx, 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusRascunho,
		Itens: []dto.ItemOrcamentoInput{{Quantidade: 1, PrecoUnitario: decimal.NewFromInt(5)}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Ambos.
	_, err = uc.CriarOrcamento(ctx, 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusRascunho,
		Itens: []dto.ItemOrcamentoInput{{
			ProdutoID: 1, NomeProdutoPersonalizado: "Duplicado",
			Quantidade: 1, PrecoUnitario: decimal.NewFromInt(5),
		}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCriarOrcamento_SemItens(t *testing.T) {
	uc, _, _ := cenario(t)
	_, err := uc.CriarOrcamento(context.Background(), 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusRascunho,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestCriarOrcamento_EstoqueReconferidoNoAceite(t *testing.T) {
	uc, _, orcamentoRepo := cenario(t)

	_, err := uc.CriarOrcamento(context.Background(), 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusEnviada,
		Itens: []dto.ItemOrcamentoInput{
			{ProdutoID: 1, Quantidade: 11, PrecoUnitario: decimal.RequireFromString("25.00")},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Empty(t, orcamentoRepo.orcamentos, "nada é persistido quando o estoque não cobre o pedido")
}

func TestCriarOrcamento_StatusInvalido(t *testing.T) {
	uc, _, _ := cenario(t)
	_, err := uc.CriarOrcamento(context.Background(), 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: "APROVADO",
		Itens: []dto.ItemOrcamentoInput{
			{ProdutoID: 1, Quantidade: 1, PrecoUnitario: decimal.NewFromInt(25)},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarcarEnviada(t *testing.T) {
	uc, _, _ := cenario(t)
	ctx := context.Background()

	out, err := uc.CriarOrcamento(ctx, 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusRascunho,
		Itens: []dto.ItemOrcamentoInput{
			{ProdutoID: 1, Quantidade: 2, PrecoUnitario: decimal.RequireFromString("25.00")},
		},
	})
	require.NoError(t, err)

	require.NoError(t, uc.MarcarEnviada(ctx, out.ID))

	atual, err := uc.GetOrcamento(ctx, out.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OrcamentoStatusEnviada, atual.Status)

	// ENVIADA é terminal para esta operação.
	assert.ErrorIs(t, uc.MarcarEnviada(ctx, out.ID), domain.ErrConflict)
}

func TestGerarPDF(t *testing.T) {
	uc, _, _ := cenario(t)
	ctx := context.Background()

	out, err := uc.CriarOrcamento(ctx, 3, dto.CriarOrcamentoRequest{
		ClienteID: 7, Status: entity.OrcamentoStatusRascunho,
		Itens: []dto.ItemOrcamentoInput{
			{ProdutoID: 1, Quantidade: 2, PrecoUnitario: decimal.RequireFromString("25.00")},
		},
	})
	require.NoError(t, err)

	pdf, err := uc.GerarPDF(ctx, out.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)

	_, err = uc.GerarPDF(ctx, 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
