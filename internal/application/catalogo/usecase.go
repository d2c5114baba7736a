package catalogo

import (
	"context"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// snapshotMax limite de produtos carregados em um snapshot.
const snapshotMax = 1000

// CatalogoUseCase expõe o snapshot de catálogo: leitura ordenada dos produtos
// com estoque e preço atuais, com cache read-through opcional. O snapshot é
// somente leitura para quem o consome; cada sessão de vendedor trabalha sobre
// a sua cópia.
type CatalogoUseCase struct {
	produtoRepo repository.ProdutoRepository
	cache       SnapshotCache // pode ser nil (cache desabilitado)
}

// NewCatalogoUseCase constrói o caso de uso. cache pode ser nil.
func NewCatalogoUseCase(produtoRepo repository.ProdutoRepository, cache SnapshotCache) *CatalogoUseCase {
	return &CatalogoUseCase{produtoRepo: produtoRepo, cache: cache}
}

// Listar devolve o snapshot de catálogo. Tenta o cache primeiro; em miss ou
// falha, lê do banco e repõe o cache (best-effort).
func (uc *CatalogoUseCase) Listar(ctx context.Context) ([]dto.ProdutoResponse, error) {
	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}
	produtos, err := uc.produtoRepo.List(snapshotMax, 0)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		out = append(out, dto.ToProdutoResponse(p))
	}
	if uc.cache != nil {
		_ = uc.cache.Set(ctx, out)
	}
	return out, nil
}

// Buscar filtra o snapshot por termo, ignorando acentos e caixa
// ("agua" encontra "Água"). Busca em nome, código e categoria.
func (uc *CatalogoUseCase) Buscar(ctx context.Context, termo string) ([]dto.ProdutoResponse, error) {
	todos, err := uc.Listar(ctx)
	if err != nil {
		return nil, err
	}
	alvo := strings.TrimSpace(normalizar(termo))
	if alvo == "" {
		return todos, nil
	}
	out := make([]dto.ProdutoResponse, 0)
	for _, p := range todos {
		if strings.Contains(normalizar(p.Nome), alvo) ||
			strings.Contains(normalizar(p.Codigo), alvo) ||
			strings.Contains(normalizar(p.Categoria), alvo) {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID devolve um produto do catálogo.
func (uc *CatalogoUseCase) GetByID(ctx context.Context, id int64) (*dto.ProdutoResponse, error) {
	p, err := uc.produtoRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.ToProdutoResponse(p)
	return &resp, nil
}

// CriarProduto cadastra um produto novo no catálogo e invalida o snapshot.
func (uc *CatalogoUseCase) CriarProduto(ctx context.Context, in dto.CriarProdutoRequest) (*dto.ProdutoResponse, error) {
	if strings.TrimSpace(in.Nome) == "" || strings.TrimSpace(in.Codigo) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Preco.IsNegative() || in.EstoqueDisponivel < 0 {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	p := &entity.Produto{
		Nome:              in.Nome,
		Codigo:            in.Codigo,
		Preco:             in.Preco,
		EstoqueDisponivel: in.EstoqueDisponivel,
		Categoria:         in.Categoria,
		UnidadeMedida:     in.UnidadeMedida,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.produtoRepo.Create(p); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		_ = uc.cache.Invalidate(ctx)
	}
	resp := dto.ToProdutoResponse(p)
	return &resp, nil
}

// normalizador remove marcas diacríticas (NFD → remove Mn → NFC).
var normalizador = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizar devolve o texto minúsculo e sem acentos para comparação.
func normalizar(s string) string {
	out, _, err := transform.String(normalizador, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}
