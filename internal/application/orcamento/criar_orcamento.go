package orcamento

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/seu-usuario/vendas-campo/internal/application/dto"
	"github.com/seu-usuario/vendas-campo/internal/domain"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
	"github.com/seu-usuario/vendas-campo/internal/domain/repository"
)

// CriarOrcamentoUseCase persiste orçamentos enviados pelos vendedores.
// O backend é o árbitro final de estoque: o estoque é reconferido aqui no
// aceite (o snapshot do carrinho pode estar defasado), mas não é debitado —
// orçamento não movimenta estoque; só movimentações aprovadas fazem isso.
type CriarOrcamentoUseCase struct {
	txRunner      TxRunner
	clienteRepo   repository.ClienteRepository
	usuarioRepo   repository.UsuarioRepository
	produtoRepo   repository.ProdutoRepository
	orcamentoRepo repository.OrcamentoRepository
	pdfGenerator  PDFGenerator
}

// NewCriarOrcamentoUseCase constrói o caso de uso.
func NewCriarOrcamentoUseCase(
	txRunner TxRunner,
	clienteRepo repository.ClienteRepository,
	usuarioRepo repository.UsuarioRepository,
	produtoRepo repository.ProdutoRepository,
	orcamentoRepo repository.OrcamentoRepository,
	pdfGenerator PDFGenerator,
) *CriarOrcamentoUseCase {
	return &CriarOrcamentoUseCase{
		txRunner:      txRunner,
		clienteRepo:   clienteRepo,
		usuarioRepo:   usuarioRepo,
		produtoRepo:   produtoRepo,
		orcamentoRepo: orcamentoRepo,
		pdfGenerator:  pdfGenerator,
	}
}

// CriarOrcamento valida o pedido congelado e grava cabeçalho e itens em uma
// transação. O preço de cada item é armazenado como preco_unitario_congelado,
// exatamente como recebido — a autoridade de preço é do vendedor e não há
// piso/teto em relação ao preço de tabela.
func (uc *CriarOrcamentoUseCase) CriarOrcamento(ctx context.Context, usuarioID int64, in dto.CriarOrcamentoRequest) (*dto.OrcamentoResponse, error) {
	if in.Status != entity.OrcamentoStatusRascunho && in.Status != entity.OrcamentoStatusEnviada {
		return nil, domain.ErrInvalidInput
	}
	if in.ClienteID <= 0 {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Itens) == 0 {
		return nil, domain.ErrEmptyCart
	}

	cliente, err := uc.clienteRepo.GetByID(in.ClienteID)
	if err != nil || cliente == nil {
		return nil, domain.ErrNotFound
	}

	// Validar itens e reconferir estoque dos itens de catálogo (só leitura).
	produtosPorID := make(map[int64]*entity.Produto)
	for i := range in.Itens {
		item := &in.Itens[i]
		catalogo := item.ProdutoID > 0
		personalizado := strings.TrimSpace(item.NomeProdutoPersonalizado) != ""
		if catalogo == personalizado { // nenhum ou ambos
			return nil, domain.ErrInvalidInput
		}
		if item.Quantidade <= 0 || item.PrecoUnitario.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
		if !catalogo {
			continue
		}
		produto, err := uc.produtoRepo.GetByID(item.ProdutoID)
		if err != nil || produto == nil {
			return nil, domain.ErrNotFound
		}
		if item.Quantidade > produto.EstoqueDisponivel {
			return nil, domain.ErrInsufficientStock
		}
		produtosPorID[item.ProdutoID] = produto
	}

	now := time.Now()
	total := decimal.Zero
	for _, item := range in.Itens {
		total = total.Add(decimal.NewFromInt(item.Quantidade).Mul(item.PrecoUnitario))
	}

	orc := &entity.Orcamento{
		ClienteID:         in.ClienteID,
		UsuarioID:         usuarioID,
		CondicaoPagamento: in.CondicaoPagamento,
		Status:            in.Status,
		Total:             total,
		DataCriacao:       now,
		UpdatedAt:         now,
	}
	var itens []*entity.OrcamentoItem

	err = uc.txRunner.RunOrcamento(ctx, func(
		_ repository.ProdutoRepository,
		orcamentoRepo repository.OrcamentoRepository,
	) error {
		if err := orcamentoRepo.Create(orc); err != nil {
			return err
		}
		for _, item := range in.Itens {
			ent := &entity.OrcamentoItem{
				OrcamentoID:            orc.ID,
				Quantidade:             item.Quantidade,
				PrecoUnitarioCongelado: item.PrecoUnitario,
				Subtotal:               decimal.NewFromInt(item.Quantidade).Mul(item.PrecoUnitario),
			}
			if item.ProdutoID > 0 {
				id := item.ProdutoID
				ent.ProdutoID = &id
			} else {
				ent.NomeProdutoPersonalizado = item.NomeProdutoPersonalizado
			}
			if err := orcamentoRepo.CreateItem(ent); err != nil {
				return err
			}
			itens = append(itens, ent)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	vendedor, _ := uc.usuarioRepo.GetByID(usuarioID)
	return toResponse(orc, cliente, vendedor, itens), nil
}

// GetOrcamento devolve um orçamento com itens, cliente e vendedor aninhados.
func (uc *CriarOrcamentoUseCase) GetOrcamento(ctx context.Context, id int64) (*dto.OrcamentoResponse, error) {
	orc, err := uc.orcamentoRepo.GetByID(id)
	if err != nil || orc == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.orcamentoRepo.GetItensByOrcamentoID(id)
	if err != nil {
		return nil, err
	}
	cliente, _ := uc.clienteRepo.GetByID(orc.ClienteID)
	vendedor, _ := uc.usuarioRepo.GetByID(orc.UsuarioID)
	return toResponse(orc, cliente, vendedor, itens), nil
}

// Listar devolve orçamentos filtrados por status, cliente e período.
func (uc *CriarOrcamentoUseCase) Listar(ctx context.Context, filtro repository.OrcamentoFiltro, limit, offset int) ([]dto.OrcamentoResponse, error) {
	if filtro.Status != "" &&
		filtro.Status != entity.OrcamentoStatusRascunho &&
		filtro.Status != entity.OrcamentoStatusEnviada {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.orcamentoRepo.List(filtro, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.OrcamentoResponse, 0, len(list))
	for _, orc := range list {
		out = append(out, *toResponse(orc, nil, nil, nil))
	}
	return out, nil
}

// MarcarEnviada promove um RASCUNHO persistido para ENVIADA. A correção de um
// orçamento já criado acontece por operações explícitas como esta — os itens
// congelados nunca são editados no lugar.
func (uc *CriarOrcamentoUseCase) MarcarEnviada(ctx context.Context, id int64) error {
	orc, err := uc.orcamentoRepo.GetByID(id)
	if err != nil || orc == nil {
		return domain.ErrNotFound
	}
	if orc.Status != entity.OrcamentoStatusRascunho {
		return domain.ErrConflict
	}
	return uc.orcamentoRepo.UpdateStatus(id, entity.OrcamentoStatusEnviada)
}

// GerarPDF monta o PDF do orçamento para envio ao cliente.
func (uc *CriarOrcamentoUseCase) GerarPDF(ctx context.Context, id int64) ([]byte, error) {
	orc, err := uc.orcamentoRepo.GetByID(id)
	if err != nil || orc == nil {
		return nil, domain.ErrNotFound
	}
	itens, err := uc.orcamentoRepo.GetItensByOrcamentoID(id)
	if err != nil {
		return nil, err
	}
	cliente, _ := uc.clienteRepo.GetByID(orc.ClienteID)
	vendedor, _ := uc.usuarioRepo.GetByID(orc.UsuarioID)
	return uc.pdfGenerator.GerarOrcamentoPDF(ctx, orc, cliente, vendedor, itens)
}

func toResponse(orc *entity.Orcamento, cliente *entity.Cliente, vendedor *entity.Usuario, itens []*entity.OrcamentoItem) *dto.OrcamentoResponse {
	resp := &dto.OrcamentoResponse{
		ID:                orc.ID,
		Status:            orc.Status,
		CondicaoPagamento: orc.CondicaoPagamento,
		Total:             orc.Total,
		DataCriacao:       orc.DataCriacao,
		Itens:             make([]dto.ItemOrcamentoResponse, 0, len(itens)),
	}
	if cliente != nil {
		resp.Cliente = &dto.ClienteResponse{
			ID:        cliente.ID,
			Nome:      cliente.Nome,
			Documento: cliente.Documento,
			Telefone:  cliente.Telefone,
			Cidade:    cliente.Cidade,
		}
	}
	if vendedor != nil {
		resp.Usuario = &dto.UsuarioResumoResponse{
			ID:    vendedor.ID,
			Nome:  vendedor.Nome,
			Email: vendedor.Email,
		}
	}
	for _, it := range itens {
		resp.Itens = append(resp.Itens, dto.ItemOrcamentoResponse{
			ID:                       it.ID,
			ProdutoID:                it.ProdutoID,
			NomeProdutoPersonalizado: it.NomeProdutoPersonalizado,
			Quantidade:               it.Quantidade,
			PrecoUnitarioCongelado:   it.PrecoUnitarioCongelado,
			Subtotal:                 it.Subtotal,
		})
	}
	return resp
}
