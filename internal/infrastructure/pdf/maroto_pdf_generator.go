// Package pdf implementa a geração da representação gráfica do orçamento
// entregue ao cliente.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + N° Orçamento  │  Status + Data            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CLIENTE: Nome + Documento + contato                        │
//	│  VENDEDOR: Nome + e-mail                                    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABELA: Qtd | Descrição | Preço Unit. | Subtotal           │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Condição de pagamento / TOTAL                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strings"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	apporcamento "github.com/seu-usuario/vendas-campo/internal/application/orcamento"
	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// ── Paleta de cores ───────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 84, Blue: 60}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ apporcamento.PDFGenerator = (*MarotoPDFGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa orcamento.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator constrói o gerador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GerarOrcamentoPDF gera o PDF do orçamento e devolve seus bytes.
func (g *MarotoPDFGenerator) GerarOrcamentoPDF(
	_ context.Context,
	orc *entity.Orcamento,
	cliente *entity.Cliente,
	vendedor *entity.Usuario,
	itens []*entity.OrcamentoItem,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(fmt.Sprintf("Orçamento #%d", orc.ID), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(orc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(clienteRow(cliente))
	m.AddRows(vendedorRow(vendedor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(itens) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(orc))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

// headerRow: título + número (esq) e status + data (dir).
func headerRow(orc *entity.Orcamento) core.Row {
	data := orc.DataCriacao.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("ORÇAMENTO DE VENDA", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("N° %d", orc.ID), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(statusLabel(orc.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Data: "+data, props.Text{
				Size: 8, Align: align.Right, Top: 9, Color: colorGray,
			}),
		),
	)
}

// clienteRow: dados do cliente.
func clienteRow(cliente *entity.Cliente) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("CLIENTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(cliente.Nome, props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Documento: %s   |   Tel: %s   |   %s",
				nonEmpty(cliente.Documento, "—"),
				nonEmpty(cliente.Telefone, "—"),
				nonEmpty(strings.TrimSpace(cliente.Endereco+" "+cliente.Cidade), "—"),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// vendedorRow: dados do vendedor responsável.
func vendedorRow(vendedor *entity.Usuario) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New("VENDEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s   |   %s", vendedor.Nome, vendedor.Email), props.Text{
				Size: 8, Top: 6, Color: colorGray,
			}),
		),
	)
}

// tableHeaderRow: cabeçalho da tabela de itens.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Qtd.", 1, align.Center),
		h("Descrição do produto", 6, align.Left),
		h("Preço Unit.", 2, align.Right),
		h("Subtotal", 3, align.Right),
	)
}

// tableItemRows: uma fila por linha do orçamento. Itens personalizados usam
// o nome livre digitado pelo vendedor.
func tableItemRows(itens []*entity.OrcamentoItem) []core.Row {
	result := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		descricao := it.NomeProdutoPersonalizado
		if descricao == "" && it.ProdutoID != nil {
			descricao = fmt.Sprintf("Produto #%d", *it.ProdutoID)
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantidade),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				descricao,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				"R$ "+formatMoney(it.PrecoUnitarioCongelado.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				"R$ "+formatMoney(it.Subtotal.StringFixed(2)),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totaisRow: condição de pagamento + total geral.
func totaisRow(orc *entity.Orcamento) core.Row {
	return row.New(18).Add(
		col.New(6).Add(
			text.New("Condição de pagamento:", props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 2,
			}),
			text.New(nonEmpty(orc.CondicaoPagamento, "—"), props.Text{
				Size: 9, Top: 8, Color: colorGray,
			}),
		),
		col.New(3).Add(
			text.New("TOTAL:", props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 2,
			}),
		),
		col.New(3).Add(
			text.New("R$ "+formatMoney(orc.Total.StringFixed(2)), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Right,
				Color: colorPrimary, Top: 4, Right: 1,
			}),
		),
	)
}

// footerRow: leyenda de validade.
func footerRow() core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			"Este orçamento não é um documento fiscal. Preços e disponibilidade "+
				"sujeitos a confirmação no momento do pedido.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	switch status {
	case entity.OrcamentoStatusRascunho:
		return "RASCUNHO"
	case entity.OrcamentoStatusEnviada:
		return "ENVIADO AO CLIENTE"
	}
	return status
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

// formatMoney converte "1234.56" no formato brasileiro "1.234,56".
func formatMoney(s string) string {
	inteiro, centavos, ok := strings.Cut(s, ".")
	if !ok {
		centavos = "00"
	}
	n := len(inteiro)
	if n > 3 {
		buf := make([]byte, 0, n+n/3)
		for i, c := range []byte(inteiro) {
			if i > 0 && (n-i)%3 == 0 {
				buf = append(buf, '.')
			}
			buf = append(buf, c)
		}
		inteiro = string(buf)
	}
	return inteiro + "," + centavos
}
