package campo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

// ProdutoCatalogo é um produto do snapshot de catálogo no formato do contrato.
type ProdutoCatalogo struct {
	ID                int64           `json:"id"`
	Nome              string          `json:"nome"`
	Codigo            string          `json:"codigo"`
	Preco             decimal.Decimal `json:"preco"`
	EstoqueDisponivel int64           `json:"estoque_disponivel"`
	Categoria         string          `json:"categoria"`
	UnidadeMedida     string          `json:"unidade_medida"`
}

// Snapshot converte o produto do catálogo para o snapshot usado pelo carrinho.
func (p ProdutoCatalogo) Snapshot() Produto {
	return Produto{
		ID:                p.ID,
		Nome:              p.Nome,
		Codigo:            p.Codigo,
		Preco:             p.Preco,
		EstoqueDisponivel: p.EstoqueDisponivel,
		UnidadeMedida:     p.UnidadeMedida,
	}
}

// Movimentacao é uma movimentação persistida, como devolvida pelo backend.
type Movimentacao struct {
	ID            int64      `json:"id"`
	Tipo          string     `json:"tipo"`
	ProdutoID     int64      `json:"produto_id"`
	Quantidade    int64      `json:"quantidade"`
	SolicitadoPor int64      `json:"solicitado_por"`
	Status        string     `json:"status"`
	DecididoPor   *int64     `json:"decidido_por,omitempty"`
	DecididoEm    *time.Time `json:"decidido_em,omitempty"`
	Motivo        string     `json:"motivo,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ItemOrcamento é uma linha persistida do orçamento, com o preço congelado.
type ItemOrcamento struct {
	ID                       int64           `json:"id"`
	ProdutoID                *int64          `json:"produto_id,omitempty"`
	NomeProdutoPersonalizado string          `json:"nome_produto_personalizado,omitempty"`
	Quantidade               int64           `json:"quantidade"`
	PrecoUnitarioCongelado   decimal.Decimal `json:"preco_unitario_congelado"`
	Subtotal                 decimal.Decimal `json:"subtotal"`
}

// Orcamento é o orçamento persistido ecoado pelo backend no envio.
type Orcamento struct {
	ID                int64           `json:"id"`
	Status            string          `json:"status"`
	CondicaoPagamento string          `json:"condicao_pagamento"`
	Total             decimal.Decimal `json:"total"`
	DataCriacao       time.Time       `json:"data_criacao"`
	Itens             []ItemOrcamento `json:"itens"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Client fala o contrato HTTP da API de vendas em nome do agente de campo.
// Qualquer falha de transporte ou resposta 5xx vira ErrTransient: o chamador
// decide repetir, e o estado local nunca é alterado por uma falha.
type Client struct {
	baseURL string
	token   string
	httpc   *http.Client
}

// NewClient constrói o cliente. token é o JWT obtido no login; baseURL sem
// barra final (ex.: https://api.exemplo.com).
func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpc:   &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithHTTP constrói o cliente com um *http.Client próprio (testes,
// timeouts customizados).
func NewClientWithHTTP(baseURL, token string, httpc *http.Client) *Client {
	return &Client{baseURL: baseURL, token: token, httpc: httpc}
}

// BuscarCatalogo busca o snapshot de catálogo. termo opcional filtra por
// nome, código ou categoria (ignorando acentos, do lado do servidor).
func (c *Client) BuscarCatalogo(ctx context.Context, termo string) ([]ProdutoCatalogo, error) {
	path := "/api/produtos"
	if termo != "" {
		path += "?busca=" + url.QueryEscape(termo)
	}
	var out []ProdutoCatalogo
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnviarOrcamento envia um pedido congelado (montado por Montar) e devolve o
// orçamento persistido com id e data atribuídos pelo backend. Em falha
// transiente o pedido permanece intacto e pode ser reenviado como está.
func (c *Client) EnviarOrcamento(ctx context.Context, pedido *Pedido) (*Orcamento, error) {
	var out Orcamento
	if err := c.do(ctx, http.MethodPost, "/api/orcamentos", pedido, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EnviarMovimentacao propõe uma movimentação de estoque e devolve a pendência
// persistida com status PENDENTE.
func (c *Client) EnviarMovimentacao(ctx context.Context, tipo string, produtoID, quantidade int64) (*Movimentacao, error) {
	body := map[string]any{
		"tipo":       tipo,
		"produto_id": produtoID,
		"quantidade": quantidade,
	}
	var out Movimentacao
	if err := c.do(ctx, http.MethodPost, "/api/movimentacoes", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListarMovimentacoes busca as movimentações do backend, opcionalmente
// filtradas por status.
func (c *Client) ListarMovimentacoes(ctx context.Context, status string) ([]Movimentacao, error) {
	path := "/api/movimentacoes"
	if status != "" {
		path += "?status=" + url.QueryEscape(status)
	}
	var out []Movimentacao
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("campo: marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("campo: build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrTransient, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: backend devolveu %d", ErrTransient, resp.StatusCode)
	}
	if resp.StatusCode >= 400 {
		var apiErr apiError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return mapAPIError(resp.StatusCode, apiErr)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: resposta ilegível: %v", ErrTransient, err)
	}
	return nil
}

// mapAPIError converte o corpo de erro da API nas sentinelas do domínio.
func mapAPIError(status int, apiErr apiError) error {
	switch apiErr.Code {
	case "INSUFFICIENT_STOCK":
		return ErrInsufficientStock
	case "EMPTY_CART":
		return ErrEmptyCart
	case "CONFLICT":
		return ErrConflict
	case "NOT_FOUND":
		return ErrNotFound
	}
	switch status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	}
	if apiErr.Message != "" {
		return fmt.Errorf("%w: %s", ErrInvalidInput, apiErr.Message)
	}
	return ErrInvalidInput
}
