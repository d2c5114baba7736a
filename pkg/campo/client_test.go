package campo_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seu-usuario/vendas-campo/pkg/campo"
)

// servidor de teste que fala o contrato da API.
func novoServidor(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *campo.Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, campo.NewClientWithHTTP(srv.URL, "token-de-teste", srv.Client())
}

func TestClient_BuscarCatalogo(t *testing.T) {
	_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/produtos", r.URL.Path)
		require.Equal(t, "Bearer token-de-teste", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "nome": "Água Mineral 500ml", "codigo": "AGUA-500", "preco": "2.50", "estoque_disponivel": 120, "categoria": "Bebidas", "unidade_medida": "UN"},
			{"id": 2, "nome": "Café Torrado 1kg", "codigo": "CAFE-1KG", "preco": "38.90", "estoque_disponivel": 15, "categoria": "Mercearia", "unidade_medida": "KG"},
		})
	})

	produtos, err := client.BuscarCatalogo(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, produtos, 2)
	assert.Equal(t, "Água Mineral 500ml", produtos[0].Nome)
	assert.True(t, produtos[0].Preco.Equal(decimal.RequireFromString("2.50")))
	assert.Equal(t, int64(120), produtos[0].EstoqueDisponivel)

	// O snapshot alimenta o carrinho diretamente.
	snap := produtos[1].Snapshot()
	assert.Equal(t, int64(2), snap.ID)
	assert.Equal(t, int64(15), snap.EstoqueDisponivel)
}

func TestClient_BuscarCatalogo_ComTermo(t *testing.T) {
	_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "agua", r.URL.Query().Get("busca"))
		json.NewEncoder(w).Encode([]map[string]any{})
	})
	_, err := client.BuscarCatalogo(context.Background(), "agua")
	require.NoError(t, err)
}

func TestClient_EnviarOrcamento_EcoaPersistido(t *testing.T) {
	_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/orcamentos", r.URL.Path)

		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, float64(7), payload["cliente_id"])
		assert.Equal(t, "ENVIADA", payload["status"])
		itens := payload["itens"].([]any)
		require.Len(t, itens, 1)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 101, "status": "ENVIADA", "condicao_pagamento": "30 dias",
			"total": "50.00", "data_criacao": "2026-08-31T10:00:00Z",
			"itens": []map[string]any{
				{"id": 1, "produto_id": 3, "quantidade": 5, "preco_unitario_congelado": "10.00", "subtotal": "50.00"},
			},
		})
	})

	pedido := &campo.Pedido{
		ClienteID:         7,
		CondicaoPagamento: "30 dias",
		Status:            "ENVIADA",
		Itens: []campo.ItemPedido{
			{ProdutoID: 3, Quantidade: 5, PrecoUnitario: decimal.RequireFromString("10.00")},
		},
	}
	out, err := client.EnviarOrcamento(context.Background(), pedido)
	require.NoError(t, err)
	assert.Equal(t, int64(101), out.ID)
	require.Len(t, out.Itens, 1)
	// O backend confirma o congelamento: preco_unitario_congelado é o preço enviado.
	assert.True(t, out.Itens[0].PrecoUnitarioCongelado.Equal(pedido.Itens[0].PrecoUnitario))
}

func TestClient_EnviarMovimentacao(t *testing.T) {
	_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/movimentacoes", r.URL.Path)
		var payload map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		assert.Equal(t, "SAIDA", payload["tipo"])

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]any{
			"id": 55, "tipo": "SAIDA", "produto_id": 3, "quantidade": 2,
			"solicitado_por": 9, "status": "PENDENTE", "created_at": "2026-08-31T10:00:00Z",
		})
	})

	mov, err := client.EnviarMovimentacao(context.Background(), "SAIDA", 3, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(55), mov.ID)
	assert.Equal(t, campo.StatusPendente, mov.Status)
}

func TestClient_Erro5xx_VirouTransient(t *testing.T) {
	_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	_, err := client.BuscarCatalogo(context.Background(), "")
	assert.ErrorIs(t, err, campo.ErrTransient)
}

func TestClient_ServidorInacessivel_VirouTransient(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close() // derruba antes da chamada

	client := campo.NewClient(url, "")
	_, err := client.ListarMovimentacoes(context.Background(), "")
	assert.ErrorIs(t, err, campo.ErrTransient)
}

func TestClient_ErrosDeNegocioMapeados(t *testing.T) {
	cases := []struct {
		nome     string
		status   int
		code     string
		esperado error
	}{
		{"estoque insuficiente", http.StatusUnprocessableEntity, "INSUFFICIENT_STOCK", campo.ErrInsufficientStock},
		{"carrinho vazio", http.StatusBadRequest, "EMPTY_CART", campo.ErrEmptyCart},
		{"já decidida", http.StatusConflict, "CONFLICT", campo.ErrConflict},
		{"não encontrado", http.StatusNotFound, "NOT_FOUND", campo.ErrNotFound},
		{"sem token", http.StatusUnauthorized, "MISSING_TOKEN", campo.ErrUnauthorized},
		{"papel errado", http.StatusForbidden, "FORBIDDEN", campo.ErrForbidden},
		{"validação", http.StatusBadRequest, "VALIDATION", campo.ErrInvalidInput},
	}
	for _, tc := range cases {
		t.Run(tc.nome, func(t *testing.T) {
			_, client := novoServidor(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				json.NewEncoder(w).Encode(map[string]string{"code": tc.code, "message": tc.nome})
			})
			_, err := client.EnviarMovimentacao(context.Background(), "SAIDA", 1, 1)
			assert.ErrorIs(t, err, tc.esperado)
		})
	}
}
