package dto

import (
	"time"

	"github.com/seu-usuario/vendas-campo/internal/domain/entity"
)

// ProporMovimentacaoRequest corpo para POST /api/movimentacoes.
type ProporMovimentacaoRequest struct {
	Tipo       string `json:"tipo"` // ENTRADA | SAIDA
	ProdutoID  int64  `json:"produto_id"`
	Quantidade int64  `json:"quantidade"`
}

// DecidirMovimentacaoRequest corpo para aprovação/rejeição.
type DecidirMovimentacaoRequest struct {
	Motivo string `json:"motivo,omitempty"` // usado na rejeição
}

// MovimentacaoResponse movimentação persistida.
type MovimentacaoResponse struct {
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

// ToMovimentacaoResponse converte a entidade para o contrato HTTP.
func ToMovimentacaoResponse(m *entity.Movimentacao) MovimentacaoResponse {
	return MovimentacaoResponse{
		ID:            m.ID,
		Tipo:          m.Tipo,
		ProdutoID:     m.ProdutoID,
		Quantidade:    m.Quantidade,
		SolicitadoPor: m.SolicitadoPor,
		Status:        m.Status,
		DecididoPor:   m.DecididoPor,
		DecididoEm:    m.DecididoEm,
		Motivo:        m.Motivo,
		CreatedAt:     m.CreatedAt,
	}
}
