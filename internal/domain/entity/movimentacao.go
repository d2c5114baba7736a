package entity

import "time"

// Tipos de movimentação de estoque.
const (
	MovimentacaoTipoEntrada = "ENTRADA"
	MovimentacaoTipoSaida   = "SAIDA"
)

// Status de uma movimentação pendente. As transições pertencem exclusivamente
// ao processador de aprovação: PENDENTE → APROVADA ou PENDENTE → REJEITADA,
// ambas terminais. O cliente nunca muda o status localmente, apenas reconsulta.
const (
	MovimentacaoStatusPendente  = "PENDENTE"
	MovimentacaoStatusAprovada  = "APROVADA"
	MovimentacaoStatusRejeitada = "REJEITADA"
)

// Movimentacao representa uma movimentação de estoque proposta por um
// entregador. Só afeta o estoque autoritativo depois de aprovada.
type Movimentacao struct {
	ID            int64
	TransactionID string // uuid de auditoria; referência nos ajustes de estoque
	Tipo          string // ENTRADA | SAIDA
	ProdutoID     int64
	Quantidade    int64
	SolicitadoPor int64  // usuário (entregador) que propôs
	Status        string // PENDENTE | APROVADA | REJEITADA
	DecididoPor   *int64 // admin que aprovou/rejeitou
	DecididoEm    *time.Time
	Motivo        string // motivo informado na rejeição
	CreatedAt     time.Time
}
