package entity

import "time"

// Papéis de usuário.
const (
	PapelAdmin      = "admin"
	PapelVendedor   = "vendedor"   // monta e envia orçamentos
	PapelEntregador = "entregador" // registra movimentações de estoque em campo
)

// Usuario representa um usuário da aplicação (vendedor, entregador ou admin).
type Usuario struct {
	ID        int64
	Nome      string
	Email     string
	SenhaHash string
	Papel     string // admin | vendedor | entregador
	Status    string // active | disabled
	CreatedAt time.Time
	UpdatedAt time.Time
}
