package entity

import "time"

// Cliente representa o cliente final de um orçamento.
type Cliente struct {
	ID        int64
	Nome      string
	Documento string // CPF/CNPJ
	Telefone  string
	Endereco  string
	Cidade    string
	CreatedAt time.Time
}
