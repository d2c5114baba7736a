package dto

// CriarClienteRequest corpo para POST /api/clientes.
type CriarClienteRequest struct {
	Nome      string `json:"nome"`
	Documento string `json:"documento,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Endereco  string `json:"endereco,omitempty"`
	Cidade    string `json:"cidade,omitempty"`
}
