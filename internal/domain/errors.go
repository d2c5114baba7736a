package domain

import "errors"

// Erros de domínio (sem dependências externas).
var (
	ErrNotFound           = errors.New("recurso não encontrado")
	ErrUserNotFound       = errors.New("usuário não encontrado")
	ErrEmailAlreadyExists = errors.New("o e-mail já está cadastrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("não autorizado")
	ErrForbidden          = errors.New("acesso negado")
	ErrConflict           = errors.New("conflito com o estado atual")
	ErrInsufficientStock  = errors.New("estoque insuficiente")
	ErrEmptyCart          = errors.New("carrinho vazio")

	// ErrTransient indica falha de rede/backend durante um envio ou consulta.
	// O estado local nunca é descartado quando ocorre; repetir a operação é seguro.
	ErrTransient = errors.New("falha transitória de comunicação")
)
