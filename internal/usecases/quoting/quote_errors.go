package quoting

import "errors"

// Erros do ciclo de vida de orçamentos
var (
	ErrQuoteNotFound     = errors.New("orçamento não encontrado")
	ErrClientNotFound    = errors.New("cliente não encontrado")
	ErrServiceNotFound   = errors.New("serviço não encontrado")
	ErrNoItems           = errors.New("orçamento precisa de ao menos um item")
	ErrInvalidQuantity   = errors.New("quantidade do item deve ser maior que zero")
	ErrInvalidStatus     = errors.New("status de orçamento inválido")
	ErrInvalidTransition = errors.New("transição de status não permitida")
)
