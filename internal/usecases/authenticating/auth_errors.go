package authenticating

import (
	"errors"
	"fmt"
)

// Erros de autenticação
var (
	ErrInvalidCredentials  = errors.New("credenciais inválidas")
	ErrUserDisabled        = errors.New("usuário desativado")
	ErrUserNotFound        = errors.New("usuário não encontrado")
	ErrInvalidToken        = errors.New("token inválido")
	ErrUserAlreadyExists   = errors.New("usuário já existe")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")
	ErrWeakPassword        = errors.New("senha fraca")
	ErrDatabaseOperation   = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	UserID  int    // ID do usuário envolvido (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewUserAuthError cria um novo erro de autenticação com contexto de usuário
func NewUserAuthError(baseErr error, code string, userID int, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		UserID:  userID,
		Details: details,
	}
}
