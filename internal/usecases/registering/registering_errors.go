package registering

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de cadastro
var (
	// Erros de validação
	ErrValidationFailed         = errors.New("invalid registration payload")
	ErrProjectAlreadyRegistered = errors.New("project already registered")
	ErrCredentialRejected       = errors.New("credential rejected by RevenueCat")

	// Erros de serviços externos
	ErrRevenueCatUnavailable = errors.New("error reaching RevenueCat")

	// Erros internos
	ErrEncryptSecret     = errors.New("error encrypting API key")
	ErrGenerateSlug      = errors.New("error generating slug")
	ErrDatabaseOperation = errors.New("database operation error")
)

// RegistrationError é um erro com contexto adicional para o cadastro
type RegistrationError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *RegistrationError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// NewRegistrationError cria um novo RegistrationError
func NewRegistrationError(err error, code string, details string) *RegistrationError {
	return &RegistrationError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}
