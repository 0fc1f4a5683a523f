package rcdomain

import (
	"errors"
	"fmt"
)

// FailureKind classifica as falhas de consulta ao RevenueCat. O job de
// atualização de métricas decide remoção versus retentativa exclusivamente
// por este valor, nunca por comparação de strings.
type FailureKind int

const (
	// FailureTransient cobre falha de rede, timeout, rate limit, 5xx e
	// qualquer resposta ambígua que não case com a assinatura de credencial
	// inválida
	FailureTransient FailureKind = iota

	// FailureInvalidCredential é a resposta autoritativa do RevenueCat de
	// que a credencial em si foi rejeitada. É o ÚNICO tipo de falha que
	// dispara a remoção de uma entrada.
	FailureInvalidCredential

	// FailureMalformedResponse é uma resposta 2xx cujo corpo não pôde ser
	// interpretado
	FailureMalformedResponse
)

// FetchError é o erro retornado pelas consultas ao RevenueCat
type FetchError struct {
	Kind       FailureKind
	StatusCode int
	Message    string
}

func (e *FetchError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s (status %d)", e.Message, e.StatusCode)
	}
	return e.Message
}

func NewTransientError(statusCode int, message string) *FetchError {
	return &FetchError{Kind: FailureTransient, StatusCode: statusCode, Message: message}
}

func NewInvalidCredentialError(statusCode int, message string) *FetchError {
	return &FetchError{Kind: FailureInvalidCredential, StatusCode: statusCode, Message: message}
}

func NewMalformedResponseError(message string) *FetchError {
	return &FetchError{Kind: FailureMalformedResponse, Message: message}
}

// IsInvalidCredential verifica se o erro é de credencial rejeitada
func IsInvalidCredential(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == FailureInvalidCredential
}

// IsTransient verifica se o erro é passível de retentativa na próxima
// execução do job
func IsTransient(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr) && fetchErr.Kind == FailureTransient
}

// ErrorResponse representa o corpo de erro da API do RevenueCat
type ErrorResponse struct {
	Object  string `json:"object"`
	Type    string `json:"type"`
	Message string `json:"message"`
	DocURL  string `json:"doc_url,omitempty"`
}

// IsAuthorizationError verifica se o corpo de erro é a assinatura exata de
// credencial rejeitada. Qualquer outra combinação é tratada como ambígua
// pelo chamador (contrato estreito: nunca remover uma entrada com base em
// evidência ambígua).
func (e *ErrorResponse) IsAuthorizationError() bool {
	return e.Object == "error" &&
		(e.Type == "authentication_error" || e.Type == "authorization_error")
}
