// Package errors defines the application error taxonomy exposed to the
// delivery layer.
package errors

import (
	"net/http"

	"nexprev/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. User-facing messages are pt-BR.
var (
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"E-mail ou senha incorretos",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Dados informados são inválidos",
		"",
	)

	ErrStorageUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORAGE_UNAVAILABLE",
		"Armazenamento de sessão indisponível",
		"",
	)

	ErrRegistrationUnsupported = NewBaseError(
		http.StatusForbidden,
		"REGISTRATION_UNSUPPORTED",
		"Cadastro não disponível para este perfil",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Recurso não encontrado",
		"",
	)

	ErrPartnerNotFound = NewBaseError(
		http.StatusNotFound,
		"PARTNER_NOT_FOUND",
		"Parceiro não encontrado",
		"",
	)

	ErrOfferNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_NOT_FOUND",
		"Oferta não encontrada",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Acesso negado",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Erro interno do sistema",
		"",
	)
)
