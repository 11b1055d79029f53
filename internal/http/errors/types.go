package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError define la estructura estándar para errores HTTP del relay.
// Code viaja en el campo JSON "error" (convención OAuth: error + error_description).
type AppError struct {
	Code        string `json:"error"`
	Description string `json:"error_description,omitempty"`
	Message     string `json:"message"`
	Path        string `json:"path,omitempty"`
	HTTPStatus  int    `json:"-"`
	Err         error  `json:"-"` // causa original, sólo para logs
}

// Error implementa la interfaz error
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap permite acceder al error original
func (e *AppError) Unwrap() error {
	return e.Err
}

// New crea un nuevo AppError
func New(status int, code, message string) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// FromError convierte un error genérico en un AppError.
// Si no hay un AppError en la cadena, devuelve server_error conservando la causa.
func FromError(err error) *AppError {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return ErrServerError.WithCause(err)
}

// WithDescription devuelve una COPIA con error_description.
func (e *AppError) WithDescription(desc string) *AppError {
	newErr := *e
	newErr.Description = desc
	return &newErr
}

// WithPath devuelve una COPIA con el path del request (usado por 404).
func (e *AppError) WithPath(path string) *AppError {
	newErr := *e
	newErr.Path = path
	return &newErr
}

// WithCause devuelve una COPIA con el error original.
func (e *AppError) WithCause(err error) *AppError {
	newErr := *e
	newErr.Err = err
	return &newErr
}

// ProviderError arma el 400 que devolvemos cuando QuickBooks redirige con ?error=...
func ProviderError(code, description string) *AppError {
	return &AppError{
		Code:        code,
		Description: description,
		Message:     "QuickBooks OAuth authentication failed",
		HTTPStatus:  http.StatusBadRequest,
	}
}

// =================================================================================
// LISTA DE ERRORES PREDEFINIDOS
// =================================================================================

var (
	ErrMissingCode = &AppError{
		Code:       "missing_code",
		Message:    "Authorization code not received from QuickBooks",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrMissingParameters = &AppError{
		Code:       "missing_parameters",
		Message:    "Required OAuth parameters not provided",
		HTTPStatus: http.StatusBadRequest,
	}

	ErrNotFound = &AppError{
		Code:       "not_found",
		Message:    "Endpoint not found",
		HTTPStatus: http.StatusNotFound,
	}

	ErrServerError = &AppError{
		Code:       "server_error",
		Message:    "Internal server error occurred",
		HTTPStatus: http.StatusInternalServerError,
	}
)
