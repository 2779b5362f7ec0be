package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrUserNotFound is returned when a user id or login does not match any account.
	ErrUserNotFound = errors.New("Usuário não encontrado")
	// ErrEmailTaken is returned when another account already uses the email.
	ErrEmailTaken = errors.New("Existe outra conta com esse email")
	// ErrCodeTaken is returned when another account already uses the access code.
	ErrCodeTaken = errors.New("Existe outra conta com esse código de acesso")
	// ErrInvalidCredentials is returned when the password check fails.
	ErrInvalidCredentials = errors.New("Email e/ou senha inválidos")
	// ErrUnauthorized is returned when the caller lacks the required capability.
	ErrUnauthorized = errors.New("Não autorizado")
	// ErrDeleteUnauthorized is returned when a non-admin tries to delete users.
	ErrDeleteUnauthorized = errors.New("Exclusão de usuário não autorizado")
	// ErrImageNotFound is returned when an image does not exist.
	ErrImageNotFound = errors.New("Imagem não encontrada")
	// ErrStoreNotFound is returned when a store does not exist.
	ErrStoreNotFound = errors.New("Loja não encontrada")
	// ErrServiceNotFound is returned when a service does not exist.
	ErrServiceNotFound = errors.New("Serviço não encontrado")
	// ErrUserImageNotFound is returned when a gallery entry does not exist.
	ErrUserImageNotFound = errors.New("Imagem de usuário não encontrada")
	// ErrPetTypeNotFound is returned when a pet type does not exist.
	ErrPetTypeNotFound = errors.New("Tipo de pet não encontrado")
	// ErrServiceTypeNotFound is returned when a service type does not exist.
	ErrServiceTypeNotFound = errors.New("Tipo de serviço não encontrado")
	// ErrStoreTypeNotFound is returned when a store type does not exist.
	ErrStoreTypeNotFound = errors.New("Tipo de loja não encontrado")
)

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationError carries the first failing field message of a request body.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{Message: e.Message}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Missing credentials and
// insufficient role both answer 401.
func MapErrorToHTTP(err error) *HTTPError {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return NewHTTPError(http.StatusBadRequest, ve.Message)
	}

	switch {
	case errors.Is(err, ErrEmailTaken), errors.Is(err, ErrCodeTaken):
		return NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrImageNotFound),
		errors.Is(err, ErrStoreNotFound),
		errors.Is(err, ErrServiceNotFound),
		errors.Is(err, ErrUserImageNotFound),
		errors.Is(err, ErrPetTypeNotFound),
		errors.Is(err, ErrServiceTypeNotFound),
		errors.Is(err, ErrStoreTypeNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrDeleteUnauthorized):
		return NewHTTPError(http.StatusUnauthorized, err.Error())
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
