package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Taxonomia de falhas dos serviços. Os handlers traduzem estes sentinelas
// para códigos HTTP; internamente as variantes permanecem distintas.
var (
	// ErrNotFound indica recurso ausente ou coleção vazia.
	ErrNotFound = errors.New("recurso não encontrado")

	// ErrUnauthorized indica que o recurso existe mas pertence a outro usuário.
	ErrUnauthorized = errors.New("não autorizado")

	// ErrDuplicateEmail indica colisão de email no cadastro.
	ErrDuplicateEmail = errors.New("email já cadastrado")

	// ErrInvalidCredentials indica email desconhecido ou senha incorreta.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrMissingToken indica requisição sem bearer token.
	ErrMissingToken = errors.New("token não fornecido")

	// ErrInvalidToken indica token malformado ou com assinatura inválida.
	ErrInvalidToken = errors.New("token inválido")

	// ErrNoActiveSession indica token válido sem sessão persistida (revogado).
	ErrNoActiveSession = errors.New("nenhuma sessão ativa para o token")

	// ErrBadRequest indica corpo ou parâmetro que falhou na validação.
	ErrBadRequest = errors.New("requisição inválida")
)

// APIError representa um erro da API com informações adicionais
type APIError struct {
	Code        int         `json:"-"`
	Message     string      `json:"message"`
	Details     interface{} `json:"details,omitempty"`
	OriginalErr error       `json:"-"`
}

// Error implementa a interface error
func (e *APIError) Error() string {
	if e.OriginalErr != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.OriginalErr)
	}
	return e.Message
}

// Unwrap permite usar errors.Is e errors.As
func (e *APIError) Unwrap() error {
	return e.OriginalErr
}

// New cria um novo APIError
func New(code int, message string, err error) *APIError {
	return &APIError{
		Code:        code,
		Message:     message,
		OriginalErr: err,
	}
}

// WithDetails adiciona detalhes ao erro
func (e *APIError) WithDetails(details interface{}) *APIError {
	e.Details = details
	return e
}

// NotFound cria um erro 404 embrulhando ErrNotFound
func NotFound(resource string) *APIError {
	return New(http.StatusNotFound, fmt.Sprintf("%s não encontrado", resource), ErrNotFound)
}

// BadRequest cria um erro 400 embrulhando ErrBadRequest
func BadRequest(message string) *APIError {
	if message == "" {
		message = "requisição inválida"
	}
	return New(http.StatusBadRequest, message, ErrBadRequest)
}

// Unauthorized cria um erro 401 embrulhando ErrUnauthorized
func Unauthorized(message string) *APIError {
	if message == "" {
		message = "autenticação necessária"
	}
	return New(http.StatusUnauthorized, message, ErrUnauthorized)
}

// HTTPStatus traduz a taxonomia interna para o contrato HTTP da API:
// falhas de autenticação e de posse viram 401, validação vira 400,
// colisão de email vira 409 e todo o resto vira 404.
func HTTPStatus(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Code != 0 {
		return apiErr.Code
	}

	switch {
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrNoActiveSession):
		return http.StatusUnauthorized
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrDuplicateEmail):
		return http.StatusConflict
	default:
		return http.StatusNotFound
	}
}
