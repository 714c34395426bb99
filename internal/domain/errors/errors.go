package errors

import "errors"

// Errores de negocio
// Nota: Estos son códigos de error (message IDs para i18n).
// Las traducciones deben estar en internal/infrastructure/i18n/locales/*.json
var (
	ErrNoEncontrado          = errors.New("error.not_found")
	ErrEmailExistente        = errors.New("error.email_exists")
	ErrCredencialesInvalidas = errors.New("error.invalid_credentials")
	ErrNoAutenticado         = errors.New("error.unauthorized")
	ErrProhibido             = errors.New("error.forbidden")
	ErrConflicto             = errors.New("error.conflict")
	ErrSesionExpirada        = errors.New("error.session_expired")
)

// CodeEmailExists es el código estable que el frontend espera cuando
// el registro choca con un email ya existente.
const CodeEmailExists = "EMAIL_EXISTS"

// ProblemType define tipos de problemas (URIs RFC 7807)
// Nota: El dominio base viene de configuración (API_BASE_URL)
const (
	ProblemTypeValidation     = "/problems/validation-error"
	ProblemTypeNotFound       = "/problems/not-found"
	ProblemTypeConflict       = "/problems/conflict"
	ProblemTypeUnauthorized   = "/problems/unauthorized"
	ProblemTypeForbidden      = "/problems/forbidden"
	ProblemTypeRateLimited    = "/problems/rate-limited"
	ProblemTypeInternal       = "/problems/internal-error"
	ProblemTypeBadRequest     = "/problems/bad-request"
	ProblemTypeNotImplemented = "/problems/not-implemented"
)

// DomainError representa un error de dominio con contexto adicional
type DomainError struct {
	Type    string
	Title   string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}
