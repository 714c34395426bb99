package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
)

// Problema es un documento RFC 7807 (Problem Details) con dos
// extensiones propias: un código estable que el frontend puede comparar
// (p.ej. EMAIL_EXISTS) y la lista de errores de campo en validaciones.
type Problema struct {
	problems.Problem
	Code    string       `json:"code,omitempty"`
	Errores []ErrorCampo `json:"errors,omitempty"`
}

// ErrorCampo representa un error de validación de un campo
type ErrorCampo struct {
	Campo   string `json:"field"`
	Mensaje string `json:"message"`
	Tag     string `json:"tag,omitempty"`
}

// NuevoProblema crea una respuesta de error RFC 7807 usando i18n
func NuevoProblema(c *gin.Context, tipo, tituloKey, detalleKey string, status int, params ...map[string]interface{}) *Problema {
	// La base URL viene de la configuración vía middleware
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	p := problems.NewDetailedProblem(status, T(c, detalleKey, params...))
	p.Type = baseURL + tipo
	p.Title = T(c, tituloKey, params...)
	p.Instance = c.Request.URL.Path

	return &Problema{Problem: *p}
}

// Responder escribe el problema con su media type y corta la cadena
func Responder(c *gin.Context, p *Problema) {
	c.Header("Content-Type", problems.ProblemMediaType)
	c.AbortWithStatusJSON(p.Status, p)
}

// Helpers para las respuestas de error comunes

// ProblemaValidacion responde 400 con la lista de campos violados
func ProblemaValidacion(c *gin.Context, errores []ErrorCampo) {
	p := NuevoProblema(c, domainerrors.ProblemTypeValidation,
		"error.validation.title", "error.validation.detail", http.StatusBadRequest)
	p.Errores = errores
	Responder(c, p)
}

// ProblemaPeticionInvalida responde 400 para cuerpos no interpretables
func ProblemaPeticionInvalida(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeBadRequest,
		"error.bad_request.title", "error.bad_request.detail", http.StatusBadRequest))
}

// ProblemaNoEncontrado responde 404
func ProblemaNoEncontrado(c *gin.Context, recurso string) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeNotFound,
		"error.not_found.title", "error.not_found.detail", http.StatusNotFound,
		map[string]interface{}{"Recurso": recurso}))
}

// ProblemaConflicto responde 409; code es opcional (p.ej. EMAIL_EXISTS)
func ProblemaConflicto(c *gin.Context, detalleKey, code string) {
	p := NuevoProblema(c, domainerrors.ProblemTypeConflict,
		"error.conflict.title", detalleKey, http.StatusConflict)
	p.Code = code
	Responder(c, p)
}

// ProblemaNoAutenticado responde 401
func ProblemaNoAutenticado(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title", "error.unauthorized.detail", http.StatusUnauthorized))
}

// ProblemaCredenciales responde 401 sin revelar cuál factor falló
func ProblemaCredenciales(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeUnauthorized,
		"error.unauthorized.title", "error.invalid_credentials", http.StatusUnauthorized))
}

// ProblemaProhibido responde 403
func ProblemaProhibido(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeForbidden,
		"error.forbidden.title", "error.forbidden.detail", http.StatusForbidden))
}

// ProblemaLimiteExcedido responde 429 para el limitador de login
func ProblemaLimiteExcedido(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeRateLimited,
		"error.rate_limited.title", "error.rate_limited.detail", http.StatusTooManyRequests))
}

// ProblemaInterno responde 500 con mensaje genérico
func ProblemaInterno(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeInternal,
		"error.internal.title", "error.internal.detail", http.StatusInternalServerError))
}

// ProblemaNoImplementado responde 501 para las superficies stub
func ProblemaNoImplementado(c *gin.Context) {
	Responder(c, NuevoProblema(c, domainerrors.ProblemTypeNotImplemented,
		"error.not_implemented.title", "error.not_implemented.detail", http.StatusNotImplemented))
}
