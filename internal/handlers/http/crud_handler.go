package http

import (
	errs "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// CrudHandler atiende las rutas REST de una entidad del catálogo. Es un
// único handler genérico instanciado una vez por entidad: T es el
// modelo, C el cuerpo de creación y U el de actualización parcial. El
// comportamiento observable es idéntico para todas las entidades.
type CrudHandler[T any, C dto.Creador[T], U dto.Actualizador] struct {
	servicio *services.CrudService[T]
	desc     registros.Descriptor
	logger   ports.Logger
}

// NewCrudHandler crea el handler genérico para una entidad
func NewCrudHandler[T any, C dto.Creador[T], U dto.Actualizador](
	servicio *services.CrudService[T],
	desc registros.Descriptor,
	logger ports.Logger,
) *CrudHandler[T, C, U] {
	return &CrudHandler[T, C, U]{
		servicio: servicio,
		desc:     desc,
		logger:   logger.With("recurso", desc.Recurso),
	}
}

// Listar responde GET /api/{recurso} con las filas activas
func (h *CrudHandler[T, C, U]) Listar(c *gin.Context) {
	filas, err := h.servicio.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("fallo al listar", "error", err)
		dto.ProblemaInterno(c)
		return
	}

	c.JSON(http.StatusOK, filas)
}

// ListarPorPadre responde GET /api/{recurso}/{padre}/:id con las filas
// activas del padre indicado
func (h *CrudHandler[T, C, U]) ListarPorPadre(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	filas, err := h.servicio.ListarPorPadre(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("fallo al listar por padre", "error", err)
		dto.ProblemaInterno(c)
		return
	}

	c.JSON(http.StatusOK, filas)
}

// Obtener responde GET /api/{recurso}/:id con la fila, activa o no
func (h *CrudHandler[T, C, U]) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	fila, err := h.servicio.Buscar(c.Request.Context(), id)
	if err != nil {
		h.responderError(c, err, "fallo al buscar")
		return
	}

	c.JSON(http.StatusOK, fila)
}

// Crear responde POST /api/{recurso}: valida el cuerpo de inserción,
// persiste y devuelve 201 con la fila creada (clave primaria asignada,
// bandera activa)
func (h *CrudHandler[T, C, U]) Crear(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErrorDeBinding(c, err)
		return
	}

	modelo := req.Modelo()
	if err := h.servicio.Crear(c.Request.Context(), modelo); err != nil {
		h.responderError(c, err, "fallo al crear")
		return
	}

	c.JSON(http.StatusCreated, modelo)
}

// Actualizar responde PUT /api/{recurso}/:id: aplica solo los campos
// presentes del cuerpo parcial y devuelve la fila resultante
func (h *CrudHandler[T, C, U]) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErrorDeBinding(c, err)
		return
	}

	fila, err := h.servicio.Actualizar(c.Request.Context(), id, req.Campos())
	if err != nil {
		h.responderError(c, err, "fallo al actualizar")
		return
	}

	c.JSON(http.StatusOK, fila)
}

// Eliminar responde DELETE /api/{recurso}/:id: borrado lógico, 204
func (h *CrudHandler[T, C, U]) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.servicio.Desactivar(c.Request.Context(), id); err != nil {
		h.responderError(c, err, "fallo al desactivar")
		return
	}

	c.Status(http.StatusNoContent)
}

// responderError mapea los errores de dominio a status HTTP
func (h *CrudHandler[T, C, U]) responderError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, domainerrors.ErrNoEncontrado):
		dto.ProblemaNoEncontrado(c, h.desc.Nombre)
	case errs.Is(err, domainerrors.ErrConflicto):
		dto.ProblemaConflicto(c, "error.conflict.detail", "")
	default:
		h.logger.Error(msg, "error", err)
		dto.ProblemaInterno(c)
	}
}

// parseID lee el :id de la ruta; responde 400 si no es un entero válido
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		dto.ProblemaPeticionInvalida(c)
		return 0, false
	}
	return uint(id), true
}

// responderErrorDeBinding distingue errores de validación (lista de
// campos violados) de cuerpos no interpretables
func responderErrorDeBinding(c *gin.Context, err error) {
	if campos := dto.ErroresDeCampo(err); len(campos) > 0 {
		dto.ProblemaValidacion(c, campos)
		return
	}
	dto.ProblemaPeticionInvalida(c)
}
