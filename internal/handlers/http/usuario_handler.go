package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// UsuarioHandler atiende el CRUD de cuentas del panel admin. No usa el
// handler genérico porque crear y actualizar pasan por el hash de
// contraseña y la respuesta oculta el hash tras un DTO.
type UsuarioHandler struct {
	servicio *services.UsuarioService
	logger   ports.Logger
}

// NewUsuarioHandler crea un nuevo UsuarioHandler
func NewUsuarioHandler(servicio *services.UsuarioService, logger ports.Logger) *UsuarioHandler {
	return &UsuarioHandler{servicio: servicio, logger: logger}
}

// Listar responde GET /api/users
func (h *UsuarioHandler) Listar(c *gin.Context) {
	usuarios, err := h.servicio.Listar(c.Request.Context())
	if err != nil {
		h.logger.Error("fallo al listar usuarios", "error", err)
		dto.ProblemaInterno(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponses(usuarios))
}

// Obtener responde GET /api/users/:id
func (h *UsuarioHandler) Obtener(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	usuario, err := h.servicio.Buscar(c.Request.Context(), id)
	if err != nil {
		h.responderError(c, err, "fallo al buscar usuario")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Crear responde POST /api/users
func (h *UsuarioHandler) Crear(c *gin.Context) {
	var req dto.CrearUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErrorDeBinding(c, err)
		return
	}

	usuario, err := h.servicio.Crear(c.Request.Context(), services.CrearUsuarioInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
		IDRol:    req.IDRol,
	})
	if err != nil {
		h.responderError(c, err, "fallo al crear usuario")
		return
	}

	c.JSON(http.StatusCreated, dto.ToUsuarioResponse(usuario))
}

// Actualizar responde PUT /api/users/:id
func (h *UsuarioHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.ActualizarUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErrorDeBinding(c, err)
		return
	}

	campos := map[string]any{}
	if req.Nombre != nil {
		campos["nombre"] = *req.Nombre
	}
	if req.Email != nil {
		campos["email"] = *req.Email
	}
	if req.Password != nil {
		campos["password"] = *req.Password
	}
	if req.IDRol != nil {
		campos["id_rol"] = *req.IDRol
	}

	usuario, err := h.servicio.Actualizar(c.Request.Context(), id, campos)
	if err != nil {
		h.responderError(c, err, "fallo al actualizar usuario")
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Eliminar responde DELETE /api/users/:id
func (h *UsuarioHandler) Eliminar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.servicio.Desactivar(c.Request.Context(), id); err != nil {
		h.responderError(c, err, "fallo al desactivar usuario")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *UsuarioHandler) responderError(c *gin.Context, err error, msg string) {
	switch {
	case errs.Is(err, domainerrors.ErrNoEncontrado):
		dto.ProblemaNoEncontrado(c, "Usuario")
	case errs.Is(err, domainerrors.ErrEmailExistente):
		dto.ProblemaConflicto(c, "error.email_exists", domainerrors.CodeEmailExists)
	case errs.Is(err, domainerrors.ErrConflicto):
		dto.ProblemaConflicto(c, "error.conflict.detail", "")
	default:
		h.logger.Error(msg, "error", err)
		dto.ProblemaInterno(c)
	}
}
