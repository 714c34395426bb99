package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	"github.com/sisvot/sisvot-backend/internal/handlers/middleware"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// CookieConfig agrupa los parámetros de la cookie de sesión
type CookieConfig struct {
	Nombre string
	Secure bool
	MaxAge int // segundos; 0 = cookie de sesión de navegador
}

// AuthHandler atiende registro, login, logout y la identidad actual
type AuthHandler struct {
	auth   *services.AuthService
	cookie CookieConfig
	logger ports.Logger
}

// NewAuthHandler crea un nuevo AuthHandler
func NewAuthHandler(auth *services.AuthService, cookie CookieConfig, logger ports.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, cookie: cookie, logger: logger}
}

// Registrar crea una cuenta nueva
// @Summary      Registrar cuenta
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        cuerpo  body  dto.RegistroRequest  true  "Datos de la cuenta"
// @Success      201  {object}  dto.UsuarioResponse
// @Failure      400  {object}  dto.Problema
// @Failure      409  {object}  dto.Problema
// @Router       /register [post]
func (h *AuthHandler) Registrar(c *gin.Context) {
	var req dto.RegistroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		responderErrorDeBinding(c, err)
		return
	}

	usuario, err := h.auth.Registrar(c.Request.Context(), services.RegistroInput{
		Nombre:   req.Nombre,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errs.Is(err, domainerrors.ErrEmailExistente) {
			dto.ProblemaConflicto(c, "error.email_exists", domainerrors.CodeEmailExists)
			return
		}
		h.logger.Error("fallo en registro", "error", err)
		dto.ProblemaInterno(c)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUsuarioResponse(usuario))
}

// Login verifica credenciales y abre sesión
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        cuerpo  body  dto.LoginRequest  true  "Credenciales"
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      401  {object}  dto.Problema
// @Failure      429  {object}  dto.Problema
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// El login no detalla campos: cualquier cuerpo inválido es 401
		// para no revelar información sobre cuentas existentes
		dto.ProblemaCredenciales(c)
		return
	}

	usuario, sesion, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, domainerrors.ErrCredencialesInvalidas) {
			dto.ProblemaCredenciales(c)
			return
		}
		h.logger.Error("fallo en login", "error", err)
		dto.ProblemaInterno(c)
		return
	}

	// La cookie es HttpOnly: el frontend nunca lee el token
	c.SetCookie(h.cookie.Nombre, sesion.Token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}

// Logout invalida la sesión actual
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      204
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(h.cookie.Nombre)
	if err == nil && token != "" {
		if err := h.auth.Logout(c.Request.Context(), token); err != nil {
			h.logger.Error("fallo en logout", "error", err)
			dto.ProblemaInterno(c)
			return
		}
	}

	// Expirar la cookie del lado del cliente también
	c.SetCookie(h.cookie.Nombre, "", -1, "/", "", h.cookie.Secure, true)
	c.Status(http.StatusNoContent)
}

// Actual devuelve el usuario de la sesión vigente
// @Summary      Usuario actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UsuarioResponse
// @Failure      401  {object}  dto.Problema
// @Router       /user [get]
func (h *AuthHandler) Actual(c *gin.Context) {
	usuario := middleware.UsuarioActual(c)
	if usuario == nil {
		dto.ProblemaNoAutenticado(c)
		return
	}

	c.JSON(http.StatusOK, dto.ToUsuarioResponse(usuario))
}
