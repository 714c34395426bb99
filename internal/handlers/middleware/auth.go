package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// UsuarioContextKey es la clave del usuario autenticado en el contexto de Gin
const UsuarioContextKey = "usuario_actual"

// AuthMiddleware resuelve la identidad de la cookie de sesión
type AuthMiddleware struct {
	auth   *services.AuthService
	cookie string
	logger ports.Logger
}

// NewAuthMiddleware crea un nuevo AuthMiddleware
func NewAuthMiddleware(auth *services.AuthService, cookie string, logger ports.Logger) *AuthMiddleware {
	return &AuthMiddleware{auth: auth, cookie: cookie, logger: logger}
}

// RequiereSesion exige una sesión vigente. Carga el usuario autenticado
// en el contexto; cualquier falla (sin cookie, token desconocido,
// vencida por inactividad, cuenta desactivada) responde 401 sin
// distinguir la causa.
func (m *AuthMiddleware) RequiereSesion() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.cookie)
		if err != nil || token == "" {
			dto.ProblemaNoAutenticado(c)
			return
		}

		usuario, err := m.auth.Actual(c.Request.Context(), token)
		if err != nil {
			dto.ProblemaNoAutenticado(c)
			return
		}

		c.Set(UsuarioContextKey, usuario)
		c.Next()
	}
}

// RequiereAdmin exige que el usuario de la sesión tenga el rol admin.
// Debe ir después de RequiereSesion.
func (m *AuthMiddleware) RequiereAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		usuario := UsuarioActual(c)
		if usuario == nil || !usuario.EsAdmin() {
			dto.ProblemaProhibido(c)
			return
		}
		c.Next()
	}
}

// UsuarioActual retorna el usuario autenticado del contexto, o nil
func UsuarioActual(c *gin.Context) *registros.Usuario {
	valor, exists := c.Get(UsuarioContextKey)
	if !exists {
		return nil
	}

	usuario, ok := valor.(*registros.Usuario)
	if !ok {
		return nil
	}
	return usuario
}
