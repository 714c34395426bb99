package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/logging"
)

func TestAuthMiddleware_RequiereSesion(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(nil, "sisvot_sesion", logging.NewSlogLogger("error"))

	t.Run("responde 401 sin cookie de sesión", func(t *testing.T) {
		router := gin.New()
		router.GET("/protegida", mw.RequiereSesion(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/protegida", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("esperaba 401, obtuvo %d", w.Code)
		}
	})
}

func TestAuthMiddleware_RequiereAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mw := NewAuthMiddleware(nil, "sisvot_sesion", logging.NewSlogLogger("error"))

	conUsuario := func(usuario *registros.Usuario) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(UsuarioContextKey, usuario)
			c.Next()
		}
	}

	t.Run("responde 403 para un rol sin privilegios", func(t *testing.T) {
		operador := &registros.Usuario{
			IDUsuario: 2,
			Rol:       &registros.Rol{Nombre: registros.RolOperador},
		}

		router := gin.New()
		router.GET("/admin", conUsuario(operador), mw.RequiereAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperaba 403, obtuvo %d", w.Code)
		}
	})

	t.Run("deja pasar al rol admin", func(t *testing.T) {
		admin := &registros.Usuario{
			IDUsuario: 1,
			Rol:       &registros.Rol{Nombre: registros.RolAdmin},
		}

		router := gin.New()
		router.GET("/admin", conUsuario(admin), mw.RequiereAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperaba 200, obtuvo %d", w.Code)
		}
	})

	t.Run("responde 403 sin usuario en el contexto", func(t *testing.T) {
		router := gin.New()
		router.GET("/admin", mw.RequiereAdmin(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/admin", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("esperaba 403, obtuvo %d", w.Code)
		}
	})
}

func TestUsuarioActual(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("retorna nil sin usuario en el contexto", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if UsuarioActual(c) != nil {
			t.Error("esperaba nil sin usuario en el contexto")
		}
	})

	t.Run("retorna el usuario del contexto", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		usuario := &registros.Usuario{IDUsuario: 7}
		c.Set(UsuarioContextKey, usuario)

		actual := UsuarioActual(c)
		if actual == nil || actual.IDUsuario != 7 {
			t.Errorf("esperaba el usuario 7, obtuvo %+v", actual)
		}
	})
}
