package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func setupLimiterRouter(intentosPorMinuto int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	limiter := NewLoginLimiter(intentosPorMinuto)

	router := gin.New()
	router.POST("/login", limiter.Limitar(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestLoginLimiter_Limitar(t *testing.T) {
	t.Run("permite intentos dentro del cupo", func(t *testing.T) {
		router := setupLimiterRouter(3)

		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/login", nil)
			req.RemoteAddr = "10.0.0.1:1234"
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("intento %d: esperaba 200, obtuvo %d", i+1, w.Code)
			}
		}
	})

	t.Run("responde 429 al agotar el cupo", func(t *testing.T) {
		router := setupLimiterRouter(2)

		for i := 0; i < 2; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest("POST", "/login", nil)
			req.RemoteAddr = "10.0.0.2:1234"
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("intento %d: esperaba 200, obtuvo %d", i+1, w.Code)
			}
		}

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		router.ServeHTTP(w, req)

		if w.Code != http.StatusTooManyRequests {
			t.Errorf("esperaba 429, obtuvo %d", w.Code)
		}
	})

	t.Run("el cupo es por IP de cliente", func(t *testing.T) {
		router := setupLimiterRouter(1)

		w := httptest.NewRecorder()
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("primera IP: esperaba 200, obtuvo %d", w.Code)
		}

		// La segunda IP no comparte el bucket de la primera
		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.4:1234"
		router.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Errorf("segunda IP: esperaba 200, obtuvo %d", w.Code)
		}

		w = httptest.NewRecorder()
		req = httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		router.ServeHTTP(w, req)
		if w.Code != http.StatusTooManyRequests {
			t.Errorf("primera IP agotada: esperaba 429, obtuvo %d", w.Code)
		}
	})

	t.Run("el mapa de visitantes respeta el tope aun con todos activos", func(t *testing.T) {
		limiter := NewLoginLimiter(10)

		// Todas las IPs quedan vistas ahora mismo, así que la poda por
		// inactividad no libera nada y debe expulsar a los más antiguos
		for i := 0; i < maxVisitantes+50; i++ {
			limiter.permitir(fmt.Sprintf("10.%d.%d.%d", i/65536, (i/256)%256, i%256))
		}

		limiter.mu.Lock()
		n := len(limiter.visitantes)
		limiter.mu.Unlock()
		if n > maxVisitantes {
			t.Errorf("esperaba a lo sumo %d visitantes, obtuvo %d", maxVisitantes, n)
		}
	})
}
