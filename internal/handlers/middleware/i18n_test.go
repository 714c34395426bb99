package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/infrastructure/i18n"
)

func setupTestI18n(t *testing.T) *i18n.Service {
	t.Helper()

	tmpDir := t.TempDir()

	// Crear archivo es.json
	esContent := `{"bienvenida": "Bienvenido"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "es.json"), []byte(esContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear es.json: %v", err)
	}

	// Crear archivo en.json
	enContent := `{"bienvenida": "Welcome"}`
	if err := os.WriteFile(filepath.Join(tmpDir, "en.json"), []byte(enContent), 0644); err != nil { //nolint:gosec
		t.Fatalf("fallo al crear en.json: %v", err)
	}

	service, err := i18n.NewService(tmpDir, "es")
	if err != nil {
		t.Fatalf("fallo al inicializar el servicio i18n: %v", err)
	}

	return service
}

func TestI18nMiddleware_DetectLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	t.Run("detecta idioma del query parameter", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/?lang=en", nil)

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuvo '%s'", lang)
		}
	})

	t.Run("detecta idioma del header Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Accept-Language", "en,es;q=0.9")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuvo '%s'", lang)
		}
	})

	t.Run("usa el idioma por defecto cuando no se especifica ninguno", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "es" {
			t.Errorf("esperaba 'es' (por defecto), obtuvo '%s'", lang)
		}
	})

	t.Run("el query parameter tiene prioridad sobre Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=en", nil)
		req.Header.Set("Accept-Language", "es")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuvo '%s'", lang)
		}
	})

	t.Run("ignora query parameter inválido y usa Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		req := httptest.NewRequest("GET", "/?lang=fr", nil)
		req.Header.Set("Accept-Language", "en")
		c.Request = req

		middleware.DetectLanguage()(c)

		lang, exists := c.Get(i18n.LanguageContextKey)
		if !exists {
			t.Fatal("el idioma no quedó definido en el contexto")
		}

		if lang != "en" {
			t.Errorf("esperaba 'en', obtuvo '%s'", lang)
		}
	})

	t.Run("define el servicio i18n en el contexto", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest("GET", "/", nil)

		middleware.DetectLanguage()(c)

		service, exists := c.Get(i18n.ServiceContextKey)
		if !exists {
			t.Fatal("el servicio i18n no quedó definido en el contexto")
		}

		if service == nil {
			t.Error("el servicio i18n es nulo")
		}
	})
}

func TestI18nMiddleware_parseAcceptLanguage(t *testing.T) {
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	tests := []struct {
		name       string
		acceptLang string
		expected   string
	}{
		{
			name:       "idioma único soportado",
			acceptLang: "en",
			expected:   "en",
		},
		{
			name:       "múltiples idiomas y el primero es soportado",
			acceptLang: "es,en;q=0.9",
			expected:   "es",
		},
		{
			name:       "múltiples idiomas y el segundo es soportado",
			acceptLang: "fr,en;q=0.9",
			expected:   "en",
		},
		{
			name:       "variante regional cae a la base",
			acceptLang: "es-VE,en;q=0.8",
			expected:   "es",
		},
		{
			name:       "ningún idioma soportado",
			acceptLang: "fr,de;q=0.9",
			expected:   "",
		},
		{
			name:       "header vacío",
			acceptLang: "",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := middleware.parseAcceptLanguage(tt.acceptLang)
			if result != tt.expected {
				t.Errorf("esperaba '%s', obtuvo '%s'", tt.expected, result)
			}
		})
	}
}

func TestI18nMiddleware_Integration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	i18nService := setupTestI18n(t)
	middleware := NewI18nMiddleware(i18nService)

	router := gin.New()
	router.Use(middleware.DetectLanguage())
	router.GET("/test", func(c *gin.Context) {
		lang, _ := c.Get(i18n.LanguageContextKey)
		service, _ := c.Get(i18n.ServiceContextKey)
		i18nSvc := service.(*i18n.Service)

		message := i18nSvc.T(lang.(string), "bienvenida")
		c.JSON(http.StatusOK, gin.H{"message": message})
	})

	t.Run("integración completa en español", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test?lang=es", nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperaba status 200, obtuvo %d", w.Code)
		}

		expected := `{"message":"Bienvenido"}`
		if w.Body.String() != expected {
			t.Errorf("esperaba '%s', obtuvo '%s'", expected, w.Body.String())
		}
	})

	t.Run("integración completa en inglés vía Accept-Language", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Accept-Language", "en")
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("esperaba status 200, obtuvo %d", w.Code)
		}

		expected := `{"message":"Welcome"}`
		if w.Body.String() != expected {
			t.Errorf("esperaba '%s', obtuvo '%s'", expected, w.Body.String())
		}
	})
}
