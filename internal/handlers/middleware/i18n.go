package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/infrastructure/i18n"
)

// I18nMiddleware gestiona la detección de idioma en las peticiones
type I18nMiddleware struct {
	i18nService *i18n.Service
}

// NewI18nMiddleware crea un nuevo middleware de i18n
func NewI18nMiddleware(i18nService *i18n.Service) *I18nMiddleware {
	return &I18nMiddleware{
		i18nService: i18nService,
	}
}

// DetectLanguage detecta y configura el idioma de la petición
// Prioridad:
// 1. Query parameter ?lang=en (override explícito)
// 2. Header Accept-Language (preferencia del navegador)
// 3. Idioma por defecto (fallback)
func (m *I18nMiddleware) DetectLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		var lang string

		// 1. Verificar query parameter
		if queryLang := c.Query("lang"); queryLang != "" {
			if m.i18nService.IsLanguageSupported(queryLang) {
				lang = queryLang
			}
		}

		// 2. Si no se encontró, verificar el header Accept-Language
		if lang == "" {
			acceptLang := c.GetHeader("Accept-Language")
			lang = m.parseAcceptLanguage(acceptLang)
		}

		// 3. Si aún no se encontró, usar el idioma por defecto
		if lang == "" {
			lang = m.i18nService.GetDefaultLanguage()
		}

		// Guardar idioma y servicio en el contexto
		c.Set(i18n.LanguageContextKey, lang)
		c.Set(i18n.ServiceContextKey, m.i18nService)

		c.Next()
	}
}

// parseAcceptLanguage analiza el header Accept-Language y retorna el
// mejor idioma soportado
// Ejemplo: "es-VE,es;q=0.9,en-US;q=0.8,en;q=0.7" -> "es"
func (m *I18nMiddleware) parseAcceptLanguage(acceptLang string) string {
	if acceptLang == "" {
		return ""
	}

	languages := strings.Split(acceptLang, ",")

	for _, lang := range languages {
		// Quitar el peso (;q=0.9) si existe
		lang = strings.TrimSpace(lang)
		if idx := strings.Index(lang, ";"); idx != -1 {
			lang = lang[:idx]
		}

		// Verificar si está soportado (exacto)
		if m.i18nService.IsLanguageSupported(lang) {
			return lang
		}

		// Verificar la variante sin región (es-VE -> es)
		if idx := strings.Index(lang, "-"); idx != -1 {
			baseLang := lang[:idx]
			if m.i18nService.IsLanguageSupported(baseLang) {
				return baseLang
			}
		}
	}

	return ""
}
