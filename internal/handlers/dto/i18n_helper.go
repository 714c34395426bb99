package dto

import (
	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/infrastructure/i18n"
)

// T es un helper para traducir mensajes en el contexto de Gin
// Uso: dto.T(c, "error.not_found.detail", map[string]interface{}{"Recurso": "Estado"})
func T(c *gin.Context, key string, params ...map[string]interface{}) string {
	// Buscar el servicio i18n en el contexto
	i18nService, exists := c.Get(i18n.ServiceContextKey)
	if !exists {
		// Fallback: devolver la clave si el servicio no está disponible
		return key
	}

	service, ok := i18nService.(*i18n.Service)
	if !ok {
		return key
	}

	lang := GetLanguage(c)

	return service.T(lang, key, params...)
}

// GetLanguage retorna el idioma configurado en el contexto de la petición
func GetLanguage(c *gin.Context) string {
	lang, exists := c.Get(i18n.LanguageContextKey)
	if !exists {
		return "es" // Fallback
	}

	langStr, ok := lang.(string)
	if !ok {
		return "es"
	}

	return langStr
}
