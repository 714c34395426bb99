package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
)

// Superficies anunciadas en la interfaz pero sin motor detrás: los
// reportes generados y los respaldos programados responden 501 hasta
// que exista una implementación real.

// Reportes responde GET /api/reportes
func Reportes(c *gin.Context) {
	dto.ProblemaNoImplementado(c)
}

// Respaldos responde POST /api/respaldos
func Respaldos(c *gin.Context) {
	dto.ProblemaNoImplementado(c)
}
