package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	"github.com/sisvot/sisvot-backend/internal/handlers/middleware"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/persistence/postgres"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// Dependencias agrupa lo que la capa de rutas necesita del arranque
type Dependencias struct {
	DB           *gorm.DB
	Logger       ports.Logger
	Auth         *services.AuthService
	Usuarios     *services.UsuarioService
	AuthMW       *middleware.AuthMiddleware
	LoginLimiter *middleware.LoginLimiter
	Cookie       CookieConfig
}

// RegistrarRutas monta todas las rutas de la API. Las entidades del
// catálogo comparten el handler genérico; las cuentas y los roles
// llevan el gate admin en las mutaciones.
func RegistrarRutas(router *gin.Engine, deps *Dependencias) {
	authHandler := NewAuthHandler(deps.Auth, deps.Cookie, deps.Logger)
	usuarioHandler := NewUsuarioHandler(deps.Usuarios, deps.Logger)

	api := router.Group("/api")

	// Autenticación
	api.POST("/register", authHandler.Registrar)
	api.POST("/auth/login", deps.LoginLimiter.Limitar(), authHandler.Login)
	api.POST("/logout", authHandler.Logout)
	api.GET("/user", deps.AuthMW.RequiereSesion(), authHandler.Actual)

	// Catálogo territorial
	registrarCrud[registros.Estado, dto.CrearEstadoRequest, dto.ActualizarEstadoRequest](api, deps, registros.DescEstado)
	registrarCrud[registros.Municipio, dto.CrearMunicipioRequest, dto.ActualizarMunicipioRequest](api, deps, registros.DescMunicipio)
	registrarCrud[registros.Parroquia, dto.CrearParroquiaRequest, dto.ActualizarParroquiaRequest](api, deps, registros.DescParroquia)
	registrarCrud[registros.Comunidad, dto.CrearComunidadRequest, dto.ActualizarComunidadRequest](api, deps, registros.DescComunidad)
	registrarCrud[registros.Ubicacion, dto.CrearUbicacionRequest, dto.ActualizarUbicacionRequest](api, deps, registros.DescUbicacion)

	// Centros y personal
	registrarCrud[registros.Personal, dto.CrearPersonalRequest, dto.ActualizarPersonalRequest](api, deps, registros.DescPersonal)
	registrarCrud[registros.CentroVotacion, dto.CrearCentroVotacionRequest, dto.ActualizarCentroVotacionRequest](api, deps, registros.DescCentroVotacion)

	// Eventos y afluencia
	registrarCrud[registros.Evento, dto.CrearEventoRequest, dto.ActualizarEventoRequest](api, deps, registros.DescEvento)
	registrarCrud[registros.Afluencia, dto.CrearAfluenciaRequest, dto.ActualizarAfluenciaRequest](api, deps, registros.DescAfluencia)

	// Poder comunal
	registrarCrud[registros.Comuna, dto.CrearComunaRequest, dto.ActualizarComunaRequest](api, deps, registros.DescComuna)
	registrarCrud[registros.Proyecto, dto.CrearProyectoRequest, dto.ActualizarProyectoRequest](api, deps, registros.DescProyecto)
	registrarCrud[registros.TComunal, dto.CrearTComunalRequest, dto.ActualizarTComunalRequest](api, deps, registros.DescTComunal)
	registrarCrud[registros.EventoCC, dto.CrearEventoCCRequest, dto.ActualizarEventoCCRequest](api, deps, registros.DescEventoCC)
	registrarCrud[registros.ConsejoComunal, dto.CrearConsejoComunalRequest, dto.ActualizarConsejoComunalRequest](api, deps, registros.DescConsejoComunal)

	// Roles: lectura abierta, mutaciones solo admin
	adminGate := []gin.HandlerFunc{deps.AuthMW.RequiereSesion(), deps.AuthMW.RequiereAdmin()}
	registrarCrud[registros.Rol, dto.CrearRolRequest, dto.ActualizarRolRequest](api, deps, registros.DescRol, adminGate...)

	// Cuentas: todo el recurso exige sesión admin
	users := api.Group("/users", adminGate...)
	users.GET("", usuarioHandler.Listar)
	users.GET("/:id", usuarioHandler.Obtener)
	users.POST("", usuarioHandler.Crear)
	users.PUT("/:id", usuarioHandler.Actualizar)
	users.DELETE("/:id", usuarioHandler.Eliminar)

	// Superficies stub
	api.GET("/reportes", Reportes)
	api.POST("/respaldos", Respaldos)
}

// registrarCrud instancia repositorio, servicio y handler genéricos de
// una entidad y monta sus rutas. La protección extra (si la hay) aplica
// solo a las mutaciones, nunca a las lecturas.
func registrarCrud[T any, C dto.Creador[T], U dto.Actualizador](
	api *gin.RouterGroup,
	deps *Dependencias,
	desc registros.Descriptor,
	proteccion ...gin.HandlerFunc,
) {
	repo := postgres.NewCrudRepository[T](deps.DB, desc)
	servicio := services.NewCrudService[T](repo, desc, deps.Logger)
	h := NewCrudHandler[T, C, U](servicio, desc, deps.Logger)

	g := api.Group("/" + desc.Recurso)
	g.GET("", h.Listar)
	g.GET("/:id", h.Obtener)
	if desc.Padre != nil {
		g.GET("/"+desc.Padre.Ruta+"/:id", h.ListarPorPadre)
	}

	mut := g.Group("", proteccion...)
	mut.POST("", h.Crear)
	mut.PUT("/:id", h.Actualizar)
	mut.DELETE("/:id", h.Eliminar)
}
