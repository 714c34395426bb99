package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sisvot/sisvot-backend/docs"
	"github.com/sisvot/sisvot-backend/internal/handlers/dto"
	httphandlers "github.com/sisvot/sisvot-backend/internal/handlers/http"
	"github.com/sisvot/sisvot-backend/internal/handlers/middleware"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/config"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/i18n"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/logging"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/persistence/postgres"
	"github.com/sisvot/sisvot-backend/internal/services"
)

// @title           SISVOT API
// @version         1.0
// @description     Backend del panel administrativo del registro territorial y electoral
// @BasePath        /api
func main() {
	// Cargar configuraciones
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting sisvot backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar a la base de datos
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Esquema y datos semilla
	if err := postgres.Migrar(db, logger); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}
	uow := postgres.NewUnitOfWork(db)
	if err := postgres.Sembrar(context.Background(), uow, &cfg.Auth, logger); err != nil {
		logger.Error("failed to seed database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "es")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Validadores propios del dominio (cedula, rif)
	if err := dto.RegistrarValidadores(); err != nil {
		logger.Error("failed to register validators", "error", err)
		log.Fatal(err)
	}

	// Inicializar repositories
	usuarioRepo := postgres.NewUsuarioRepository(db)
	rolRepo := postgres.NewRolRepository(db)
	sesionRepo := postgres.NewSesionRepository(db)

	// Inicializar services
	ttl := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	authService := services.NewAuthService(usuarioRepo, rolRepo, sesionRepo, uow, ttl, logger)
	usuarioService := services.NewUsuarioService(usuarioRepo, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para agregar la base URL al contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	router.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Documentación
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API routes
	httphandlers.RegistrarRutas(router, &httphandlers.Dependencias{
		DB:           db,
		Logger:       logger,
		Auth:         authService,
		Usuarios:     usuarioService,
		AuthMW:       middleware.NewAuthMiddleware(authService, cfg.Auth.CookieName, logger),
		LoginLimiter: middleware.NewLoginLimiter(cfg.Auth.LoginRatePerMinute),
		Cookie: httphandlers.CookieConfig{
			Nombre: cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		},
	})

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Esperar la señal de interrupción
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
