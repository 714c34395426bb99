package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/config"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/logging"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/persistence/postgres"
)

// setupAuth arma un AuthService real sobre sqlite en memoria con los
// roles y la cuenta admin sembrados.
func setupAuth(t *testing.T, ttl time.Duration) (*AuthService, *config.AuthConfig) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("fallo al abrir la base en memoria: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("fallo al obtener el pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	logger := logging.NewSlogLogger("error")
	if err := postgres.Migrar(db, logger); err != nil {
		t.Fatalf("fallo al migrar: %v", err)
	}

	cfg := &config.AuthConfig{
		AdminEmail:    "admin@sisvot.local",
		AdminPassword: "clave.segura.123",
	}
	uow := postgres.NewUnitOfWork(db)
	if err := postgres.Sembrar(context.Background(), uow, cfg, logger); err != nil {
		t.Fatalf("fallo al sembrar: %v", err)
	}

	auth := NewAuthService(
		postgres.NewUsuarioRepository(db),
		postgres.NewRolRepository(db),
		postgres.NewSesionRepository(db),
		uow,
		ttl,
		logger,
	)
	return auth, cfg
}

func TestAuthService_Registrar(t *testing.T) {
	auth, _ := setupAuth(t, 30*time.Minute)
	ctx := context.Background()

	t.Run("asigna el rol operador a la cuenta nueva", func(t *testing.T) {
		usuario, err := auth.Registrar(ctx, RegistroInput{
			Nombre:   "María",
			Email:    "maria@sisvot.local",
			Password: "clave.maria.123",
		})
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}

		if usuario.IDUsuario == 0 {
			t.Error("esperaba clave primaria asignada")
		}
		if usuario.Password == "clave.maria.123" {
			t.Error("la contraseña quedó en claro")
		}
	})

	t.Run("email repetido produce ErrEmailExistente", func(t *testing.T) {
		_, err := auth.Registrar(ctx, RegistroInput{
			Nombre:   "Otra María",
			Email:    "maria@sisvot.local",
			Password: "otra.clave.123",
		})
		if !errors.Is(err, domainerrors.ErrEmailExistente) {
			t.Errorf("esperaba ErrEmailExistente, obtuvo %v", err)
		}
	})
}

func TestAuthService_Login(t *testing.T) {
	auth, cfg := setupAuth(t, 30*time.Minute)
	ctx := context.Background()

	t.Run("credenciales correctas abren sesión", func(t *testing.T) {
		usuario, sesion, err := auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if sesion.Token == "" {
			t.Error("esperaba un token de sesión")
		}
		if sesion.IDUsuario != usuario.IDUsuario {
			t.Error("la sesión no apunta al usuario autenticado")
		}
	})

	t.Run("contraseña incorrecta produce ErrCredencialesInvalidas", func(t *testing.T) {
		_, _, err := auth.Login(ctx, cfg.AdminEmail, "incorrecta.123")
		if !errors.Is(err, domainerrors.ErrCredencialesInvalidas) {
			t.Errorf("esperaba ErrCredencialesInvalidas, obtuvo %v", err)
		}
	})

	t.Run("email desconocido produce el mismo error", func(t *testing.T) {
		_, _, err := auth.Login(ctx, "nadie@sisvot.local", "cualquiera.123")
		if !errors.Is(err, domainerrors.ErrCredencialesInvalidas) {
			t.Errorf("esperaba ErrCredencialesInvalidas, obtuvo %v", err)
		}
	})
}

func TestAuthService_Actual(t *testing.T) {
	ctx := context.Background()

	t.Run("resuelve la identidad de una sesión vigente", func(t *testing.T) {
		auth, cfg := setupAuth(t, 30*time.Minute)

		_, sesion, err := auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			t.Fatalf("login falló: %v", err)
		}

		usuario, err := auth.Actual(ctx, sesion.Token)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if usuario.Email != cfg.AdminEmail {
			t.Errorf("esperaba '%s', obtuvo '%s'", cfg.AdminEmail, usuario.Email)
		}
	})

	t.Run("token desconocido produce ErrNoAutenticado", func(t *testing.T) {
		auth, _ := setupAuth(t, 30*time.Minute)

		_, err := auth.Actual(ctx, "token-inexistente")
		if !errors.Is(err, domainerrors.ErrNoAutenticado) {
			t.Errorf("esperaba ErrNoAutenticado, obtuvo %v", err)
		}
	})

	t.Run("la sesión vence por inactividad", func(t *testing.T) {
		auth, cfg := setupAuth(t, time.Millisecond)

		_, sesion, err := auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			t.Fatalf("login falló: %v", err)
		}

		time.Sleep(5 * time.Millisecond)

		_, err = auth.Actual(ctx, sesion.Token)
		if !errors.Is(err, domainerrors.ErrSesionExpirada) {
			t.Errorf("esperaba ErrSesionExpirada, obtuvo %v", err)
		}

		// La sesión vencida queda eliminada
		_, err = auth.Actual(ctx, sesion.Token)
		if !errors.Is(err, domainerrors.ErrNoAutenticado) {
			t.Errorf("esperaba ErrNoAutenticado tras el vencimiento, obtuvo %v", err)
		}
	})

	t.Run("logout invalida el token", func(t *testing.T) {
		auth, cfg := setupAuth(t, 30*time.Minute)

		_, sesion, err := auth.Login(ctx, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			t.Fatalf("login falló: %v", err)
		}

		if err := auth.Logout(ctx, sesion.Token); err != nil {
			t.Fatalf("logout falló: %v", err)
		}

		_, err = auth.Actual(ctx, sesion.Token)
		if !errors.Is(err, domainerrors.ErrNoAutenticado) {
			t.Errorf("esperaba ErrNoAutenticado tras logout, obtuvo %v", err)
		}
	})

	t.Run("una cuenta desactivada no resuelve identidad", func(t *testing.T) {
		auth, _ := setupAuth(t, 30*time.Minute)

		registrado, err := auth.Registrar(ctx, RegistroInput{
			Nombre:   "Pedro",
			Email:    "pedro@sisvot.local",
			Password: "clave.pedro.123",
		})
		if err != nil {
			t.Fatalf("registro falló: %v", err)
		}

		_, sesion, err := auth.Login(ctx, "pedro@sisvot.local", "clave.pedro.123")
		if err != nil {
			t.Fatalf("login falló: %v", err)
		}

		if err := auth.usuarios.Desactivar(ctx, registrado.IDUsuario); err != nil {
			t.Fatalf("desactivar falló: %v", err)
		}

		_, err = auth.Actual(ctx, sesion.Token)
		if !errors.Is(err, domainerrors.ErrNoAutenticado) {
			t.Errorf("esperaba ErrNoAutenticado para cuenta desactivada, obtuvo %v", err)
		}
	})
}
