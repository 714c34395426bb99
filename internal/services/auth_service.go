package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// Hash de bcrypt de relleno: se compara contra él cuando el email no
// existe, para que el tiempo de respuesta no delate cuál factor falló.
const hashRelleno = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService maneja registro, inicio y cierre de sesión y la
// resolución de la identidad de una sesión vigente.
type AuthService struct {
	usuarios repositories.Usuarios
	roles    repositories.Roles
	sesiones repositories.Sesiones
	uow      ports.UnitOfWork
	ttl      time.Duration
	logger   ports.Logger
}

// NewAuthService crea un nuevo AuthService
func NewAuthService(
	usuarios repositories.Usuarios,
	roles repositories.Roles,
	sesiones repositories.Sesiones,
	uow ports.UnitOfWork,
	ttl time.Duration,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		usuarios: usuarios,
		roles:    roles,
		sesiones: sesiones,
		uow:      uow,
		ttl:      ttl,
		logger:   logger,
	}
}

// RegistroInput son los datos para registrar una cuenta
type RegistroInput struct {
	Nombre   string
	Email    string
	Password string
}

// Registrar crea una cuenta nueva con el rol operador. La verificación
// de unicidad del email y la inserción corren en la misma transacción
// para cerrar la carrera entre dos registros simultáneos.
func (s *AuthService) Registrar(ctx context.Context, input RegistroInput) (*registros.Usuario, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var creado *registros.Usuario
	err = s.uow.WithTransaction(ctx, func(txCtx context.Context) error {
		existente, err := s.usuarios.BuscarPorEmail(txCtx, input.Email)
		if err != nil {
			return err
		}
		if existente != nil {
			return domainerrors.ErrEmailExistente
		}

		rol, err := s.roles.BuscarPorNombre(txCtx, registros.RolOperador)
		if err != nil {
			return err
		}

		usuario := &registros.Usuario{
			Nombre:   input.Nombre,
			Email:    input.Email,
			Password: string(hash),
			IDRol:    rol.IDRol,
			Activo:   true,
		}
		if err := s.usuarios.Crear(txCtx, usuario); err != nil {
			// El índice único respalda la verificación anterior
			if errors.Is(err, domainerrors.ErrConflicto) {
				return domainerrors.ErrEmailExistente
			}
			return err
		}

		creado = usuario
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cuenta registrada", "email", input.Email)
	return creado, nil
}

// Login verifica credenciales y abre una sesión respaldada en base de
// datos. Devuelve el mismo error para email desconocido y contraseña
// incorrecta.
func (s *AuthService) Login(ctx context.Context, email, password string) (*registros.Usuario, *registros.Sesion, error) {
	usuario, err := s.usuarios.BuscarPorEmail(ctx, email)
	if err != nil {
		return nil, nil, err
	}

	hash := hashRelleno
	if usuario != nil {
		hash = usuario.Password
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil || usuario == nil {
		s.logger.Warn("intento de login fallido", "email", email)
		return nil, nil, domainerrors.ErrCredencialesInvalidas
	}

	sesion := &registros.Sesion{
		Token:        uuid.NewString(),
		IDUsuario:    usuario.IDUsuario,
		UltimoAcceso: time.Now().UTC(),
	}
	if err := s.sesiones.Crear(ctx, sesion); err != nil {
		return nil, nil, err
	}

	s.logger.Info("sesión iniciada", "id_usuario", usuario.IDUsuario)
	return usuario, sesion, nil
}

// Logout invalida la sesión del token indicado. Un token ya inválido no
// es un error: el resultado final es el mismo.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sesiones.Eliminar(ctx, token)
}

// Actual resuelve la identidad de una sesión vigente. Aplica el
// vencimiento por inactividad y refresca el último acceso.
func (s *AuthService) Actual(ctx context.Context, token string) (*registros.Usuario, error) {
	sesion, err := s.sesiones.Buscar(ctx, token)
	if err != nil {
		return nil, err
	}

	ahora := time.Now().UTC()
	if ahora.Sub(sesion.UltimoAcceso) > s.ttl {
		_ = s.sesiones.Eliminar(ctx, token)
		return nil, domainerrors.ErrSesionExpirada
	}

	if err := s.sesiones.Tocar(ctx, token, ahora); err != nil {
		return nil, err
	}

	usuario, err := s.usuarios.BuscarPorID(ctx, sesion.IDUsuario)
	if err != nil {
		return nil, domainerrors.ErrNoAutenticado
	}
	if !usuario.Activo {
		return nil, domainerrors.ErrNoAutenticado
	}

	return usuario, nil
}
