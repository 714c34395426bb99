package services

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// UsuarioService contiene la lógica de gestión de cuentas desde el
// panel admin. Es el único servicio que no usa el CRUD genérico tal
// cual: crear y actualizar pasan la contraseña por bcrypt.
type UsuarioService struct {
	usuarios repositories.Usuarios
	logger   ports.Logger
}

// NewUsuarioService crea un nuevo UsuarioService
func NewUsuarioService(usuarios repositories.Usuarios, logger ports.Logger) *UsuarioService {
	return &UsuarioService{usuarios: usuarios, logger: logger}
}

// CrearUsuarioInput son los datos para crear una cuenta desde el panel
type CrearUsuarioInput struct {
	Nombre   string
	Email    string
	Password string
	IDRol    uint
}

// Listar devuelve las cuentas activas con su rol cargado
func (s *UsuarioService) Listar(ctx context.Context) ([]registros.Usuario, error) {
	return s.usuarios.Listar(ctx)
}

// Buscar devuelve una cuenta por id, activa o no
func (s *UsuarioService) Buscar(ctx context.Context, id uint) (*registros.Usuario, error) {
	return s.usuarios.BuscarPorID(ctx, id)
}

// Crear registra una cuenta con el rol indicado
func (s *UsuarioService) Crear(ctx context.Context, input CrearUsuarioInput) (*registros.Usuario, error) {
	existente, err := s.usuarios.BuscarPorEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domainerrors.ErrEmailExistente
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	usuario := &registros.Usuario{
		Nombre:   input.Nombre,
		Email:    input.Email,
		Password: string(hash),
		IDRol:    input.IDRol,
		Activo:   true,
	}
	if err := s.usuarios.Crear(ctx, usuario); err != nil {
		if errors.Is(err, domainerrors.ErrConflicto) {
			return nil, domainerrors.ErrEmailExistente
		}
		return nil, err
	}

	s.logger.Info("cuenta creada desde panel", "id_usuario", usuario.IDUsuario)
	return s.usuarios.BuscarPorID(ctx, usuario.IDUsuario)
}

// Actualizar aplica los campos presentes; si viene password, la hashea
func (s *UsuarioService) Actualizar(ctx context.Context, id uint, campos map[string]any) (*registros.Usuario, error) {
	if password, ok := campos["password"].(string); ok {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		campos["password"] = string(hash)
	}

	if _, err := s.usuarios.Actualizar(ctx, id, campos); err != nil {
		return nil, err
	}

	s.logger.Info("cuenta actualizada", "id_usuario", id)
	return s.usuarios.BuscarPorID(ctx, id)
}

// Desactivar apaga la bandera de la cuenta
func (s *UsuarioService) Desactivar(ctx context.Context, id uint) error {
	if err := s.usuarios.Desactivar(ctx, id); err != nil {
		return err
	}
	s.logger.Info("cuenta desactivada", "id_usuario", id)
	return nil
}
