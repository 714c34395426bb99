package postgres

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// UsuarioRepository implementa repositories.Usuarios. Reutiliza el CRUD
// genérico y agrega las consultas propias de autenticación. Las lecturas
// precargan el rol porque el gate de autorización lo necesita.
type UsuarioRepository struct {
	repositories.Crud[registros.Usuario]
	db *gorm.DB
}

// NewUsuarioRepository crea un nuevo UsuarioRepository
func NewUsuarioRepository(db *gorm.DB) repositories.Usuarios {
	return &UsuarioRepository{
		Crud: NewCrudRepository[registros.Usuario](db, registros.DescUsuario),
		db:   db,
	}
}

// BuscarPorEmail devuelve el usuario activo con ese email, con su hash
// de contraseña y su rol cargados. nil sin error cuando no existe: el
// llamador decide si eso es un 401 o un email disponible.
func (r *UsuarioRepository) BuscarPorEmail(ctx context.Context, email string) (*registros.Usuario, error) {
	var usuario registros.Usuario

	db := dbDesde(ctx, r.db).WithContext(ctx)
	err := db.Preload("Rol").Where("email = ? AND estado = ?", email, true).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &usuario, nil
}

// BuscarPorID sobreescribe la versión genérica para precargar el rol
func (r *UsuarioRepository) BuscarPorID(ctx context.Context, id uint) (*registros.Usuario, error) {
	var usuario registros.Usuario

	db := dbDesde(ctx, r.db).WithContext(ctx)
	err := db.Preload("Rol").Where("id_usuario = ?", id).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNoEncontrado
		}
		return nil, err
	}

	return &usuario, nil
}

// Listar sobreescribe la versión genérica para precargar el rol
func (r *UsuarioRepository) Listar(ctx context.Context) ([]registros.Usuario, error) {
	usuarios := make([]registros.Usuario, 0)

	db := dbDesde(ctx, r.db).WithContext(ctx)
	err := db.Preload("Rol").Where("estado = ?", true).Order("id_usuario").Find(&usuarios).Error
	if err != nil {
		return nil, err
	}

	return usuarios, nil
}

// SesionRepository implementa repositories.Sesiones
type SesionRepository struct {
	db *gorm.DB
}

// NewSesionRepository crea un nuevo SesionRepository
func NewSesionRepository(db *gorm.DB) repositories.Sesiones {
	return &SesionRepository{db: db}
}

func (r *SesionRepository) Crear(ctx context.Context, sesion *registros.Sesion) error {
	return dbDesde(ctx, r.db).WithContext(ctx).Create(sesion).Error
}

func (r *SesionRepository) Buscar(ctx context.Context, token string) (*registros.Sesion, error) {
	var sesion registros.Sesion

	err := dbDesde(ctx, r.db).WithContext(ctx).Where("token = ?", token).First(&sesion).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNoAutenticado
		}
		return nil, err
	}

	return &sesion, nil
}

// Tocar refresca la marca de último acceso para el vencimiento por inactividad
func (r *SesionRepository) Tocar(ctx context.Context, token string, momento time.Time) error {
	return dbDesde(ctx, r.db).WithContext(ctx).
		Model(&registros.Sesion{}).
		Where("token = ?", token).
		Update("ultimo_acceso", momento).Error
}

func (r *SesionRepository) Eliminar(ctx context.Context, token string) error {
	return dbDesde(ctx, r.db).WithContext(ctx).
		Where("token = ?", token).
		Delete(&registros.Sesion{}).Error
}
