package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// RolRepository implementa repositories.Roles
type RolRepository struct {
	repositories.Crud[registros.Rol]
	db *gorm.DB
}

// NewRolRepository crea un nuevo RolRepository
func NewRolRepository(db *gorm.DB) repositories.Roles {
	return &RolRepository{
		Crud: NewCrudRepository[registros.Rol](db, registros.DescRol),
		db:   db,
	}
}

// BuscarPorNombre devuelve el rol activo con ese nombre
func (r *RolRepository) BuscarPorNombre(ctx context.Context, nombre string) (*registros.Rol, error) {
	var rol registros.Rol

	db := dbDesde(ctx, r.db).WithContext(ctx)
	err := db.Where("nombre = ? AND estado = ?", nombre, true).First(&rol).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNoEncontrado
		}
		return nil, err
	}

	return &rol, nil
}
