package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// CrudRepository implementa repositories.Crud[T] sobre GORM para
// cualquier entidad del catálogo. Una sola instancia por entidad,
// parametrizada por su Descriptor; cada método ejecuta una única
// sentencia sobre la tabla de la entidad.
type CrudRepository[T any] struct {
	db   *gorm.DB
	desc registros.Descriptor
}

// NewCrudRepository crea el repositorio genérico para una entidad
func NewCrudRepository[T any](db *gorm.DB, desc registros.Descriptor) repositories.Crud[T] {
	return &CrudRepository[T]{db: db, desc: desc}
}

// Listar devuelve solo las filas activas, ordenadas por clave primaria
func (r *CrudRepository[T]) Listar(ctx context.Context) ([]T, error) {
	filas := make([]T, 0)

	db := dbDesde(ctx, r.db).WithContext(ctx)
	if err := db.Where("estado = ?", true).Order(r.desc.PK).Find(&filas).Error; err != nil {
		return nil, err
	}

	return filas, nil
}

// ListarPorPadre devuelve las filas activas cuya clave foránea apunta al padre indicado
func (r *CrudRepository[T]) ListarPorPadre(ctx context.Context, columna string, id uint) ([]T, error) {
	filas := make([]T, 0)

	db := dbDesde(ctx, r.db).WithContext(ctx)
	if err := db.Where(columna+" = ? AND estado = ?", id, true).Order(r.desc.PK).Find(&filas).Error; err != nil {
		return nil, err
	}

	return filas, nil
}

// BuscarPorID devuelve la fila aunque esté desactivada (consulta directa)
func (r *CrudRepository[T]) BuscarPorID(ctx context.Context, id uint) (*T, error) {
	var fila T

	db := dbDesde(ctx, r.db).WithContext(ctx)
	if err := db.Where(r.desc.PK+" = ?", id).First(&fila).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNoEncontrado
		}
		return nil, err
	}

	return &fila, nil
}

// Crear inserta el registro; la base asigna la clave primaria y las
// marcas de tiempo. El registro nace activo.
func (r *CrudRepository[T]) Crear(ctx context.Context, registro *T) error {
	db := dbDesde(ctx, r.db).WithContext(ctx)
	if err := db.Create(registro).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domainerrors.ErrConflicto
		}
		return err
	}
	return nil
}

// Actualizar aplica solo los campos recibidos y devuelve la fila
// resultante. La clave primaria y la bandera de borrado lógico nunca
// viajan en el mapa de campos; se descartan por si acaso.
func (r *CrudRepository[T]) Actualizar(ctx context.Context, id uint, campos map[string]any) (*T, error) {
	delete(campos, r.desc.PK)
	delete(campos, "estado")

	db := dbDesde(ctx, r.db).WithContext(ctx)

	// Verificar existencia primero: distingue 404 de "sin cambios"
	if _, err := r.BuscarPorID(ctx, id); err != nil {
		return nil, err
	}

	if len(campos) > 0 {
		var modelo T
		if err := db.Model(&modelo).Where(r.desc.PK+" = ?", id).Updates(campos).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return nil, domainerrors.ErrConflicto
			}
			return nil, err
		}
	}

	return r.BuscarPorID(ctx, id)
}

// Desactivar apaga la bandera de borrado lógico; la fila se conserva.
// Una fila ya desactivada (o inexistente) produce ErrNoEncontrado.
func (r *CrudRepository[T]) Desactivar(ctx context.Context, id uint) error {
	var modelo T

	db := dbDesde(ctx, r.db).WithContext(ctx)
	res := db.Model(&modelo).Where(r.desc.PK+" = ? AND estado = ?", id, true).Update("estado", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainerrors.ErrNoEncontrado
	}
	return nil
}
