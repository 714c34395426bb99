package services

import (
	"context"

	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/domain/repositories"
)

// CrudService es la capa de negocio genérica para las entidades del
// catálogo. No hay reglas de negocio cruzadas entre entidades: el
// servicio registra la operación en el log y delega en el repositorio.
type CrudService[T any] struct {
	repo   repositories.Crud[T]
	desc   registros.Descriptor
	logger ports.Logger
}

// NewCrudService crea el servicio genérico para una entidad
func NewCrudService[T any](repo repositories.Crud[T], desc registros.Descriptor, logger ports.Logger) *CrudService[T] {
	return &CrudService[T]{
		repo:   repo,
		desc:   desc,
		logger: logger.With("recurso", desc.Recurso),
	}
}

// Listar devuelve las filas activas
func (s *CrudService[T]) Listar(ctx context.Context) ([]T, error) {
	return s.repo.Listar(ctx)
}

// ListarPorPadre devuelve las filas activas de un padre
func (s *CrudService[T]) ListarPorPadre(ctx context.Context, id uint) ([]T, error) {
	return s.repo.ListarPorPadre(ctx, s.desc.Padre.Columna, id)
}

// Buscar devuelve una fila por id, activa o no
func (s *CrudService[T]) Buscar(ctx context.Context, id uint) (*T, error) {
	return s.repo.BuscarPorID(ctx, id)
}

// Crear inserta un registro nuevo
func (s *CrudService[T]) Crear(ctx context.Context, registro *T) error {
	if err := s.repo.Crear(ctx, registro); err != nil {
		return err
	}
	s.logger.Info("registro creado")
	return nil
}

// Actualizar aplica los campos presentes sobre la fila indicada
func (s *CrudService[T]) Actualizar(ctx context.Context, id uint, campos map[string]any) (*T, error) {
	actualizado, err := s.repo.Actualizar(ctx, id, campos)
	if err != nil {
		return nil, err
	}
	s.logger.Info("registro actualizado", "id", id)
	return actualizado, nil
}

// Desactivar apaga la bandera de borrado lógico
func (s *CrudService[T]) Desactivar(ctx context.Context, id uint) error {
	if err := s.repo.Desactivar(ctx, id); err != nil {
		return err
	}
	s.logger.Info("registro desactivado", "id", id)
	return nil
}
