package repositories

import "context"

// Crud define la interfaz de persistencia genérica que comparten todas
// las entidades. Cada operación es una sola sentencia sobre una sola
// tabla; no hay transacciones multi-tabla en el camino CRUD.
//
// Listar y ListarPorPadre devuelven solo filas activas (estado = true).
// BuscarPorID devuelve la fila aunque esté inactiva, para inspección
// directa. Actualizar aplica únicamente los campos recibidos y nunca
// toca la clave primaria ni la bandera de borrado lógico.
type Crud[T any] interface {
	Listar(ctx context.Context) ([]T, error)
	ListarPorPadre(ctx context.Context, columna string, id uint) ([]T, error)
	BuscarPorID(ctx context.Context, id uint) (*T, error)
	Crear(ctx context.Context, registro *T) error
	Actualizar(ctx context.Context, id uint, campos map[string]any) (*T, error)
	Desactivar(ctx context.Context, id uint) error
}
