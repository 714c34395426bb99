package repositories

import (
	"context"
	"time"

	"github.com/sisvot/sisvot-backend/internal/domain/registros"
)

// Usuarios define la persistencia de cuentas. Además del CRUD genérico,
// la autenticación necesita búsqueda por email (con hash incluido) y
// carga del rol asociado.
type Usuarios interface {
	Crud[registros.Usuario]
	BuscarPorEmail(ctx context.Context, email string) (*registros.Usuario, error)
}

// Roles agrega al CRUD genérico la búsqueda por nombre, usada para
// asignar el rol por defecto en el registro de cuentas.
type Roles interface {
	Crud[registros.Rol]
	BuscarPorNombre(ctx context.Context, nombre string) (*registros.Rol, error)
}

// Sesiones define la persistencia de sesiones respaldadas en base de datos.
type Sesiones interface {
	Crear(ctx context.Context, sesion *registros.Sesion) error
	Buscar(ctx context.Context, token string) (*registros.Sesion, error)
	Tocar(ctx context.Context, token string, momento time.Time) error
	Eliminar(ctx context.Context, token string) error
}
