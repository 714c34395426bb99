package postgres

import (
	"context"
	"errors"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	domainerrors "github.com/sisvot/sisvot-backend/internal/domain/errors"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
)

// setupTestDB abre una base sqlite en memoria con el esquema migrado.
// TranslateError hace que las violaciones de unicidad lleguen como
// gorm.ErrDuplicatedKey igual que en postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("fallo al abrir la base en memoria: %v", err)
	}

	// Una sola conexión: cada conexión nueva a :memory: sería otra base
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("fallo al obtener el pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&registros.Estado{}, &registros.Municipio{}); err != nil {
		t.Fatalf("fallo al migrar el esquema: %v", err)
	}

	return db
}

func TestCrudRepository_Crear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[registros.Estado](db, registros.DescEstado)
	ctx := context.Background()

	t.Run("asigna clave primaria y nace activo", func(t *testing.T) {
		estado := &registros.Estado{Nombre: "Miranda"}
		if err := repo.Crear(ctx, estado); err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}

		if estado.IDEstado == 0 {
			t.Error("esperaba clave primaria asignada por la base")
		}
		if !estado.Activo {
			t.Error("esperaba que el registro naciera activo")
		}
	})

	t.Run("rechaza nombre duplicado con ErrConflicto", func(t *testing.T) {
		if err := repo.Crear(ctx, &registros.Estado{Nombre: "Zulia"}); err != nil {
			t.Fatalf("primera inserción falló: %v", err)
		}

		err := repo.Crear(ctx, &registros.Estado{Nombre: "Zulia"})
		if !errors.Is(err, domainerrors.ErrConflicto) {
			t.Errorf("esperaba ErrConflicto, obtuvo %v", err)
		}
	})
}

func TestCrudRepository_Listar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[registros.Estado](db, registros.DescEstado)
	ctx := context.Background()

	lara := &registros.Estado{Nombre: "Lara"}
	tachira := &registros.Estado{Nombre: "Táchira"}
	for _, e := range []*registros.Estado{lara, tachira} {
		if err := repo.Crear(ctx, e); err != nil {
			t.Fatalf("fallo al sembrar: %v", err)
		}
	}

	t.Run("incluye los registros creados", func(t *testing.T) {
		filas, err := repo.Listar(ctx)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if len(filas) != 2 {
			t.Fatalf("esperaba 2 filas, obtuvo %d", len(filas))
		}
	})

	t.Run("excluye los desactivados", func(t *testing.T) {
		if err := repo.Desactivar(ctx, lara.IDEstado); err != nil {
			t.Fatalf("fallo al desactivar: %v", err)
		}

		filas, err := repo.Listar(ctx)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if len(filas) != 1 {
			t.Fatalf("esperaba 1 fila, obtuvo %d", len(filas))
		}
		if filas[0].IDEstado != tachira.IDEstado {
			t.Errorf("esperaba solo el registro activo, obtuvo id %d", filas[0].IDEstado)
		}
	})

	t.Run("la consulta directa sí devuelve el desactivado", func(t *testing.T) {
		fila, err := repo.BuscarPorID(ctx, lara.IDEstado)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if fila.Activo {
			t.Error("esperaba la bandera apagada")
		}
	})
}

func TestCrudRepository_ListarPorPadre(t *testing.T) {
	db := setupTestDB(t)
	estados := NewCrudRepository[registros.Estado](db, registros.DescEstado)
	municipios := NewCrudRepository[registros.Municipio](db, registros.DescMunicipio)
	ctx := context.Background()

	merida := &registros.Estado{Nombre: "Mérida"}
	trujillo := &registros.Estado{Nombre: "Trujillo"}
	for _, e := range []*registros.Estado{merida, trujillo} {
		if err := estados.Crear(ctx, e); err != nil {
			t.Fatalf("fallo al sembrar estados: %v", err)
		}
	}

	libertador := &registros.Municipio{Nombre: "Libertador", IDEstado: merida.IDEstado}
	campoElias := &registros.Municipio{Nombre: "Campo Elías", IDEstado: merida.IDEstado}
	valera := &registros.Municipio{Nombre: "Valera", IDEstado: trujillo.IDEstado}
	for _, m := range []*registros.Municipio{libertador, campoElias, valera} {
		if err := municipios.Crear(ctx, m); err != nil {
			t.Fatalf("fallo al sembrar municipios: %v", err)
		}
	}

	t.Run("filtra por la clave foránea del padre", func(t *testing.T) {
		filas, err := municipios.ListarPorPadre(ctx, "id_estado", merida.IDEstado)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if len(filas) != 2 {
			t.Fatalf("esperaba 2 municipios de Mérida, obtuvo %d", len(filas))
		}
		for _, f := range filas {
			if f.IDEstado != merida.IDEstado {
				t.Errorf("municipio %d no pertenece al padre filtrado", f.IDMunicipio)
			}
		}
	})

	t.Run("excluye hijos desactivados", func(t *testing.T) {
		if err := municipios.Desactivar(ctx, campoElias.IDMunicipio); err != nil {
			t.Fatalf("fallo al desactivar: %v", err)
		}

		filas, err := municipios.ListarPorPadre(ctx, "id_estado", merida.IDEstado)
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if len(filas) != 1 {
			t.Fatalf("esperaba 1 municipio activo, obtuvo %d", len(filas))
		}
	})
}

func TestCrudRepository_Actualizar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[registros.Municipio](db, registros.DescMunicipio)
	ctx := context.Background()

	municipio := &registros.Municipio{Nombre: "Maracaibo", IDEstado: 1}
	if err := repo.Crear(ctx, municipio); err != nil {
		t.Fatalf("fallo al sembrar: %v", err)
	}

	t.Run("aplica solo los campos presentes", func(t *testing.T) {
		fila, err := repo.Actualizar(ctx, municipio.IDMunicipio, map[string]any{"nombre": "San Francisco"})
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}

		if fila.Nombre != "San Francisco" {
			t.Errorf("esperaba nombre actualizado, obtuvo '%s'", fila.Nombre)
		}
		if fila.IDEstado != 1 {
			t.Errorf("esperaba id_estado intacto, obtuvo %d", fila.IDEstado)
		}
		if !fila.Activo {
			t.Error("esperaba la bandera intacta")
		}
	})

	t.Run("descarta clave primaria y bandera del mapa", func(t *testing.T) {
		fila, err := repo.Actualizar(ctx, municipio.IDMunicipio, map[string]any{
			"id_municipio": uint(999),
			"estado":       false,
			"nombre":       "Cabimas",
		})
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}

		if fila.IDMunicipio != municipio.IDMunicipio {
			t.Errorf("la clave primaria cambió a %d", fila.IDMunicipio)
		}
		if !fila.Activo {
			t.Error("la bandera de borrado lógico cambió por el mapa de campos")
		}
		if fila.Nombre != "Cabimas" {
			t.Errorf("esperaba nombre 'Cabimas', obtuvo '%s'", fila.Nombre)
		}
	})

	t.Run("id inexistente produce ErrNoEncontrado", func(t *testing.T) {
		_, err := repo.Actualizar(ctx, 9999, map[string]any{"nombre": "Inexistente"})
		if !errors.Is(err, domainerrors.ErrNoEncontrado) {
			t.Errorf("esperaba ErrNoEncontrado, obtuvo %v", err)
		}
	})

	t.Run("mapa vacío devuelve la fila sin cambios", func(t *testing.T) {
		fila, err := repo.Actualizar(ctx, municipio.IDMunicipio, map[string]any{})
		if err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}
		if fila.Nombre != "Cabimas" {
			t.Errorf("esperaba la fila intacta, obtuvo '%s'", fila.Nombre)
		}
	})
}

func TestCrudRepository_Desactivar(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCrudRepository[registros.Estado](db, registros.DescEstado)
	ctx := context.Background()

	estado := &registros.Estado{Nombre: "Falcón"}
	if err := repo.Crear(ctx, estado); err != nil {
		t.Fatalf("fallo al sembrar: %v", err)
	}

	t.Run("apaga la bandera y conserva la fila", func(t *testing.T) {
		if err := repo.Desactivar(ctx, estado.IDEstado); err != nil {
			t.Fatalf("esperaba éxito, obtuvo error: %v", err)
		}

		fila, err := repo.BuscarPorID(ctx, estado.IDEstado)
		if err != nil {
			t.Fatalf("la fila desapareció: %v", err)
		}
		if fila.Activo {
			t.Error("esperaba la bandera apagada")
		}
	})

	t.Run("desactivar dos veces produce ErrNoEncontrado", func(t *testing.T) {
		err := repo.Desactivar(ctx, estado.IDEstado)
		if !errors.Is(err, domainerrors.ErrNoEncontrado) {
			t.Errorf("esperaba ErrNoEncontrado, obtuvo %v", err)
		}
	})

	t.Run("id inexistente produce ErrNoEncontrado", func(t *testing.T) {
		err := repo.Desactivar(ctx, 9999)
		if !errors.Is(err, domainerrors.ErrNoEncontrado) {
			t.Errorf("esperaba ErrNoEncontrado, obtuvo %v", err)
		}
	})
}
