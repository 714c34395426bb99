package postgres

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/sisvot/sisvot-backend/internal/domain/ports"
	"github.com/sisvot/sisvot-backend/internal/domain/registros"
	"github.com/sisvot/sisvot-backend/internal/infrastructure/config"
)

// Migrar crea o actualiza el esquema de todas las tablas gestionadas
func Migrar(db *gorm.DB, log ports.Logger) error {
	modelos := []any{
		&registros.Estado{},
		&registros.Municipio{},
		&registros.Parroquia{},
		&registros.Comunidad{},
		&registros.Ubicacion{},
		&registros.Personal{},
		&registros.CentroVotacion{},
		&registros.Evento{},
		&registros.Afluencia{},
		&registros.Comuna{},
		&registros.Proyecto{},
		&registros.TComunal{},
		&registros.EventoCC{},
		&registros.ConsejoComunal{},
		&registros.Rol{},
		&registros.Usuario{},
		&registros.Sesion{},
	}

	if err := db.AutoMigrate(modelos...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	log.Info("schema migrated", "tables", len(modelos))
	return nil
}

// Sembrar garantiza los roles base y la cuenta admin inicial. Es
// idempotente: corre en cada arranque dentro de una transacción.
func Sembrar(ctx context.Context, uow ports.UnitOfWork, cfg *config.AuthConfig, log ports.Logger) error {
	return uow.WithTransaction(ctx, func(txCtx context.Context) error {
		tx, ok := txCtx.Value(txKey).(*gorm.DB)
		if !ok {
			return errors.New("seed requires a transaction in context")
		}

		roles := []registros.Rol{
			{Nombre: registros.RolAdmin, Descripcion: "Acceso total, incluye gestión de usuarios y roles", Activo: true},
			{Nombre: registros.RolOperador, Descripcion: "Gestión de datos de referencia", Activo: true},
		}

		var rolAdmin registros.Rol
		for _, rol := range roles {
			encontrado := registros.Rol{}
			err := tx.Where("nombre = ?", rol.Nombre).First(&encontrado).Error
			switch {
			case errors.Is(err, gorm.ErrRecordNotFound):
				if err := tx.Create(&rol).Error; err != nil {
					return fmt.Errorf("failed to seed role %s: %w", rol.Nombre, err)
				}
				encontrado = rol
			case err != nil:
				return err
			}
			if encontrado.Nombre == registros.RolAdmin {
				rolAdmin = encontrado
			}
		}

		// Cuenta admin inicial, solo si no existe
		var cuenta registros.Usuario
		err := tx.Where("email = ?", cfg.AdminEmail).First(&cuenta).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash admin password: %w", err)
			}
			cuenta = registros.Usuario{
				Nombre:   "Administrador",
				Email:    cfg.AdminEmail,
				Password: string(hash),
				IDRol:    rolAdmin.IDRol,
				Activo:   true,
			}
			if err := tx.Create(&cuenta).Error; err != nil {
				return fmt.Errorf("failed to seed admin account: %w", err)
			}
			log.Info("admin account seeded", "email", cfg.AdminEmail)
		} else if err != nil {
			return err
		}

		return nil
	})
}
