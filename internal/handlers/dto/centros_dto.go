package dto

import "github.com/sisvot/sisvot-backend/internal/domain/registros"

// CrearPersonalRequest es el cuerpo para POST /api/personal
type CrearPersonalRequest struct {
	Nombres   string `json:"nombres" binding:"required,min=2,max=100"`
	Apellidos string `json:"apellidos" binding:"required,min=2,max=100"`
	Cedula    string `json:"cedula" binding:"required,cedula"`
	Telefono  string `json:"telefono" binding:"omitempty,max=20"`
	Cargo     string `json:"cargo" binding:"omitempty,max=100"`
}

func (r CrearPersonalRequest) Modelo() *registros.Personal {
	return &registros.Personal{
		Nombres:   r.Nombres,
		Apellidos: r.Apellidos,
		Cedula:    r.Cedula,
		Telefono:  r.Telefono,
		Cargo:     r.Cargo,
		Activo:    true,
	}
}

// ActualizarPersonalRequest es el cuerpo para PUT /api/personal/:id
type ActualizarPersonalRequest struct {
	Nombres   *string `json:"nombres" binding:"omitempty,min=2,max=100"`
	Apellidos *string `json:"apellidos" binding:"omitempty,min=2,max=100"`
	Cedula    *string `json:"cedula" binding:"omitempty,cedula"`
	Telefono  *string `json:"telefono" binding:"omitempty,max=20"`
	Cargo     *string `json:"cargo" binding:"omitempty,max=100"`
}

func (r ActualizarPersonalRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombres != nil {
		campos["nombres"] = *r.Nombres
	}
	if r.Apellidos != nil {
		campos["apellidos"] = *r.Apellidos
	}
	if r.Cedula != nil {
		campos["cedula"] = *r.Cedula
	}
	if r.Telefono != nil {
		campos["telefono"] = *r.Telefono
	}
	if r.Cargo != nil {
		campos["cargo"] = *r.Cargo
	}
	return campos
}

// CrearCentroVotacionRequest es el cuerpo para POST /api/centros-votacion.
// El responsable (id_personal) es opcional.
type CrearCentroVotacionRequest struct {
	Codigo      string `json:"codigo" binding:"required,min=3,max=20"`
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	IDUbicacion uint   `json:"id_ubicacion" binding:"required"`
	IDPersonal  *uint  `json:"id_personal" binding:"omitempty"`
	Mesas       int    `json:"mesas" binding:"required,gte=1"`
	Electores   int    `json:"electores" binding:"omitempty,gte=0"`
}

func (r CrearCentroVotacionRequest) Modelo() *registros.CentroVotacion {
	return &registros.CentroVotacion{
		Codigo:      r.Codigo,
		Nombre:      r.Nombre,
		IDUbicacion: r.IDUbicacion,
		IDPersonal:  r.IDPersonal,
		Mesas:       r.Mesas,
		Electores:   r.Electores,
		Activo:      true,
	}
}

// ActualizarCentroVotacionRequest es el cuerpo para PUT /api/centros-votacion/:id
type ActualizarCentroVotacionRequest struct {
	Codigo      *string `json:"codigo" binding:"omitempty,min=3,max=20"`
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	IDUbicacion *uint   `json:"id_ubicacion" binding:"omitempty"`
	IDPersonal  *uint   `json:"id_personal" binding:"omitempty"`
	Mesas       *int    `json:"mesas" binding:"omitempty,gte=1"`
	Electores   *int    `json:"electores" binding:"omitempty,gte=0"`
}

func (r ActualizarCentroVotacionRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Codigo != nil {
		campos["codigo"] = *r.Codigo
	}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.IDUbicacion != nil {
		campos["id_ubicacion"] = *r.IDUbicacion
	}
	if r.IDPersonal != nil {
		campos["id_personal"] = *r.IDPersonal
	}
	if r.Mesas != nil {
		campos["mesas"] = *r.Mesas
	}
	if r.Electores != nil {
		campos["electores"] = *r.Electores
	}
	return campos
}
