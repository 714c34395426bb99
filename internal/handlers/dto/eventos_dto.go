package dto

import "github.com/sisvot/sisvot-backend/internal/domain/registros"

// CrearEventoRequest es el cuerpo para POST /api/eventos.
// Las fechas viajan como texto ISO; no se valida que el fin sea
// posterior al inicio.
type CrearEventoRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=500"`
	FechaInicio string `json:"fecha_inicio" binding:"required,datetime=2006-01-02"`
	FechaFin    string `json:"fecha_fin" binding:"required,datetime=2006-01-02"`
	IDCentro    uint   `json:"id_centro" binding:"required"`
}

func (r CrearEventoRequest) Modelo() *registros.Evento {
	return &registros.Evento{
		Nombre:      r.Nombre,
		Descripcion: r.Descripcion,
		FechaInicio: r.FechaInicio,
		FechaFin:    r.FechaFin,
		IDCentro:    r.IDCentro,
		Activo:      true,
	}
}

// ActualizarEventoRequest es el cuerpo para PUT /api/eventos/:id
type ActualizarEventoRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=500"`
	FechaInicio *string `json:"fecha_inicio" binding:"omitempty,datetime=2006-01-02"`
	FechaFin    *string `json:"fecha_fin" binding:"omitempty,datetime=2006-01-02"`
	IDCentro    *uint   `json:"id_centro" binding:"omitempty"`
}

func (r ActualizarEventoRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Descripcion != nil {
		campos["descripcion"] = *r.Descripcion
	}
	if r.FechaInicio != nil {
		campos["fecha_inicio"] = *r.FechaInicio
	}
	if r.FechaFin != nil {
		campos["fecha_fin"] = *r.FechaFin
	}
	if r.IDCentro != nil {
		campos["id_centro"] = *r.IDCentro
	}
	return campos
}

// CrearAfluenciaRequest es el cuerpo para POST /api/afluencia.
// Cantidad es puntero para que required signifique presente y un corte
// de cero personas siga siendo válido.
type CrearAfluenciaRequest struct {
	IDEvento uint   `json:"id_evento" binding:"required"`
	Hora     string `json:"hora" binding:"required,datetime=15:04"`
	Cantidad *int   `json:"cantidad" binding:"required,gte=0"`
}

func (r CrearAfluenciaRequest) Modelo() *registros.Afluencia {
	return &registros.Afluencia{IDEvento: r.IDEvento, Hora: r.Hora, Cantidad: *r.Cantidad, Activo: true}
}

// ActualizarAfluenciaRequest es el cuerpo para PUT /api/afluencia/:id
type ActualizarAfluenciaRequest struct {
	IDEvento *uint   `json:"id_evento" binding:"omitempty"`
	Hora     *string `json:"hora" binding:"omitempty,datetime=15:04"`
	Cantidad *int    `json:"cantidad" binding:"omitempty,gte=0"`
}

func (r ActualizarAfluenciaRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.IDEvento != nil {
		campos["id_evento"] = *r.IDEvento
	}
	if r.Hora != nil {
		campos["hora"] = *r.Hora
	}
	if r.Cantidad != nil {
		campos["cantidad"] = *r.Cantidad
	}
	return campos
}
