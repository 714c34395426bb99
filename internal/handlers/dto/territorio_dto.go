package dto

import "github.com/sisvot/sisvot-backend/internal/domain/registros"

// Cuerpos de creación y actualización de la jerarquía territorial.
// Los de creación exigen todos los campos no anulables; los de
// actualización son todos opcionales (punteros) y solo los presentes
// llegan a la base.

// CrearEstadoRequest es el cuerpo para POST /api/estados
type CrearEstadoRequest struct {
	Nombre string `json:"nombre" binding:"required,min=3,max=100"`
}

func (r CrearEstadoRequest) Modelo() *registros.Estado {
	return &registros.Estado{Nombre: r.Nombre, Activo: true}
}

// ActualizarEstadoRequest es el cuerpo para PUT /api/estados/:id
type ActualizarEstadoRequest struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=3,max=100"`
}

func (r ActualizarEstadoRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	return campos
}

// CrearMunicipioRequest es el cuerpo para POST /api/municipios
type CrearMunicipioRequest struct {
	Nombre   string `json:"nombre" binding:"required,min=3,max=100"`
	IDEstado uint   `json:"id_estado" binding:"required"`
}

func (r CrearMunicipioRequest) Modelo() *registros.Municipio {
	return &registros.Municipio{Nombre: r.Nombre, IDEstado: r.IDEstado, Activo: true}
}

// ActualizarMunicipioRequest es el cuerpo para PUT /api/municipios/:id
type ActualizarMunicipioRequest struct {
	Nombre   *string `json:"nombre" binding:"omitempty,min=3,max=100"`
	IDEstado *uint   `json:"id_estado" binding:"omitempty"`
}

func (r ActualizarMunicipioRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.IDEstado != nil {
		campos["id_estado"] = *r.IDEstado
	}
	return campos
}

// CrearParroquiaRequest es el cuerpo para POST /api/parroquias
type CrearParroquiaRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=100"`
	IDMunicipio uint   `json:"id_municipio" binding:"required"`
}

func (r CrearParroquiaRequest) Modelo() *registros.Parroquia {
	return &registros.Parroquia{Nombre: r.Nombre, IDMunicipio: r.IDMunicipio, Activo: true}
}

// ActualizarParroquiaRequest es el cuerpo para PUT /api/parroquias/:id
type ActualizarParroquiaRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=100"`
	IDMunicipio *uint   `json:"id_municipio" binding:"omitempty"`
}

func (r ActualizarParroquiaRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.IDMunicipio != nil {
		campos["id_municipio"] = *r.IDMunicipio
	}
	return campos
}

// CrearComunidadRequest es el cuerpo para POST /api/comunidades
type CrearComunidadRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	IDParroquia uint   `json:"id_parroquia" binding:"required"`
}

func (r CrearComunidadRequest) Modelo() *registros.Comunidad {
	return &registros.Comunidad{Nombre: r.Nombre, IDParroquia: r.IDParroquia, Activo: true}
}

// ActualizarComunidadRequest es el cuerpo para PUT /api/comunidades/:id
type ActualizarComunidadRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	IDParroquia *uint   `json:"id_parroquia" binding:"omitempty"`
}

func (r ActualizarComunidadRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.IDParroquia != nil {
		campos["id_parroquia"] = *r.IDParroquia
	}
	return campos
}

// CrearUbicacionRequest es el cuerpo para POST /api/ubicaciones
type CrearUbicacionRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	Direccion   string `json:"direccion" binding:"required,min=5,max=300"`
	IDComunidad uint   `json:"id_comunidad" binding:"required"`
}

func (r CrearUbicacionRequest) Modelo() *registros.Ubicacion {
	return &registros.Ubicacion{Nombre: r.Nombre, Direccion: r.Direccion, IDComunidad: r.IDComunidad, Activo: true}
}

// ActualizarUbicacionRequest es el cuerpo para PUT /api/ubicaciones/:id
type ActualizarUbicacionRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	Direccion   *string `json:"direccion" binding:"omitempty,min=5,max=300"`
	IDComunidad *uint   `json:"id_comunidad" binding:"omitempty"`
}

func (r ActualizarUbicacionRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Direccion != nil {
		campos["direccion"] = *r.Direccion
	}
	if r.IDComunidad != nil {
		campos["id_comunidad"] = *r.IDComunidad
	}
	return campos
}
