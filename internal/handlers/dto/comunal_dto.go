package dto

import "github.com/sisvot/sisvot-backend/internal/domain/registros"

// CrearComunaRequest es el cuerpo para POST /api/comunas
type CrearComunaRequest struct {
	Nombre string `json:"nombre" binding:"required,min=3,max=150"`
	Codigo string `json:"codigo" binding:"required,min=3,max=20"`
}

func (r CrearComunaRequest) Modelo() *registros.Comuna {
	return &registros.Comuna{Nombre: r.Nombre, Codigo: r.Codigo, Activo: true}
}

// ActualizarComunaRequest es el cuerpo para PUT /api/comunas/:id
type ActualizarComunaRequest struct {
	Nombre *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	Codigo *string `json:"codigo" binding:"omitempty,min=3,max=20"`
}

func (r ActualizarComunaRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Codigo != nil {
		campos["codigo"] = *r.Codigo
	}
	return campos
}

// CrearProyectoRequest es el cuerpo para POST /api/proyectos
type CrearProyectoRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=500"`
	IDComuna    uint   `json:"id_comuna" binding:"required"`
}

func (r CrearProyectoRequest) Modelo() *registros.Proyecto {
	return &registros.Proyecto{Nombre: r.Nombre, Descripcion: r.Descripcion, IDComuna: r.IDComuna, Activo: true}
}

// ActualizarProyectoRequest es el cuerpo para PUT /api/proyectos/:id
type ActualizarProyectoRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=500"`
	IDComuna    *uint   `json:"id_comuna" binding:"omitempty"`
}

func (r ActualizarProyectoRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Descripcion != nil {
		campos["descripcion"] = *r.Descripcion
	}
	if r.IDComuna != nil {
		campos["id_comuna"] = *r.IDComuna
	}
	return campos
}

// CrearTComunalRequest es el cuerpo para POST /api/t-comunal
type CrearTComunalRequest struct {
	IDProyecto uint `json:"id_proyecto" binding:"required"`
	IDEvento   uint `json:"id_evento" binding:"required"`
	Votos      int  `json:"votos" binding:"omitempty,gte=0"`
}

func (r CrearTComunalRequest) Modelo() *registros.TComunal {
	return &registros.TComunal{IDProyecto: r.IDProyecto, IDEvento: r.IDEvento, Votos: r.Votos, Activo: true}
}

// ActualizarTComunalRequest es el cuerpo para PUT /api/t-comunal/:id
type ActualizarTComunalRequest struct {
	IDProyecto *uint `json:"id_proyecto" binding:"omitempty"`
	IDEvento   *uint `json:"id_evento" binding:"omitempty"`
	Votos      *int  `json:"votos" binding:"omitempty,gte=0"`
}

func (r ActualizarTComunalRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.IDProyecto != nil {
		campos["id_proyecto"] = *r.IDProyecto
	}
	if r.IDEvento != nil {
		campos["id_evento"] = *r.IDEvento
	}
	if r.Votos != nil {
		campos["votos"] = *r.Votos
	}
	return campos
}

// CrearEventoCCRequest es el cuerpo para POST /api/eventocc
type CrearEventoCCRequest struct {
	IDEvento   uint `json:"id_evento" binding:"required"`
	IDConsejo  uint `json:"id_consejo" binding:"required"`
	Asistentes int  `json:"asistentes" binding:"omitempty,gte=0"`
}

func (r CrearEventoCCRequest) Modelo() *registros.EventoCC {
	return &registros.EventoCC{IDEvento: r.IDEvento, IDConsejo: r.IDConsejo, Asistentes: r.Asistentes, Activo: true}
}

// ActualizarEventoCCRequest es el cuerpo para PUT /api/eventocc/:id
type ActualizarEventoCCRequest struct {
	IDEvento   *uint `json:"id_evento" binding:"omitempty"`
	IDConsejo  *uint `json:"id_consejo" binding:"omitempty"`
	Asistentes *int  `json:"asistentes" binding:"omitempty,gte=0"`
}

func (r ActualizarEventoCCRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.IDEvento != nil {
		campos["id_evento"] = *r.IDEvento
	}
	if r.IDConsejo != nil {
		campos["id_consejo"] = *r.IDConsejo
	}
	if r.Asistentes != nil {
		campos["asistentes"] = *r.Asistentes
	}
	return campos
}

// CrearConsejoComunalRequest es el cuerpo para POST /api/consejos-comunales
type CrearConsejoComunalRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=150"`
	Rif         string `json:"rif" binding:"required,rif"`
	IDComunidad *uint  `json:"id_comunidad" binding:"omitempty"`
}

func (r CrearConsejoComunalRequest) Modelo() *registros.ConsejoComunal {
	return &registros.ConsejoComunal{Nombre: r.Nombre, Rif: r.Rif, IDComunidad: r.IDComunidad, Activo: true}
}

// ActualizarConsejoComunalRequest es el cuerpo para PUT /api/consejos-comunales/:id
type ActualizarConsejoComunalRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=150"`
	Rif         *string `json:"rif" binding:"omitempty,rif"`
	IDComunidad *uint   `json:"id_comunidad" binding:"omitempty"`
}

func (r ActualizarConsejoComunalRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Rif != nil {
		campos["rif"] = *r.Rif
	}
	if r.IDComunidad != nil {
		campos["id_comunidad"] = *r.IDComunidad
	}
	return campos
}
