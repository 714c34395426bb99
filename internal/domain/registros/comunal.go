package registros

import "time"

// Comuna agrupa proyectos del poder comunal.
type Comuna struct {
	IDComuna      uint      `json:"id_comuna" gorm:"column:id_comuna;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Codigo        string    `json:"codigo" gorm:"column:codigo;type:varchar(20);uniqueIndex;not null"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Comuna) TableName() string { return "comunas" }

// Proyecto pertenece a una Comuna.
type Proyecto struct {
	IDProyecto    uint      `json:"id_proyecto" gorm:"column:id_proyecto;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Descripcion   string    `json:"descripcion" gorm:"column:descripcion;type:varchar(500)"`
	IDComuna      uint      `json:"id_comuna" gorm:"column:id_comuna;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Proyecto) TableName() string { return "proyectos" }

// TComunal enlaza un proyecto comunal con el evento en el que se
// presentó su resultado.
type TComunal struct {
	IDTcomunal    uint      `json:"id_tcomunal" gorm:"column:id_tcomunal;primaryKey;autoIncrement"`
	IDProyecto    uint      `json:"id_proyecto" gorm:"column:id_proyecto;not null;index"`
	IDEvento      uint      `json:"id_evento" gorm:"column:id_evento;not null;index"`
	Votos         int       `json:"votos" gorm:"column:votos;not null;default:0"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (TComunal) TableName() string { return "t_comunal" }

// EventoCC enlaza un evento con la participación de un consejo comunal.
type EventoCC struct {
	IDEventocc    uint      `json:"id_eventocc" gorm:"column:id_eventocc;primaryKey;autoIncrement"`
	IDEvento      uint      `json:"id_evento" gorm:"column:id_evento;not null;index"`
	IDConsejo     uint      `json:"id_consejo" gorm:"column:id_consejo;not null;index"`
	Asistentes    int       `json:"asistentes" gorm:"column:asistentes;not null;default:0"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (EventoCC) TableName() string { return "eventocc" }

// ConsejoComunal es la organización de base de una comunidad.
// El RIF es la clave natural única.
type ConsejoComunal struct {
	IDConsejo     uint      `json:"id_consejo" gorm:"column:id_consejo;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Rif           string    `json:"rif" gorm:"column:rif;type:varchar(12);uniqueIndex;not null"`
	IDComunidad   *uint     `json:"id_comunidad" gorm:"column:id_comunidad;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (ConsejoComunal) TableName() string { return "consejos_comunales" }
