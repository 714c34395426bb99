package registros

import "time"

// Evento es una jornada electoral o de movilización asociada a un
// centro de votación. Las fechas se manejan como texto ISO (AAAA-MM-DD),
// igual que las envía el frontend; no se valida que el fin sea posterior
// al inicio.
type Evento struct {
	IDEvento      uint      `json:"id_evento" gorm:"column:id_evento;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Descripcion   string    `json:"descripcion" gorm:"column:descripcion;type:varchar(500)"`
	FechaInicio   string    `json:"fecha_inicio" gorm:"column:fecha_inicio;type:varchar(10);not null"`
	FechaFin      string    `json:"fecha_fin" gorm:"column:fecha_fin;type:varchar(10);not null"`
	IDCentro      uint      `json:"id_centro" gorm:"column:id_centro;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Evento) TableName() string { return "eventos" }

// Afluencia es un corte horario de concurrencia durante un evento.
type Afluencia struct {
	IDAfluencia   uint      `json:"id_afluencia" gorm:"column:id_afluencia;primaryKey;autoIncrement"`
	IDEvento      uint      `json:"id_evento" gorm:"column:id_evento;not null;index"`
	Hora          string    `json:"hora" gorm:"column:hora;type:varchar(5);not null"`
	Cantidad      int       `json:"cantidad" gorm:"column:cantidad;not null"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Afluencia) TableName() string { return "afluencia" }
