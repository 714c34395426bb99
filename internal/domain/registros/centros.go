package registros

import "time"

// Personal representa a una persona (coordinador, operador de centro,
// miembro de mesa) que puede ser asignada como responsable de un centro.
type Personal struct {
	IDPersonal    uint      `json:"id_personal" gorm:"column:id_personal;primaryKey;autoIncrement"`
	Nombres       string    `json:"nombres" gorm:"column:nombres;type:varchar(100);not null"`
	Apellidos     string    `json:"apellidos" gorm:"column:apellidos;type:varchar(100);not null"`
	Cedula        string    `json:"cedula" gorm:"column:cedula;type:varchar(12);uniqueIndex;not null"`
	Telefono      string    `json:"telefono" gorm:"column:telefono;type:varchar(20)"`
	Cargo         string    `json:"cargo" gorm:"column:cargo;type:varchar(100)"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Personal) TableName() string { return "personal" }

// CentroVotacion es un centro electoral ubicado en una Ubicación.
// El responsable (IDPersonal) es opcional.
type CentroVotacion struct {
	IDCentro      uint      `json:"id_centro" gorm:"column:id_centro;primaryKey;autoIncrement"`
	Codigo        string    `json:"codigo" gorm:"column:codigo;type:varchar(20);uniqueIndex;not null"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	IDUbicacion   uint      `json:"id_ubicacion" gorm:"column:id_ubicacion;not null;index"`
	IDPersonal    *uint     `json:"id_personal" gorm:"column:id_personal;index"`
	Mesas         int       `json:"mesas" gorm:"column:mesas;not null;default:1"`
	Electores     int       `json:"electores" gorm:"column:electores;not null;default:0"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (CentroVotacion) TableName() string { return "centros_votacion" }
