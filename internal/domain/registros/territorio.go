// Package registros contiene los modelos de datos de referencia
// electoral/territorial. Todos los registros comparten la misma forma:
// clave primaria secuencial asignada por el servidor, columna booleana
// `estado` como bandera de borrado lógico (true = activo) y marcas de
// tiempo de auditoría. "Eliminar" nunca borra la fila, solo apaga la
// bandera; los listados filtran por bandera encendida.
package registros

import "time"

// Estado representa una entidad federal (nivel superior de la jerarquía
// territorial: Estado → Municipio → Parroquia → Comunidad → Ubicación).
type Estado struct {
	IDEstado      uint      `json:"id_estado" gorm:"column:id_estado;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(100);uniqueIndex;not null"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Estado) TableName() string { return "estados" }

// Municipio pertenece a un Estado.
type Municipio struct {
	IDMunicipio   uint      `json:"id_municipio" gorm:"column:id_municipio;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
	IDEstado      uint      `json:"id_estado" gorm:"column:id_estado;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Municipio) TableName() string { return "municipios" }

// Parroquia pertenece a un Municipio.
type Parroquia struct {
	IDParroquia   uint      `json:"id_parroquia" gorm:"column:id_parroquia;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(100);not null"`
	IDMunicipio   uint      `json:"id_municipio" gorm:"column:id_municipio;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Parroquia) TableName() string { return "parroquias" }

// Comunidad pertenece a una Parroquia.
type Comunidad struct {
	IDComunidad   uint      `json:"id_comunidad" gorm:"column:id_comunidad;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	IDParroquia   uint      `json:"id_parroquia" gorm:"column:id_parroquia;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Comunidad) TableName() string { return "comunidades" }

// Ubicacion es un punto físico dentro de una Comunidad donde puede
// funcionar un centro de votación.
type Ubicacion struct {
	IDUbicacion   uint      `json:"id_ubicacion" gorm:"column:id_ubicacion;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Direccion     string    `json:"direccion" gorm:"column:direccion;type:varchar(300);not null"`
	IDComunidad   uint      `json:"id_comunidad" gorm:"column:id_comunidad;not null;index"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Ubicacion) TableName() string { return "ubicaciones" }
