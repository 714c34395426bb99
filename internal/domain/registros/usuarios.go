package registros

import "time"

// Nombres de roles sembrados al arranque. La autorización es plana:
// un endpoint puede exigir que el rol del usuario sea exactamente admin.
const (
	RolAdmin    = "admin"
	RolOperador = "operador"
)

// Rol representa el papel de un usuario en el sistema.
type Rol struct {
	IDRol         uint      `json:"id_rol" gorm:"column:id_rol;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(50);uniqueIndex;not null"`
	Descripcion   string    `json:"descripcion" gorm:"column:descripcion;type:varchar(200)"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Rol) TableName() string { return "roles" }

// Usuario es una cuenta del sistema. El hash de la contraseña nunca se
// serializa hacia el cliente.
type Usuario struct {
	IDUsuario     uint      `json:"id_usuario" gorm:"column:id_usuario;primaryKey;autoIncrement"`
	Nombre        string    `json:"nombre" gorm:"column:nombre;type:varchar(150);not null"`
	Email         string    `json:"email" gorm:"column:email;type:varchar(254);uniqueIndex;not null"`
	Password      string    `json:"-" gorm:"column:password;type:varchar(100);not null"`
	IDRol         uint      `json:"id_rol" gorm:"column:id_rol;not null;index"`
	Rol           *Rol      `json:"rol,omitempty" gorm:"foreignKey:IDRol;references:IDRol"`
	Activo        bool      `json:"estado" gorm:"column:estado;not null;default:true"`
	CreadoEn      time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
	ActualizadoEn time.Time `json:"actualizado_en" gorm:"column:actualizado_en;autoUpdateTime"`
}

func (Usuario) TableName() string { return "usuarios" }

// EsAdmin verifica si el usuario tiene el rol admin.
func (u *Usuario) EsAdmin() bool {
	return u.Rol != nil && u.Rol.Nombre == RolAdmin
}

// Sesion es una sesión autenticada respaldada en base de datos.
// El token es un identificador opaco (uuid) entregado en una cookie
// HttpOnly; UltimoAcceso se refresca en cada petición autenticada para
// aplicar el vencimiento por inactividad.
type Sesion struct {
	Token        string    `json:"-" gorm:"column:token;type:varchar(36);primaryKey"`
	IDUsuario    uint      `json:"id_usuario" gorm:"column:id_usuario;not null;index"`
	UltimoAcceso time.Time `json:"ultimo_acceso" gorm:"column:ultimo_acceso;not null"`
	CreadoEn     time.Time `json:"creado_en" gorm:"column:creado_en;autoCreateTime"`
}

func (Sesion) TableName() string { return "sesiones" }
