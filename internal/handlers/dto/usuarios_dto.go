package dto

import (
	"time"

	"github.com/sisvot/sisvot-backend/internal/domain/registros"
)

// CrearRolRequest es el cuerpo para POST /api/roles
type CrearRolRequest struct {
	Nombre      string `json:"nombre" binding:"required,min=3,max=50"`
	Descripcion string `json:"descripcion" binding:"omitempty,max=200"`
}

func (r CrearRolRequest) Modelo() *registros.Rol {
	return &registros.Rol{Nombre: r.Nombre, Descripcion: r.Descripcion, Activo: true}
}

// ActualizarRolRequest es el cuerpo para PUT /api/roles/:id
type ActualizarRolRequest struct {
	Nombre      *string `json:"nombre" binding:"omitempty,min=3,max=50"`
	Descripcion *string `json:"descripcion" binding:"omitempty,max=200"`
}

func (r ActualizarRolRequest) Campos() map[string]any {
	campos := map[string]any{}
	if r.Nombre != nil {
		campos["nombre"] = *r.Nombre
	}
	if r.Descripcion != nil {
		campos["descripcion"] = *r.Descripcion
	}
	return campos
}

// CrearUsuarioRequest es el cuerpo para POST /api/users (solo admin).
// La contraseña llega en claro y se hashea en el servicio; nunca se
// persiste ni se devuelve tal cual.
type CrearUsuarioRequest struct {
	Nombre   string `json:"nombre" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	IDRol    uint   `json:"id_rol" binding:"required"`
}

// ActualizarUsuarioRequest es el cuerpo para PUT /api/users/:id
type ActualizarUsuarioRequest struct {
	Nombre   *string `json:"nombre" binding:"omitempty,min=2,max=150"`
	Email    *string `json:"email" binding:"omitempty,email,max=254"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	IDRol    *uint   `json:"id_rol" binding:"omitempty"`
}

// RegistroRequest es el cuerpo para POST /api/register. No hay
// auto-login: la cuenta queda creada y el usuario debe iniciar sesión.
type RegistroRequest struct {
	Nombre   string `json:"nombre" binding:"required,min=2,max=150"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest es el cuerpo para POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UsuarioResponse representa la respuesta de un usuario
type UsuarioResponse struct {
	IDUsuario uint      `json:"id_usuario"`
	Nombre    string    `json:"nombre"`
	Email     string    `json:"email"`
	IDRol     uint      `json:"id_rol"`
	Rol       string    `json:"rol,omitempty"`
	Activo    bool      `json:"estado"`
	CreadoEn  time.Time `json:"creado_en"`
}

// ToUsuarioResponse convierte un registro Usuario a UsuarioResponse
func ToUsuarioResponse(u *registros.Usuario) UsuarioResponse {
	resp := UsuarioResponse{
		IDUsuario: u.IDUsuario,
		Nombre:    u.Nombre,
		Email:     u.Email,
		IDRol:     u.IDRol,
		Activo:    u.Activo,
		CreadoEn:  u.CreadoEn,
	}
	if u.Rol != nil {
		resp.Rol = u.Rol.Nombre
	}
	return resp
}

// ToUsuarioResponses convierte una lista de registros Usuario
func ToUsuarioResponses(usuarios []registros.Usuario) []UsuarioResponse {
	responses := make([]UsuarioResponse, len(usuarios))
	for i := range usuarios {
		responses[i] = ToUsuarioResponse(&usuarios[i])
	}
	return responses
}
