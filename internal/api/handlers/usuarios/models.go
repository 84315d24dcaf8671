package usuarios

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// CrearUsuarioRequest body del alta de usuario. La contraseña viaja en
// texto plano por TLS y se hashea en el servicio.
type CrearUsuarioRequest struct {
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	NombreUsuario string  `json:"nombre_usuario"`
	Contrasenia   string  `json:"contrasenia"`
	TipoUsuario   int     `json:"tipo_usuario"`
	Celular       *string `json:"celular,omitempty"`
	Foto          *string `json:"foto,omitempty"`
}

// ActualizarUsuarioRequest body de la actualización parcial. El nombre de
// usuario no se puede cambiar.
type ActualizarUsuarioRequest struct {
	Nombre      *string `json:"nombre,omitempty"`
	Apellido    *string `json:"apellido,omitempty"`
	Contrasenia *string `json:"contrasenia,omitempty"`
	TipoUsuario *int    `json:"tipo_usuario,omitempty"`
	Celular     *string `json:"celular,omitempty"`
	Foto        *string `json:"foto,omitempty"`
}

// UsuarioResponse representación JSON de un usuario. Nunca expone la
// contraseña, ni siquiera el hash.
type UsuarioResponse struct {
	ID            int64     `json:"usuario_id"`
	Nombre        string    `json:"nombre"`
	Apellido      string    `json:"apellido"`
	NombreUsuario string    `json:"nombre_usuario"`
	TipoUsuario   int       `json:"tipo_usuario"`
	Celular       *string   `json:"celular,omitempty"`
	Foto          *string   `json:"foto,omitempty"`
	Creado        time.Time `json:"creado"`
	Modificado    time.Time `json:"modificado"`
}

func (r *CrearUsuarioRequest) toDomain() *domain.Usuario {
	return &domain.Usuario{
		Nombre:        r.Nombre,
		Apellido:      r.Apellido,
		NombreUsuario: r.NombreUsuario,
		Contrasenia:   r.Contrasenia,
		TipoUsuario:   r.TipoUsuario,
		Celular:       r.Celular,
		Foto:          r.Foto,
	}
}

func (r *ActualizarUsuarioRequest) toDomain() domain.UsuarioUpdate {
	return domain.UsuarioUpdate{
		Nombre:      r.Nombre,
		Apellido:    r.Apellido,
		Contrasenia: r.Contrasenia,
		TipoUsuario: r.TipoUsuario,
		Celular:     r.Celular,
		Foto:        r.Foto,
	}
}

// ToResponse convierte un usuario de dominio a su representación JSON.
// Exportada porque el handler de auth la reusa para el login y el registro.
func ToResponse(u *domain.Usuario) *UsuarioResponse {
	return &UsuarioResponse{
		ID:            u.ID,
		Nombre:        u.Nombre,
		Apellido:      u.Apellido,
		NombreUsuario: u.NombreUsuario,
		TipoUsuario:   u.TipoUsuario,
		Celular:       u.Celular,
		Foto:          u.Foto,
		Creado:        u.Creado,
		Modificado:    u.Modificado,
	}
}

func toResponseList(usuarios []*domain.Usuario) []*UsuarioResponse {
	out := make([]*UsuarioResponse, 0, len(usuarios))
	for _, u := range usuarios {
		out = append(out, ToResponse(u))
	}
	return out
}
