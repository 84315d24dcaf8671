package auth

import (
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers/usuarios"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// LoginRequest body del login
type LoginRequest struct {
	NombreUsuario string `json:"nombre_usuario"`
	Contrasenia   string `json:"contrasenia"`
}

// RegistroRequest body del registro de un usuario nuevo
type RegistroRequest struct {
	Nombre        string  `json:"nombre"`
	Apellido      string  `json:"apellido"`
	NombreUsuario string  `json:"nombre_usuario"`
	Contrasenia   string  `json:"contrasenia"`
	Celular       *string `json:"celular,omitempty"`
}

// SesionResponse usuario autenticado más su token de sesión
type SesionResponse struct {
	Usuario *usuarios.UsuarioResponse `json:"usuario"`
	Token   string                    `json:"token"`
}

func (r *RegistroRequest) toDomain() *domain.Usuario {
	return &domain.Usuario{
		Nombre:        r.Nombre,
		Apellido:      r.Apellido,
		NombreUsuario: r.NombreUsuario,
		Contrasenia:   r.Contrasenia,
		TipoUsuario:   domain.TipoUsuarioMinimo,
		Celular:       r.Celular,
	}
}

func toSesionResponse(u *domain.Usuario, token string) *SesionResponse {
	return &SesionResponse{
		Usuario: usuarios.ToResponse(u),
		Token:   token,
	}
}
