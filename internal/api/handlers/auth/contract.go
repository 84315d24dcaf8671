package auth

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// AuthService interfaz del servicio de autenticación
type AuthService interface {
	Login(ctx context.Context, nombreUsuario, contrasenia string) (*domain.Usuario, string, error)
	GenerarToken(usuario *domain.Usuario) (string, error)
}

// UsuariosService lo que el registro necesita del servicio de usuarios
type UsuariosService interface {
	Crear(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
