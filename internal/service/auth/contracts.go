package auth

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// UsuarioRepository lo que el servicio de autenticación necesita de los
// usuarios
type UsuarioRepository interface {
	ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error)
	Crear(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
