package usuarios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// UsuariosService interfaz del servicio de usuarios
type UsuariosService interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Usuario, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Usuario, error)
	Crear(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	Actualizar(ctx context.Context, id int64, cambios domain.UsuarioUpdate) (*domain.Usuario, error)
	Eliminar(ctx context.Context, id int64) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
