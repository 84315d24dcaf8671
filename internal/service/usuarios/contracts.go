package usuarios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// UsuarioRepository interfaz del repositorio de usuarios
type UsuarioRepository interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Usuario, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Usuario, error)
	ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error)
	Crear(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error)
	Actualizar(ctx context.Context, id int64, cambios domain.UsuarioUpdate) error
	EliminarLogico(ctx context.Context, id int64) error
	Existe(ctx context.Context, id int64) (bool, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
