package servicios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ServicioRepository interfaz del repositorio de servicios
type ServicioRepository interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Servicio, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Servicio, error)
	Crear(ctx context.Context, servicio *domain.Servicio) (*domain.Servicio, error)
	Actualizar(ctx context.Context, id int64, cambios domain.ServicioUpdate) error
	EliminarLogico(ctx context.Context, id int64) error
	Existe(ctx context.Context, id int64) (bool, error)
	ExisteDescripcion(ctx context.Context, descripcion string, excluirID *int64) (bool, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
