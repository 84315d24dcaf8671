package servicios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ServiciosService interfaz del servicio del catálogo
type ServiciosService interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Servicio, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Servicio, error)
	Crear(ctx context.Context, servicio *domain.Servicio) (*domain.Servicio, error)
	Actualizar(ctx context.Context, id int64, cambios domain.ServicioUpdate) (*domain.Servicio, error)
	Eliminar(ctx context.Context, id int64) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
