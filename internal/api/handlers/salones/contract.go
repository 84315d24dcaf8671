package salones

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// SalonesService interfaz del servicio de salones
type SalonesService interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Salon, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Salon, error)
	Crear(ctx context.Context, salon *domain.Salon) (*domain.Salon, error)
	Actualizar(ctx context.Context, id int64, cambios domain.SalonUpdate) (*domain.Salon, error)
	Eliminar(ctx context.Context, id int64) error
	Estadisticas(ctx context.Context) (*domain.SalonEstadisticas, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
