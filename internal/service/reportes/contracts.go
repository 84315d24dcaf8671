package reportes

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ReservaRepository lo que el generador de reportes necesita de las reservas
type ReservaRepository interface {
	ObtenerTodas(ctx context.Context) ([]*domain.ReservaDetalle, error)
	Estadisticas(ctx context.Context) (*domain.ReservaEstadisticas, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
