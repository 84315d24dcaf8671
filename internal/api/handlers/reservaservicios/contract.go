package reservaservicios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ReservaServiciosService interfaz del servicio de asignaciones
type ReservaServiciosService interface {
	ObtenerTodos(ctx context.Context) ([]*domain.ReservaServicioDetalle, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaServicioDetalle, error)
	ObtenerPorReserva(ctx context.Context, reservaID int64) ([]*domain.ReservaServicioDetalle, error)
	ObtenerPorServicio(ctx context.Context, servicioID int64) ([]*domain.ReservaServicioDetalle, error)
	Asignar(ctx context.Context, reservaID int64, asignacion domain.ServicioAsignacion) (*domain.ReservaServicio, error)
	AsignarMultiples(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error)
	ReemplazarServicios(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error)
	Eliminar(ctx context.Context, id int64) error
	EliminarPorReserva(ctx context.Context, reservaID int64) (int64, error)
	TotalPorReserva(ctx context.Context, reservaID int64) (float64, error)
	Estadisticas(ctx context.Context) (*domain.ReservaServicioEstadisticas, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
