package reservaservicios

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ReservaServicioRepository interfaz del repositorio de asignaciones
type ReservaServicioRepository interface {
	Crear(ctx context.Context, rs *domain.ReservaServicio) (*domain.ReservaServicio, error)
	CrearMultiples(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error)
	ObtenerTodos(ctx context.Context) ([]*domain.ReservaServicioDetalle, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaServicioDetalle, error)
	ObtenerPorReserva(ctx context.Context, reservaID int64) ([]*domain.ReservaServicioDetalle, error)
	ObtenerPorServicio(ctx context.Context, servicioID int64) ([]*domain.ReservaServicioDetalle, error)
	Eliminar(ctx context.Context, id int64) error
	EliminarPorReserva(ctx context.Context, reservaID int64) (int64, error)
	ExisteAsignacion(ctx context.Context, reservaID, servicioID int64, excluirID *int64) (bool, error)
	TotalImportesPorReserva(ctx context.Context, reservaID int64) (float64, error)
	Estadisticas(ctx context.Context) (*domain.ReservaServicioEstadisticas, error)
}

// ReservaRepository lo que el servicio necesita saber de las reservas
type ReservaRepository interface {
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error)
	Existe(ctx context.Context, id int64) (bool, error)
	ActualizarImporteTotal(ctx context.Context, reservaID int64, importeTotal float64) error
}

// ServicioRepository lo que el servicio necesita saber del catálogo
type ServicioRepository interface {
	ObtenerPorID(ctx context.Context, id int64) (*domain.Servicio, error)
	Existe(ctx context.Context, id int64) (bool, error)
}

// TransactionManager interfaz para el manejo de transacciones
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
