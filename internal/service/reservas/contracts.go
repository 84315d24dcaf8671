package reservas

import (
	"context"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ReservaRepository interfaz del repositorio de reservas
type ReservaRepository interface {
	ObtenerTodas(ctx context.Context) ([]*domain.ReservaDetalle, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID int64) ([]*domain.ReservaDetalle, error)
	ObtenerPorSalon(ctx context.Context, salonID int64) ([]*domain.ReservaDetalle, error)
	ObtenerPorFecha(ctx context.Context, fecha time.Time) ([]*domain.ReservaDetalle, error)
	ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]*domain.ReservaDetalle, error)
	ObtenerProximas(ctx context.Context, dias int) ([]*domain.ReservaDetalle, error)
	EliminarLogico(ctx context.Context, id int64) error
	EstaDisponible(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error)
	TotalServicios(ctx context.Context, reservaID int64) (float64, error)
	ActualizarImporteTotal(ctx context.Context, reservaID int64, importeTotal float64) error
	Estadisticas(ctx context.Context) (*domain.ReservaEstadisticas, error)
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
