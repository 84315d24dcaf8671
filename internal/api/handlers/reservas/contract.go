package reservas

import (
	"context"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	actualizarReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/actualizar_reserva"
	crearReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/crear_reserva"
)

// CrearReservaUseCase interfaz del caso de uso de alta
type CrearReservaUseCase interface {
	Execute(ctx context.Context, req *crearReserva.Request) (*crearReserva.Response, error)
}

// ActualizarReservaUseCase interfaz del caso de uso de actualización
type ActualizarReservaUseCase interface {
	Execute(ctx context.Context, req *actualizarReserva.Request) (*actualizarReserva.Response, error)
}

// ReservasService interfaz del servicio de lecturas de reservas
type ReservasService interface {
	ObtenerTodas(ctx context.Context) ([]*domain.ReservaDetalle, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error)
	ObtenerPorUsuario(ctx context.Context, usuarioID int64) ([]*domain.ReservaDetalle, error)
	ObtenerPorSalon(ctx context.Context, salonID int64) ([]*domain.ReservaDetalle, error)
	ObtenerPorFecha(ctx context.Context, fecha time.Time) ([]*domain.ReservaDetalle, error)
	ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]*domain.ReservaDetalle, error)
	ObtenerProximas(ctx context.Context, dias int) ([]*domain.ReservaDetalle, error)
	Eliminar(ctx context.Context, id int64) error
	VerificarDisponibilidad(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error)
	RecalcularImporteTotal(ctx context.Context, id int64) (float64, error)
	Estadisticas(ctx context.Context) (*domain.ReservaEstadisticas, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
