package actualizar_reserva

import (
	"context"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ReservaRepository interfaz del repositorio de reservas
type ReservaRepository interface {
	ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error)
	Actualizar(ctx context.Context, id int64, cambios domain.ReservaUpdate) error
	EstaDisponible(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error)
	TotalServicios(ctx context.Context, reservaID int64) (float64, error)
}

// SalonRepository interfaz del repositorio de salones
type SalonRepository interface {
	ObtenerPorID(ctx context.Context, id int64) (*domain.Salon, error)
}

// UsuarioRepository interfaz del repositorio de usuarios
type UsuarioRepository interface {
	Existe(ctx context.Context, id int64) (bool, error)
}

// TurnoRepository interfaz del repositorio de turnos
type TurnoRepository interface {
	Existe(ctx context.Context, id int64) (bool, error)
}

// TransactionManager interfaz para el manejo de transacciones
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider interfaz para obtener la hora actual (para testear)
type TimeProvider interface {
	Now() time.Time
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider provider de tiempo real para producción
type RealTimeProvider struct{}

// Now devuelve la hora actual
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
