package turnos

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// TurnosService interfaz del servicio de turnos
type TurnosService interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Turno, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Turno, error)
	Crear(ctx context.Context, turno *domain.Turno) (*domain.Turno, error)
	Actualizar(ctx context.Context, id int64, cambios domain.TurnoUpdate) (*domain.Turno, error)
	Eliminar(ctx context.Context, id int64) error
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
