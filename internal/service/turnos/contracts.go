package turnos

import (
	"context"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// TurnoRepository interfaz del repositorio de turnos
type TurnoRepository interface {
	ObtenerTodos(ctx context.Context) ([]*domain.Turno, error)
	ObtenerPorID(ctx context.Context, id int64) (*domain.Turno, error)
	Crear(ctx context.Context, turno *domain.Turno) (*domain.Turno, error)
	Actualizar(ctx context.Context, id int64, cambios domain.TurnoUpdate) error
	EliminarLogico(ctx context.Context, id int64) error
	Existe(ctx context.Context, id int64) (bool, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
