package reservaservicio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/psqlbuilder"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

const (
	tabla = "reservas_servicios"

	codigoUniqueViolation = "23505"
)

var columnasDetalle = []string{
	"rs.reserva_servicio_id",
	"rs.reserva_id",
	"rs.servicio_id",
	"rs.importe",
	"rs.creado",
	"rs.modificado",
	"sv.descripcion",
	"sv.importe",
	"r.fecha_reserva",
	"r.salon_id",
	"s.titulo",
	"r.usuario_id",
	"u.nombre || ' ' || u.apellido",
	"r.turno_id",
}

// Repository repositorio de asignaciones reserva-servicio sobre PostgreSQL.
// A diferencia de las demás tablas, acá la baja es física: quitar un
// servicio de una reserva borra el renglón.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de asignaciones.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) selectDetalle() squirrel.SelectBuilder {
	return psqlbuilder.Select(columnasDetalle...).
		From(tabla + " rs").
		Join("servicios sv ON sv.servicio_id = rs.servicio_id").
		Join("reservas r ON r.reserva_id = rs.reserva_id").
		Join("salones s ON s.salon_id = r.salon_id").
		Join("usuarios u ON u.usuario_id = r.usuario_id")
}

// Crear inserta una asignación y completa ID y timestamps. Una violación
// del índice único sobre (reserva_id, servicio_id) se traduce a
// ErrAsignacionDuplicada.
func (r *Repository) Crear(ctx context.Context, rs *domain.ReservaServicio) (*domain.ReservaServicio, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("reserva_id", "servicio_id", "importe").
		Values(rs.ReservaID, rs.ServicioID, rs.Importe).
		Suffix("RETURNING reserva_servicio_id, creado, modificado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - armar insert: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&rs.ID, &rs.Creado, &rs.Modificado)
	if err != nil {
		if esUniqueViolation(err) {
			return nil, ErrAsignacionDuplicada
		}
		return nil, fmt.Errorf("%w: Crear - ejecutar insert: %v", ErrExecQuery, err)
	}

	return rs, nil
}

// CrearMultiples inserta las asignaciones de a una, en orden. No abre
// transacción propia: el llamador decide el alcance transaccional vía el
// contexto.
func (r *Repository) CrearMultiples(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error) {
	creadas := make([]*domain.ReservaServicio, 0, len(asignaciones))
	for _, a := range asignaciones {
		rs := &domain.ReservaServicio{
			ReservaID:  reservaID,
			ServicioID: a.ServicioID,
			Importe:    a.Importe,
		}
		creada, err := r.Crear(ctx, rs)
		if err != nil {
			return nil, err
		}
		creadas = append(creadas, creada)
	}
	return creadas, nil
}

// ObtenerTodos devuelve el detalle de todas las asignaciones.
func (r *Repository) ObtenerTodos(ctx context.Context) ([]*domain.ReservaServicioDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		OrderBy("rs.reserva_id ASC", "sv.descripcion ASC"), "ObtenerTodos")
}

// ObtenerPorID devuelve el detalle de una asignación.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaServicioDetalle, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := r.selectDetalle().
		Where(squirrel.Eq{"rs.reserva_servicio_id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%w: ObtenerPorID - rows: %v", ErrScanRow, err)
		}
		return nil, ErrAsignacionNoEncontrada
	}

	return scanDetalle(rows)
}

// ObtenerPorReserva devuelve los servicios asignados a una reserva.
func (r *Repository) ObtenerPorReserva(ctx context.Context, reservaID int64) ([]*domain.ReservaServicioDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.Eq{"rs.reserva_id": reservaID}).
		OrderBy("sv.descripcion ASC"), "ObtenerPorReserva")
}

// ObtenerPorServicio devuelve las reservas que contrataron un servicio.
func (r *Repository) ObtenerPorServicio(ctx context.Context, servicioID int64) ([]*domain.ReservaServicioDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.Eq{"rs.servicio_id": servicioID}).
		OrderBy("r.fecha_reserva DESC"), "ObtenerPorServicio")
}

func (r *Repository) listarDetalle(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.ReservaServicioDetalle, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - armar select: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - ejecutar select: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	detalles := make([]*domain.ReservaServicioDetalle, 0)
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, err
		}
		detalles = append(detalles, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows: %v", ErrScanRow, op, err)
	}

	return detalles, nil
}

// Eliminar borra una asignación por su ID.
func (r *Repository) Eliminar(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tabla).
		Where(squirrel.Eq{"reserva_servicio_id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Eliminar - armar delete: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Eliminar - ejecutar delete: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Eliminar - rows affected: %v", ErrExecQuery, err)
	}
	if filas == 0 {
		return ErrAsignacionNoEncontrada
	}

	return nil
}

// EliminarPorReserva borra todas las asignaciones de una reserva y devuelve
// cuántas había. Que no haya ninguna no es error.
func (r *Repository) EliminarPorReserva(ctx context.Context, reservaID int64) (int64, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tabla).
		Where(squirrel.Eq{"reserva_id": reservaID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: EliminarPorReserva - armar delete: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: EliminarPorReserva - ejecutar delete: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: EliminarPorReserva - rows affected: %v", ErrExecQuery, err)
	}

	return filas, nil
}

// ExisteAsignacion indica si el servicio ya está asignado a la reserva.
// excluirID descarta una asignación propia al actualizar.
func (r *Repository) ExisteAsignacion(ctx context.Context, reservaID, servicioID int64, excluirID *int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"reserva_id": reservaID, "servicio_id": servicioID})
	if excluirID != nil {
		builder = builder.Where(squirrel.NotEq{"reserva_servicio_id": *excluirID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExisteAsignacion - armar select: %v", ErrBuildQuery, err)
	}

	var uno int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&uno)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExisteAsignacion - ejecutar select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// TotalImportesPorReserva suma los importes congelados de la reserva.
func (r *Repository) TotalImportesPorReserva(ctx context.Context, reservaID int64) (float64, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(importe), 0)").
		From(tabla).
		Where(squirrel.Eq{"reserva_id": reservaID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalImportesPorReserva - armar select: %v", ErrBuildQuery, err)
	}

	var total float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: TotalImportesPorReserva - ejecutar select: %v", ErrExecQuery, err)
	}

	return total, nil
}

// Estadisticas calcula las métricas agregadas de las asignaciones.
func (r *Repository) Estadisticas(ctx context.Context) (*domain.ReservaServicioEstadisticas, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(DISTINCT reserva_id)",
		"COUNT(DISTINCT servicio_id)",
		"COALESCE(AVG(importe), 0)",
		"COALESCE(SUM(importe), 0)",
		"COALESCE(MAX(importe), 0)",
		"COALESCE(MIN(importe), 0)",
	).
		From(tabla).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - armar select: %v", ErrBuildQuery, err)
	}

	var est domain.ReservaServicioEstadisticas
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&est.TotalAsignaciones,
		&est.ReservasConServicio,
		&est.ServiciosUtilizados,
		&est.ImportePromedio,
		&est.IngresosTotales,
		&est.ImporteMaximo,
		&est.ImporteMinimo,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - escanear totales: %v", ErrScanRow, err)
	}

	return &est, nil
}

func scanDetalle(rows *sql.Rows) (*domain.ReservaServicioDetalle, error) {
	var d domain.ReservaServicioDetalle
	err := rows.Scan(
		&d.ID,
		&d.ReservaID,
		&d.ServicioID,
		&d.Importe,
		&d.Creado,
		&d.Modificado,
		&d.ServicioDescripcion,
		&d.ServicioImporteBase,
		&d.FechaReserva,
		&d.SalonID,
		&d.SalonNombre,
		&d.UsuarioID,
		&d.UsuarioNombre,
		&d.TurnoID,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanDetalle: %v", ErrScanRow, err)
	}
	return &d, nil
}

func esUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && string(pqErr.Code) == codigoUniqueViolation
}
