package reserva

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/psqlbuilder"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

const (
	tabla = "reservas"

	codigoUniqueViolation = "23505"
)

// columnasDetalle columnas de la reserva más los datos desnormalizados de
// salón, usuario y turno que se devuelven en las lecturas.
var columnasDetalle = []string{
	"r.reserva_id",
	"r.fecha_reserva",
	"r.salon_id",
	"r.usuario_id",
	"r.turno_id",
	"r.foto_cumpleaniero",
	"r.tematica",
	"r.importe_salon",
	"r.importe_total",
	"r.activo",
	"r.creado",
	"r.modificado",
	"s.titulo",
	"s.direccion",
	"s.capacidad",
	"u.nombre",
	"u.apellido",
	"u.nombre_usuario",
	"u.celular",
	"t.orden",
	"to_char(t.hora_desde, 'HH24:MI')",
	"to_char(t.hora_hasta, 'HH24:MI')",
}

// Repository repositorio de reservas sobre PostgreSQL. Las lecturas unen
// salones, usuarios y turnos para devolver el detalle completo.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de reservas.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

func (r *Repository) selectDetalle() squirrel.SelectBuilder {
	return psqlbuilder.Select(columnasDetalle...).
		From(tabla + " r").
		Join("salones s ON s.salon_id = r.salon_id").
		Join("usuarios u ON u.usuario_id = r.usuario_id").
		Join("turnos t ON t.turno_id = r.turno_id").
		Where(squirrel.Eq{"r.activo": true})
}

// Crear inserta la reserva y completa ID y timestamps. Una violación del
// índice único sobre (salon_id, fecha_reserva, turno_id) se traduce a
// ErrReservaDuplicada.
func (r *Repository) Crear(ctx context.Context, reserva *domain.Reserva) (*domain.Reserva, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("fecha_reserva", "salon_id", "usuario_id", "turno_id",
			"foto_cumpleaniero", "tematica", "importe_salon", "importe_total").
		Values(reserva.FechaReserva, reserva.SalonID, reserva.UsuarioID, reserva.TurnoID,
			reserva.FotoCumpleaniero, reserva.Tematica, reserva.ImporteSalon, reserva.ImporteTotal).
		Suffix("RETURNING reserva_id, activo, creado, modificado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - armar insert: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&reserva.ID, &reserva.Activo, &reserva.Creado, &reserva.Modificado)
	if err != nil {
		if esUniqueViolation(err) {
			return nil, ErrReservaDuplicada
		}
		return nil, fmt.Errorf("%w: Crear - ejecutar insert: %v", ErrExecQuery, err)
	}

	return reserva, nil
}

// ObtenerPorID devuelve el detalle de una reserva activa.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := r.selectDetalle().
		Where(squirrel.Eq{"r.reserva_id": id}).
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
		return nil, ErrReservaNoEncontrada
	}

	return scanDetalle(rows)
}

// ObtenerTodas devuelve el detalle de todas las reservas activas, de la más
// próxima a la más lejana.
func (r *Repository) ObtenerTodas(ctx context.Context) ([]*domain.ReservaDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		OrderBy("r.fecha_reserva DESC", "t.orden ASC"), "ObtenerTodas")
}

// ObtenerPorUsuario devuelve las reservas activas de un usuario.
func (r *Repository) ObtenerPorUsuario(ctx context.Context, usuarioID int64) ([]*domain.ReservaDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.Eq{"r.usuario_id": usuarioID}).
		OrderBy("r.fecha_reserva DESC", "t.orden ASC"), "ObtenerPorUsuario")
}

// ObtenerPorSalon devuelve las reservas activas de un salón.
func (r *Repository) ObtenerPorSalon(ctx context.Context, salonID int64) ([]*domain.ReservaDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.Eq{"r.salon_id": salonID}).
		OrderBy("r.fecha_reserva DESC", "t.orden ASC"), "ObtenerPorSalon")
}

// ObtenerPorFecha devuelve las reservas activas de una fecha puntual,
// ordenadas por turno.
func (r *Repository) ObtenerPorFecha(ctx context.Context, fecha time.Time) ([]*domain.ReservaDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.Eq{"r.fecha_reserva": fecha}).
		OrderBy("t.orden ASC"), "ObtenerPorFecha")
}

// ObtenerPorRango devuelve las reservas activas con fecha entre desde y
// hasta, ambos inclusive.
func (r *Repository) ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]*domain.ReservaDetalle, error) {
	return r.listarDetalle(ctx, r.selectDetalle().
		Where(squirrel.GtOrEq{"r.fecha_reserva": desde}).
		Where(squirrel.LtOrEq{"r.fecha_reserva": hasta}).
		OrderBy("r.fecha_reserva ASC", "t.orden ASC"), "ObtenerPorRango")
}

// ObtenerProximas devuelve las reservas activas desde hoy hasta dias días
// adelante inclusive.
func (r *Repository) ObtenerProximas(ctx context.Context, dias int) ([]*domain.ReservaDetalle, error) {
	hoy := time.Now()
	return r.ObtenerPorRango(ctx, hoy, hoy.AddDate(0, 0, dias))
}

func (r *Repository) listarDetalle(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.ReservaDetalle, error) {
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

	reservas := make([]*domain.ReservaDetalle, 0)
	for rows.Next() {
		d, err := scanDetalle(rows)
		if err != nil {
			return nil, err
		}
		reservas = append(reservas, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows: %v", ErrScanRow, op, err)
	}

	return reservas, nil
}

// Actualizar aplica solo los campos presentes del update. Si el cambio de
// terna viola el índice único devuelve ErrReservaDuplicada.
func (r *Repository) Actualizar(ctx context.Context, id int64, cambios domain.ReservaUpdate) error {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Update(tabla).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": id, "activo": true})

	if cambios.FechaReserva != nil {
		builder = builder.Set("fecha_reserva", *cambios.FechaReserva)
	}
	if cambios.SalonID != nil {
		builder = builder.Set("salon_id", *cambios.SalonID)
	}
	if cambios.UsuarioID != nil {
		builder = builder.Set("usuario_id", *cambios.UsuarioID)
	}
	if cambios.TurnoID != nil {
		builder = builder.Set("turno_id", *cambios.TurnoID)
	}
	if cambios.FotoCumpleaniero != nil {
		builder = builder.Set("foto_cumpleaniero", nuloSiVacio(*cambios.FotoCumpleaniero))
	}
	if cambios.Tematica != nil {
		builder = builder.Set("tematica", nuloSiVacio(*cambios.Tematica))
	}
	if cambios.ImporteSalon != nil {
		builder = builder.Set("importe_salon", *cambios.ImporteSalon)
	}
	if cambios.ImporteTotal != nil {
		builder = builder.Set("importe_total", *cambios.ImporteTotal)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Actualizar - armar update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if esUniqueViolation(err) {
			return ErrReservaDuplicada
		}
		return fmt.Errorf("%w: Actualizar - ejecutar update: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Actualizar - rows affected: %v", ErrExecQuery, err)
	}
	if filas == 0 {
		return ErrReservaNoEncontrada
	}

	return nil
}

// EliminarLogico marca la reserva como inactiva, lo que libera la terna
// (salón, fecha, turno) para nuevas reservas.
func (r *Repository) EliminarLogico(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": id, "activo": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: EliminarLogico - armar update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: EliminarLogico - ejecutar update: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: EliminarLogico - rows affected: %v", ErrExecQuery, err)
	}
	if filas == 0 {
		return ErrReservaNoEncontrada
	}

	return nil
}

// Existe indica si hay una reserva activa con ese ID.
func (r *Repository) Existe(ctx context.Context, id int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"reserva_id": id, "activo": true}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: Existe - armar select: %v", ErrBuildQuery, err)
	}

	var uno int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&uno)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: Existe - ejecutar select: %v", ErrExecQuery, err)
	}

	return true, nil
}

// EstaDisponible indica si la terna (salón, fecha, turno) está libre entre
// las reservas activas. excluirID descarta una reserva propia, para que una
// actualización no choque consigo misma. Dentro de una transacción toma
// FOR UPDATE sobre la fila en conflicto.
func (r *Repository) EstaDisponible(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Select("reserva_id").
		From(tabla).
		Where(squirrel.Eq{
			"salon_id":      salonID,
			"fecha_reserva": fecha,
			"turno_id":      turnoID,
			"activo":        true,
		})
	if excluirID != nil {
		builder = builder.Where(squirrel.NotEq{"reserva_id": *excluirID})
	}
	if txmanager.InTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: EstaDisponible - armar select: %v", ErrBuildQuery, err)
	}

	var reservaID int64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&reservaID)
	if err == sql.ErrNoRows {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: EstaDisponible - ejecutar select: %v", ErrExecQuery, err)
	}

	return false, nil
}

// TotalServicios devuelve la suma de los importes de los servicios asignados
// a la reserva, 0 si no tiene ninguno.
func (r *Repository) TotalServicios(ctx context.Context, reservaID int64) (float64, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(importe), 0)").
		From("reservas_servicios").
		Where(squirrel.Eq{"reserva_id": reservaID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: TotalServicios - armar select: %v", ErrBuildQuery, err)
	}

	var total float64
	err = executor.QueryRowContext(ctx, query, args...).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("%w: TotalServicios - ejecutar select: %v", ErrExecQuery, err)
	}

	return total, nil
}

// ActualizarImporteTotal fija el importe total de la reserva. Se usa tras
// agregar, reemplazar o quitar servicios.
func (r *Repository) ActualizarImporteTotal(ctx context.Context, reservaID int64, importeTotal float64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("importe_total", importeTotal).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"reserva_id": reservaID, "activo": true}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ActualizarImporteTotal - armar update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ActualizarImporteTotal - ejecutar update: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ActualizarImporteTotal - rows affected: %v", ErrExecQuery, err)
	}
	if filas == 0 {
		return ErrReservaNoEncontrada
	}

	return nil
}

// Estadisticas calcula las métricas agregadas de las reservas activas.
func (r *Repository) Estadisticas(ctx context.Context) (*domain.ReservaEstadisticas, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE fecha_reserva >= CURRENT_DATE)",
		"COUNT(*) FILTER (WHERE fecha_reserva < CURRENT_DATE)",
		"COALESCE(AVG(importe_total), 0)",
		"COALESCE(SUM(importe_total), 0)",
		"MIN(fecha_reserva)",
		"MAX(fecha_reserva)",
	).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - armar select: %v", ErrBuildQuery, err)
	}

	var est domain.ReservaEstadisticas
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&est.TotalReservas,
		&est.ReservasFuturas,
		&est.ReservasPasadas,
		&est.ImportePromedio,
		&est.IngresosTotales,
		&est.PrimeraReserva,
		&est.UltimaReserva,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - escanear totales: %v", ErrScanRow, err)
	}

	est.PorMes, err = r.estadisticasPorMes(ctx, executor)
	if err != nil {
		return nil, err
	}

	est.SalonesTop, err = r.salonesTop(ctx, executor)
	if err != nil {
		return nil, err
	}

	return &est, nil
}

func (r *Repository) estadisticasPorMes(ctx context.Context, executor DBExecutor) ([]domain.ReservasPorMes, error) {
	query, args, err := psqlbuilder.Select(
		"EXTRACT(YEAR FROM fecha_reserva)::int",
		"EXTRACT(MONTH FROM fecha_reserva)::int",
		"COUNT(*)",
		"COALESCE(SUM(importe_total), 0)",
	).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		GroupBy("1", "2").
		OrderBy("1 DESC", "2 DESC").
		Limit(12).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: estadisticasPorMes - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: estadisticasPorMes - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	meses := make([]domain.ReservasPorMes, 0)
	for rows.Next() {
		var m domain.ReservasPorMes
		if err := rows.Scan(&m.Anio, &m.Mes, &m.Cantidad, &m.Ingresos); err != nil {
			return nil, fmt.Errorf("%w: estadisticasPorMes - escanear fila: %v", ErrScanRow, err)
		}
		meses = append(meses, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: estadisticasPorMes - rows: %v", ErrScanRow, err)
	}

	return meses, nil
}

func (r *Repository) salonesTop(ctx context.Context, executor DBExecutor) ([]domain.SalonPopular, error) {
	query, args, err := psqlbuilder.Select(
		"r.salon_id",
		"s.titulo",
		"COUNT(*)",
		"COALESCE(AVG(r.importe_total), 0)",
	).
		From(tabla+" r").
		Join("salones s ON s.salon_id = r.salon_id").
		Where(squirrel.Eq{"r.activo": true}).
		GroupBy("r.salon_id", "s.titulo").
		OrderBy("COUNT(*) DESC").
		Limit(5).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: salonesTop - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: salonesTop - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salones := make([]domain.SalonPopular, 0)
	for rows.Next() {
		var s domain.SalonPopular
		if err := rows.Scan(&s.SalonID, &s.Titulo, &s.TotalReservas, &s.ImportePromedio); err != nil {
			return nil, fmt.Errorf("%w: salonesTop - escanear fila: %v", ErrScanRow, err)
		}
		salones = append(salones, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: salonesTop - rows: %v", ErrScanRow, err)
	}

	return salones, nil
}

func scanDetalle(rows *sql.Rows) (*domain.ReservaDetalle, error) {
	var d domain.ReservaDetalle
	err := rows.Scan(
		&d.ID,
		&d.FechaReserva,
		&d.SalonID,
		&d.UsuarioID,
		&d.TurnoID,
		&d.FotoCumpleaniero,
		&d.Tematica,
		&d.ImporteSalon,
		&d.ImporteTotal,
		&d.Activo,
		&d.Creado,
		&d.Modificado,
		&d.SalonNombre,
		&d.SalonDireccion,
		&d.SalonCapacidad,
		&d.UsuarioNombre,
		&d.UsuarioApellido,
		&d.UsuarioEmail,
		&d.UsuarioCelular,
		&d.TurnoOrden,
		&d.TurnoHoraDesde,
		&d.TurnoHoraHasta,
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

func nuloSiVacio(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
