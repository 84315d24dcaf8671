package turno

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/psqlbuilder"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

const tabla = "turnos"

var columnas = []string{
	"turno_id",
	"orden",
	"hora_desde",
	"hora_hasta",
	"activo",
	"creado",
	"modificado",
}

// Repository repositorio de turnos sobre PostgreSQL, con baja lógica.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de turnos.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ObtenerTodos devuelve los turnos activos ordenados por orden.
func (r *Repository) ObtenerTodos(ctx context.Context) ([]*domain.Turno, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		OrderBy("orden ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	turnos := make([]*domain.Turno, 0)
	for rows.Next() {
		var t domain.Turno
		if err := rows.Scan(&t.ID, &t.Orden, &t.HoraDesde, &t.HoraHasta, &t.Activo, &t.Creado, &t.Modificado); err != nil {
			return nil, fmt.Errorf("%w: ObtenerTodos - escanear turno: %v", ErrScanRow, err)
		}
		turnos = append(turnos, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - rows: %v", ErrScanRow, err)
	}

	return turnos, nil
}

// ObtenerPorID devuelve un turno activo por su ID.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.Turno, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"turno_id": id, "activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - armar select: %v", ErrBuildQuery, err)
	}

	var t domain.Turno
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.Orden, &t.HoraDesde, &t.HoraHasta, &t.Activo, &t.Creado, &t.Modificado)
	if err == sql.ErrNoRows {
		return nil, ErrTurnoNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - escanear turno: %v", ErrScanRow, err)
	}

	return &t, nil
}

// Crear inserta un turno y completa ID y timestamps.
func (r *Repository) Crear(ctx context.Context, t *domain.Turno) (*domain.Turno, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("orden", "hora_desde", "hora_hasta").
		Values(t.Orden, t.HoraDesde, t.HoraHasta).
		Suffix("RETURNING turno_id, activo, creado, modificado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - armar insert: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.Activo, &t.Creado, &t.Modificado)
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - ejecutar insert: %v", ErrExecQuery, err)
	}

	return t, nil
}

// Actualizar aplica solo los campos presentes del update.
func (r *Repository) Actualizar(ctx context.Context, id int64, cambios domain.TurnoUpdate) error {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Update(tabla).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"turno_id": id, "activo": true})

	if cambios.Orden != nil {
		builder = builder.Set("orden", *cambios.Orden)
	}
	if cambios.HoraDesde != nil {
		builder = builder.Set("hora_desde", *cambios.HoraDesde)
	}
	if cambios.HoraHasta != nil {
		builder = builder.Set("hora_hasta", *cambios.HoraHasta)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: Actualizar - armar update: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Actualizar - ejecutar update: %v", ErrExecQuery, err)
	}

	filas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Actualizar - rows affected: %v", ErrExecQuery, err)
	}
	if filas == 0 {
		return ErrTurnoNoEncontrado
	}

	return nil
}

// EliminarLogico marca el turno como inactivo.
func (r *Repository) EliminarLogico(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"turno_id": id, "activo": true}).
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
		return ErrTurnoNoEncontrado
	}

	return nil
}

// Existe indica si hay un turno activo con ese ID.
func (r *Repository) Existe(ctx context.Context, id int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"turno_id": id, "activo": true}).
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
