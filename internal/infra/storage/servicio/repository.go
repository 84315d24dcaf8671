package servicio

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/psqlbuilder"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

const tabla = "servicios"

var columnas = []string{
	"servicio_id",
	"descripcion",
	"importe",
	"activo",
	"creado",
	"modificado",
}

// Repository repositorio de servicios sobre PostgreSQL, con baja lógica.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de servicios.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ObtenerTodos devuelve los servicios activos ordenados por descripción.
func (r *Repository) ObtenerTodos(ctx context.Context) ([]*domain.Servicio, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		OrderBy("descripcion ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	servicios := make([]*domain.Servicio, 0)
	for rows.Next() {
		var s domain.Servicio
		if err := rows.Scan(&s.ID, &s.Descripcion, &s.Importe, &s.Activo, &s.Creado, &s.Modificado); err != nil {
			return nil, fmt.Errorf("%w: ObtenerTodos - escanear servicio: %v", ErrScanRow, err)
		}
		servicios = append(servicios, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - rows: %v", ErrScanRow, err)
	}

	return servicios, nil
}

// ObtenerPorID devuelve un servicio activo por su ID.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.Servicio, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"servicio_id": id, "activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - armar select: %v", ErrBuildQuery, err)
	}

	var s domain.Servicio
	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Descripcion, &s.Importe, &s.Activo, &s.Creado, &s.Modificado)
	if err == sql.ErrNoRows {
		return nil, ErrServicioNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - escanear servicio: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Crear inserta un servicio y completa ID y timestamps.
func (r *Repository) Crear(ctx context.Context, s *domain.Servicio) (*domain.Servicio, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("descripcion", "importe").
		Values(s.Descripcion, s.Importe).
		Suffix("RETURNING servicio_id, activo, creado, modificado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - armar insert: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&s.ID, &s.Activo, &s.Creado, &s.Modificado)
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - ejecutar insert: %v", ErrExecQuery, err)
	}

	return s, nil
}

// Actualizar aplica solo los campos presentes del update.
func (r *Repository) Actualizar(ctx context.Context, id int64, cambios domain.ServicioUpdate) error {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Update(tabla).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"servicio_id": id, "activo": true})

	if cambios.Descripcion != nil {
		builder = builder.Set("descripcion", *cambios.Descripcion)
	}
	if cambios.Importe != nil {
		builder = builder.Set("importe", *cambios.Importe)
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
		return ErrServicioNoEncontrado
	}

	return nil
}

// EliminarLogico marca el servicio como inactivo.
func (r *Repository) EliminarLogico(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"servicio_id": id, "activo": true}).
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
		return ErrServicioNoEncontrado
	}

	return nil
}

// Existe indica si hay un servicio activo con ese ID.
func (r *Repository) Existe(ctx context.Context, id int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"servicio_id": id, "activo": true}).
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

// ExisteDescripcion indica si otro servicio activo ya usa esa descripción.
// excluirID, si viene, saca de la comparación al propio servicio (updates).
func (r *Repository) ExisteDescripcion(ctx context.Context, descripcion string, excluirID *int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"descripcion": descripcion, "activo": true})

	if excluirID != nil {
		builder = builder.Where(squirrel.NotEq{"servicio_id": *excluirID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return false, fmt.Errorf("%w: ExisteDescripcion - armar select: %v", ErrBuildQuery, err)
	}

	var uno int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&uno)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExisteDescripcion - ejecutar select: %v", ErrExecQuery, err)
	}

	return true, nil
}
