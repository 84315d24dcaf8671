package salon

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/psqlbuilder"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/txmanager"
)

const tabla = "salones"

var columnas = []string{
	"salon_id",
	"titulo",
	"direccion",
	"latitud",
	"longitud",
	"capacidad",
	"importe",
	"activo",
	"creado",
	"modificado",
}

// Repository repositorio de salones sobre PostgreSQL. La baja es lógica
// (activo=false): los salones nunca se borran físicamente porque las
// reservas históricas los referencian.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de salones.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ObtenerTodos devuelve los salones activos ordenados por título.
func (r *Repository) ObtenerTodos(ctx context.Context) ([]*domain.Salon, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		OrderBy("titulo ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	salones := make([]*domain.Salon, 0)
	for rows.Next() {
		s, err := scanSalon(rows)
		if err != nil {
			return nil, err
		}
		salones = append(salones, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - rows: %v", ErrScanRow, err)
	}

	return salones, nil
}

// ObtenerPorID devuelve un salón activo por su ID.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.Salon, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"salon_id": id, "activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - armar select: %v", ErrBuildQuery, err)
	}

	var s domain.Salon
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.Titulo,
		&s.Direccion,
		&s.Latitud,
		&s.Longitud,
		&s.Capacidad,
		&s.Importe,
		&s.Activo,
		&s.Creado,
		&s.Modificado,
	)
	if err == sql.ErrNoRows {
		return nil, ErrSalonNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerPorID - escanear salón: %v", ErrScanRow, err)
	}

	return &s, nil
}

// Crear inserta un salón y completa ID y timestamps.
func (r *Repository) Crear(ctx context.Context, s *domain.Salon) (*domain.Salon, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("titulo", "direccion", "latitud", "longitud", "capacidad", "importe").
		Values(s.Titulo, s.Direccion, s.Latitud, s.Longitud, s.Capacidad, s.Importe).
		Suffix("RETURNING salon_id, activo, creado, modificado").
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
func (r *Repository) Actualizar(ctx context.Context, id int64, cambios domain.SalonUpdate) error {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Update(tabla).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"salon_id": id, "activo": true})

	if cambios.Titulo != nil {
		builder = builder.Set("titulo", *cambios.Titulo)
	}
	if cambios.Direccion != nil {
		builder = builder.Set("direccion", *cambios.Direccion)
	}
	if cambios.Latitud != nil {
		builder = builder.Set("latitud", *cambios.Latitud)
	}
	if cambios.Longitud != nil {
		builder = builder.Set("longitud", *cambios.Longitud)
	}
	if cambios.Capacidad != nil {
		builder = builder.Set("capacidad", *cambios.Capacidad)
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
		return ErrSalonNoEncontrado
	}

	return nil
}

// EliminarLogico marca el salón como inactivo.
func (r *Repository) EliminarLogico(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"salon_id": id, "activo": true}).
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
		return ErrSalonNoEncontrado
	}

	return nil
}

// Existe indica si hay un salón activo con ese ID.
func (r *Repository) Existe(ctx context.Context, id int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"salon_id": id, "activo": true}).
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

// Estadisticas calcula las métricas agregadas de los salones activos.
func (r *Repository) Estadisticas(ctx context.Context) (*domain.SalonEstadisticas, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COALESCE(AVG(capacidad), 0)",
		"COALESCE(AVG(importe), 0)",
		"COALESCE(MAX(capacidad), 0)",
		"COALESCE(MAX(importe), 0)",
	).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - armar select: %v", ErrBuildQuery, err)
	}

	var est domain.SalonEstadisticas
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&est.Total,
		&est.CapacidadPromedio,
		&est.ImportePromedio,
		&est.CapacidadMaxima,
		&est.ImporteMaximo,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Estadisticas - escanear totales: %v", ErrScanRow, err)
	}

	return &est, nil
}

func scanSalon(rows *sql.Rows) (*domain.Salon, error) {
	var s domain.Salon
	err := rows.Scan(
		&s.ID,
		&s.Titulo,
		&s.Direccion,
		&s.Latitud,
		&s.Longitud,
		&s.Capacidad,
		&s.Importe,
		&s.Activo,
		&s.Creado,
		&s.Modificado,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanSalon: %v", ErrScanRow, err)
	}
	return &s, nil
}
