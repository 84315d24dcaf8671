package usuario

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
	tabla = "usuarios"

	// Código de unique_violation de PostgreSQL.
	codigoUniqueViolation = "23505"
)

var columnas = []string{
	"usuario_id",
	"nombre",
	"apellido",
	"nombre_usuario",
	"contrasenia",
	"tipo_usuario",
	"celular",
	"foto",
	"activo",
	"creado",
	"modificado",
}

// Repository repositorio de usuarios sobre PostgreSQL, con baja lógica.
type Repository struct {
	db DBExecutor
}

// NewRepository crea el repositorio de usuarios.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ObtenerTodos devuelve los usuarios activos ordenados por apellido y nombre.
func (r *Repository) ObtenerTodos(ctx context.Context) ([]*domain.Usuario, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(squirrel.Eq{"activo": true}).
		OrderBy("apellido ASC", "nombre ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - armar select: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - ejecutar select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	usuarios := make([]*domain.Usuario, 0)
	for rows.Next() {
		u, err := scanUsuario(rows)
		if err != nil {
			return nil, err
		}
		usuarios = append(usuarios, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ObtenerTodos - rows: %v", ErrScanRow, err)
	}

	return usuarios, nil
}

// ObtenerPorID devuelve un usuario activo por su ID.
func (r *Repository) ObtenerPorID(ctx context.Context, id int64) (*domain.Usuario, error) {
	return r.obtenerPor(ctx, squirrel.Eq{"usuario_id": id, "activo": true}, "ObtenerPorID")
}

// ObtenerPorNombreUsuario devuelve un usuario activo por su email de login.
func (r *Repository) ObtenerPorNombreUsuario(ctx context.Context, nombreUsuario string) (*domain.Usuario, error) {
	return r.obtenerPor(ctx, squirrel.Eq{"nombre_usuario": nombreUsuario, "activo": true}, "ObtenerPorNombreUsuario")
}

func (r *Repository) obtenerPor(ctx context.Context, where squirrel.Eq, op string) (*domain.Usuario, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columnas...).
		From(tabla).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - armar select: %v", ErrBuildQuery, op, err)
	}

	var u domain.Usuario
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.NombreUsuario,
		&u.Contrasenia,
		&u.TipoUsuario,
		&u.Celular,
		&u.Foto,
		&u.Activo,
		&u.Creado,
		&u.Modificado,
	)
	if err == sql.ErrNoRows {
		return nil, ErrUsuarioNoEncontrado
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - escanear usuario: %v", ErrScanRow, op, err)
	}

	return &u, nil
}

// Crear inserta un usuario y completa ID y timestamps. Una violación del
// índice único de nombre_usuario se traduce a ErrNombreUsuarioDuplicado.
func (r *Repository) Crear(ctx context.Context, u *domain.Usuario) (*domain.Usuario, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tabla).
		Columns("nombre", "apellido", "nombre_usuario", "contrasenia", "tipo_usuario", "celular", "foto").
		Values(u.Nombre, u.Apellido, u.NombreUsuario, u.Contrasenia, u.TipoUsuario, u.Celular, u.Foto).
		Suffix("RETURNING usuario_id, activo, creado, modificado").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Crear - armar insert: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).
		Scan(&u.ID, &u.Activo, &u.Creado, &u.Modificado)
	if err != nil {
		if esUniqueViolation(err) {
			return nil, ErrNombreUsuarioDuplicado
		}
		return nil, fmt.Errorf("%w: Crear - ejecutar insert: %v", ErrExecQuery, err)
	}

	return u, nil
}

// Actualizar aplica solo los campos presentes del update. La contraseña
// llega ya hasheada desde el servicio.
func (r *Repository) Actualizar(ctx context.Context, id int64, cambios domain.UsuarioUpdate) error {
	executor := txmanager.Executor(ctx, r.db)

	builder := psqlbuilder.Update(tabla).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"usuario_id": id, "activo": true})

	if cambios.Nombre != nil {
		builder = builder.Set("nombre", *cambios.Nombre)
	}
	if cambios.Apellido != nil {
		builder = builder.Set("apellido", *cambios.Apellido)
	}
	if cambios.Contrasenia != nil {
		builder = builder.Set("contrasenia", *cambios.Contrasenia)
	}
	if cambios.TipoUsuario != nil {
		builder = builder.Set("tipo_usuario", *cambios.TipoUsuario)
	}
	if cambios.Celular != nil {
		builder = builder.Set("celular", nuloSiVacio(*cambios.Celular))
	}
	if cambios.Foto != nil {
		builder = builder.Set("foto", nuloSiVacio(*cambios.Foto))
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
		return ErrUsuarioNoEncontrado
	}

	return nil
}

// EliminarLogico marca el usuario como inactivo.
func (r *Repository) EliminarLogico(ctx context.Context, id int64) error {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tabla).
		Set("activo", false).
		Set("modificado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"usuario_id": id, "activo": true}).
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
		return ErrUsuarioNoEncontrado
	}

	return nil
}

// Existe indica si hay un usuario activo con ese ID.
func (r *Repository) Existe(ctx context.Context, id int64) (bool, error) {
	executor := txmanager.Executor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From(tabla).
		Where(squirrel.Eq{"usuario_id": id, "activo": true}).
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

func scanUsuario(rows *sql.Rows) (*domain.Usuario, error) {
	var u domain.Usuario
	err := rows.Scan(
		&u.ID,
		&u.Nombre,
		&u.Apellido,
		&u.NombreUsuario,
		&u.Contrasenia,
		&u.TipoUsuario,
		&u.Celular,
		&u.Foto,
		&u.Activo,
		&u.Creado,
		&u.Modificado,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: scanUsuario: %v", ErrScanRow, err)
	}
	return &u, nil
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
