package turno

import "errors"

var (
	// ErrTurnoNoEncontrado se devuelve cuando el turno no existe o está inactivo.
	ErrTurnoNoEncontrado = errors.New("turno.repository: turno no encontrado")

	// ErrBuildQuery se devuelve ante un error armando la consulta SQL.
	ErrBuildQuery = errors.New("turno.repository: error al armar la consulta")

	// ErrExecQuery se devuelve ante un error ejecutando la consulta SQL.
	ErrExecQuery = errors.New("turno.repository: error al ejecutar la consulta")

	// ErrScanRow se devuelve ante un error escaneando el resultado.
	ErrScanRow = errors.New("turno.repository: error al escanear la fila")
)
