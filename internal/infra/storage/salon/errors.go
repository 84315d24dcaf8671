package salon

import "errors"

var (
	// ErrSalonNoEncontrado se devuelve cuando el salón no existe o está inactivo.
	ErrSalonNoEncontrado = errors.New("salon.repository: salón no encontrado")

	// ErrBuildQuery se devuelve ante un error armando la consulta SQL.
	ErrBuildQuery = errors.New("salon.repository: error al armar la consulta")

	// ErrExecQuery se devuelve ante un error ejecutando la consulta SQL.
	ErrExecQuery = errors.New("salon.repository: error al ejecutar la consulta")

	// ErrScanRow se devuelve ante un error escaneando el resultado.
	ErrScanRow = errors.New("salon.repository: error al escanear la fila")
)
