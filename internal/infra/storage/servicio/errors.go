package servicio

import "errors"

var (
	// ErrServicioNoEncontrado se devuelve cuando el servicio no existe o está inactivo.
	ErrServicioNoEncontrado = errors.New("servicio.repository: servicio no encontrado")

	// ErrDescripcionDuplicada se devuelve cuando ya hay un servicio activo con esa descripción.
	ErrDescripcionDuplicada = errors.New("servicio.repository: descripción duplicada")

	// ErrBuildQuery se devuelve ante un error armando la consulta SQL.
	ErrBuildQuery = errors.New("servicio.repository: error al armar la consulta")

	// ErrExecQuery se devuelve ante un error ejecutando la consulta SQL.
	ErrExecQuery = errors.New("servicio.repository: error al ejecutar la consulta")

	// ErrScanRow se devuelve ante un error escaneando el resultado.
	ErrScanRow = errors.New("servicio.repository: error al escanear la fila")
)
