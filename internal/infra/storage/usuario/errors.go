package usuario

import "errors"

var (
	// ErrUsuarioNoEncontrado se devuelve cuando el usuario no existe o está inactivo.
	ErrUsuarioNoEncontrado = errors.New("usuario.repository: usuario no encontrado")

	// ErrNombreUsuarioDuplicado se devuelve cuando el email ya está registrado.
	ErrNombreUsuarioDuplicado = errors.New("usuario.repository: nombre de usuario duplicado")

	// ErrBuildQuery se devuelve ante un error armando la consulta SQL.
	ErrBuildQuery = errors.New("usuario.repository: error al armar la consulta")

	// ErrExecQuery se devuelve ante un error ejecutando la consulta SQL.
	ErrExecQuery = errors.New("usuario.repository: error al ejecutar la consulta")

	// ErrScanRow se devuelve ante un error escaneando el resultado.
	ErrScanRow = errors.New("usuario.repository: error al escanear la fila")
)
