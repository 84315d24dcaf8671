package usuarios

import "errors"

var (
	// ErrUsuarioNoEncontrado se devuelve cuando el usuario no existe o está inactivo
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

	// ErrNombreUsuarioDuplicado se devuelve cuando el email ya está registrado
	ErrNombreUsuarioDuplicado = errors.New("el nombre de usuario ya está registrado")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de usuario inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("usuarios: error interno")
)
