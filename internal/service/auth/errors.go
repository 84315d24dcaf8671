package auth

import "errors"

var (
	// ErrCredencialesInvalidas se devuelve cuando el usuario o la contraseña
	// no coinciden. No distingue cuál de los dos falló.
	ErrCredencialesInvalidas = errors.New("usuario o contraseña incorrectos")

	// ErrTokenInvalido se devuelve cuando el token no se puede verificar
	ErrTokenInvalido = errors.New("token inválido o expirado")

	// ErrNombreUsuarioDuplicado se devuelve cuando el email ya está registrado
	ErrNombreUsuarioDuplicado = errors.New("el nombre de usuario ya está registrado")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de autenticación inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("auth: error interno")
)
