package turnos

import "errors"

var (
	// ErrTurnoNoEncontrado se devuelve cuando el turno no existe o está inactivo
	ErrTurnoNoEncontrado = errors.New("turno no encontrado")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de turno inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("turnos: error interno")
)
