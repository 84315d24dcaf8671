package reservas

import "errors"

var (
	// ErrReservaNoEncontrada se devuelve cuando la reserva no existe o está inactiva
	ErrReservaNoEncontrada = errors.New("reserva no encontrada")

	// ErrDatosInvalidos se devuelve cuando los parámetros no pasan la validación
	ErrDatosInvalidos = errors.New("datos de reserva inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("reservas: error interno")
)
