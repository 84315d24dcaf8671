package reservaservicios

import "errors"

var (
	// ErrReservaNoEncontrada se devuelve cuando la reserva no existe o está inactiva
	ErrReservaNoEncontrada = errors.New("reserva no encontrada")

	// ErrServicioNoEncontrado se devuelve cuando el servicio no existe o está inactivo
	ErrServicioNoEncontrado = errors.New("servicio no encontrado")

	// ErrAsignacionNoEncontrada se devuelve cuando la asignación no existe
	ErrAsignacionNoEncontrada = errors.New("asignación no encontrada")

	// ErrServicioYaAsignado se devuelve cuando el servicio ya está asignado a la reserva
	ErrServicioYaAsignado = errors.New("el servicio ya está asignado a la reserva")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de asignación inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("reservaservicios: error interno")
)
