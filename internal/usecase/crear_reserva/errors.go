package crear_reserva

import "errors"

var (
	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de reserva inválidos")

	// ErrFechaPasada se devuelve cuando la fecha de la reserva ya pasó
	ErrFechaPasada = errors.New("la fecha de la reserva no puede estar en el pasado")

	// ErrSalonNoEncontrado se devuelve cuando el salón no existe o está inactivo
	ErrSalonNoEncontrado = errors.New("salón no encontrado")

	// ErrUsuarioNoEncontrado se devuelve cuando el usuario no existe o está inactivo
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

	// ErrTurnoNoEncontrado se devuelve cuando el turno no existe o está inactivo
	ErrTurnoNoEncontrado = errors.New("turno no encontrado")

	// ErrServicioNoEncontrado se devuelve cuando algún servicio del lote no existe
	ErrServicioNoEncontrado = errors.New("servicio no encontrado")

	// ErrNoDisponible se devuelve cuando el salón ya está reservado para esa
	// fecha y turno
	ErrNoDisponible = errors.New("el salón no está disponible para esa fecha y turno")

	// ErrInterno se devuelve ante errores internos
	ErrInterno = errors.New("crear_reserva: error interno")
)
