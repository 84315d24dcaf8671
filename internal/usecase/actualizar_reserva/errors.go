package actualizar_reserva

import "errors"

var (
	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de reserva inválidos")

	// ErrFechaPasada se devuelve cuando la nueva fecha ya pasó
	ErrFechaPasada = errors.New("la fecha de la reserva no puede estar en el pasado")

	// ErrReservaNoEncontrada se devuelve cuando la reserva no existe o está inactiva
	ErrReservaNoEncontrada = errors.New("reserva no encontrada")

	// ErrSalonNoEncontrado se devuelve cuando el nuevo salón no existe
	ErrSalonNoEncontrado = errors.New("salón no encontrado")

	// ErrUsuarioNoEncontrado se devuelve cuando el nuevo usuario no existe
	ErrUsuarioNoEncontrado = errors.New("usuario no encontrado")

	// ErrTurnoNoEncontrado se devuelve cuando el nuevo turno no existe
	ErrTurnoNoEncontrado = errors.New("turno no encontrado")

	// ErrNoDisponible se devuelve cuando la nueva terna (salón, fecha, turno)
	// ya está tomada por otra reserva
	ErrNoDisponible = errors.New("el salón no está disponible para esa fecha y turno")

	// ErrInterno se devuelve ante errores internos
	ErrInterno = errors.New("actualizar_reserva: error interno")
)
