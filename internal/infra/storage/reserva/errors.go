package reserva

import "errors"

var (
	// ErrReservaNoEncontrada no existe una reserva activa con ese ID.
	ErrReservaNoEncontrada = errors.New("reserva.repository: reserva no encontrada")
	// ErrReservaDuplicada ya hay una reserva activa para ese salón,
	// fecha y turno.
	ErrReservaDuplicada = errors.New("reserva.repository: ya existe una reserva para ese salón, fecha y turno")

	ErrBuildQuery = errors.New("reserva.repository: error armando la consulta")
	ErrExecQuery  = errors.New("reserva.repository: error ejecutando la consulta")
	ErrScanRow    = errors.New("reserva.repository: error escaneando la fila")
)
