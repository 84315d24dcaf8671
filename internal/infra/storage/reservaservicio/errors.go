package reservaservicio

import "errors"

var (
	// ErrAsignacionNoEncontrada no existe una asignación con ese ID.
	ErrAsignacionNoEncontrada = errors.New("reservaservicio.repository: asignación no encontrada")
	// ErrAsignacionDuplicada el servicio ya está asignado a la reserva.
	ErrAsignacionDuplicada = errors.New("reservaservicio.repository: el servicio ya está asignado a la reserva")

	ErrBuildQuery = errors.New("reservaservicio.repository: error armando la consulta")
	ErrExecQuery  = errors.New("reservaservicio.repository: error ejecutando la consulta")
	ErrScanRow    = errors.New("reservaservicio.repository: error escaneando la fila")
)
