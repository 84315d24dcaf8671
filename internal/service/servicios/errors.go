package servicios

import "errors"

var (
	// ErrServicioNoEncontrado se devuelve cuando el servicio no existe o está inactivo
	ErrServicioNoEncontrado = errors.New("servicio no encontrado")

	// ErrDescripcionDuplicada se devuelve cuando ya existe un servicio con esa descripción
	ErrDescripcionDuplicada = errors.New("ya existe un servicio con esa descripción")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de servicio inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("servicios: error interno")
)
