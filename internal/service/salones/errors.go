package salones

import "errors"

var (
	// ErrSalonNoEncontrado se devuelve cuando el salón no existe o está inactivo
	ErrSalonNoEncontrado = errors.New("salón no encontrado")

	// ErrDatosInvalidos se devuelve cuando los datos de entrada no pasan la validación
	ErrDatosInvalidos = errors.New("datos de salón inválidos")

	// ErrInterno se devuelve ante errores internos del servicio
	ErrInterno = errors.New("salones: error interno")
)
