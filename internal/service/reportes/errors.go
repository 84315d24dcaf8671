package reportes

import "errors"

// ErrInterno se devuelve ante errores internos del generador de reportes
var ErrInterno = errors.New("reportes: error interno")
