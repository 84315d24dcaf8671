package domain

// Formatos de fecha y hora usados en toda la API.
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)

// Límites de negocio para importes y campos de texto.
const (
	ImporteMinimo         = 0.01
	ImporteMaximoServicio = 999999.99

	MaxLenFotoCumpleaniero = 255
	MaxLenTematica         = 255
	MaxLenDescripcion      = 255

	TipoUsuarioMinimo = 0
	TipoUsuarioMaximo = 255
)

// Límites para la consulta de reservas próximas.
const (
	DiasAdelanteDefault = 7
	DiasAdelanteMaximo  = 365
)
