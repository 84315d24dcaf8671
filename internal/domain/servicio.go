package domain

import "time"

// Servicio un adicional contratable para una reserva (animación, catering,
// etc.). La descripción es única entre los servicios activos.
type Servicio struct {
	ID          int64
	Descripcion string
	Importe     float64
	Activo      bool
	Creado      time.Time
	Modificado  time.Time
}

// ServicioUpdate campos opcionales para la actualización parcial de un servicio.
type ServicioUpdate struct {
	Descripcion *string
	Importe     *float64
}

// Vacio indica que no se envió ningún campo para actualizar.
func (u ServicioUpdate) Vacio() bool {
	return u.Descripcion == nil && u.Importe == nil
}

// ImporteServicioValido chequea los límites de precio de un renglón de
// reserva-servicio. Un renglón puede ir en cero (servicio bonificado).
func ImporteServicioValido(importe float64) bool {
	return importe >= 0 && importe <= ImporteMaximoServicio
}

// ImporteCatalogoValido chequea los límites de precio de un servicio del
// catálogo, que a diferencia de un renglón no admite cero.
func ImporteCatalogoValido(importe float64) bool {
	return importe >= ImporteMinimo && importe <= ImporteMaximoServicio
}
