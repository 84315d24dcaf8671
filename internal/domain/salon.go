package domain

import "time"

// Salon un salón de cumpleaños alquilable. El importe es el precio base
// por reserva; las reservas guardan su propio snapshot de este valor.
type Salon struct {
	ID         int64
	Titulo     string
	Direccion  string
	Latitud    *float64
	Longitud   *float64
	Capacidad  int
	Importe    float64
	Activo     bool
	Creado     time.Time
	Modificado time.Time
}

// SalonUpdate campos opcionales para la actualización parcial de un salón.
// Un puntero nil significa "no tocar el campo".
type SalonUpdate struct {
	Titulo    *string
	Direccion *string
	Latitud   *float64
	Longitud  *float64
	Capacidad *int
	Importe   *float64
}

// Vacio indica que no se envió ningún campo para actualizar.
func (u SalonUpdate) Vacio() bool {
	return u.Titulo == nil && u.Direccion == nil && u.Latitud == nil &&
		u.Longitud == nil && u.Capacidad == nil && u.Importe == nil
}

// SalonEstadisticas métricas agregadas sobre los salones activos.
type SalonEstadisticas struct {
	Total             int
	CapacidadPromedio float64
	ImportePromedio   float64
	CapacidadMaxima   int
	ImporteMaximo     float64
}
