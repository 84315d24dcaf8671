package domain

import "time"

// Turno una franja horaria reservable (ej: 14:00-18:00). El orden se usa
// para presentar los turnos en la grilla.
//
// TODO: validar hora_desde < hora_hasta y el no solapamiento entre turnos;
// hoy ningún chequeo lo impide y dos turnos pueden pisarse.
type Turno struct {
	ID         int64
	Orden      int
	HoraDesde  string // HH:MM
	HoraHasta  string // HH:MM
	Activo     bool
	Creado     time.Time
	Modificado time.Time
}

// TurnoUpdate campos opcionales para la actualización parcial de un turno.
type TurnoUpdate struct {
	Orden     *int
	HoraDesde *string
	HoraHasta *string
}

// Vacio indica que no se envió ningún campo para actualizar.
func (u TurnoUpdate) Vacio() bool {
	return u.Orden == nil && u.HoraDesde == nil && u.HoraHasta == nil
}
