package domain

import "time"

// Reserva la reserva de un salón para una fecha y un turno, hecha por un
// usuario. ImporteSalon es el snapshot del precio del salón al momento de
// reservar; ImporteTotal = ImporteSalon + suma de los servicios asignados.
//
// Invariante central: entre las reservas activas, la terna
// (SalonID, FechaReserva, TurnoID) es única.
type Reserva struct {
	ID               int64
	FechaReserva     time.Time
	SalonID          int64
	UsuarioID        int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     float64
	ImporteTotal     float64
	Activo           bool
	Creado           time.Time
	Modificado       time.Time
}

// ReservaDetalle una reserva con los datos de salón, usuario y turno
// desnormalizados para presentación.
type ReservaDetalle struct {
	Reserva

	SalonNombre    string
	SalonDireccion string
	SalonCapacidad int

	UsuarioNombre   string
	UsuarioApellido string
	UsuarioEmail    string
	UsuarioCelular  *string

	TurnoOrden     int
	TurnoHoraDesde string
	TurnoHoraHasta string
}

// ReservaUpdate campos opcionales para la actualización parcial de una
// reserva. Un puntero nil significa "no tocar el campo"; para los campos de
// texto opcionales, un string vacío se persiste como NULL.
type ReservaUpdate struct {
	FechaReserva     *time.Time
	SalonID          *int64
	UsuarioID        *int64
	TurnoID          *int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteSalon     *float64
	ImporteTotal     *float64
}

// Vacio indica que no se envió ningún campo para actualizar.
func (u ReservaUpdate) Vacio() bool {
	return u.FechaReserva == nil && u.SalonID == nil && u.UsuarioID == nil &&
		u.TurnoID == nil && u.FotoCumpleaniero == nil && u.Tematica == nil &&
		u.ImporteSalon == nil && u.ImporteTotal == nil
}

// CambiaTerna indica si la actualización toca la terna (salón, fecha, turno)
// y obliga a re-verificar disponibilidad.
func (u ReservaUpdate) CambiaTerna() bool {
	return u.SalonID != nil || u.FechaReserva != nil || u.TurnoID != nil
}

// FechaEnPasado compara solo la fecha calendario, ignorando la hora.
func FechaEnPasado(fecha, hoy time.Time) bool {
	f := time.Date(fecha.Year(), fecha.Month(), fecha.Day(), 0, 0, 0, 0, fecha.Location())
	h := time.Date(hoy.Year(), hoy.Month(), hoy.Day(), 0, 0, 0, 0, hoy.Location())
	return f.Before(h)
}

// ReservaEstadisticas métricas agregadas sobre las reservas activas.
type ReservaEstadisticas struct {
	TotalReservas   int
	ReservasFuturas int
	ReservasPasadas int
	ImportePromedio float64
	IngresosTotales float64
	PrimeraReserva  *time.Time
	UltimaReserva   *time.Time
	PorMes          []ReservasPorMes
	SalonesTop      []SalonPopular
}

// ReservasPorMes cantidad e ingresos de un mes calendario.
type ReservasPorMes struct {
	Anio     int
	Mes      int
	Cantidad int
	Ingresos float64
}

// SalonPopular ranking de salones por cantidad de reservas.
type SalonPopular struct {
	SalonID         int64
	Titulo          string
	TotalReservas   int
	ImportePromedio float64
}
