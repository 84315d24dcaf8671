package domain

import "time"

// ReservaServicio el vínculo entre una reserva y un servicio contratado.
// Importe es el precio del servicio al momento de asignarlo: no cambia si
// después cambia el precio del servicio (precio histórico).
//
// Invariante: el par (ReservaID, ServicioID) es único.
type ReservaServicio struct {
	ID         int64
	ReservaID  int64
	ServicioID int64
	Importe    float64
	Creado     time.Time
	Modificado time.Time
}

// ReservaServicioDetalle un renglón con los datos del servicio y de la
// reserva desnormalizados para presentación.
type ReservaServicioDetalle struct {
	ReservaServicio

	ServicioDescripcion string
	ServicioImporteBase float64

	FechaReserva  time.Time
	SalonID       int64
	SalonNombre   string
	UsuarioID     int64
	UsuarioNombre string
	TurnoID       int64
}

// ServicioAsignacion un renglón pedido para asignar a una reserva:
// el servicio y el importe a congelar.
type ServicioAsignacion struct {
	ServicioID int64
	Importe    float64
}

// ReservaServicioEstadisticas métricas agregadas sobre las asignaciones.
type ReservaServicioEstadisticas struct {
	TotalAsignaciones   int
	ReservasConServicio int
	ServiciosUtilizados int
	ImportePromedio     float64
	IngresosTotales     float64
	ImporteMaximo       float64
	ImporteMinimo       float64
}
