package crear_reserva

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// ServicioSolicitado un servicio pedido en el alta. Si Importe es nil se
// congela el precio actual del catálogo.
type ServicioSolicitado struct {
	ServicioID int64
	Importe    *float64
}

// Request modelo de entrada del alta de reserva
type Request struct {
	FechaReserva     time.Time
	SalonID          int64
	UsuarioID        int64
	TurnoID          int64
	FotoCumpleaniero *string
	Tematica         *string
	Servicios        []ServicioSolicitado
}

// Response la reserva creada con su detalle y los servicios asignados
type Response struct {
	Reserva   *domain.ReservaDetalle
	Servicios []*domain.ReservaServicio
}
