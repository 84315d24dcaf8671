package actualizar_reserva

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// Request modelo de entrada de la actualización parcial. Un puntero nil
// significa "no tocar el campo".
type Request struct {
	ReservaID        int64
	FechaReserva     *time.Time
	SalonID          *int64
	UsuarioID        *int64
	TurnoID          *int64
	FotoCumpleaniero *string
	Tematica         *string
	ImporteTotal     *float64
}

// Response la reserva ya actualizada con su detalle
type Response struct {
	Reserva *domain.ReservaDetalle
}

// vacio indica que no vino ningún campo a modificar.
func (r *Request) vacio() bool {
	return r.FechaReserva == nil && r.SalonID == nil && r.UsuarioID == nil &&
		r.TurnoID == nil && r.FotoCumpleaniero == nil && r.Tematica == nil &&
		r.ImporteTotal == nil
}
