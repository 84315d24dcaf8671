package actualizar_reserva

import (
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// validateRequest valida la forma de la solicitud, sin tocar la base.
func validateRequest(req *Request) error {
	if req.ReservaID <= 0 {
		return fmt.Errorf("%w: reserva_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.vacio() {
		return fmt.Errorf("%w: no se envió ningún campo a modificar", ErrDatosInvalidos)
	}
	if req.SalonID != nil && *req.SalonID <= 0 {
		return fmt.Errorf("%w: salon_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.UsuarioID != nil && *req.UsuarioID <= 0 {
		return fmt.Errorf("%w: usuario_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.TurnoID != nil && *req.TurnoID <= 0 {
		return fmt.Errorf("%w: turno_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.FechaReserva != nil && req.FechaReserva.IsZero() {
		return fmt.Errorf("%w: fecha_reserva inválida", ErrDatosInvalidos)
	}
	if req.FotoCumpleaniero != nil && len(*req.FotoCumpleaniero) > domain.MaxLenFotoCumpleaniero {
		return fmt.Errorf("%w: foto_cumpleaniero supera los %d caracteres",
			ErrDatosInvalidos, domain.MaxLenFotoCumpleaniero)
	}
	if req.Tematica != nil && len(*req.Tematica) > domain.MaxLenTematica {
		return fmt.Errorf("%w: tematica supera los %d caracteres", ErrDatosInvalidos, domain.MaxLenTematica)
	}
	if req.ImporteTotal != nil && *req.ImporteTotal < 0 {
		return fmt.Errorf("%w: importe_total no puede ser negativo", ErrDatosInvalidos)
	}
	return nil
}

// validateFecha rechaza mover la reserva a una fecha calendario ya pasada.
func validateFecha(fecha, ahora time.Time) error {
	if domain.FechaEnPasado(fecha, ahora) {
		return ErrFechaPasada
	}
	return nil
}
