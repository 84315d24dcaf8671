package crear_reserva

import (
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// validateRequest valida la forma de la solicitud, sin tocar la base.
func validateRequest(req *Request) error {
	if req.SalonID <= 0 {
		return fmt.Errorf("%w: salon_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.UsuarioID <= 0 {
		return fmt.Errorf("%w: usuario_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.TurnoID <= 0 {
		return fmt.Errorf("%w: turno_id debe ser positivo", ErrDatosInvalidos)
	}
	if req.FechaReserva.IsZero() {
		return fmt.Errorf("%w: fecha_reserva es obligatoria", ErrDatosInvalidos)
	}
	if req.FotoCumpleaniero != nil && len(*req.FotoCumpleaniero) > domain.MaxLenFotoCumpleaniero {
		return fmt.Errorf("%w: foto_cumpleaniero supera los %d caracteres",
			ErrDatosInvalidos, domain.MaxLenFotoCumpleaniero)
	}
	if req.Tematica != nil && len(*req.Tematica) > domain.MaxLenTematica {
		return fmt.Errorf("%w: tematica supera los %d caracteres", ErrDatosInvalidos, domain.MaxLenTematica)
	}

	vistos := make(map[int64]bool, len(req.Servicios))
	for _, s := range req.Servicios {
		if s.ServicioID <= 0 {
			return fmt.Errorf("%w: servicio_id debe ser positivo", ErrDatosInvalidos)
		}
		if vistos[s.ServicioID] {
			return fmt.Errorf("%w: el servicio %d está repetido en el lote", ErrDatosInvalidos, s.ServicioID)
		}
		vistos[s.ServicioID] = true
		if s.Importe != nil && !domain.ImporteServicioValido(*s.Importe) {
			return fmt.Errorf("%w: el importe del servicio %d debe estar entre 0 y %.2f",
				ErrDatosInvalidos, s.ServicioID, domain.ImporteMaximoServicio)
		}
	}

	return nil
}

// validateFecha rechaza reservas para fechas calendario ya pasadas.
func validateFecha(fecha, ahora time.Time) error {
	if domain.FechaEnPasado(fecha, ahora) {
		return ErrFechaPasada
	}
	return nil
}
