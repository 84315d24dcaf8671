package reservaservicios

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// AsignacionRequest un renglón a asignar: el servicio y el importe a
// congelar
type AsignacionRequest struct {
	ServicioID int64   `json:"servicio_id"`
	Importe    float64 `json:"importe"`
}

// LoteRequest body de las operaciones por lote
type LoteRequest struct {
	Servicios []AsignacionRequest `json:"servicios"`
}

// AsignacionResponse representación JSON de una asignación
type AsignacionResponse struct {
	ID         int64     `json:"reserva_servicio_id"`
	ReservaID  int64     `json:"reserva_id"`
	ServicioID int64     `json:"servicio_id"`
	Importe    float64   `json:"importe"`
	Creado     time.Time `json:"creado"`
	Modificado time.Time `json:"modificado"`
}

// DetalleResponse una asignación con los datos desnormalizados
type DetalleResponse struct {
	AsignacionResponse

	ServicioDescripcion string  `json:"servicio_descripcion"`
	ServicioImporteBase float64 `json:"servicio_importe_base"`
	FechaReserva        string  `json:"fecha_reserva"`
	SalonID             int64   `json:"salon_id"`
	SalonNombre         string  `json:"salon_nombre"`
	UsuarioID           int64   `json:"usuario_id"`
	UsuarioNombre       string  `json:"usuario_nombre"`
	TurnoID             int64   `json:"turno_id"`
}

// TotalResponse la suma de los importes congelados de una reserva
type TotalResponse struct {
	ReservaID int64   `json:"reserva_id"`
	Total     float64 `json:"total"`
}

// EstadisticasResponse métricas agregadas de las asignaciones
type EstadisticasResponse struct {
	TotalAsignaciones   int     `json:"total_asignaciones"`
	ReservasConServicio int     `json:"reservas_con_servicio"`
	ServiciosUtilizados int     `json:"servicios_utilizados"`
	ImportePromedio     float64 `json:"importe_promedio"`
	IngresosTotales     float64 `json:"ingresos_totales"`
	ImporteMaximo       float64 `json:"importe_maximo"`
	ImporteMinimo       float64 `json:"importe_minimo"`
}

func (r *LoteRequest) toDomain() []domain.ServicioAsignacion {
	out := make([]domain.ServicioAsignacion, 0, len(r.Servicios))
	for _, s := range r.Servicios {
		out = append(out, domain.ServicioAsignacion{
			ServicioID: s.ServicioID,
			Importe:    s.Importe,
		})
	}
	return out
}

func toResponse(rs *domain.ReservaServicio) *AsignacionResponse {
	return &AsignacionResponse{
		ID:         rs.ID,
		ReservaID:  rs.ReservaID,
		ServicioID: rs.ServicioID,
		Importe:    rs.Importe,
		Creado:     rs.Creado,
		Modificado: rs.Modificado,
	}
}

func toResponseList(asignaciones []*domain.ReservaServicio) []*AsignacionResponse {
	out := make([]*AsignacionResponse, 0, len(asignaciones))
	for _, rs := range asignaciones {
		out = append(out, toResponse(rs))
	}
	return out
}

func toDetalleResponse(d *domain.ReservaServicioDetalle) *DetalleResponse {
	return &DetalleResponse{
		AsignacionResponse: *toResponse(&d.ReservaServicio),

		ServicioDescripcion: d.ServicioDescripcion,
		ServicioImporteBase: d.ServicioImporteBase,
		FechaReserva:        d.FechaReserva.Format(domain.DateFormat),
		SalonID:             d.SalonID,
		SalonNombre:         d.SalonNombre,
		UsuarioID:           d.UsuarioID,
		UsuarioNombre:       d.UsuarioNombre,
		TurnoID:             d.TurnoID,
	}
}

func toDetalleResponseList(detalles []*domain.ReservaServicioDetalle) []*DetalleResponse {
	out := make([]*DetalleResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toDetalleResponse(d))
	}
	return out
}

func toEstadisticasResponse(e *domain.ReservaServicioEstadisticas) *EstadisticasResponse {
	return &EstadisticasResponse{
		TotalAsignaciones:   e.TotalAsignaciones,
		ReservasConServicio: e.ReservasConServicio,
		ServiciosUtilizados: e.ServiciosUtilizados,
		ImportePromedio:     e.ImportePromedio,
		IngresosTotales:     e.IngresosTotales,
		ImporteMaximo:       e.ImporteMaximo,
		ImporteMinimo:       e.ImporteMinimo,
	}
}
