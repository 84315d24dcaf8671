package reservas

import (
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	actualizarReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/actualizar_reserva"
	crearReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/crear_reserva"
)

// ServicioSolicitadoRequest un renglón de servicio en el alta. importe es
// opcional; si no viene se congela el precio actual del catálogo.
type ServicioSolicitadoRequest struct {
	ServicioID int64    `json:"servicio_id"`
	Importe    *float64 `json:"importe,omitempty"`
}

// CrearReservaRequest body del alta de reserva
type CrearReservaRequest struct {
	FechaReserva     string                      `json:"fecha_reserva"`
	SalonID          int64                       `json:"salon_id"`
	UsuarioID        int64                       `json:"usuario_id"`
	TurnoID          int64                       `json:"turno_id"`
	FotoCumpleaniero *string                     `json:"foto_cumpleaniero,omitempty"`
	Tematica         *string                     `json:"tematica,omitempty"`
	Servicios        []ServicioSolicitadoRequest `json:"servicios,omitempty"`
}

// ActualizarReservaRequest body de la actualización parcial
type ActualizarReservaRequest struct {
	FechaReserva     *string  `json:"fecha_reserva,omitempty"`
	SalonID          *int64   `json:"salon_id,omitempty"`
	UsuarioID        *int64   `json:"usuario_id,omitempty"`
	TurnoID          *int64   `json:"turno_id,omitempty"`
	FotoCumpleaniero *string  `json:"foto_cumpleaniero,omitempty"`
	Tematica         *string  `json:"tematica,omitempty"`
	ImporteTotal     *float64 `json:"importe_total,omitempty"`
}

// ReservaResponse representación JSON del detalle de una reserva
type ReservaResponse struct {
	ID               int64     `json:"reserva_id"`
	FechaReserva     string    `json:"fecha_reserva"`
	SalonID          int64     `json:"salon_id"`
	UsuarioID        int64     `json:"usuario_id"`
	TurnoID          int64     `json:"turno_id"`
	FotoCumpleaniero *string   `json:"foto_cumpleaniero,omitempty"`
	Tematica         *string   `json:"tematica,omitempty"`
	ImporteSalon     float64   `json:"importe_salon"`
	ImporteTotal     float64   `json:"importe_total"`
	Creado           time.Time `json:"creado"`
	Modificado       time.Time `json:"modificado"`

	Salon   SalonResumen   `json:"salon"`
	Usuario UsuarioResumen `json:"usuario"`
	Turno   TurnoResumen   `json:"turno"`
}

// SalonResumen datos del salón embebidos en el detalle
type SalonResumen struct {
	Titulo    string `json:"titulo"`
	Direccion string `json:"direccion"`
	Capacidad int    `json:"capacidad"`
}

// UsuarioResumen datos del cliente embebidos en el detalle
type UsuarioResumen struct {
	Nombre   string  `json:"nombre"`
	Apellido string  `json:"apellido"`
	Email    string  `json:"email"`
	Celular  *string `json:"celular,omitempty"`
}

// TurnoResumen datos del turno embebidos en el detalle
type TurnoResumen struct {
	Orden     int    `json:"orden"`
	HoraDesde string `json:"hora_desde"`
	HoraHasta string `json:"hora_hasta"`
}

// DisponibilidadResponse resultado de la consulta de disponibilidad
type DisponibilidadResponse struct {
	Disponible bool `json:"disponible"`
}

// EstadisticasResponse representación JSON de las métricas de reservas
type EstadisticasResponse struct {
	TotalReservas   int                  `json:"total_reservas"`
	ReservasFuturas int                  `json:"reservas_futuras"`
	ReservasPasadas int                  `json:"reservas_pasadas"`
	ImportePromedio float64              `json:"importe_promedio"`
	IngresosTotales float64              `json:"ingresos_totales"`
	PrimeraReserva  *string              `json:"primera_reserva,omitempty"`
	UltimaReserva   *string              `json:"ultima_reserva,omitempty"`
	PorMes          []PorMesResponse     `json:"por_mes"`
	SalonesTop      []SalonTopResponse   `json:"salones_top"`
}

// PorMesResponse un mes calendario del desglose
type PorMesResponse struct {
	Anio     int     `json:"anio"`
	Mes      int     `json:"mes"`
	Cantidad int     `json:"cantidad"`
	Ingresos float64 `json:"ingresos"`
}

// SalonTopResponse un salón del ranking por reservas
type SalonTopResponse struct {
	SalonID         int64   `json:"salon_id"`
	Titulo          string  `json:"titulo"`
	TotalReservas   int     `json:"total_reservas"`
	ImportePromedio float64 `json:"importe_promedio"`
}

func toEstadisticasResponse(e *domain.ReservaEstadisticas) *EstadisticasResponse {
	resp := &EstadisticasResponse{
		TotalReservas:   e.TotalReservas,
		ReservasFuturas: e.ReservasFuturas,
		ReservasPasadas: e.ReservasPasadas,
		ImportePromedio: e.ImportePromedio,
		IngresosTotales: e.IngresosTotales,
		PorMes:          make([]PorMesResponse, 0, len(e.PorMes)),
		SalonesTop:      make([]SalonTopResponse, 0, len(e.SalonesTop)),
	}
	if e.PrimeraReserva != nil {
		fecha := e.PrimeraReserva.Format(domain.DateFormat)
		resp.PrimeraReserva = &fecha
	}
	if e.UltimaReserva != nil {
		fecha := e.UltimaReserva.Format(domain.DateFormat)
		resp.UltimaReserva = &fecha
	}
	for _, m := range e.PorMes {
		resp.PorMes = append(resp.PorMes, PorMesResponse(m))
	}
	for _, s := range e.SalonesTop {
		resp.SalonesTop = append(resp.SalonesTop, SalonTopResponse(s))
	}
	return resp
}

func (r *CrearReservaRequest) toUseCaseRequest() (*crearReserva.Request, error) {
	fecha, err := time.Parse(domain.DateFormat, r.FechaReserva)
	if err != nil {
		return nil, fmt.Errorf("fecha_reserva inválida: %w", err)
	}

	servicios := make([]crearReserva.ServicioSolicitado, 0, len(r.Servicios))
	for _, s := range r.Servicios {
		servicios = append(servicios, crearReserva.ServicioSolicitado{
			ServicioID: s.ServicioID,
			Importe:    s.Importe,
		})
	}

	return &crearReserva.Request{
		FechaReserva:     fecha,
		SalonID:          r.SalonID,
		UsuarioID:        r.UsuarioID,
		TurnoID:          r.TurnoID,
		FotoCumpleaniero: r.FotoCumpleaniero,
		Tematica:         r.Tematica,
		Servicios:        servicios,
	}, nil
}

func (r *ActualizarReservaRequest) toUseCaseRequest(reservaID int64) (*actualizarReserva.Request, error) {
	req := &actualizarReserva.Request{
		ReservaID:        reservaID,
		SalonID:          r.SalonID,
		UsuarioID:        r.UsuarioID,
		TurnoID:          r.TurnoID,
		FotoCumpleaniero: r.FotoCumpleaniero,
		Tematica:         r.Tematica,
		ImporteTotal:     r.ImporteTotal,
	}
	if r.FechaReserva != nil {
		fecha, err := time.Parse(domain.DateFormat, *r.FechaReserva)
		if err != nil {
			return nil, fmt.Errorf("fecha_reserva inválida: %w", err)
		}
		req.FechaReserva = &fecha
	}
	return req, nil
}

func toResponse(d *domain.ReservaDetalle) *ReservaResponse {
	return &ReservaResponse{
		ID:               d.ID,
		FechaReserva:     d.FechaReserva.Format(domain.DateFormat),
		SalonID:          d.SalonID,
		UsuarioID:        d.UsuarioID,
		TurnoID:          d.TurnoID,
		FotoCumpleaniero: d.FotoCumpleaniero,
		Tematica:         d.Tematica,
		ImporteSalon:     d.ImporteSalon,
		ImporteTotal:     d.ImporteTotal,
		Creado:           d.Creado,
		Modificado:       d.Modificado,
		Salon: SalonResumen{
			Titulo:    d.SalonNombre,
			Direccion: d.SalonDireccion,
			Capacidad: d.SalonCapacidad,
		},
		Usuario: UsuarioResumen{
			Nombre:   d.UsuarioNombre,
			Apellido: d.UsuarioApellido,
			Email:    d.UsuarioEmail,
			Celular:  d.UsuarioCelular,
		},
		Turno: TurnoResumen{
			Orden:     d.TurnoOrden,
			HoraDesde: d.TurnoHoraDesde,
			HoraHasta: d.TurnoHoraHasta,
		},
	}
}

func toResponseList(detalles []*domain.ReservaDetalle) []*ReservaResponse {
	out := make([]*ReservaResponse, 0, len(detalles))
	for _, d := range detalles {
		out = append(out, toResponse(d))
	}
	return out
}
