package servicios

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// CrearServicioRequest body del alta de servicio
type CrearServicioRequest struct {
	Descripcion string  `json:"descripcion"`
	Importe     float64 `json:"importe"`
}

// ActualizarServicioRequest body de la actualización parcial
type ActualizarServicioRequest struct {
	Descripcion *string  `json:"descripcion,omitempty"`
	Importe     *float64 `json:"importe,omitempty"`
}

// ServicioResponse representación JSON de un servicio
type ServicioResponse struct {
	ID          int64     `json:"servicio_id"`
	Descripcion string    `json:"descripcion"`
	Importe     float64   `json:"importe"`
	Creado      time.Time `json:"creado"`
	Modificado  time.Time `json:"modificado"`
}

func (r *CrearServicioRequest) toDomain() *domain.Servicio {
	return &domain.Servicio{
		Descripcion: r.Descripcion,
		Importe:     r.Importe,
	}
}

func (r *ActualizarServicioRequest) toDomain() domain.ServicioUpdate {
	return domain.ServicioUpdate{
		Descripcion: r.Descripcion,
		Importe:     r.Importe,
	}
}

func toResponse(s *domain.Servicio) *ServicioResponse {
	return &ServicioResponse{
		ID:          s.ID,
		Descripcion: s.Descripcion,
		Importe:     s.Importe,
		Creado:      s.Creado,
		Modificado:  s.Modificado,
	}
}

func toResponseList(servicios []*domain.Servicio) []*ServicioResponse {
	out := make([]*ServicioResponse, 0, len(servicios))
	for _, s := range servicios {
		out = append(out, toResponse(s))
	}
	return out
}
