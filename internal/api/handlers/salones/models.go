package salones

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// CrearSalonRequest body del alta de salón
type CrearSalonRequest struct {
	Titulo    string   `json:"titulo"`
	Direccion string   `json:"direccion"`
	Latitud   *float64 `json:"latitud,omitempty"`
	Longitud  *float64 `json:"longitud,omitempty"`
	Capacidad int      `json:"capacidad"`
	Importe   float64  `json:"importe"`
}

// ActualizarSalonRequest body de la actualización parcial
type ActualizarSalonRequest struct {
	Titulo    *string  `json:"titulo,omitempty"`
	Direccion *string  `json:"direccion,omitempty"`
	Latitud   *float64 `json:"latitud,omitempty"`
	Longitud  *float64 `json:"longitud,omitempty"`
	Capacidad *int     `json:"capacidad,omitempty"`
	Importe   *float64 `json:"importe,omitempty"`
}

// SalonResponse representación JSON de un salón
type SalonResponse struct {
	ID         int64     `json:"salon_id"`
	Titulo     string    `json:"titulo"`
	Direccion  string    `json:"direccion"`
	Latitud    *float64  `json:"latitud,omitempty"`
	Longitud   *float64  `json:"longitud,omitempty"`
	Capacidad  int       `json:"capacidad"`
	Importe    float64   `json:"importe"`
	Creado     time.Time `json:"creado"`
	Modificado time.Time `json:"modificado"`
}

// EstadisticasResponse representación JSON de las métricas de salones
type EstadisticasResponse struct {
	Total             int     `json:"total"`
	CapacidadPromedio float64 `json:"capacidad_promedio"`
	ImportePromedio   float64 `json:"importe_promedio"`
	CapacidadMaxima   int     `json:"capacidad_maxima"`
	ImporteMaximo     float64 `json:"importe_maximo"`
}

func (r *CrearSalonRequest) toDomain() *domain.Salon {
	return &domain.Salon{
		Titulo:    r.Titulo,
		Direccion: r.Direccion,
		Latitud:   r.Latitud,
		Longitud:  r.Longitud,
		Capacidad: r.Capacidad,
		Importe:   r.Importe,
	}
}

func (r *ActualizarSalonRequest) toDomain() domain.SalonUpdate {
	return domain.SalonUpdate{
		Titulo:    r.Titulo,
		Direccion: r.Direccion,
		Latitud:   r.Latitud,
		Longitud:  r.Longitud,
		Capacidad: r.Capacidad,
		Importe:   r.Importe,
	}
}

func toResponse(s *domain.Salon) *SalonResponse {
	return &SalonResponse{
		ID:         s.ID,
		Titulo:     s.Titulo,
		Direccion:  s.Direccion,
		Latitud:    s.Latitud,
		Longitud:   s.Longitud,
		Capacidad:  s.Capacidad,
		Importe:    s.Importe,
		Creado:     s.Creado,
		Modificado: s.Modificado,
	}
}

func toResponseList(salones []*domain.Salon) []*SalonResponse {
	out := make([]*SalonResponse, 0, len(salones))
	for _, s := range salones {
		out = append(out, toResponse(s))
	}
	return out
}

func toEstadisticasResponse(e *domain.SalonEstadisticas) *EstadisticasResponse {
	return &EstadisticasResponse{
		Total:             e.Total,
		CapacidadPromedio: e.CapacidadPromedio,
		ImportePromedio:   e.ImportePromedio,
		CapacidadMaxima:   e.CapacidadMaxima,
		ImporteMaximo:     e.ImporteMaximo,
	}
}
