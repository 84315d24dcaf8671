package turnos

import (
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// CrearTurnoRequest body del alta de turno
type CrearTurnoRequest struct {
	Orden     int    `json:"orden"`
	HoraDesde string `json:"hora_desde"`
	HoraHasta string `json:"hora_hasta"`
}

// ActualizarTurnoRequest body de la actualización parcial
type ActualizarTurnoRequest struct {
	Orden     *int    `json:"orden,omitempty"`
	HoraDesde *string `json:"hora_desde,omitempty"`
	HoraHasta *string `json:"hora_hasta,omitempty"`
}

// TurnoResponse representación JSON de un turno
type TurnoResponse struct {
	ID         int64     `json:"turno_id"`
	Orden      int       `json:"orden"`
	HoraDesde  string    `json:"hora_desde"`
	HoraHasta  string    `json:"hora_hasta"`
	Creado     time.Time `json:"creado"`
	Modificado time.Time `json:"modificado"`
}

func (r *CrearTurnoRequest) toDomain() *domain.Turno {
	return &domain.Turno{
		Orden:     r.Orden,
		HoraDesde: r.HoraDesde,
		HoraHasta: r.HoraHasta,
	}
}

func (r *ActualizarTurnoRequest) toDomain() domain.TurnoUpdate {
	return domain.TurnoUpdate{
		Orden:     r.Orden,
		HoraDesde: r.HoraDesde,
		HoraHasta: r.HoraHasta,
	}
}

func toResponse(t *domain.Turno) *TurnoResponse {
	return &TurnoResponse{
		ID:         t.ID,
		Orden:      t.Orden,
		HoraDesde:  t.HoraDesde,
		HoraHasta:  t.HoraHasta,
		Creado:     t.Creado,
		Modificado: t.Modificado,
	}
}

func toResponseList(turnos []*domain.Turno) []*TurnoResponse {
	out := make([]*TurnoResponse, 0, len(turnos))
	for _, t := range turnos {
		out = append(out, toResponse(t))
	}
	return out
}
