package turnos

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	turnosSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/turnos"
)

const (
	msgBodyInvalido      = "cuerpo de la petición inválido"
	msgIDInvalido        = "el id debe ser un entero positivo"
	msgTurnoNoEncontrado = "turno no encontrado"
)

type Handler struct {
	service TurnosService
	logger  Logger
}

func NewHandler(service TurnosService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List GET /api/v1/turnos
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	turnos, err := h.service.ObtenerTodos(r.Context())
	if err != nil {
		h.logger.Error("GET /turnos - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(turnos))
}

// Get GET /api/v1/turnos/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	turno, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, turnosSvc.ErrTurnoNoEncontrado) {
			handlers.RespondNotFound(w, msgTurnoNoEncontrado)
			return
		}
		h.logger.Error("GET /turnos/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(turno))
}

// Create POST /api/v1/turnos
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrearTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /turnos - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	turno, err := h.service.Crear(r.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, turnosSvc.ErrDatosInvalidos) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /turnos - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponse(turno))
}

// Update PUT /api/v1/turnos/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req ActualizarTurnoRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /turnos/%d - body inválido: %v", id, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	turno, err := h.service.Actualizar(r.Context(), id, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, turnosSvc.ErrTurnoNoEncontrado):
			handlers.RespondNotFound(w, msgTurnoNoEncontrado)
		case errors.Is(err, turnosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /turnos/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(turno))
}

// Delete DELETE /api/v1/turnos/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, turnosSvc.ErrTurnoNoEncontrado) {
			handlers.RespondNotFound(w, msgTurnoNoEncontrado)
			return
		}
		h.logger.Error("DELETE /turnos/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "turno eliminado"})
}
