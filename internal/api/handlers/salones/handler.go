package salones

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	salonesSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/salones"
)

const (
	msgBodyInvalido      = "cuerpo de la petición inválido"
	msgIDInvalido        = "el id debe ser un entero positivo"
	msgSalonNoEncontrado = "salón no encontrado"
)

type Handler struct {
	service SalonesService
	logger  Logger
}

func NewHandler(service SalonesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List GET /api/v1/salones
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	salones, err := h.service.ObtenerTodos(r.Context())
	if err != nil {
		h.logger.Error("GET /salones - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(salones))
}

// Get GET /api/v1/salones/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	salon, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, salonesSvc.ErrSalonNoEncontrado) {
			handlers.RespondNotFound(w, msgSalonNoEncontrado)
			return
		}
		h.logger.Error("GET /salones/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(salon))
}

// Create POST /api/v1/salones
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrearSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /salones - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	salon, err := h.service.Crear(r.Context(), req.toDomain())
	if err != nil {
		if errors.Is(err, salonesSvc.ErrDatosInvalidos) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("POST /salones - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponse(salon))
}

// Update PUT /api/v1/salones/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req ActualizarSalonRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /salones/%d - body inválido: %v", id, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	salon, err := h.service.Actualizar(r.Context(), id, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, salonesSvc.ErrSalonNoEncontrado):
			handlers.RespondNotFound(w, msgSalonNoEncontrado)
		case errors.Is(err, salonesSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /salones/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(salon))
}

// Delete DELETE /api/v1/salones/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, salonesSvc.ErrSalonNoEncontrado) {
			handlers.RespondNotFound(w, msgSalonNoEncontrado)
			return
		}
		h.logger.Error("DELETE /salones/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "salón eliminado"})
}

// Stats GET /api/v1/salones/estadisticas
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	est, err := h.service.Estadisticas(r.Context())
	if err != nil {
		h.logger.Error("GET /salones/estadisticas - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toEstadisticasResponse(est))
}
