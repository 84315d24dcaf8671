package servicios

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	serviciosSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/servicios"
)

const (
	msgBodyInvalido         = "cuerpo de la petición inválido"
	msgIDInvalido           = "el id debe ser un entero positivo"
	msgServicioNoEncontrado = "servicio no encontrado"
	msgDescripcionDuplicada = "ya existe un servicio con esa descripción"
)

type Handler struct {
	service ServiciosService
	logger  Logger
}

func NewHandler(service ServiciosService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List GET /api/v1/servicios
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	servicios, err := h.service.ObtenerTodos(r.Context())
	if err != nil {
		h.logger.Error("GET /servicios - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(servicios))
}

// Get GET /api/v1/servicios/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	servicio, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, serviciosSvc.ErrServicioNoEncontrado) {
			handlers.RespondNotFound(w, msgServicioNoEncontrado)
			return
		}
		h.logger.Error("GET /servicios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(servicio))
}

// Create POST /api/v1/servicios
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrearServicioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /servicios - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	servicio, err := h.service.Crear(r.Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, serviciosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, serviciosSvc.ErrDescripcionDuplicada):
			handlers.RespondConflict(w, msgDescripcionDuplicada)
		default:
			h.logger.Error("POST /servicios - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponse(servicio))
}

// Update PUT /api/v1/servicios/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req ActualizarServicioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /servicios/%d - body inválido: %v", id, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	servicio, err := h.service.Actualizar(r.Context(), id, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, serviciosSvc.ErrServicioNoEncontrado):
			handlers.RespondNotFound(w, msgServicioNoEncontrado)
		case errors.Is(err, serviciosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, serviciosSvc.ErrDescripcionDuplicada):
			handlers.RespondConflict(w, msgDescripcionDuplicada)
		default:
			h.logger.Error("PUT /servicios/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(servicio))
}

// Delete DELETE /api/v1/servicios/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, serviciosSvc.ErrServicioNoEncontrado) {
			handlers.RespondNotFound(w, msgServicioNoEncontrado)
			return
		}
		h.logger.Error("DELETE /servicios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "servicio eliminado"})
}
