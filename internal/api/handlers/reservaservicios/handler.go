package reservaservicios

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	rsSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/reservaservicios"
)

const (
	msgBodyInvalido           = "cuerpo de la petición inválido"
	msgIDInvalido             = "el id debe ser un entero positivo"
	msgReservaNoEncontrada    = "reserva no encontrada"
	msgServicioNoEncontrado   = "servicio no encontrado"
	msgAsignacionNoEncontrada = "asignación no encontrada"
	msgYaAsignado             = "el servicio ya está asignado a la reserva"
)

type Handler struct {
	service ReservaServiciosService
	logger  Logger
}

func NewHandler(service ReservaServiciosService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List GET /api/v1/reservas-servicios
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	detalles, err := h.service.ObtenerTodos(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas-servicios - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toDetalleResponseList(detalles))
}

// Get GET /api/v1/reservas-servicios/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalle, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, rsSvc.ErrAsignacionNoEncontrada) {
			handlers.RespondNotFound(w, msgAsignacionNoEncontrada)
			return
		}
		h.logger.Error("GET /reservas-servicios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toDetalleResponse(detalle))
}

// ListByReserva GET /api/v1/reservas/{id}/servicios
func (h *Handler) ListByReserva(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalles, err := h.service.ObtenerPorReserva(r.Context(), reservaID)
	if err != nil {
		if errors.Is(err, rsSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("GET /reservas/%d/servicios - %v", reservaID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toDetalleResponseList(detalles))
}

// ListByServicio GET /api/v1/servicios/{id}/reservas
func (h *Handler) ListByServicio(w http.ResponseWriter, r *http.Request) {
	servicioID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalles, err := h.service.ObtenerPorServicio(r.Context(), servicioID)
	if err != nil {
		if errors.Is(err, rsSvc.ErrServicioNoEncontrado) {
			handlers.RespondNotFound(w, msgServicioNoEncontrado)
			return
		}
		h.logger.Error("GET /servicios/%d/reservas - %v", servicioID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toDetalleResponseList(detalles))
}

// Create POST /api/v1/reservas/{id}/servicios
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req AsignacionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas/%d/servicios - body inválido: %v", reservaID, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	creada, err := h.service.Asignar(r.Context(), reservaID, domain.ServicioAsignacion{
		ServicioID: req.ServicioID,
		Importe:    req.Importe,
	})
	if err != nil {
		h.responderErrorMutacion(w, "POST /reservas/{id}/servicios", reservaID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponse(creada))
}

// CreateBatch POST /api/v1/reservas/{id}/servicios/lote
func (h *Handler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req LoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas/%d/servicios/lote - body inválido: %v", reservaID, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	creadas, err := h.service.AsignarMultiples(r.Context(), reservaID, req.toDomain())
	if err != nil {
		h.responderErrorMutacion(w, "POST /reservas/{id}/servicios/lote", reservaID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponseList(creadas))
}

// Replace PUT /api/v1/reservas/{id}/servicios
func (h *Handler) Replace(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req LoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/%d/servicios - body inválido: %v", reservaID, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	creadas, err := h.service.ReemplazarServicios(r.Context(), reservaID, req.toDomain())
	if err != nil {
		h.responderErrorMutacion(w, "PUT /reservas/{id}/servicios", reservaID, err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(creadas))
}

// Delete DELETE /api/v1/reservas-servicios/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, rsSvc.ErrAsignacionNoEncontrada) {
			handlers.RespondNotFound(w, msgAsignacionNoEncontrada)
			return
		}
		h.logger.Error("DELETE /reservas-servicios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "asignación eliminada"})
}

// DeleteByReserva DELETE /api/v1/reservas/{id}/servicios
func (h *Handler) DeleteByReserva(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	borradas, err := h.service.EliminarPorReserva(r.Context(), reservaID)
	if err != nil {
		if errors.Is(err, rsSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("DELETE /reservas/%d/servicios - %v", reservaID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]int64{"eliminadas": borradas})
}

// Total GET /api/v1/reservas/{id}/servicios/total
func (h *Handler) Total(w http.ResponseWriter, r *http.Request) {
	reservaID, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	total, err := h.service.TotalPorReserva(r.Context(), reservaID)
	if err != nil {
		if errors.Is(err, rsSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("GET /reservas/%d/servicios/total - %v", reservaID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, TotalResponse{ReservaID: reservaID, Total: total})
}

// Stats GET /api/v1/reservas-servicios/estadisticas
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	est, err := h.service.Estadisticas(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas-servicios/estadisticas - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toEstadisticasResponse(est))
}

func (h *Handler) responderErrorMutacion(w http.ResponseWriter, ruta string, reservaID int64, err error) {
	switch {
	case errors.Is(err, rsSvc.ErrReservaNoEncontrada):
		handlers.RespondNotFound(w, msgReservaNoEncontrada)
	case errors.Is(err, rsSvc.ErrServicioNoEncontrado):
		handlers.RespondNotFound(w, msgServicioNoEncontrado)
	case errors.Is(err, rsSvc.ErrServicioYaAsignado):
		handlers.RespondConflict(w, msgYaAsignado)
	case errors.Is(err, rsSvc.ErrDatosInvalidos):
		handlers.RespondBadRequest(w, err.Error())
	default:
		h.logger.Error("%s - reserva=%d: %v", ruta, reservaID, err)
		handlers.RespondInternalError(w)
	}
}
