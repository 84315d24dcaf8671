package reservas

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservasSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/reservas"
	actualizarReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/actualizar_reserva"
	crearReserva "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/usecase/crear_reserva"
)

const (
	msgBodyInvalido        = "cuerpo de la petición inválido"
	msgIDInvalido          = "el id debe ser un entero positivo"
	msgFechaInvalida       = "la fecha debe tener formato YYYY-MM-DD"
	msgReservaNoEncontrada = "reserva no encontrada"
	msgNoDisponible        = "el salón no está disponible para esa fecha y turno"
)

type Handler struct {
	crearUC      CrearReservaUseCase
	actualizarUC ActualizarReservaUseCase
	service      ReservasService
	logger       Logger
}

func NewHandler(
	crearUC CrearReservaUseCase,
	actualizarUC ActualizarReservaUseCase,
	service ReservasService,
	logger Logger,
) *Handler {
	return &Handler{
		crearUC:      crearUC,
		actualizarUC: actualizarUC,
		service:      service,
		logger:       logger,
	}
}

// List GET /api/v1/reservas
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	detalles, err := h.service.ObtenerTodas(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// Get GET /api/v1/reservas/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalle, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservasSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("GET /reservas/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(detalle))
}

// ListByUsuario GET /api/v1/reservas/usuario/{id}
func (h *Handler) ListByUsuario(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalles, err := h.service.ObtenerPorUsuario(r.Context(), id)
	if err != nil {
		h.logger.Error("GET /reservas/usuario/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// ListBySalon GET /api/v1/reservas/salon/{id}
func (h *Handler) ListBySalon(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	detalles, err := h.service.ObtenerPorSalon(r.Context(), id)
	if err != nil {
		h.logger.Error("GET /reservas/salon/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// ListByFecha GET /api/v1/reservas/fecha/{fecha}
func (h *Handler) ListByFecha(w http.ResponseWriter, r *http.Request) {
	fecha, err := time.Parse(domain.DateFormat, mux.Vars(r)["fecha"])
	if err != nil {
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}

	detalles, err := h.service.ObtenerPorFecha(r.Context(), fecha)
	if err != nil {
		h.logger.Error("GET /reservas/fecha/%s - %v", fecha.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// ListByRango GET /api/v1/reservas/rango?desde=YYYY-MM-DD&hasta=YYYY-MM-DD
func (h *Handler) ListByRango(w http.ResponseWriter, r *http.Request) {
	desde, err := time.Parse(domain.DateFormat, r.URL.Query().Get("desde"))
	if err != nil {
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}
	hasta, err := time.Parse(domain.DateFormat, r.URL.Query().Get("hasta"))
	if err != nil {
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}

	detalles, err := h.service.ObtenerPorRango(r.Context(), desde, hasta)
	if err != nil {
		if errors.Is(err, reservasSvc.ErrDatosInvalidos) {
			handlers.RespondBadRequest(w, err.Error())
			return
		}
		h.logger.Error("GET /reservas/rango - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// ListProximas GET /api/v1/reservas/proximas?dias=N
func (h *Handler) ListProximas(w http.ResponseWriter, r *http.Request) {
	dias := domain.DiasAdelanteDefault
	if raw := r.URL.Query().Get("dias"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			handlers.RespondBadRequest(w, "dias debe ser un número entero")
			return
		}
		dias = parsed
	}

	detalles, err := h.service.ObtenerProximas(r.Context(), dias)
	if err != nil {
		h.logger.Error("GET /reservas/proximas - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(detalles))
}

// Disponibilidad GET /api/v1/reservas/disponibilidad?salon_id=&fecha=&turno_id=
func (h *Handler) Disponibilidad(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	salonID, err := strconv.ParseInt(q.Get("salon_id"), 10, 64)
	if err != nil || salonID <= 0 {
		handlers.RespondBadRequest(w, "salon_id debe ser un entero positivo")
		return
	}
	turnoID, err := strconv.ParseInt(q.Get("turno_id"), 10, 64)
	if err != nil || turnoID <= 0 {
		handlers.RespondBadRequest(w, "turno_id debe ser un entero positivo")
		return
	}
	fecha, err := time.Parse(domain.DateFormat, q.Get("fecha"))
	if err != nil {
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}

	var excluirID *int64
	if raw := q.Get("excluir_reserva_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondBadRequest(w, "excluir_reserva_id debe ser un entero positivo")
			return
		}
		excluirID = &id
	}

	disponible, err := h.service.VerificarDisponibilidad(r.Context(), salonID, fecha, turnoID, excluirID)
	if err != nil {
		h.logger.Error("GET /reservas/disponibilidad - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, DisponibilidadResponse{Disponible: disponible})
}

// Create POST /api/v1/reservas
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrearReservaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservas - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	ucReq, err := req.toUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /reservas - %v", err)
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}

	result, err := h.crearUC.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, crearReserva.ErrNoDisponible):
			handlers.RespondConflict(w, msgNoDisponible)
		case errors.Is(err, crearReserva.ErrDatosInvalidos),
			errors.Is(err, crearReserva.ErrFechaPasada):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, crearReserva.ErrSalonNoEncontrado),
			errors.Is(err, crearReserva.ErrUsuarioNoEncontrado),
			errors.Is(err, crearReserva.ErrTurnoNoEncontrado),
			errors.Is(err, crearReserva.ErrServicioNoEncontrado):
			handlers.RespondNotFound(w, err.Error())
		default:
			h.logger.Error("POST /reservas - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toResponse(result.Reserva))
}

// Update PUT /api/v1/reservas/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req ActualizarReservaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservas/%d - body inválido: %v", id, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	ucReq, err := req.toUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservas/%d - %v", id, err)
		handlers.RespondBadRequest(w, msgFechaInvalida)
		return
	}

	result, err := h.actualizarUC.Execute(r.Context(), ucReq)
	if err != nil {
		switch {
		case errors.Is(err, actualizarReserva.ErrNoDisponible):
			handlers.RespondConflict(w, msgNoDisponible)
		case errors.Is(err, actualizarReserva.ErrDatosInvalidos),
			errors.Is(err, actualizarReserva.ErrFechaPasada):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, actualizarReserva.ErrReservaNoEncontrada):
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
		case errors.Is(err, actualizarReserva.ErrSalonNoEncontrado),
			errors.Is(err, actualizarReserva.ErrUsuarioNoEncontrado),
			errors.Is(err, actualizarReserva.ErrTurnoNoEncontrado):
			handlers.RespondNotFound(w, err.Error())
		default:
			h.logger.Error("PUT /reservas/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponse(result.Reserva))
}

// Delete DELETE /api/v1/reservas/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, reservasSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("DELETE /reservas/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "reserva eliminada"})
}

// RecalcularTotal POST /api/v1/reservas/{id}/recalcular-total
func (h *Handler) RecalcularTotal(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	total, err := h.service.RecalcularImporteTotal(r.Context(), id)
	if err != nil {
		if errors.Is(err, reservasSvc.ErrReservaNoEncontrada) {
			handlers.RespondNotFound(w, msgReservaNoEncontrada)
			return
		}
		h.logger.Error("POST /reservas/%d/recalcular-total - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]float64{"importe_total": total})
}

// Stats GET /api/v1/reservas/estadisticas
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	est, err := h.service.Estadisticas(r.Context())
	if err != nil {
		h.logger.Error("GET /reservas/estadisticas - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toEstadisticasResponse(est))
}
