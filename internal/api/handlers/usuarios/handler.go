package usuarios

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	usuariosSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/usuarios"
)

const (
	msgBodyInvalido        = "cuerpo de la petición inválido"
	msgIDInvalido          = "el id debe ser un entero positivo"
	msgUsuarioNoEncontrado = "usuario no encontrado"
	msgUsuarioDuplicado    = "el nombre de usuario ya está registrado"
)

type Handler struct {
	service UsuariosService
	logger  Logger
}

func NewHandler(service UsuariosService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// List GET /api/v1/usuarios
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	usuarios, err := h.service.ObtenerTodos(r.Context())
	if err != nil {
		h.logger.Error("GET /usuarios - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toResponseList(usuarios))
}

// Get GET /api/v1/usuarios/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	usuario, err := h.service.ObtenerPorID(r.Context(), id)
	if err != nil {
		if errors.Is(err, usuariosSvc.ErrUsuarioNoEncontrado) {
			handlers.RespondNotFound(w, msgUsuarioNoEncontrado)
			return
		}
		h.logger.Error("GET /usuarios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ToResponse(usuario))
}

// Create POST /api/v1/usuarios
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CrearUsuarioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /usuarios - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	usuario, err := h.service.Crear(r.Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, usuariosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usuariosSvc.ErrNombreUsuarioDuplicado):
			handlers.RespondConflict(w, msgUsuarioDuplicado)
		default:
			h.logger.Error("POST /usuarios - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, ToResponse(usuario))
}

// Update PUT /api/v1/usuarios/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	var req ActualizarUsuarioRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /usuarios/%d - body inválido: %v", id, err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	usuario, err := h.service.Actualizar(r.Context(), id, req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, usuariosSvc.ErrUsuarioNoEncontrado):
			handlers.RespondNotFound(w, msgUsuarioNoEncontrado)
		case errors.Is(err, usuariosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		default:
			h.logger.Error("PUT /usuarios/%d - %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}
	handlers.RespondJSON(w, http.StatusOK, ToResponse(usuario))
}

// Delete DELETE /api/v1/usuarios/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.IDFromRequest(r, "id")
	if err != nil {
		handlers.RespondBadRequest(w, msgIDInvalido)
		return
	}

	if err := h.service.Eliminar(r.Context(), id); err != nil {
		if errors.Is(err, usuariosSvc.ErrUsuarioNoEncontrado) {
			handlers.RespondNotFound(w, msgUsuarioNoEncontrado)
			return
		}
		h.logger.Error("DELETE /usuarios/%d - %v", id, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"mensaje": "usuario eliminado"})
}
