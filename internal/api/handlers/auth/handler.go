package auth

import (
	"errors"
	"net/http"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	authSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/auth"
	usuariosSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/usuarios"
)

const (
	msgBodyInvalido         = "cuerpo de la petición inválido"
	msgCredencialesInvalidas = "usuario o contraseña incorrectos"
	msgUsuarioDuplicado     = "el nombre de usuario ya está registrado"
)

type Handler struct {
	authService     AuthService
	usuariosService UsuariosService
	logger          Logger
}

func NewHandler(authService AuthService, usuariosService UsuariosService, logger Logger) *Handler {
	return &Handler{
		authService:     authService,
		usuariosService: usuariosService,
		logger:          logger,
	}
}

// Login POST /api/v1/auth/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}
	if req.NombreUsuario == "" || req.Contrasenia == "" {
		handlers.RespondBadRequest(w, "nombre_usuario y contrasenia son obligatorios")
		return
	}

	usuario, token, err := h.authService.Login(r.Context(), req.NombreUsuario, req.Contrasenia)
	if err != nil {
		if errors.Is(err, authSvc.ErrCredencialesInvalidas) {
			handlers.RespondUnauthorized(w, msgCredencialesInvalidas)
			return
		}
		h.logger.Error("POST /auth/login - %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, toSesionResponse(usuario, token))
}

// Registro POST /api/v1/auth/registro
// Da de alta un usuario con el rol mínimo y devuelve la sesión iniciada.
func (h *Handler) Registro(w http.ResponseWriter, r *http.Request) {
	var req RegistroRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/registro - body inválido: %v", err)
		handlers.RespondBadRequest(w, msgBodyInvalido)
		return
	}

	usuario, err := h.usuariosService.Crear(r.Context(), req.toDomain())
	if err != nil {
		switch {
		case errors.Is(err, usuariosSvc.ErrDatosInvalidos):
			handlers.RespondBadRequest(w, err.Error())
		case errors.Is(err, usuariosSvc.ErrNombreUsuarioDuplicado):
			handlers.RespondConflict(w, msgUsuarioDuplicado)
		default:
			h.logger.Error("POST /auth/registro - %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	token, err := h.authService.GenerarToken(usuario)
	if err != nil {
		h.logger.Error("POST /auth/registro - error firmando token para usuario id=%d: %v", usuario.ID, err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, toSesionResponse(usuario, token))
}
