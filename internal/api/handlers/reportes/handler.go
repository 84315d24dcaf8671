package reportes

import (
	"fmt"
	"net/http"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
)

type Handler struct {
	service ReportesService
	logger  Logger
}

func NewHandler(service ReportesService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Reservas GET /api/v1/reportes/reservas
//
// A diferencia del resto de la API no responde JSON: sirve el PDF
// directamente como descarga.
func (h *Handler) Reservas(w http.ResponseWriter, r *http.Request) {
	pdf, err := h.service.ReporteReservasPDF(r.Context())
	if err != nil {
		h.logger.Error("GET /reportes/reservas - %v", err)
		handlers.RespondInternalError(w)
		return
	}

	nombre := fmt.Sprintf("reservas_%s.pdf", time.Now().Format("20060102"))
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", nombre))
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(pdf); err != nil {
		h.logger.Warn("GET /reportes/reservas - error escribiendo respuesta: %v", err)
	}
}
