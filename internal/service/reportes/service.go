package reportes

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// Service genera el listado de reservas en PDF para descargar desde la
// administración.
type Service struct {
	reservaRepo ReservaRepository
	logger      Logger
}

// NewService crea el generador de reportes.
func NewService(reservaRepo ReservaRepository, logger Logger) *Service {
	return &Service{
		reservaRepo: reservaRepo,
		logger:      logger,
	}
}

// ReporteReservasPDF arma el PDF con todas las reservas activas y un
// resumen de totales al pie. Devuelve los bytes listos para servir.
func (s *Service) ReporteReservasPDF(ctx context.Context) ([]byte, error) {
	s.logger.Info("ReporteReservasPDF: generando reporte")

	reservas, err := s.reservaRepo.ObtenerTodas(ctx)
	if err != nil {
		s.logger.Error("ReporteReservasPDF: error obteniendo reservas: %v", err)
		return nil, fmt.Errorf("%w: ReporteReservasPDF - obtener reservas: %v", ErrInterno, err)
	}

	est, err := s.reservaRepo.Estadisticas(ctx)
	if err != nil {
		s.logger.Error("ReporteReservasPDF: error obteniendo estadísticas: %v", err)
		return nil, fmt.Errorf("%w: ReporteReservasPDF - obtener estadísticas: %v", ErrInterno, err)
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("PlanCumple - Reservas", false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "PlanCumple - Listado de reservas")
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 9)
	pdf.Cell(0, 8, fmt.Sprintf("Generado el %s", time.Now().Format("02/01/2006 15:04")))
	pdf.Ln(12)

	anchos := []float64{15, 25, 60, 55, 25, 30, 30}
	titulos := []string{"ID", "Fecha", "Salón", "Cliente", "Turno", "Imp. salón", "Imp. total"}

	pdf.SetFont("Arial", "B", 9)
	pdf.SetFillColor(230, 230, 230)
	for i, titulo := range titulos {
		pdf.CellFormat(anchos[i], 8, titulo, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, r := range reservas {
		celdas := []string{
			fmt.Sprintf("%d", r.ID),
			r.FechaReserva.Format("02/01/2006"),
			r.SalonNombre,
			fmt.Sprintf("%s %s", r.UsuarioNombre, r.UsuarioApellido),
			fmt.Sprintf("%s-%s", r.TurnoHoraDesde, r.TurnoHoraHasta),
			fmt.Sprintf("$%.2f", r.ImporteSalon),
			fmt.Sprintf("$%.2f", r.ImporteTotal),
		}
		for i, celda := range celdas {
			pdf.CellFormat(anchos[i], 7, celda, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(8)
	pdf.SetFont("Arial", "B", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Total de reservas: %d    Ingresos totales: $%.2f    Importe promedio: $%.2f",
		est.TotalReservas, est.IngresosTotales, est.ImportePromedio))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		s.logger.Error("ReporteReservasPDF: error serializando PDF: %v", err)
		return nil, fmt.Errorf("%w: ReporteReservasPDF - serializar PDF: %v", ErrInterno, err)
	}

	s.logger.Info("ReporteReservasPDF: reporte generado con %d reservas", len(reservas))
	return buf.Bytes(), nil
}
