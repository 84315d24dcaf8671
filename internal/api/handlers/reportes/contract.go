package reportes

import "context"

// ReportesService genera los reportes descargables
type ReportesService interface {
	ReporteReservasPDF(ctx context.Context) ([]byte, error)
}

// Logger interfaz para logging
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
