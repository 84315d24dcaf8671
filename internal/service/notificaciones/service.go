package notificaciones

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

// Service envía los correos de confirmación de reserva por SMTP. Si el
// envío está deshabilitado por configuración, cada método es un no-op.
//
// El envío es best-effort: los llamadores loguean el error y siguen, una
// reserva confirmada nunca se cae porque el SMTP esté abajo.
type Service struct {
	habilitado bool
	remitente  string
	dialer     *gomail.Dialer
	logger     Logger
}

// NewService crea el servicio de notificaciones por email.
func NewService(habilitado bool, host string, puerto int, usuario, contrasenia, remitente string, logger Logger) *Service {
	var dialer *gomail.Dialer
	if habilitado {
		dialer = gomail.NewDialer(host, puerto, usuario, contrasenia)
	}
	return &Service{
		habilitado: habilitado,
		remitente:  remitente,
		dialer:     dialer,
		logger:     logger,
	}
}

// EnviarConfirmacionReserva manda el mail de confirmación al usuario que
// hizo la reserva.
func (s *Service) EnviarConfirmacionReserva(reserva *domain.ReservaDetalle) error {
	if !s.habilitado {
		s.logger.Info("EnviarConfirmacionReserva: envío deshabilitado, se omite reserva id=%d", reserva.ID)
		return nil
	}

	mensaje := gomail.NewMessage()
	mensaje.SetHeader("From", s.remitente)
	mensaje.SetHeader("To", reserva.UsuarioEmail)
	mensaje.SetHeader("Subject", "Confirmación de reserva - PlanCumple")
	mensaje.SetBody("text/html", cuerpoConfirmacion(reserva))

	if err := s.dialer.DialAndSend(mensaje); err != nil {
		s.logger.Error("EnviarConfirmacionReserva: error enviando a %s para reserva id=%d: %v",
			reserva.UsuarioEmail, reserva.ID, err)
		return fmt.Errorf("enviar confirmación de reserva %d: %w", reserva.ID, err)
	}

	s.logger.Info("EnviarConfirmacionReserva: enviado a %s para reserva id=%d", reserva.UsuarioEmail, reserva.ID)
	return nil
}

func cuerpoConfirmacion(reserva *domain.ReservaDetalle) string {
	return fmt.Sprintf(`
		<h2>¡Tu reserva está confirmada!</h2>
		<p>Hola %s, te esperamos para el festejo.</p>
		<ul>
			<li><b>Salón:</b> %s (%s)</li>
			<li><b>Fecha:</b> %s</li>
			<li><b>Turno:</b> %s a %s</li>
			<li><b>Importe total:</b> $%.2f</li>
		</ul>
		<p>Equipo PlanCumple</p>`,
		reserva.UsuarioNombre,
		reserva.SalonNombre,
		reserva.SalonDireccion,
		reserva.FechaReserva.Format(domain.DateFormat),
		reserva.TurnoHoraDesde,
		reserva.TurnoHoraHasta,
		reserva.ImporteTotal,
	)
}
