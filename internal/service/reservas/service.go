package reservas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
)

// Service servicio de lecturas y utilidades sobre reservas. Las altas y
// modificaciones viven en sus casos de uso propios.
type Service struct {
	reservaRepo ReservaRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService crea el servicio de reservas
func NewService(reservaRepo ReservaRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		reservaRepo: reservaRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ObtenerTodas devuelve el detalle de todas las reservas activas.
func (s *Service) ObtenerTodas(ctx context.Context) ([]*domain.ReservaDetalle, error) {
	reservas, err := s.reservaRepo.ObtenerTodas(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodas: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodas - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// ObtenerPorID devuelve el detalle de una reserva activa.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaDetalle, error) {
	reserva, err := s.reservaRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
			s.logger.Warn("ObtenerPorID: reserva id=%d no encontrada", id)
			return nil, ErrReservaNoEncontrada
		}
		s.logger.Error("ObtenerPorID: error del repositorio para reserva id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return reserva, nil
}

// ObtenerPorUsuario devuelve las reservas activas de un usuario.
func (s *Service) ObtenerPorUsuario(ctx context.Context, usuarioID int64) ([]*domain.ReservaDetalle, error) {
	reservas, err := s.reservaRepo.ObtenerPorUsuario(ctx, usuarioID)
	if err != nil {
		s.logger.Error("ObtenerPorUsuario: error del repositorio para usuario=%d: %v", usuarioID, err)
		return nil, fmt.Errorf("%w: ObtenerPorUsuario - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// ObtenerPorSalon devuelve las reservas activas de un salón.
func (s *Service) ObtenerPorSalon(ctx context.Context, salonID int64) ([]*domain.ReservaDetalle, error) {
	reservas, err := s.reservaRepo.ObtenerPorSalon(ctx, salonID)
	if err != nil {
		s.logger.Error("ObtenerPorSalon: error del repositorio para salón=%d: %v", salonID, err)
		return nil, fmt.Errorf("%w: ObtenerPorSalon - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// ObtenerPorFecha devuelve las reservas activas de una fecha puntual.
func (s *Service) ObtenerPorFecha(ctx context.Context, fecha time.Time) ([]*domain.ReservaDetalle, error) {
	reservas, err := s.reservaRepo.ObtenerPorFecha(ctx, fecha)
	if err != nil {
		s.logger.Error("ObtenerPorFecha: error del repositorio para fecha=%s: %v", fecha.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: ObtenerPorFecha - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// ObtenerPorRango devuelve las reservas activas entre desde y hasta,
// ambos inclusive.
func (s *Service) ObtenerPorRango(ctx context.Context, desde, hasta time.Time) ([]*domain.ReservaDetalle, error) {
	if hasta.Before(desde) {
		s.logger.Warn("ObtenerPorRango: rango invertido %s > %s",
			desde.Format(domain.DateFormat), hasta.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: la fecha desde no puede ser posterior a la fecha hasta", ErrDatosInvalidos)
	}

	reservas, err := s.reservaRepo.ObtenerPorRango(ctx, desde, hasta)
	if err != nil {
		s.logger.Error("ObtenerPorRango: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerPorRango - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// ObtenerProximas devuelve las reservas desde hoy hasta dias días adelante.
// dias fuera de [1, 365] se lleva al valor por defecto.
func (s *Service) ObtenerProximas(ctx context.Context, dias int) ([]*domain.ReservaDetalle, error) {
	if dias < 1 || dias > domain.DiasAdelanteMaximo {
		dias = domain.DiasAdelanteDefault
	}

	reservas, err := s.reservaRepo.ObtenerProximas(ctx, dias)
	if err != nil {
		s.logger.Error("ObtenerProximas: error del repositorio para dias=%d: %v", dias, err)
		return nil, fmt.Errorf("%w: ObtenerProximas - repositorio: %v", ErrInterno, err)
	}
	return reservas, nil
}

// Eliminar hace la baja lógica de una reserva, lo que libera su terna
// (salón, fecha, turno).
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: baja lógica de reserva id=%d", id)

	if err := s.reservaRepo.EliminarLogico(ctx, id); err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
			s.logger.Warn("Eliminar: reserva id=%d no encontrada", id)
			return ErrReservaNoEncontrada
		}
		s.logger.Error("Eliminar: error del repositorio para reserva id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - repositorio: %v", ErrInterno, err)
	}

	return nil
}

// VerificarDisponibilidad indica si la terna (salón, fecha, turno) está
// libre. excluirID permite que una actualización ignore su propia reserva.
func (s *Service) VerificarDisponibilidad(ctx context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error) {
	disponible, err := s.reservaRepo.EstaDisponible(ctx, salonID, fecha, turnoID, excluirID)
	if err != nil {
		s.logger.Error("VerificarDisponibilidad: error del repositorio salón=%d fecha=%s turno=%d: %v",
			salonID, fecha.Format(domain.DateFormat), turnoID, err)
		return false, fmt.Errorf("%w: VerificarDisponibilidad - repositorio: %v", ErrInterno, err)
	}
	return disponible, nil
}

// RecalcularImporteTotal vuelve a calcular el importe total de la reserva
// como snapshot del salón más la suma de servicios, y lo persiste. Es
// idempotente: con los mismos datos deja el mismo total.
func (s *Service) RecalcularImporteTotal(ctx context.Context, id int64) (float64, error) {
	s.logger.Info("RecalcularImporteTotal: reserva id=%d", id)

	var total float64
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		reserva, err := s.reservaRepo.ObtenerPorID(ctx, id)
		if err != nil {
			if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
				return ErrReservaNoEncontrada
			}
			return fmt.Errorf("%w: RecalcularImporteTotal - obtener reserva: %v", ErrInterno, err)
		}

		totalServicios, err := s.reservaRepo.TotalServicios(ctx, id)
		if err != nil {
			return fmt.Errorf("%w: RecalcularImporteTotal - total de servicios: %v", ErrInterno, err)
		}

		total = reserva.ImporteSalon + totalServicios
		if err := s.reservaRepo.ActualizarImporteTotal(ctx, id, total); err != nil {
			if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
				return ErrReservaNoEncontrada
			}
			return fmt.Errorf("%w: RecalcularImporteTotal - actualizar total: %v", ErrInterno, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrReservaNoEncontrada) {
			s.logger.Error("RecalcularImporteTotal: reserva id=%d: %v", id, err)
		}
		return 0, err
	}

	s.logger.Info("RecalcularImporteTotal: reserva id=%d total=%.2f", id, total)
	return total, nil
}

// Estadisticas devuelve las métricas agregadas de las reservas activas.
func (s *Service) Estadisticas(ctx context.Context) (*domain.ReservaEstadisticas, error) {
	est, err := s.reservaRepo.Estadisticas(ctx)
	if err != nil {
		s.logger.Error("Estadisticas: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Estadisticas - repositorio: %v", ErrInterno, err)
	}
	return est, nil
}
