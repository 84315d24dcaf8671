package reservaservicios

import (
	"context"
	"errors"
	"fmt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
	rsRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reservaservicio"
)

// Service servicio de asignación de servicios a reservas. Toda mutación
// corre en una transacción que termina recalculando el importe total de la
// reserva, para que el invariante
//
//	importe_total = importe_salon + suma de asignaciones
//
// nunca quede roto a la vista de otros lectores.
type Service struct {
	rsRepo       ReservaServicioRepository
	reservaRepo  ReservaRepository
	servicioRepo ServicioRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService crea el servicio de asignaciones
func NewService(
	rsRepo ReservaServicioRepository,
	reservaRepo ReservaRepository,
	servicioRepo ServicioRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		rsRepo:       rsRepo,
		reservaRepo:  reservaRepo,
		servicioRepo: servicioRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// ObtenerTodos devuelve todas las asignaciones con su detalle.
func (s *Service) ObtenerTodos(ctx context.Context) ([]*domain.ReservaServicioDetalle, error) {
	detalles, err := s.rsRepo.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodos: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodos - repositorio: %v", ErrInterno, err)
	}
	return detalles, nil
}

// ObtenerPorID devuelve el detalle de una asignación.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.ReservaServicioDetalle, error) {
	detalle, err := s.rsRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, rsRepo.ErrAsignacionNoEncontrada) {
			s.logger.Warn("ObtenerPorID: asignación id=%d no encontrada", id)
			return nil, ErrAsignacionNoEncontrada
		}
		s.logger.Error("ObtenerPorID: error del repositorio para asignación id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return detalle, nil
}

// ObtenerPorReserva devuelve los servicios asignados a una reserva.
func (s *Service) ObtenerPorReserva(ctx context.Context, reservaID int64) ([]*domain.ReservaServicioDetalle, error) {
	existe, err := s.reservaRepo.Existe(ctx, reservaID)
	if err != nil {
		s.logger.Error("ObtenerPorReserva: error verificando reserva=%d: %v", reservaID, err)
		return nil, fmt.Errorf("%w: ObtenerPorReserva - verificar reserva: %v", ErrInterno, err)
	}
	if !existe {
		s.logger.Warn("ObtenerPorReserva: reserva id=%d no encontrada", reservaID)
		return nil, ErrReservaNoEncontrada
	}

	detalles, err := s.rsRepo.ObtenerPorReserva(ctx, reservaID)
	if err != nil {
		s.logger.Error("ObtenerPorReserva: error del repositorio para reserva=%d: %v", reservaID, err)
		return nil, fmt.Errorf("%w: ObtenerPorReserva - repositorio: %v", ErrInterno, err)
	}
	return detalles, nil
}

// ObtenerPorServicio devuelve las reservas que contrataron un servicio.
func (s *Service) ObtenerPorServicio(ctx context.Context, servicioID int64) ([]*domain.ReservaServicioDetalle, error) {
	existe, err := s.servicioRepo.Existe(ctx, servicioID)
	if err != nil {
		s.logger.Error("ObtenerPorServicio: error verificando servicio=%d: %v", servicioID, err)
		return nil, fmt.Errorf("%w: ObtenerPorServicio - verificar servicio: %v", ErrInterno, err)
	}
	if !existe {
		s.logger.Warn("ObtenerPorServicio: servicio id=%d no encontrado", servicioID)
		return nil, ErrServicioNoEncontrado
	}

	detalles, err := s.rsRepo.ObtenerPorServicio(ctx, servicioID)
	if err != nil {
		s.logger.Error("ObtenerPorServicio: error del repositorio para servicio=%d: %v", servicioID, err)
		return nil, fmt.Errorf("%w: ObtenerPorServicio - repositorio: %v", ErrInterno, err)
	}
	return detalles, nil
}

// Asignar agrega un servicio a una reserva congelando su importe, y
// actualiza el importe total de la reserva en la misma transacción.
func (s *Service) Asignar(ctx context.Context, reservaID int64, asignacion domain.ServicioAsignacion) (*domain.ReservaServicio, error) {
	s.logger.Info("Asignar: reserva=%d servicio=%d importe=%.2f",
		reservaID, asignacion.ServicioID, asignacion.Importe)

	if err := s.validarAsignaciones(ctx, reservaID, []domain.ServicioAsignacion{asignacion}); err != nil {
		return nil, err
	}

	var creada *domain.ReservaServicio
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		rs := &domain.ReservaServicio{
			ReservaID:  reservaID,
			ServicioID: asignacion.ServicioID,
			Importe:    asignacion.Importe,
		}
		var err error
		creada, err = s.rsRepo.Crear(ctx, rs)
		if err != nil {
			if errors.Is(err, rsRepo.ErrAsignacionDuplicada) {
				return ErrServicioYaAsignado
			}
			return fmt.Errorf("%w: Asignar - crear asignación: %v", ErrInterno, err)
		}
		return s.recalcularTotal(ctx, reservaID)
	})
	if err != nil {
		if !errors.Is(err, ErrServicioYaAsignado) {
			s.logger.Error("Asignar: reserva=%d servicio=%d: %v", reservaID, asignacion.ServicioID, err)
		}
		return nil, err
	}

	s.logger.Info("Asignar: asignación creada id=%d", creada.ID)
	return creada, nil
}

// AsignarMultiples agrega un lote de servicios a una reserva. El lote se
// valida completo antes de escribir nada; después corre en una única
// transacción, así que o entran todos los renglones o no entra ninguno.
func (s *Service) AsignarMultiples(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error) {
	s.logger.Info("AsignarMultiples: reserva=%d lote de %d servicios", reservaID, len(asignaciones))

	if len(asignaciones) == 0 {
		s.logger.Warn("AsignarMultiples: lote vacío para reserva=%d", reservaID)
		return nil, fmt.Errorf("%w: el lote de servicios no puede estar vacío", ErrDatosInvalidos)
	}
	if err := s.validarAsignaciones(ctx, reservaID, asignaciones); err != nil {
		return nil, err
	}

	var creadas []*domain.ReservaServicio
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		creadas, err = s.rsRepo.CrearMultiples(ctx, reservaID, asignaciones)
		if err != nil {
			if errors.Is(err, rsRepo.ErrAsignacionDuplicada) {
				return ErrServicioYaAsignado
			}
			return fmt.Errorf("%w: AsignarMultiples - crear asignaciones: %v", ErrInterno, err)
		}
		return s.recalcularTotal(ctx, reservaID)
	})
	if err != nil {
		if !errors.Is(err, ErrServicioYaAsignado) {
			s.logger.Error("AsignarMultiples: reserva=%d: %v", reservaID, err)
		}
		return nil, err
	}

	s.logger.Info("AsignarMultiples: %d asignaciones creadas para reserva=%d", len(creadas), reservaID)
	return creadas, nil
}

// ReemplazarServicios deja la reserva exactamente con los servicios del
// lote: borra las asignaciones actuales, inserta las nuevas y recalcula el
// total, todo en una transacción. Un lote vacío deja la reserva sin
// servicios y el total vuelve al importe del salón.
func (s *Service) ReemplazarServicios(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error) {
	s.logger.Info("ReemplazarServicios: reserva=%d nuevo lote de %d servicios", reservaID, len(asignaciones))

	if err := s.validarLote(ctx, reservaID, asignaciones); err != nil {
		return nil, err
	}

	creadas := make([]*domain.ReservaServicio, 0, len(asignaciones))
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.rsRepo.EliminarPorReserva(ctx, reservaID); err != nil {
			return fmt.Errorf("%w: ReemplazarServicios - borrar asignaciones: %v", ErrInterno, err)
		}
		if len(asignaciones) > 0 {
			var err error
			creadas, err = s.rsRepo.CrearMultiples(ctx, reservaID, asignaciones)
			if err != nil {
				return fmt.Errorf("%w: ReemplazarServicios - crear asignaciones: %v", ErrInterno, err)
			}
		}
		return s.recalcularTotal(ctx, reservaID)
	})
	if err != nil {
		s.logger.Error("ReemplazarServicios: reserva=%d: %v", reservaID, err)
		return nil, err
	}

	s.logger.Info("ReemplazarServicios: reserva=%d quedó con %d servicios", reservaID, len(creadas))
	return creadas, nil
}

// Eliminar quita una asignación y recalcula el total de su reserva.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: asignación id=%d", id)

	detalle, err := s.rsRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, rsRepo.ErrAsignacionNoEncontrada) {
			s.logger.Warn("Eliminar: asignación id=%d no encontrada", id)
			return ErrAsignacionNoEncontrada
		}
		s.logger.Error("Eliminar: error obteniendo asignación id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - obtener asignación: %v", ErrInterno, err)
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.rsRepo.Eliminar(ctx, id); err != nil {
			if errors.Is(err, rsRepo.ErrAsignacionNoEncontrada) {
				return ErrAsignacionNoEncontrada
			}
			return fmt.Errorf("%w: Eliminar - borrar asignación: %v", ErrInterno, err)
		}
		return s.recalcularTotal(ctx, detalle.ReservaID)
	})
	if err != nil {
		if !errors.Is(err, ErrAsignacionNoEncontrada) {
			s.logger.Error("Eliminar: asignación id=%d: %v", id, err)
		}
		return err
	}

	return nil
}

// EliminarPorReserva quita todos los servicios de una reserva y devuelve
// cuántos había. El total vuelve al importe del salón.
func (s *Service) EliminarPorReserva(ctx context.Context, reservaID int64) (int64, error) {
	s.logger.Info("EliminarPorReserva: reserva=%d", reservaID)

	existe, err := s.reservaRepo.Existe(ctx, reservaID)
	if err != nil {
		s.logger.Error("EliminarPorReserva: error verificando reserva=%d: %v", reservaID, err)
		return 0, fmt.Errorf("%w: EliminarPorReserva - verificar reserva: %v", ErrInterno, err)
	}
	if !existe {
		s.logger.Warn("EliminarPorReserva: reserva id=%d no encontrada", reservaID)
		return 0, ErrReservaNoEncontrada
	}

	var borradas int64
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		borradas, err = s.rsRepo.EliminarPorReserva(ctx, reservaID)
		if err != nil {
			return fmt.Errorf("%w: EliminarPorReserva - borrar asignaciones: %v", ErrInterno, err)
		}
		return s.recalcularTotal(ctx, reservaID)
	})
	if err != nil {
		s.logger.Error("EliminarPorReserva: reserva=%d: %v", reservaID, err)
		return 0, err
	}

	s.logger.Info("EliminarPorReserva: %d asignaciones borradas de reserva=%d", borradas, reservaID)
	return borradas, nil
}

// TotalPorReserva devuelve la suma de los importes congelados de la reserva.
func (s *Service) TotalPorReserva(ctx context.Context, reservaID int64) (float64, error) {
	existe, err := s.reservaRepo.Existe(ctx, reservaID)
	if err != nil {
		s.logger.Error("TotalPorReserva: error verificando reserva=%d: %v", reservaID, err)
		return 0, fmt.Errorf("%w: TotalPorReserva - verificar reserva: %v", ErrInterno, err)
	}
	if !existe {
		return 0, ErrReservaNoEncontrada
	}

	total, err := s.rsRepo.TotalImportesPorReserva(ctx, reservaID)
	if err != nil {
		s.logger.Error("TotalPorReserva: error del repositorio para reserva=%d: %v", reservaID, err)
		return 0, fmt.Errorf("%w: TotalPorReserva - repositorio: %v", ErrInterno, err)
	}
	return total, nil
}

// Estadisticas devuelve las métricas agregadas de las asignaciones.
func (s *Service) Estadisticas(ctx context.Context) (*domain.ReservaServicioEstadisticas, error) {
	est, err := s.rsRepo.Estadisticas(ctx)
	if err != nil {
		s.logger.Error("Estadisticas: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Estadisticas - repositorio: %v", ErrInterno, err)
	}
	return est, nil
}

// validarAsignaciones valida un lote que se agrega sobre lo ya asignado:
// además de las reglas del lote, ningún servicio puede estar ya en la
// reserva. Corre completo antes de la primera escritura.
func (s *Service) validarAsignaciones(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) error {
	if err := s.validarLote(ctx, reservaID, asignaciones); err != nil {
		return err
	}

	for _, a := range asignaciones {
		asignado, err := s.rsRepo.ExisteAsignacion(ctx, reservaID, a.ServicioID, nil)
		if err != nil {
			s.logger.Error("validarAsignaciones: error verificando asignación reserva=%d servicio=%d: %v",
				reservaID, a.ServicioID, err)
			return fmt.Errorf("%w: validarAsignaciones - verificar asignación: %v", ErrInterno, err)
		}
		if asignado {
			s.logger.Warn("validarAsignaciones: servicio=%d ya asignado a reserva=%d", a.ServicioID, reservaID)
			return fmt.Errorf("%w: servicio %d", ErrServicioYaAsignado, a.ServicioID)
		}
	}
	return nil
}

// validarLote chequea reserva existente, servicios existentes, importes en
// rango y ausencia de repetidos dentro del lote.
func (s *Service) validarLote(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) error {
	existe, err := s.reservaRepo.Existe(ctx, reservaID)
	if err != nil {
		s.logger.Error("validarLote: error verificando reserva=%d: %v", reservaID, err)
		return fmt.Errorf("%w: validarLote - verificar reserva: %v", ErrInterno, err)
	}
	if !existe {
		s.logger.Warn("validarLote: reserva id=%d no encontrada", reservaID)
		return ErrReservaNoEncontrada
	}

	vistos := make(map[int64]bool, len(asignaciones))
	for _, a := range asignaciones {
		if a.ServicioID <= 0 {
			return fmt.Errorf("%w: servicio_id inválido", ErrDatosInvalidos)
		}
		if !domain.ImporteServicioValido(a.Importe) {
			s.logger.Warn("validarLote: importe fuera de rango %.2f para servicio=%d", a.Importe, a.ServicioID)
			return fmt.Errorf("%w: el importe del servicio %d debe estar entre 0 y %.2f",
				ErrDatosInvalidos, a.ServicioID, domain.ImporteMaximoServicio)
		}
		if vistos[a.ServicioID] {
			s.logger.Warn("validarLote: servicio=%d repetido en el lote", a.ServicioID)
			return fmt.Errorf("%w: el servicio %d está repetido en el lote", ErrDatosInvalidos, a.ServicioID)
		}
		vistos[a.ServicioID] = true

		existeServicio, err := s.servicioRepo.Existe(ctx, a.ServicioID)
		if err != nil {
			s.logger.Error("validarLote: error verificando servicio=%d: %v", a.ServicioID, err)
			return fmt.Errorf("%w: validarLote - verificar servicio: %v", ErrInterno, err)
		}
		if !existeServicio {
			s.logger.Warn("validarLote: servicio id=%d no encontrado", a.ServicioID)
			return fmt.Errorf("%w: servicio %d", ErrServicioNoEncontrado, a.ServicioID)
		}
	}
	return nil
}

// recalcularTotal recalcula importe_total dentro de la transacción en curso.
func (s *Service) recalcularTotal(ctx context.Context, reservaID int64) error {
	detalle, err := s.reservaRepo.ObtenerPorID(ctx, reservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
			return ErrReservaNoEncontrada
		}
		return fmt.Errorf("%w: recalcularTotal - obtener reserva: %v", ErrInterno, err)
	}

	totalServicios, err := s.rsRepo.TotalImportesPorReserva(ctx, reservaID)
	if err != nil {
		return fmt.Errorf("%w: recalcularTotal - sumar servicios: %v", ErrInterno, err)
	}

	total := detalle.ImporteSalon + totalServicios
	if err := s.reservaRepo.ActualizarImporteTotal(ctx, reservaID, total); err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
			return ErrReservaNoEncontrada
		}
		return fmt.Errorf("%w: recalcularTotal - actualizar total: %v", ErrInterno, err)
	}
	return nil
}
