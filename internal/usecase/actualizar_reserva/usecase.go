package actualizar_reserva

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
	salonRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/salon"
)

// UseCase caso de uso de la actualización parcial de una reserva. Si el
// cambio toca la terna (salón, fecha, turno), la disponibilidad se vuelve a
// verificar excluyendo a la propia reserva, dentro de una transacción
// serializable.
//
// Un cambio de salón refresca el snapshot importe_salon al precio actual
// del nuevo salón y recalcula el total, salvo que el pedido traiga un
// importe_total explícito, que tiene prioridad.
type UseCase struct {
	reservaRepo  ReservaRepository
	salonRepo    SalonRepository
	usuarioRepo  UsuarioRepository
	turnoRepo    TurnoRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea el caso de uso de actualización de reserva
func NewUseCase(
	reservaRepo ReservaRepository,
	salonRepo SalonRepository,
	usuarioRepo UsuarioRepository,
	turnoRepo TurnoRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservaRepo:  reservaRepo,
		salonRepo:    salonRepo,
		usuarioRepo:  usuarioRepo,
		turnoRepo:    turnoRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute aplica la actualización parcial.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ActualizarReserva: reserva id=%d", req.ReservaID)

	// 1. Validación de forma
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ActualizarReserva: validación fallida: %v", err)
		return nil, err
	}

	// 2. Si se mueve la fecha, no puede ir al pasado
	if req.FechaReserva != nil {
		if err := validateFecha(*req.FechaReserva, uc.timeProvider.Now()); err != nil {
			uc.logger.Warn("ActualizarReserva: fecha pasada %s", req.FechaReserva.Format(domain.DateFormat))
			return nil, err
		}
	}

	// 3. La reserva tiene que existir; necesitamos sus valores actuales
	// para completar la terna efectiva
	actual, err := uc.reservaRepo.ObtenerPorID(ctx, req.ReservaID)
	if err != nil {
		if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
			uc.logger.Warn("ActualizarReserva: reserva id=%d no encontrada", req.ReservaID)
			return nil, ErrReservaNoEncontrada
		}
		uc.logger.Error("ActualizarReserva: error obteniendo reserva id=%d: %v", req.ReservaID, err)
		return nil, fmt.Errorf("%w: obtener reserva: %v", ErrInterno, err)
	}

	// 4. Referencias nuevas: usuario, turno y salón
	if err := uc.verificarReferencias(ctx, req); err != nil {
		return nil, err
	}

	var nuevoSalon *domain.Salon
	if req.SalonID != nil && *req.SalonID != actual.SalonID {
		nuevoSalon, err = uc.salonRepo.ObtenerPorID(ctx, *req.SalonID)
		if err != nil {
			if errors.Is(err, salonRepo.ErrSalonNoEncontrado) {
				uc.logger.Warn("ActualizarReserva: salón id=%d no encontrado", *req.SalonID)
				return nil, ErrSalonNoEncontrado
			}
			uc.logger.Error("ActualizarReserva: error obteniendo salón id=%d: %v", *req.SalonID, err)
			return nil, fmt.Errorf("%w: obtener salón: %v", ErrInterno, err)
		}
	}

	cambios := domain.ReservaUpdate{
		FechaReserva:     req.FechaReserva,
		SalonID:          req.SalonID,
		UsuarioID:        req.UsuarioID,
		TurnoID:          req.TurnoID,
		FotoCumpleaniero: req.FotoCumpleaniero,
		Tematica:         req.Tematica,
		ImporteTotal:     req.ImporteTotal,
	}

	// 5. Disponibilidad + update en una transacción serializable
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if cambios.CambiaTerna() {
			salonID, fecha, turnoID := ternaEfectiva(actual, req)
			disponible, err := uc.reservaRepo.EstaDisponible(txCtx, salonID, fecha, turnoID, &req.ReservaID)
			if err != nil {
				return fmt.Errorf("%w: verificar disponibilidad: %v", ErrInterno, err)
			}
			if !disponible {
				return ErrNoDisponible
			}
		}

		// El cambio de salón refresca el snapshot y, si no vino un total
		// explícito, lo recalcula con los servicios ya asignados
		if nuevoSalon != nil {
			cambios.ImporteSalon = &nuevoSalon.Importe
			if req.ImporteTotal == nil {
				totalServicios, err := uc.reservaRepo.TotalServicios(txCtx, req.ReservaID)
				if err != nil {
					return fmt.Errorf("%w: sumar servicios: %v", ErrInterno, err)
				}
				total := nuevoSalon.Importe + totalServicios
				cambios.ImporteTotal = &total
			}
		}

		if err := uc.reservaRepo.Actualizar(txCtx, req.ReservaID, cambios); err != nil {
			if errors.Is(err, reservaRepo.ErrReservaDuplicada) {
				return ErrNoDisponible
			}
			if errors.Is(err, reservaRepo.ErrReservaNoEncontrada) {
				return ErrReservaNoEncontrada
			}
			return fmt.Errorf("%w: actualizar reserva: %v", ErrInterno, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoDisponible) {
			uc.logger.Warn("ActualizarReserva: la nueva terna de reserva id=%d no está disponible", req.ReservaID)
		} else if !errors.Is(err, ErrReservaNoEncontrada) {
			uc.logger.Error("ActualizarReserva: transacción fallida para reserva id=%d: %v", req.ReservaID, err)
		}
		return nil, err
	}

	// 6. Detalle actualizado para la respuesta
	detalle, err := uc.reservaRepo.ObtenerPorID(ctx, req.ReservaID)
	if err != nil {
		uc.logger.Error("ActualizarReserva: error obteniendo detalle de reserva id=%d: %v", req.ReservaID, err)
		return nil, fmt.Errorf("%w: obtener detalle: %v", ErrInterno, err)
	}

	uc.logger.Info("ActualizarReserva: reserva id=%d actualizada total=%.2f", detalle.ID, detalle.ImporteTotal)
	return &Response{Reserva: detalle}, nil
}

func (uc *UseCase) verificarReferencias(ctx context.Context, req *Request) error {
	if req.UsuarioID != nil {
		existe, err := uc.usuarioRepo.Existe(ctx, *req.UsuarioID)
		if err != nil {
			uc.logger.Error("ActualizarReserva: error verificando usuario id=%d: %v", *req.UsuarioID, err)
			return fmt.Errorf("%w: verificar usuario: %v", ErrInterno, err)
		}
		if !existe {
			uc.logger.Warn("ActualizarReserva: usuario id=%d no encontrado", *req.UsuarioID)
			return ErrUsuarioNoEncontrado
		}
	}

	if req.TurnoID != nil {
		existe, err := uc.turnoRepo.Existe(ctx, *req.TurnoID)
		if err != nil {
			uc.logger.Error("ActualizarReserva: error verificando turno id=%d: %v", *req.TurnoID, err)
			return fmt.Errorf("%w: verificar turno: %v", ErrInterno, err)
		}
		if !existe {
			uc.logger.Warn("ActualizarReserva: turno id=%d no encontrado", *req.TurnoID)
			return ErrTurnoNoEncontrado
		}
	}

	return nil
}

// ternaEfectiva combina los valores nuevos con los actuales para saber qué
// terna hay que verificar.
func ternaEfectiva(actual *domain.ReservaDetalle, req *Request) (int64, time.Time, int64) {
	salonID := actual.SalonID
	if req.SalonID != nil {
		salonID = *req.SalonID
	}
	fecha := actual.FechaReserva
	if req.FechaReserva != nil {
		fecha = *req.FechaReserva
	}
	turnoID := actual.TurnoID
	if req.TurnoID != nil {
		turnoID = *req.TurnoID
	}
	return salonID, fecha, turnoID
}
