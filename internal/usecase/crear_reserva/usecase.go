package crear_reserva

import (
	"context"
	"errors"
	"fmt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
	salonRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/salon"
	servicioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/servicio"
)

// UseCase caso de uso del alta de reserva. La verificación de
// disponibilidad y el alta corren en una transacción serializable para que
// dos pedidos concurrentes sobre la misma terna (salón, fecha, turno) no
// puedan entrar los dos; el índice único de la tabla es la segunda línea
// de defensa.
type UseCase struct {
	reservaRepo  ReservaRepository
	rsRepo       ReservaServicioRepository
	salonRepo    SalonRepository
	usuarioRepo  UsuarioRepository
	turnoRepo    TurnoRepository
	servicioRepo ServicioRepository
	notificador  Notificador
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase crea el caso de uso de alta de reserva
func NewUseCase(
	reservaRepo ReservaRepository,
	rsRepo ReservaServicioRepository,
	salonRepo SalonRepository,
	usuarioRepo UsuarioRepository,
	turnoRepo TurnoRepository,
	servicioRepo ServicioRepository,
	notificador Notificador,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservaRepo:  reservaRepo,
		rsRepo:       rsRepo,
		salonRepo:    salonRepo,
		usuarioRepo:  usuarioRepo,
		turnoRepo:    turnoRepo,
		servicioRepo: servicioRepo,
		notificador:  notificador,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute da de alta la reserva con sus servicios.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CrearReserva: usuario=%d salon=%d turno=%d fecha=%s servicios=%d",
		req.UsuarioID, req.SalonID, req.TurnoID, req.FechaReserva.Format(domain.DateFormat), len(req.Servicios))

	// 1. Validación de forma
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CrearReserva: validación fallida: %v", err)
		return nil, err
	}

	// 2. La fecha no puede estar en el pasado
	if err := validateFecha(req.FechaReserva, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CrearReserva: fecha pasada %s", req.FechaReserva.Format(domain.DateFormat))
		return nil, err
	}

	// 3. Resolvemos el salón; su importe actual queda congelado en la reserva
	salon, err := uc.salonRepo.ObtenerPorID(ctx, req.SalonID)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNoEncontrado) {
			uc.logger.Warn("CrearReserva: salón id=%d no encontrado", req.SalonID)
			return nil, ErrSalonNoEncontrado
		}
		uc.logger.Error("CrearReserva: error obteniendo salón id=%d: %v", req.SalonID, err)
		return nil, fmt.Errorf("%w: obtener salón: %v", ErrInterno, err)
	}

	// 4. El usuario y el turno tienen que existir
	if err := uc.verificarUsuarioYTurno(ctx, req.UsuarioID, req.TurnoID); err != nil {
		return nil, err
	}

	// 5. Resolvemos los servicios y congelamos sus importes
	asignaciones, totalServicios, err := uc.resolverServicios(ctx, req.Servicios)
	if err != nil {
		return nil, err
	}

	var creada *domain.Reserva
	var asignadas []*domain.ReservaServicio

	// 6. Disponibilidad + alta en una transacción serializable
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		disponible, err := uc.reservaRepo.EstaDisponible(txCtx, req.SalonID, req.FechaReserva, req.TurnoID, nil)
		if err != nil {
			return fmt.Errorf("%w: verificar disponibilidad: %v", ErrInterno, err)
		}
		if !disponible {
			return ErrNoDisponible
		}

		reserva := &domain.Reserva{
			FechaReserva:     req.FechaReserva,
			SalonID:          req.SalonID,
			UsuarioID:        req.UsuarioID,
			TurnoID:          req.TurnoID,
			FotoCumpleaniero: req.FotoCumpleaniero,
			Tematica:         req.Tematica,
			ImporteSalon:     salon.Importe,
			ImporteTotal:     salon.Importe + totalServicios,
		}
		creada, err = uc.reservaRepo.Crear(txCtx, reserva)
		if err != nil {
			if errors.Is(err, reservaRepo.ErrReservaDuplicada) {
				return ErrNoDisponible
			}
			return fmt.Errorf("%w: crear reserva: %v", ErrInterno, err)
		}

		if len(asignaciones) > 0 {
			asignadas, err = uc.rsRepo.CrearMultiples(txCtx, creada.ID, asignaciones)
			if err != nil {
				return fmt.Errorf("%w: crear asignaciones: %v", ErrInterno, err)
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoDisponible) {
			uc.logger.Warn("CrearReserva: salón=%d fecha=%s turno=%d no disponible",
				req.SalonID, req.FechaReserva.Format(domain.DateFormat), req.TurnoID)
		} else {
			uc.logger.Error("CrearReserva: transacción fallida: %v", err)
		}
		return nil, err
	}

	// 7. Detalle completo para la respuesta y la notificación
	detalle, err := uc.reservaRepo.ObtenerPorID(ctx, creada.ID)
	if err != nil {
		uc.logger.Error("CrearReserva: error obteniendo detalle de reserva id=%d: %v", creada.ID, err)
		return nil, fmt.Errorf("%w: obtener detalle: %v", ErrInterno, err)
	}

	// 8. Notificación best-effort: si el mail falla, la reserva ya está hecha
	if err := uc.notificador.EnviarConfirmacionReserva(detalle); err != nil {
		uc.logger.Warn("CrearReserva: no se pudo enviar la confirmación de reserva id=%d: %v", creada.ID, err)
	}

	uc.logger.Info("CrearReserva: reserva creada id=%d total=%.2f", creada.ID, creada.ImporteTotal)
	return &Response{Reserva: detalle, Servicios: asignadas}, nil
}

func (uc *UseCase) verificarUsuarioYTurno(ctx context.Context, usuarioID, turnoID int64) error {
	existeUsuario, err := uc.usuarioRepo.Existe(ctx, usuarioID)
	if err != nil {
		uc.logger.Error("CrearReserva: error verificando usuario id=%d: %v", usuarioID, err)
		return fmt.Errorf("%w: verificar usuario: %v", ErrInterno, err)
	}
	if !existeUsuario {
		uc.logger.Warn("CrearReserva: usuario id=%d no encontrado", usuarioID)
		return ErrUsuarioNoEncontrado
	}

	existeTurno, err := uc.turnoRepo.Existe(ctx, turnoID)
	if err != nil {
		uc.logger.Error("CrearReserva: error verificando turno id=%d: %v", turnoID, err)
		return fmt.Errorf("%w: verificar turno: %v", ErrInterno, err)
	}
	if !existeTurno {
		uc.logger.Warn("CrearReserva: turno id=%d no encontrado", turnoID)
		return ErrTurnoNoEncontrado
	}

	return nil
}

// resolverServicios arma las asignaciones congelando el importe pedido o,
// si no vino, el precio actual del catálogo. Devuelve también la suma.
func (uc *UseCase) resolverServicios(ctx context.Context, solicitados []ServicioSolicitado) ([]domain.ServicioAsignacion, float64, error) {
	asignaciones := make([]domain.ServicioAsignacion, 0, len(solicitados))
	var total float64

	for _, s := range solicitados {
		servicio, err := uc.servicioRepo.ObtenerPorID(ctx, s.ServicioID)
		if err != nil {
			if errors.Is(err, servicioRepo.ErrServicioNoEncontrado) {
				uc.logger.Warn("CrearReserva: servicio id=%d no encontrado", s.ServicioID)
				return nil, 0, fmt.Errorf("%w: servicio %d", ErrServicioNoEncontrado, s.ServicioID)
			}
			uc.logger.Error("CrearReserva: error obteniendo servicio id=%d: %v", s.ServicioID, err)
			return nil, 0, fmt.Errorf("%w: obtener servicio: %v", ErrInterno, err)
		}

		importe := servicio.Importe
		if s.Importe != nil {
			importe = *s.Importe
		}
		asignaciones = append(asignaciones, domain.ServicioAsignacion{
			ServicioID: s.ServicioID,
			Importe:    importe,
		})
		total += importe
	}

	return asignaciones, total, nil
}
