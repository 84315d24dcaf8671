package turnos

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	turnoRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/turno"
)

// Service servicio para el ABM de turnos
type Service struct {
	turnoRepo TurnoRepository
	logger    Logger
}

// NewService crea el servicio de turnos
func NewService(turnoRepo TurnoRepository, logger Logger) *Service {
	return &Service{
		turnoRepo: turnoRepo,
		logger:    logger,
	}
}

// ObtenerTodos devuelve los turnos activos ordenados por orden.
func (s *Service) ObtenerTodos(ctx context.Context) ([]*domain.Turno, error) {
	turnos, err := s.turnoRepo.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodos: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodos - repositorio: %v", ErrInterno, err)
	}
	return turnos, nil
}

// ObtenerPorID devuelve un turno activo por su ID.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.Turno, error) {
	turno, err := s.turnoRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNoEncontrado) {
			s.logger.Warn("ObtenerPorID: turno id=%d no encontrado", id)
			return nil, ErrTurnoNoEncontrado
		}
		s.logger.Error("ObtenerPorID: error del repositorio para turno id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return turno, nil
}

// Crear valida y da de alta un turno.
func (s *Service) Crear(ctx context.Context, turno *domain.Turno) (*domain.Turno, error) {
	s.logger.Info("Crear: alta de turno orden=%d %s-%s", turno.Orden, turno.HoraDesde, turno.HoraHasta)

	if turno.Orden <= 0 {
		s.logger.Warn("Crear: orden inválido %d", turno.Orden)
		return nil, fmt.Errorf("%w: el orden debe ser mayor a cero", ErrDatosInvalidos)
	}
	if !horaValida(turno.HoraDesde) || !horaValida(turno.HoraHasta) {
		s.logger.Warn("Crear: horario inválido %s-%s", turno.HoraDesde, turno.HoraHasta)
		return nil, fmt.Errorf("%w: los horarios deben tener formato HH:MM", ErrDatosInvalidos)
	}

	creado, err := s.turnoRepo.Crear(ctx, turno)
	if err != nil {
		s.logger.Error("Crear: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Crear - repositorio: %v", ErrInterno, err)
	}

	s.logger.Info("Crear: turno creado id=%d", creado.ID)
	return creado, nil
}

// Actualizar aplica una actualización parcial sobre un turno activo.
func (s *Service) Actualizar(ctx context.Context, id int64, cambios domain.TurnoUpdate) (*domain.Turno, error) {
	s.logger.Info("Actualizar: turno id=%d", id)

	if cambios.Vacio() {
		s.logger.Warn("Actualizar: turno id=%d sin campos a modificar", id)
		return nil, fmt.Errorf("%w: no se envió ningún campo a modificar", ErrDatosInvalidos)
	}
	if cambios.Orden != nil && *cambios.Orden <= 0 {
		return nil, fmt.Errorf("%w: el orden debe ser mayor a cero", ErrDatosInvalidos)
	}
	if cambios.HoraDesde != nil && !horaValida(*cambios.HoraDesde) {
		return nil, fmt.Errorf("%w: hora_desde debe tener formato HH:MM", ErrDatosInvalidos)
	}
	if cambios.HoraHasta != nil && !horaValida(*cambios.HoraHasta) {
		return nil, fmt.Errorf("%w: hora_hasta debe tener formato HH:MM", ErrDatosInvalidos)
	}

	if err := s.turnoRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNoEncontrado) {
			s.logger.Warn("Actualizar: turno id=%d no encontrado", id)
			return nil, ErrTurnoNoEncontrado
		}
		s.logger.Error("Actualizar: error del repositorio para turno id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Actualizar - repositorio: %v", ErrInterno, err)
	}

	return s.ObtenerPorID(ctx, id)
}

// Eliminar hace la baja lógica de un turno.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: baja lógica de turno id=%d", id)

	if err := s.turnoRepo.EliminarLogico(ctx, id); err != nil {
		if errors.Is(err, turnoRepo.ErrTurnoNoEncontrado) {
			s.logger.Warn("Eliminar: turno id=%d no encontrado", id)
			return ErrTurnoNoEncontrado
		}
		s.logger.Error("Eliminar: error del repositorio para turno id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - repositorio: %v", ErrInterno, err)
	}

	return nil
}

func horaValida(hora string) bool {
	_, err := time.Parse(domain.TimeFormat, hora)
	return err == nil
}
