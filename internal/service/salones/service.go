package salones

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	salonRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/salon"
)

// Service servicio para el ABM de salones
type Service struct {
	salonRepo SalonRepository
	logger    Logger
}

// NewService crea el servicio de salones
func NewService(salonRepo SalonRepository, logger Logger) *Service {
	return &Service{
		salonRepo: salonRepo,
		logger:    logger,
	}
}

// ObtenerTodos devuelve los salones activos.
func (s *Service) ObtenerTodos(ctx context.Context) ([]*domain.Salon, error) {
	salones, err := s.salonRepo.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodos: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodos - repositorio: %v", ErrInterno, err)
	}
	return salones, nil
}

// ObtenerPorID devuelve un salón activo por su ID.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.Salon, error) {
	salon, err := s.salonRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, salonRepo.ErrSalonNoEncontrado) {
			s.logger.Warn("ObtenerPorID: salón id=%d no encontrado", id)
			return nil, ErrSalonNoEncontrado
		}
		s.logger.Error("ObtenerPorID: error del repositorio para salón id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return salon, nil
}

// Crear valida y da de alta un salón.
func (s *Service) Crear(ctx context.Context, salon *domain.Salon) (*domain.Salon, error) {
	s.logger.Info("Crear: alta de salón titulo=%q", salon.Titulo)

	if err := validarSalon(salon); err != nil {
		s.logger.Warn("Crear: datos inválidos: %v", err)
		return nil, err
	}

	creado, err := s.salonRepo.Crear(ctx, salon)
	if err != nil {
		s.logger.Error("Crear: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Crear - repositorio: %v", ErrInterno, err)
	}

	s.logger.Info("Crear: salón creado id=%d", creado.ID)
	return creado, nil
}

// Actualizar aplica una actualización parcial sobre un salón activo.
func (s *Service) Actualizar(ctx context.Context, id int64, cambios domain.SalonUpdate) (*domain.Salon, error) {
	s.logger.Info("Actualizar: salón id=%d", id)

	if cambios.Vacio() {
		s.logger.Warn("Actualizar: salón id=%d sin campos a modificar", id)
		return nil, fmt.Errorf("%w: no se envió ningún campo a modificar", ErrDatosInvalidos)
	}
	if err := validarSalonUpdate(cambios); err != nil {
		s.logger.Warn("Actualizar: datos inválidos para salón id=%d: %v", id, err)
		return nil, err
	}

	if err := s.salonRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNoEncontrado) {
			s.logger.Warn("Actualizar: salón id=%d no encontrado", id)
			return nil, ErrSalonNoEncontrado
		}
		s.logger.Error("Actualizar: error del repositorio para salón id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Actualizar - repositorio: %v", ErrInterno, err)
	}

	return s.ObtenerPorID(ctx, id)
}

// Eliminar hace la baja lógica de un salón.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: baja lógica de salón id=%d", id)

	if err := s.salonRepo.EliminarLogico(ctx, id); err != nil {
		if errors.Is(err, salonRepo.ErrSalonNoEncontrado) {
			s.logger.Warn("Eliminar: salón id=%d no encontrado", id)
			return ErrSalonNoEncontrado
		}
		s.logger.Error("Eliminar: error del repositorio para salón id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - repositorio: %v", ErrInterno, err)
	}

	return nil
}

// Estadisticas devuelve las métricas agregadas de los salones activos.
func (s *Service) Estadisticas(ctx context.Context) (*domain.SalonEstadisticas, error) {
	est, err := s.salonRepo.Estadisticas(ctx)
	if err != nil {
		s.logger.Error("Estadisticas: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Estadisticas - repositorio: %v", ErrInterno, err)
	}
	return est, nil
}

func validarSalon(salon *domain.Salon) error {
	if strings.TrimSpace(salon.Titulo) == "" {
		return fmt.Errorf("%w: el título es obligatorio", ErrDatosInvalidos)
	}
	if strings.TrimSpace(salon.Direccion) == "" {
		return fmt.Errorf("%w: la dirección es obligatoria", ErrDatosInvalidos)
	}
	if salon.Capacidad <= 0 {
		return fmt.Errorf("%w: la capacidad debe ser mayor a cero", ErrDatosInvalidos)
	}
	if salon.Importe < domain.ImporteMinimo {
		return fmt.Errorf("%w: el importe debe ser mayor a cero", ErrDatosInvalidos)
	}
	return nil
}

func validarSalonUpdate(cambios domain.SalonUpdate) error {
	if cambios.Titulo != nil && strings.TrimSpace(*cambios.Titulo) == "" {
		return fmt.Errorf("%w: el título no puede quedar vacío", ErrDatosInvalidos)
	}
	if cambios.Direccion != nil && strings.TrimSpace(*cambios.Direccion) == "" {
		return fmt.Errorf("%w: la dirección no puede quedar vacía", ErrDatosInvalidos)
	}
	if cambios.Capacidad != nil && *cambios.Capacidad <= 0 {
		return fmt.Errorf("%w: la capacidad debe ser mayor a cero", ErrDatosInvalidos)
	}
	if cambios.Importe != nil && *cambios.Importe < domain.ImporteMinimo {
		return fmt.Errorf("%w: el importe debe ser mayor a cero", ErrDatosInvalidos)
	}
	return nil
}
