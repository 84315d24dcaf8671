package servicios

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	servicioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/servicio"
)

// Service servicio para el ABM del catálogo de servicios contratables
type Service struct {
	servicioRepo ServicioRepository
	logger       Logger
}

// NewService crea el servicio del catálogo
func NewService(servicioRepo ServicioRepository, logger Logger) *Service {
	return &Service{
		servicioRepo: servicioRepo,
		logger:       logger,
	}
}

// ObtenerTodos devuelve los servicios activos.
func (s *Service) ObtenerTodos(ctx context.Context) ([]*domain.Servicio, error) {
	servicios, err := s.servicioRepo.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodos: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodos - repositorio: %v", ErrInterno, err)
	}
	return servicios, nil
}

// ObtenerPorID devuelve un servicio activo por su ID.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.Servicio, error) {
	servicio, err := s.servicioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, servicioRepo.ErrServicioNoEncontrado) {
			s.logger.Warn("ObtenerPorID: servicio id=%d no encontrado", id)
			return nil, ErrServicioNoEncontrado
		}
		s.logger.Error("ObtenerPorID: error del repositorio para servicio id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return servicio, nil
}

// Crear valida y da de alta un servicio. La descripción es única entre los
// servicios activos.
func (s *Service) Crear(ctx context.Context, servicio *domain.Servicio) (*domain.Servicio, error) {
	s.logger.Info("Crear: alta de servicio descripcion=%q", servicio.Descripcion)

	servicio.Descripcion = strings.TrimSpace(servicio.Descripcion)
	if servicio.Descripcion == "" {
		s.logger.Warn("Crear: descripción vacía")
		return nil, fmt.Errorf("%w: la descripción es obligatoria", ErrDatosInvalidos)
	}
	if len(servicio.Descripcion) > domain.MaxLenDescripcion {
		return nil, fmt.Errorf("%w: la descripción supera los %d caracteres", ErrDatosInvalidos, domain.MaxLenDescripcion)
	}
	if !domain.ImporteCatalogoValido(servicio.Importe) {
		s.logger.Warn("Crear: importe inválido %.2f", servicio.Importe)
		return nil, fmt.Errorf("%w: el importe debe estar entre %.2f y %.2f", ErrDatosInvalidos, domain.ImporteMinimo, domain.ImporteMaximoServicio)
	}

	duplicada, err := s.servicioRepo.ExisteDescripcion(ctx, servicio.Descripcion, nil)
	if err != nil {
		s.logger.Error("Crear: error verificando descripción: %v", err)
		return nil, fmt.Errorf("%w: Crear - verificar descripción: %v", ErrInterno, err)
	}
	if duplicada {
		s.logger.Warn("Crear: descripción duplicada %q", servicio.Descripcion)
		return nil, ErrDescripcionDuplicada
	}

	creado, err := s.servicioRepo.Crear(ctx, servicio)
	if err != nil {
		if errors.Is(err, servicioRepo.ErrDescripcionDuplicada) {
			return nil, ErrDescripcionDuplicada
		}
		s.logger.Error("Crear: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Crear - repositorio: %v", ErrInterno, err)
	}

	s.logger.Info("Crear: servicio creado id=%d", creado.ID)
	return creado, nil
}

// Actualizar aplica una actualización parcial sobre un servicio activo.
func (s *Service) Actualizar(ctx context.Context, id int64, cambios domain.ServicioUpdate) (*domain.Servicio, error) {
	s.logger.Info("Actualizar: servicio id=%d", id)

	if cambios.Vacio() {
		s.logger.Warn("Actualizar: servicio id=%d sin campos a modificar", id)
		return nil, fmt.Errorf("%w: no se envió ningún campo a modificar", ErrDatosInvalidos)
	}
	if cambios.Descripcion != nil {
		descripcion := strings.TrimSpace(*cambios.Descripcion)
		if descripcion == "" {
			return nil, fmt.Errorf("%w: la descripción no puede quedar vacía", ErrDatosInvalidos)
		}
		if len(descripcion) > domain.MaxLenDescripcion {
			return nil, fmt.Errorf("%w: la descripción supera los %d caracteres", ErrDatosInvalidos, domain.MaxLenDescripcion)
		}
		cambios.Descripcion = &descripcion

		duplicada, err := s.servicioRepo.ExisteDescripcion(ctx, descripcion, &id)
		if err != nil {
			s.logger.Error("Actualizar: error verificando descripción: %v", err)
			return nil, fmt.Errorf("%w: Actualizar - verificar descripción: %v", ErrInterno, err)
		}
		if duplicada {
			s.logger.Warn("Actualizar: descripción duplicada %q", descripcion)
			return nil, ErrDescripcionDuplicada
		}
	}
	if cambios.Importe != nil && !domain.ImporteCatalogoValido(*cambios.Importe) {
		return nil, fmt.Errorf("%w: el importe debe estar entre %.2f y %.2f", ErrDatosInvalidos, domain.ImporteMinimo, domain.ImporteMaximoServicio)
	}

	if err := s.servicioRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, servicioRepo.ErrServicioNoEncontrado) {
			s.logger.Warn("Actualizar: servicio id=%d no encontrado", id)
			return nil, ErrServicioNoEncontrado
		}
		if errors.Is(err, servicioRepo.ErrDescripcionDuplicada) {
			return nil, ErrDescripcionDuplicada
		}
		s.logger.Error("Actualizar: error del repositorio para servicio id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Actualizar - repositorio: %v", ErrInterno, err)
	}

	return s.ObtenerPorID(ctx, id)
}

// Eliminar hace la baja lógica de un servicio. Las asignaciones existentes
// conservan su importe histórico.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: baja lógica de servicio id=%d", id)

	if err := s.servicioRepo.EliminarLogico(ctx, id); err != nil {
		if errors.Is(err, servicioRepo.ErrServicioNoEncontrado) {
			s.logger.Warn("Eliminar: servicio id=%d no encontrado", id)
			return ErrServicioNoEncontrado
		}
		s.logger.Error("Eliminar: error del repositorio para servicio id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - repositorio: %v", ErrInterno, err)
	}

	return nil
}
