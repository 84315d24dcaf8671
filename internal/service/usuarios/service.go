package usuarios

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	usuarioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/usuario"
)

const largoMinimoContrasenia = 6

// Service servicio para el ABM de usuarios. Hashea las contraseñas con
// bcrypt antes de persistirlas.
type Service struct {
	usuarioRepo UsuarioRepository
	logger      Logger
}

// NewService crea el servicio de usuarios
func NewService(usuarioRepo UsuarioRepository, logger Logger) *Service {
	return &Service{
		usuarioRepo: usuarioRepo,
		logger:      logger,
	}
}

// ObtenerTodos devuelve los usuarios activos.
func (s *Service) ObtenerTodos(ctx context.Context) ([]*domain.Usuario, error) {
	usuarios, err := s.usuarioRepo.ObtenerTodos(ctx)
	if err != nil {
		s.logger.Error("ObtenerTodos: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: ObtenerTodos - repositorio: %v", ErrInterno, err)
	}
	return usuarios, nil
}

// ObtenerPorID devuelve un usuario activo por su ID.
func (s *Service) ObtenerPorID(ctx context.Context, id int64) (*domain.Usuario, error) {
	usuario, err := s.usuarioRepo.ObtenerPorID(ctx, id)
	if err != nil {
		if errors.Is(err, usuarioRepo.ErrUsuarioNoEncontrado) {
			s.logger.Warn("ObtenerPorID: usuario id=%d no encontrado", id)
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("ObtenerPorID: error del repositorio para usuario id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: ObtenerPorID - repositorio: %v", ErrInterno, err)
	}
	return usuario, nil
}

// Crear valida, hashea la contraseña y da de alta un usuario. La contraseña
// llega en texto plano en Contrasenia y se reemplaza por el hash.
func (s *Service) Crear(ctx context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	s.logger.Info("Crear: alta de usuario nombre_usuario=%q", usuario.NombreUsuario)

	if err := validarUsuario(usuario); err != nil {
		s.logger.Warn("Crear: datos inválidos: %v", err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(usuario.Contrasenia), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Crear: error hasheando contraseña: %v", err)
		return nil, fmt.Errorf("%w: Crear - hashear contraseña: %v", ErrInterno, err)
	}
	usuario.Contrasenia = string(hash)

	creado, err := s.usuarioRepo.Crear(ctx, usuario)
	if err != nil {
		if errors.Is(err, usuarioRepo.ErrNombreUsuarioDuplicado) {
			s.logger.Warn("Crear: nombre_usuario duplicado %q", usuario.NombreUsuario)
			return nil, ErrNombreUsuarioDuplicado
		}
		s.logger.Error("Crear: error del repositorio: %v", err)
		return nil, fmt.Errorf("%w: Crear - repositorio: %v", ErrInterno, err)
	}

	s.logger.Info("Crear: usuario creado id=%d", creado.ID)
	return creado, nil
}

// Actualizar aplica una actualización parcial sobre un usuario activo.
// El nombre de usuario no se puede cambiar; la contraseña, si viene, se
// hashea acá.
func (s *Service) Actualizar(ctx context.Context, id int64, cambios domain.UsuarioUpdate) (*domain.Usuario, error) {
	s.logger.Info("Actualizar: usuario id=%d", id)

	if cambios.Vacio() {
		s.logger.Warn("Actualizar: usuario id=%d sin campos a modificar", id)
		return nil, fmt.Errorf("%w: no se envió ningún campo a modificar", ErrDatosInvalidos)
	}
	if err := validarUsuarioUpdate(cambios); err != nil {
		s.logger.Warn("Actualizar: datos inválidos para usuario id=%d: %v", id, err)
		return nil, err
	}

	if cambios.Contrasenia != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*cambios.Contrasenia), bcrypt.DefaultCost)
		if err != nil {
			s.logger.Error("Actualizar: error hasheando contraseña: %v", err)
			return nil, fmt.Errorf("%w: Actualizar - hashear contraseña: %v", ErrInterno, err)
		}
		hashed := string(hash)
		cambios.Contrasenia = &hashed
	}

	if err := s.usuarioRepo.Actualizar(ctx, id, cambios); err != nil {
		if errors.Is(err, usuarioRepo.ErrUsuarioNoEncontrado) {
			s.logger.Warn("Actualizar: usuario id=%d no encontrado", id)
			return nil, ErrUsuarioNoEncontrado
		}
		s.logger.Error("Actualizar: error del repositorio para usuario id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Actualizar - repositorio: %v", ErrInterno, err)
	}

	return s.ObtenerPorID(ctx, id)
}

// Eliminar hace la baja lógica de un usuario.
func (s *Service) Eliminar(ctx context.Context, id int64) error {
	s.logger.Info("Eliminar: baja lógica de usuario id=%d", id)

	if err := s.usuarioRepo.EliminarLogico(ctx, id); err != nil {
		if errors.Is(err, usuarioRepo.ErrUsuarioNoEncontrado) {
			s.logger.Warn("Eliminar: usuario id=%d no encontrado", id)
			return ErrUsuarioNoEncontrado
		}
		s.logger.Error("Eliminar: error del repositorio para usuario id=%d: %v", id, err)
		return fmt.Errorf("%w: Eliminar - repositorio: %v", ErrInterno, err)
	}

	return nil
}

func validarUsuario(usuario *domain.Usuario) error {
	if strings.TrimSpace(usuario.Nombre) == "" {
		return fmt.Errorf("%w: el nombre es obligatorio", ErrDatosInvalidos)
	}
	if strings.TrimSpace(usuario.Apellido) == "" {
		return fmt.Errorf("%w: el apellido es obligatorio", ErrDatosInvalidos)
	}
	if !domain.EmailValido(usuario.NombreUsuario) {
		return fmt.Errorf("%w: el nombre de usuario debe ser un email válido", ErrDatosInvalidos)
	}
	if len(usuario.Contrasenia) < largoMinimoContrasenia {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", ErrDatosInvalidos, largoMinimoContrasenia)
	}
	if !domain.TipoUsuarioValido(usuario.TipoUsuario) {
		return fmt.Errorf("%w: tipo de usuario fuera de rango", ErrDatosInvalidos)
	}
	if usuario.Celular != nil && *usuario.Celular != "" && !domain.CelularValido(*usuario.Celular) {
		return fmt.Errorf("%w: el celular no tiene un formato válido", ErrDatosInvalidos)
	}
	return nil
}

func validarUsuarioUpdate(cambios domain.UsuarioUpdate) error {
	if cambios.Nombre != nil && strings.TrimSpace(*cambios.Nombre) == "" {
		return fmt.Errorf("%w: el nombre no puede quedar vacío", ErrDatosInvalidos)
	}
	if cambios.Apellido != nil && strings.TrimSpace(*cambios.Apellido) == "" {
		return fmt.Errorf("%w: el apellido no puede quedar vacío", ErrDatosInvalidos)
	}
	if cambios.Contrasenia != nil && len(*cambios.Contrasenia) < largoMinimoContrasenia {
		return fmt.Errorf("%w: la contraseña debe tener al menos %d caracteres", ErrDatosInvalidos, largoMinimoContrasenia)
	}
	if cambios.TipoUsuario != nil && !domain.TipoUsuarioValido(*cambios.TipoUsuario) {
		return fmt.Errorf("%w: tipo de usuario fuera de rango", ErrDatosInvalidos)
	}
	if cambios.Celular != nil && *cambios.Celular != "" && !domain.CelularValido(*cambios.Celular) {
		return fmt.Errorf("%w: el celular no tiene un formato válido", ErrDatosInvalidos)
	}
	return nil
}
