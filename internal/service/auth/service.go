package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	usuarioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/usuario"
)

// Claims el payload del token de sesión.
type Claims struct {
	UsuarioID     int64  `json:"usuario_id"`
	NombreUsuario string `json:"nombre_usuario"`
	TipoUsuario   int    `json:"tipo_usuario"`
	jwt.RegisteredClaims
}

// Service servicio de autenticación con tokens JWT firmados con HS256.
type Service struct {
	usuarioRepo UsuarioRepository
	secreto     []byte
	duracion    time.Duration
	logger      Logger
}

// NewService crea el servicio de autenticación. duracionHoras define la
// vigencia de los tokens emitidos.
func NewService(usuarioRepo UsuarioRepository, secreto string, duracionHoras int, logger Logger) *Service {
	return &Service{
		usuarioRepo: usuarioRepo,
		secreto:     []byte(secreto),
		duracion:    time.Duration(duracionHoras) * time.Hour,
		logger:      logger,
	}
}

// Login verifica las credenciales y devuelve el usuario con un token
// firmado. Usuario inexistente y contraseña incorrecta devuelven el mismo
// error para no filtrar cuáles emails están registrados.
func (s *Service) Login(ctx context.Context, nombreUsuario, contrasenia string) (*domain.Usuario, string, error) {
	s.logger.Info("Login: intento de nombre_usuario=%q", nombreUsuario)

	usuario, err := s.usuarioRepo.ObtenerPorNombreUsuario(ctx, nombreUsuario)
	if err != nil {
		if errors.Is(err, usuarioRepo.ErrUsuarioNoEncontrado) {
			s.logger.Warn("Login: nombre_usuario=%q no registrado", nombreUsuario)
			return nil, "", ErrCredencialesInvalidas
		}
		s.logger.Error("Login: error del repositorio para nombre_usuario=%q: %v", nombreUsuario, err)
		return nil, "", fmt.Errorf("%w: Login - repositorio: %v", ErrInterno, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Contrasenia), []byte(contrasenia)); err != nil {
		s.logger.Warn("Login: contraseña incorrecta para nombre_usuario=%q", nombreUsuario)
		return nil, "", ErrCredencialesInvalidas
	}

	token, err := s.GenerarToken(usuario)
	if err != nil {
		s.logger.Error("Login: error firmando token para usuario id=%d: %v", usuario.ID, err)
		return nil, "", fmt.Errorf("%w: Login - firmar token: %v", ErrInterno, err)
	}

	s.logger.Info("Login: sesión iniciada para usuario id=%d", usuario.ID)
	return usuario, token, nil
}

// GenerarToken emite un JWT con los datos mínimos del usuario.
func (s *Service) GenerarToken(usuario *domain.Usuario) (string, error) {
	ahora := time.Now()
	claims := Claims{
		UsuarioID:     usuario.ID,
		NombreUsuario: usuario.NombreUsuario,
		TipoUsuario:   usuario.TipoUsuario,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(ahora),
			ExpiresAt: jwt.NewNumericDate(ahora.Add(s.duracion)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	firmado, err := token.SignedString(s.secreto)
	if err != nil {
		return "", fmt.Errorf("%w: GenerarToken - firmar: %v", ErrInterno, err)
	}
	return firmado, nil
}

// VerificarToken valida firma y vigencia, y devuelve los claims.
func (s *Service) VerificarToken(tokenFirmado string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenFirmado, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secreto, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
