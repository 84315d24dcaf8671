package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	usuarioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/usuario"
)

type fakeUsuarioRepo struct {
	usuario *domain.Usuario
}

func (f *fakeUsuarioRepo) ObtenerPorNombreUsuario(_ context.Context, nombreUsuario string) (*domain.Usuario, error) {
	if f.usuario == nil || f.usuario.NombreUsuario != nombreUsuario {
		return nil, usuarioRepo.ErrUsuarioNoEncontrado
	}
	return f.usuario, nil
}

func (f *fakeUsuarioRepo) Crear(_ context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	return usuario, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func usuarioConClave(t *testing.T, clave string) *domain.Usuario {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(clave), bcrypt.MinCost)
	require.NoError(t, err)
	return &domain.Usuario{
		ID:            5,
		NombreUsuario: "ana@example.com",
		Contrasenia:   string(hash),
		Nombre:        "Ana",
		Apellido:      "García",
		TipoUsuario:   1,
	}
}

func TestLogin_TokenVerificable(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: usuarioConClave(t, "secreta123")}
	svc := NewService(repo, "clave-de-firma", 24, nopLogger{})

	usuario, token, err := svc.Login(context.Background(), "ana@example.com", "secreta123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, int64(5), usuario.ID)

	claims, err := svc.VerificarToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(5), claims.UsuarioID)
	assert.Equal(t, "ana@example.com", claims.NombreUsuario)
	assert.Equal(t, 1, claims.TipoUsuario)
}

func TestLogin_ContraseniaIncorrecta(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: usuarioConClave(t, "secreta123")}
	svc := NewService(repo, "clave-de-firma", 24, nopLogger{})

	_, _, err := svc.Login(context.Background(), "ana@example.com", "otra")
	assert.ErrorIs(t, err, ErrCredencialesInvalidas)
}

func TestLogin_UsuarioInexistenteDevuelveElMismoError(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: usuarioConClave(t, "secreta123")}
	svc := NewService(repo, "clave-de-firma", 24, nopLogger{})

	_, _, errInexistente := svc.Login(context.Background(), "nadie@example.com", "secreta123")
	_, _, errClaveMal := svc.Login(context.Background(), "ana@example.com", "otra")

	assert.ErrorIs(t, errInexistente, ErrCredencialesInvalidas)
	assert.Equal(t, errClaveMal, errInexistente)
}

func TestVerificarToken_FirmaAjena(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: usuarioConClave(t, "secreta123")}
	emisor := NewService(repo, "clave-de-firma", 24, nopLogger{})
	receptor := NewService(repo, "otra-clave", 24, nopLogger{})

	token, err := emisor.GenerarToken(repo.usuario)
	require.NoError(t, err)

	_, err = receptor.VerificarToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestVerificarToken_TokenExpirado(t *testing.T) {
	repo := &fakeUsuarioRepo{usuario: usuarioConClave(t, "secreta123")}
	svc := NewService(repo, "clave-de-firma", -1, nopLogger{})

	token, err := svc.GenerarToken(repo.usuario)
	require.NoError(t, err)

	_, err = svc.VerificarToken(token)
	assert.ErrorIs(t, err, ErrTokenInvalido)
}

func TestVerificarToken_Basura(t *testing.T) {
	svc := NewService(&fakeUsuarioRepo{}, "clave-de-firma", 24, nopLogger{})

	_, err := svc.VerificarToken("no-es-un-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalido)
}
