package usuarios

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	usuarioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/usuario"
)

type fakeRepo struct {
	usuarios  map[int64]*domain.Usuario
	proximoID int64
}

func nuevoFakeRepo() *fakeRepo {
	return &fakeRepo{usuarios: make(map[int64]*domain.Usuario), proximoID: 1}
}

func (f *fakeRepo) ObtenerTodos(_ context.Context) ([]*domain.Usuario, error) {
	out := make([]*domain.Usuario, 0, len(f.usuarios))
	for _, u := range f.usuarios {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeRepo) ObtenerPorID(_ context.Context, id int64) (*domain.Usuario, error) {
	u, ok := f.usuarios[id]
	if !ok {
		return nil, usuarioRepo.ErrUsuarioNoEncontrado
	}
	return u, nil
}

func (f *fakeRepo) ObtenerPorNombreUsuario(_ context.Context, nombreUsuario string) (*domain.Usuario, error) {
	for _, u := range f.usuarios {
		if u.NombreUsuario == nombreUsuario {
			return u, nil
		}
	}
	return nil, usuarioRepo.ErrUsuarioNoEncontrado
}

func (f *fakeRepo) Crear(_ context.Context, usuario *domain.Usuario) (*domain.Usuario, error) {
	for _, u := range f.usuarios {
		if u.NombreUsuario == usuario.NombreUsuario {
			return nil, usuarioRepo.ErrNombreUsuarioDuplicado
		}
	}
	creado := *usuario
	creado.ID = f.proximoID
	f.proximoID++
	f.usuarios[creado.ID] = &creado
	return &creado, nil
}

func (f *fakeRepo) Actualizar(_ context.Context, id int64, cambios domain.UsuarioUpdate) error {
	u, ok := f.usuarios[id]
	if !ok {
		return usuarioRepo.ErrUsuarioNoEncontrado
	}
	if cambios.Contrasenia != nil {
		u.Contrasenia = *cambios.Contrasenia
	}
	if cambios.Nombre != nil {
		u.Nombre = *cambios.Nombre
	}
	return nil
}

func (f *fakeRepo) EliminarLogico(_ context.Context, id int64) error {
	if _, ok := f.usuarios[id]; !ok {
		return usuarioRepo.ErrUsuarioNoEncontrado
	}
	delete(f.usuarios, id)
	return nil
}

func (f *fakeRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := f.usuarios[id]
	return ok, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func usuarioValido() *domain.Usuario {
	return &domain.Usuario{
		Nombre:        "Ana",
		Apellido:      "García",
		NombreUsuario: "ana@example.com",
		Contrasenia:   "secreta123",
		TipoUsuario:   1,
	}
}

func TestCrear_HasheaLaContrasenia(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	creado, err := svc.Crear(context.Background(), usuarioValido())
	require.NoError(t, err)

	assert.NotEqual(t, "secreta123", creado.Contrasenia)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(creado.Contrasenia), []byte("secreta123")))
}

func TestCrear_EmailInvalido(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	usuario := usuarioValido()
	usuario.NombreUsuario = "no-es-un-email"

	_, err := svc.Crear(context.Background(), usuario)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestCrear_ContraseniaCorta(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	usuario := usuarioValido()
	usuario.Contrasenia = "abc"

	_, err := svc.Crear(context.Background(), usuario)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestCrear_NombreUsuarioDuplicado(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Crear(context.Background(), usuarioValido())
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), usuarioValido())
	assert.ErrorIs(t, err, ErrNombreUsuarioDuplicado)
}

func TestCrear_CelularInvalido(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	celular := "no es un número"
	usuario := usuarioValido()
	usuario.Celular = &celular

	_, err := svc.Crear(context.Background(), usuario)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestActualizar_HasheaLaNuevaContrasenia(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	creado, err := svc.Crear(context.Background(), usuarioValido())
	require.NoError(t, err)

	nueva := "otraclave456"
	_, err = svc.Actualizar(context.Background(), creado.ID, domain.UsuarioUpdate{Contrasenia: &nueva})
	require.NoError(t, err)

	guardado := repo.usuarios[creado.ID]
	assert.NotEqual(t, "otraclave456", guardado.Contrasenia)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(guardado.Contrasenia), []byte("otraclave456")))
}

func TestActualizar_SinCampos(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	_, err := svc.Actualizar(context.Background(), 1, domain.UsuarioUpdate{})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestEliminar_NoEncontrado(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	err := svc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrUsuarioNoEncontrado)
}
