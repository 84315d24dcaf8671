package servicios

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	servicioRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/servicio"
)

type fakeRepo struct {
	servicios map[int64]*domain.Servicio
	proximoID int64
}

func nuevoFakeRepo() *fakeRepo {
	return &fakeRepo{servicios: make(map[int64]*domain.Servicio), proximoID: 1}
}

func (f *fakeRepo) ObtenerTodos(_ context.Context) ([]*domain.Servicio, error) {
	out := make([]*domain.Servicio, 0, len(f.servicios))
	for _, s := range f.servicios {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeRepo) ObtenerPorID(_ context.Context, id int64) (*domain.Servicio, error) {
	s, ok := f.servicios[id]
	if !ok {
		return nil, servicioRepo.ErrServicioNoEncontrado
	}
	return s, nil
}

func (f *fakeRepo) Crear(_ context.Context, servicio *domain.Servicio) (*domain.Servicio, error) {
	creado := *servicio
	creado.ID = f.proximoID
	f.proximoID++
	f.servicios[creado.ID] = &creado
	return &creado, nil
}

func (f *fakeRepo) Actualizar(_ context.Context, id int64, cambios domain.ServicioUpdate) error {
	s, ok := f.servicios[id]
	if !ok {
		return servicioRepo.ErrServicioNoEncontrado
	}
	if cambios.Descripcion != nil {
		s.Descripcion = *cambios.Descripcion
	}
	if cambios.Importe != nil {
		s.Importe = *cambios.Importe
	}
	return nil
}

func (f *fakeRepo) EliminarLogico(_ context.Context, id int64) error {
	if _, ok := f.servicios[id]; !ok {
		return servicioRepo.ErrServicioNoEncontrado
	}
	delete(f.servicios, id)
	return nil
}

func (f *fakeRepo) Existe(_ context.Context, id int64) (bool, error) {
	_, ok := f.servicios[id]
	return ok, nil
}

func (f *fakeRepo) ExisteDescripcion(_ context.Context, descripcion string, excluirID *int64) (bool, error) {
	for id, s := range f.servicios {
		if excluirID != nil && id == *excluirID {
			continue
		}
		if s.Descripcion == descripcion {
			return true, nil
		}
	}
	return false, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestCrear_RecortaLaDescripcion(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	creado, err := svc.Crear(context.Background(), &domain.Servicio{
		Descripcion: "  Animación  ",
		Importe:     8000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Animación", creado.Descripcion)
}

func TestCrear_DescripcionVacia(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	_, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "   ", Importe: 8000})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestCrear_DescripcionMuyLarga(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	_, err := svc.Crear(context.Background(), &domain.Servicio{
		Descripcion: strings.Repeat("a", domain.MaxLenDescripcion+1),
		Importe:     8000,
	})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestCrear_DescripcionDuplicada(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Catering", Importe: 12000})
	require.NoError(t, err)

	_, err = svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Catering", Importe: 15000})
	assert.ErrorIs(t, err, ErrDescripcionDuplicada)
}

func TestCrear_ImporteFueraDeRango(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	_, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Magia", Importe: -5})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestCrear_ImporteCeroNoEsValidoEnElCatalogo(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	// Un renglón de reserva puede ir bonificado en cero, un servicio del
	// catálogo no: su precio mínimo es ImporteMinimo.
	_, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Animación", Importe: 0})
	assert.ErrorIs(t, err, ErrDatosInvalidos)

	_, err = svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Animación", Importe: domain.ImporteMinimo})
	assert.NoError(t, err)
}

func TestActualizar_ImporteCeroNoEsValidoEnElCatalogo(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	creado, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Pelotero", Importe: 9000})
	require.NoError(t, err)

	cero := 0.0
	_, err = svc.Actualizar(context.Background(), creado.ID, domain.ServicioUpdate{Importe: &cero})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestActualizar_PermiteConservarSuPropiaDescripcion(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	creado, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Catering", Importe: 12000})
	require.NoError(t, err)

	// La verificación de unicidad excluye al propio servicio
	misma := "Catering"
	nuevoImporte := 14000.0
	actualizado, err := svc.Actualizar(context.Background(), creado.ID, domain.ServicioUpdate{
		Descripcion: &misma,
		Importe:     &nuevoImporte,
	})
	require.NoError(t, err)
	assert.Equal(t, 14000.0, actualizado.Importe)
}

func TestActualizar_SinCampos(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	_, err := svc.Actualizar(context.Background(), 1, domain.ServicioUpdate{})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestActualizar_ChocaConOtraDescripcion(t *testing.T) {
	repo := nuevoFakeRepo()
	svc := NewService(repo, nopLogger{})

	_, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Catering", Importe: 12000})
	require.NoError(t, err)
	otro, err := svc.Crear(context.Background(), &domain.Servicio{Descripcion: "Magia", Importe: 6000})
	require.NoError(t, err)

	repetida := "Catering"
	_, err = svc.Actualizar(context.Background(), otro.ID, domain.ServicioUpdate{Descripcion: &repetida})
	assert.ErrorIs(t, err, ErrDescripcionDuplicada)
}

func TestEliminar_NoEncontrado(t *testing.T) {
	svc := NewService(nuevoFakeRepo(), nopLogger{})

	err := svc.Eliminar(context.Background(), 42)
	assert.ErrorIs(t, err, ErrServicioNoEncontrado)
}
