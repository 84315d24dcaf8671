package actualizar_reserva

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/ptr"
)

type fakeReservaRepo struct {
	actual         *domain.ReservaDetalle
	disponible     bool
	totalServicios float64

	cambios         *domain.ReservaUpdate
	chequeos        int
	excluida        *int64
	ternaConsultada [2]int64
	fechaConsultada time.Time
	actualizadas    int
}

func (f *fakeReservaRepo) ObtenerPorID(_ context.Context, _ int64) (*domain.ReservaDetalle, error) {
	return f.actual, nil
}

func (f *fakeReservaRepo) Actualizar(_ context.Context, _ int64, cambios domain.ReservaUpdate) error {
	f.cambios = &cambios
	f.actualizadas++
	return nil
}

func (f *fakeReservaRepo) EstaDisponible(_ context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error) {
	f.chequeos++
	f.excluida = excluirID
	f.ternaConsultada = [2]int64{salonID, turnoID}
	f.fechaConsultada = fecha
	return f.disponible, nil
}

func (f *fakeReservaRepo) TotalServicios(_ context.Context, _ int64) (float64, error) {
	return f.totalServicios, nil
}

type fakeSalonRepo struct {
	salon *domain.Salon
}

func (f *fakeSalonRepo) ObtenerPorID(_ context.Context, _ int64) (*domain.Salon, error) {
	return f.salon, nil
}

type fakeExistencia struct {
	existe bool
}

func (f *fakeExistencia) Existe(_ context.Context, _ int64) (bool, error) {
	return f.existe, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func reservaActual() *domain.ReservaDetalle {
	detalle := &domain.ReservaDetalle{}
	detalle.ID = 7
	detalle.SalonID = 1
	detalle.UsuarioID = 2
	detalle.TurnoID = 3
	detalle.FechaReserva = time.Now().AddDate(0, 0, 10)
	detalle.ImporteSalon = 50000
	detalle.ImporteTotal = 63000
	return detalle
}

func nuevoEntorno(reservas *fakeReservaRepo) *UseCase {
	return NewUseCase(
		reservas,
		&fakeSalonRepo{salon: &domain.Salon{ID: 4, Titulo: "Salón Luna", Importe: 70000}},
		&fakeExistencia{existe: true},
		&fakeExistencia{existe: true},
		&fakeTxManager{},
		nopLogger{},
	)
}

func TestExecute_SinCampos(t *testing.T) {
	reservas := &fakeReservaRepo{actual: reservaActual(), disponible: true}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{ReservaID: 7})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
	assert.Zero(t, reservas.actualizadas)
}

func TestExecute_CambioDeTematicaNoVerificaDisponibilidad(t *testing.T) {
	reservas := &fakeReservaRepo{actual: reservaActual(), disponible: false}
	uc := nuevoEntorno(reservas)

	resp, err := uc.Execute(context.Background(), &Request{ReservaID: 7, Tematica: ptr.Ptr("Dinosaurios")})
	require.NoError(t, err)
	require.NotNil(t, resp.Reserva)

	// Sin tocar la terna no hay chequeo, aunque el fake diga "ocupado"
	assert.Zero(t, reservas.chequeos)
	assert.Equal(t, 1, reservas.actualizadas)
}

func TestExecute_CambioDeTurnoExcluyeLaPropiaReserva(t *testing.T) {
	reservas := &fakeReservaRepo{actual: reservaActual(), disponible: true}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{ReservaID: 7, TurnoID: ptr.Ptr(int64(5))})
	require.NoError(t, err)

	require.NotNil(t, reservas.excluida)
	assert.Equal(t, int64(7), *reservas.excluida)

	// La terna consultada combina lo nuevo con lo que ya tenía la reserva
	assert.Equal(t, [2]int64{1, 5}, reservas.ternaConsultada)
}

func TestExecute_TernaOcupada(t *testing.T) {
	reservas := &fakeReservaRepo{actual: reservaActual(), disponible: false}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{ReservaID: 7, TurnoID: ptr.Ptr(int64(5))})
	assert.ErrorIs(t, err, ErrNoDisponible)
	assert.Zero(t, reservas.actualizadas)
}

func TestExecute_FechaPasada(t *testing.T) {
	reservas := &fakeReservaRepo{actual: reservaActual(), disponible: true}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{ReservaID: 7, FechaReserva: ptr.Ptr(time.Now().AddDate(0, 0, -1))})
	assert.ErrorIs(t, err, ErrFechaPasada)
}

func TestExecute_CambioDeSalonRefrescaSnapshotYTotal(t *testing.T) {
	reservas := &fakeReservaRepo{
		actual:         reservaActual(),
		disponible:     true,
		totalServicios: 13000,
	}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{ReservaID: 7, SalonID: ptr.Ptr(int64(4))})
	require.NoError(t, err)

	require.NotNil(t, reservas.cambios.ImporteSalon)
	assert.Equal(t, 70000.0, *reservas.cambios.ImporteSalon)
	require.NotNil(t, reservas.cambios.ImporteTotal)
	assert.Equal(t, 83000.0, *reservas.cambios.ImporteTotal)
}

func TestExecute_ImporteTotalExplicitoTienePrioridad(t *testing.T) {
	reservas := &fakeReservaRepo{
		actual:         reservaActual(),
		disponible:     true,
		totalServicios: 13000,
	}
	uc := nuevoEntorno(reservas)

	_, err := uc.Execute(context.Background(), &Request{
		ReservaID:    7,
		SalonID:      ptr.Ptr(int64(4)),
		ImporteTotal: ptr.Ptr(99999.0),
	})
	require.NoError(t, err)

	require.NotNil(t, reservas.cambios.ImporteTotal)
	assert.Equal(t, 99999.0, *reservas.cambios.ImporteTotal)
}
