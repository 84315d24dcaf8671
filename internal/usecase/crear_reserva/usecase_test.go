package crear_reserva

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
	salonRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/salon"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/ptr"
)

type fakeReservaRepo struct {
	disponible bool
	crearErr   error
	creadas    int
	ultima     *domain.Reserva
	detalle    *domain.ReservaDetalle
}

func (f *fakeReservaRepo) Crear(_ context.Context, reserva *domain.Reserva) (*domain.Reserva, error) {
	if f.crearErr != nil {
		return nil, f.crearErr
	}
	f.creadas++
	creada := *reserva
	creada.ID = 100
	f.ultima = &creada
	return &creada, nil
}

func (f *fakeReservaRepo) ObtenerPorID(_ context.Context, id int64) (*domain.ReservaDetalle, error) {
	if f.detalle != nil {
		return f.detalle, nil
	}
	detalle := &domain.ReservaDetalle{Reserva: *f.ultima}
	detalle.ID = id
	return detalle, nil
}

func (f *fakeReservaRepo) EstaDisponible(_ context.Context, _ int64, _ time.Time, _ int64, _ *int64) (bool, error) {
	return f.disponible, nil
}

type fakeRSRepo struct {
	asignaciones []domain.ServicioAsignacion
}

func (f *fakeRSRepo) CrearMultiples(_ context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error) {
	f.asignaciones = asignaciones
	out := make([]*domain.ReservaServicio, 0, len(asignaciones))
	for i, a := range asignaciones {
		out = append(out, &domain.ReservaServicio{
			ID:         int64(i + 1),
			ReservaID:  reservaID,
			ServicioID: a.ServicioID,
			Importe:    a.Importe,
		})
	}
	return out, nil
}

type fakeSalonRepo struct {
	salon *domain.Salon
	err   error
}

func (f *fakeSalonRepo) ObtenerPorID(_ context.Context, _ int64) (*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.salon, nil
}

type fakeExistencia struct {
	existe bool
}

func (f *fakeExistencia) Existe(_ context.Context, _ int64) (bool, error) {
	return f.existe, nil
}

type fakeServicioRepo struct {
	servicios map[int64]*domain.Servicio
	err       error
}

func (f *fakeServicioRepo) ObtenerPorID(_ context.Context, id int64) (*domain.Servicio, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.servicios[id]
	if !ok {
		return nil, errors.New("no existe")
	}
	return s, nil
}

type fakeNotificador struct {
	enviados int
	err      error
}

func (f *fakeNotificador) EnviarConfirmacionReserva(_ *domain.ReservaDetalle) error {
	f.enviados++
	return f.err
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type entorno struct {
	reservas    *fakeReservaRepo
	rs          *fakeRSRepo
	salones     *fakeSalonRepo
	notificador *fakeNotificador
	uc          *UseCase
}

func nuevoEntorno() *entorno {
	e := &entorno{
		reservas: &fakeReservaRepo{disponible: true},
		rs:       &fakeRSRepo{},
		salones: &fakeSalonRepo{salon: &domain.Salon{
			ID:      1,
			Titulo:  "Salón Arcoiris",
			Importe: 50000,
		}},
		notificador: &fakeNotificador{},
	}
	e.uc = NewUseCase(
		e.reservas,
		e.rs,
		e.salones,
		&fakeExistencia{existe: true},
		&fakeExistencia{existe: true},
		&fakeServicioRepo{servicios: map[int64]*domain.Servicio{
			10: {ID: 10, Descripcion: "Animación", Importe: 8000},
			11: {ID: 11, Descripcion: "Catering", Importe: 12000},
		}},
		e.notificador,
		&fakeTxManager{},
		nopLogger{},
	)
	return e
}

func requestValido() *Request {
	return &Request{
		FechaReserva: time.Now().AddDate(0, 0, 7),
		SalonID:      1,
		UsuarioID:    2,
		TurnoID:      3,
	}
}

func TestExecute_CongelaImportesYSumaTotal(t *testing.T) {
	e := nuevoEntorno()

	req := requestValido()
	req.Servicios = []ServicioSolicitado{
		{ServicioID: 10},                           // precio de catálogo
		{ServicioID: 11, Importe: ptr.Ptr(5000.0)}, // precio acordado
	}

	resp, err := e.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, resp)

	// 50000 del salón + 8000 de catálogo + 5000 acordados
	assert.Equal(t, 63000.0, e.reservas.ultima.ImporteTotal)
	assert.Equal(t, 50000.0, e.reservas.ultima.ImporteSalon)

	require.Len(t, resp.Servicios, 2)
	assert.Equal(t, 8000.0, resp.Servicios[0].Importe)
	assert.Equal(t, 5000.0, resp.Servicios[1].Importe)
	assert.Equal(t, 1, e.notificador.enviados)
}

func TestExecute_SinServicios(t *testing.T) {
	e := nuevoEntorno()

	resp, err := e.uc.Execute(context.Background(), requestValido())
	require.NoError(t, err)

	assert.Equal(t, 50000.0, e.reservas.ultima.ImporteTotal)
	assert.Empty(t, resp.Servicios)
}

func TestExecute_FechaPasada(t *testing.T) {
	e := nuevoEntorno()

	req := requestValido()
	req.FechaReserva = time.Now().AddDate(0, 0, -2)

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrFechaPasada)
	assert.Zero(t, e.reservas.creadas)
}

func TestExecute_ServicioRepetidoEnLote(t *testing.T) {
	e := nuevoEntorno()

	req := requestValido()
	req.Servicios = []ServicioSolicitado{{ServicioID: 10}, {ServicioID: 10}}

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
	assert.Zero(t, e.reservas.creadas)
}

func TestExecute_ImporteServicioFueraDeRango(t *testing.T) {
	e := nuevoEntorno()

	req := requestValido()
	req.Servicios = []ServicioSolicitado{{ServicioID: 10, Importe: ptr.Ptr(-1.0)}}

	_, err := e.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestExecute_SalonNoEncontrado(t *testing.T) {
	e := nuevoEntorno()
	e.salones.err = salonRepo.ErrSalonNoEncontrado

	_, err := e.uc.Execute(context.Background(), requestValido())
	assert.ErrorIs(t, err, ErrSalonNoEncontrado)
}

func TestExecute_SalonOcupado(t *testing.T) {
	e := nuevoEntorno()
	e.reservas.disponible = false

	_, err := e.uc.Execute(context.Background(), requestValido())
	assert.ErrorIs(t, err, ErrNoDisponible)
	assert.Zero(t, e.reservas.creadas)
}

func TestExecute_DuplicadoEnInsert(t *testing.T) {
	// La disponibilidad pasó pero el índice único rechazó el insert:
	// otra transacción ganó la carrera.
	e := nuevoEntorno()
	e.reservas.crearErr = reservaRepo.ErrReservaDuplicada

	_, err := e.uc.Execute(context.Background(), requestValido())
	assert.ErrorIs(t, err, ErrNoDisponible)
}

func TestExecute_FallaDelMailNoAnulaLaReserva(t *testing.T) {
	e := nuevoEntorno()
	e.notificador.err = errors.New("smtp caído")

	resp, err := e.uc.Execute(context.Background(), requestValido())
	require.NoError(t, err)
	assert.NotNil(t, resp.Reserva)
	assert.Equal(t, 1, e.reservas.creadas)
}
