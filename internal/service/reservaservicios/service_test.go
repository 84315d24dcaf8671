package reservaservicios

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	rsRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reservaservicio"
)

// fakeRSRepo guarda las asignaciones en memoria para poder verificar el
// estado final tras cada operación.
type fakeRSRepo struct {
	asignaciones map[int64]*domain.ReservaServicio
	proximoID    int64
}

func nuevoFakeRSRepo() *fakeRSRepo {
	return &fakeRSRepo{asignaciones: make(map[int64]*domain.ReservaServicio), proximoID: 1}
}

func (f *fakeRSRepo) Crear(_ context.Context, rs *domain.ReservaServicio) (*domain.ReservaServicio, error) {
	for _, a := range f.asignaciones {
		if a.ReservaID == rs.ReservaID && a.ServicioID == rs.ServicioID {
			return nil, rsRepo.ErrAsignacionDuplicada
		}
	}
	creada := *rs
	creada.ID = f.proximoID
	f.proximoID++
	f.asignaciones[creada.ID] = &creada
	return &creada, nil
}

func (f *fakeRSRepo) CrearMultiples(ctx context.Context, reservaID int64, asignaciones []domain.ServicioAsignacion) ([]*domain.ReservaServicio, error) {
	out := make([]*domain.ReservaServicio, 0, len(asignaciones))
	for _, a := range asignaciones {
		creada, err := f.Crear(ctx, &domain.ReservaServicio{
			ReservaID:  reservaID,
			ServicioID: a.ServicioID,
			Importe:    a.Importe,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, creada)
	}
	return out, nil
}

func (f *fakeRSRepo) ObtenerTodos(_ context.Context) ([]*domain.ReservaServicioDetalle, error) {
	return nil, nil
}

func (f *fakeRSRepo) ObtenerPorID(_ context.Context, id int64) (*domain.ReservaServicioDetalle, error) {
	a, ok := f.asignaciones[id]
	if !ok {
		return nil, rsRepo.ErrAsignacionNoEncontrada
	}
	return &domain.ReservaServicioDetalle{ReservaServicio: *a}, nil
}

func (f *fakeRSRepo) ObtenerPorReserva(_ context.Context, reservaID int64) ([]*domain.ReservaServicioDetalle, error) {
	var out []*domain.ReservaServicioDetalle
	for _, a := range f.asignaciones {
		if a.ReservaID == reservaID {
			out = append(out, &domain.ReservaServicioDetalle{ReservaServicio: *a})
		}
	}
	return out, nil
}

func (f *fakeRSRepo) ObtenerPorServicio(_ context.Context, _ int64) ([]*domain.ReservaServicioDetalle, error) {
	return nil, nil
}

func (f *fakeRSRepo) Eliminar(_ context.Context, id int64) error {
	if _, ok := f.asignaciones[id]; !ok {
		return rsRepo.ErrAsignacionNoEncontrada
	}
	delete(f.asignaciones, id)
	return nil
}

func (f *fakeRSRepo) EliminarPorReserva(_ context.Context, reservaID int64) (int64, error) {
	var borradas int64
	for id, a := range f.asignaciones {
		if a.ReservaID == reservaID {
			delete(f.asignaciones, id)
			borradas++
		}
	}
	return borradas, nil
}

func (f *fakeRSRepo) ExisteAsignacion(_ context.Context, reservaID, servicioID int64, excluirID *int64) (bool, error) {
	for id, a := range f.asignaciones {
		if excluirID != nil && id == *excluirID {
			continue
		}
		if a.ReservaID == reservaID && a.ServicioID == servicioID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRSRepo) TotalImportesPorReserva(_ context.Context, reservaID int64) (float64, error) {
	var total float64
	for _, a := range f.asignaciones {
		if a.ReservaID == reservaID {
			total += a.Importe
		}
	}
	return total, nil
}

func (f *fakeRSRepo) Estadisticas(_ context.Context) (*domain.ReservaServicioEstadisticas, error) {
	return &domain.ReservaServicioEstadisticas{}, nil
}

type fakeReservaRepo struct {
	reserva      *domain.ReservaDetalle
	totalEscrito *float64
}

func (f *fakeReservaRepo) ObtenerPorID(_ context.Context, _ int64) (*domain.ReservaDetalle, error) {
	return f.reserva, nil
}

func (f *fakeReservaRepo) Existe(_ context.Context, id int64) (bool, error) {
	return id == f.reserva.ID, nil
}

func (f *fakeReservaRepo) ActualizarImporteTotal(_ context.Context, _ int64, importeTotal float64) error {
	f.totalEscrito = &importeTotal
	f.reserva.ImporteTotal = importeTotal
	return nil
}

type fakeServicioRepo struct {
	existentes map[int64]bool
}

func (f *fakeServicioRepo) ObtenerPorID(_ context.Context, id int64) (*domain.Servicio, error) {
	if !f.existentes[id] {
		return nil, ErrServicioNoEncontrado
	}
	return &domain.Servicio{ID: id, Importe: 1000}, nil
}

func (f *fakeServicioRepo) Existe(_ context.Context, id int64) (bool, error) {
	return f.existentes[id], nil
}

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type entorno struct {
	rs       *fakeRSRepo
	reservas *fakeReservaRepo
	svc      *Service
}

func nuevoEntorno() *entorno {
	reserva := &domain.ReservaDetalle{}
	reserva.ID = 1
	reserva.SalonID = 2
	reserva.ImporteSalon = 50000
	reserva.ImporteTotal = 50000

	e := &entorno{
		rs:       nuevoFakeRSRepo(),
		reservas: &fakeReservaRepo{reserva: reserva},
	}
	e.svc = NewService(
		e.rs,
		e.reservas,
		&fakeServicioRepo{existentes: map[int64]bool{10: true, 11: true, 12: true}},
		fakeTxManager{},
		nopLogger{},
	)
	return e
}

func TestAsignar_ActualizaElTotalDeLaReserva(t *testing.T) {
	e := nuevoEntorno()

	creada, err := e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 10, Importe: 8000})
	require.NoError(t, err)
	assert.Equal(t, int64(1), creada.ReservaID)

	// importe_total = importe_salon + asignaciones
	require.NotNil(t, e.reservas.totalEscrito)
	assert.Equal(t, 58000.0, *e.reservas.totalEscrito)
}

func TestAsignar_ServicioYaAsignado(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 10, Importe: 8000})
	require.NoError(t, err)

	_, err = e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 10, Importe: 9000})
	assert.ErrorIs(t, err, ErrServicioYaAsignado)
}

func TestAsignar_ReservaInexistente(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.Asignar(context.Background(), 99, domain.ServicioAsignacion{ServicioID: 10, Importe: 8000})
	assert.ErrorIs(t, err, ErrReservaNoEncontrada)
}

func TestAsignar_ServicioInexistente(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 99, Importe: 8000})
	assert.ErrorIs(t, err, ErrServicioNoEncontrado)
}

func TestAsignarMultiples_LoteVacio(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, nil)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestAsignarMultiples_ServicioRepetidoEnLote(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
		{ServicioID: 10, Importe: 9000},
	})
	assert.ErrorIs(t, err, ErrDatosInvalidos)
	assert.Empty(t, e.rs.asignaciones)
}

func TestAsignarMultiples_NoEscribeSiUnoYaEstaAsignado(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 11, Importe: 5000})
	require.NoError(t, err)

	_, err = e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
		{ServicioID: 11, Importe: 5000},
	})
	assert.ErrorIs(t, err, ErrServicioYaAsignado)

	// El renglón válido del lote tampoco tiene que haber entrado
	assert.Len(t, e.rs.asignaciones, 1)
	assert.Equal(t, 55000.0, e.reservas.reserva.ImporteTotal)
}

func TestReemplazarServicios_DejaSoloElLoteNuevo(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
		{ServicioID: 11, Importe: 5000},
	})
	require.NoError(t, err)

	creadas, err := e.svc.ReemplazarServicios(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 12, Importe: 20000},
	})
	require.NoError(t, err)
	require.Len(t, creadas, 1)
	assert.Equal(t, int64(12), creadas[0].ServicioID)

	assert.Len(t, e.rs.asignaciones, 1)
	assert.Equal(t, 70000.0, e.reservas.reserva.ImporteTotal)
}

func TestReemplazarServicios_LoteVacioVuelveAlImporteDelSalon(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
	})
	require.NoError(t, err)

	creadas, err := e.svc.ReemplazarServicios(context.Background(), 1, nil)
	require.NoError(t, err)
	assert.Empty(t, creadas)

	assert.Empty(t, e.rs.asignaciones)
	assert.Equal(t, 50000.0, e.reservas.reserva.ImporteTotal)
}

func TestEliminar_RecalculaElTotal(t *testing.T) {
	e := nuevoEntorno()

	creada, err := e.svc.Asignar(context.Background(), 1, domain.ServicioAsignacion{ServicioID: 10, Importe: 8000})
	require.NoError(t, err)

	err = e.svc.Eliminar(context.Background(), creada.ID)
	require.NoError(t, err)

	assert.Empty(t, e.rs.asignaciones)
	assert.Equal(t, 50000.0, e.reservas.reserva.ImporteTotal)
}

func TestEliminar_AsignacionInexistente(t *testing.T) {
	e := nuevoEntorno()

	err := e.svc.Eliminar(context.Background(), 123)
	assert.ErrorIs(t, err, ErrAsignacionNoEncontrada)
}

func TestEliminarPorReserva_DevuelveCuantasHabia(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
		{ServicioID: 11, Importe: 5000},
	})
	require.NoError(t, err)

	borradas, err := e.svc.EliminarPorReserva(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), borradas)
	assert.Equal(t, 50000.0, e.reservas.reserva.ImporteTotal)
}

func TestTotalPorReserva(t *testing.T) {
	e := nuevoEntorno()

	_, err := e.svc.AsignarMultiples(context.Background(), 1, []domain.ServicioAsignacion{
		{ServicioID: 10, Importe: 8000},
		{ServicioID: 11, Importe: 5000},
	})
	require.NoError(t, err)

	total, err := e.svc.TotalPorReserva(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 13000.0, total)
}
