package reservas

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	reservaRepo "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/infra/storage/reserva"
)

type fakeRepo struct {
	detalle        *domain.ReservaDetalle
	totalServicios float64

	diasPedidos  int
	totalEscrito *float64
	eliminadas   []int64
}

func (f *fakeRepo) ObtenerTodas(_ context.Context) ([]*domain.ReservaDetalle, error) {
	return []*domain.ReservaDetalle{f.detalle}, nil
}

func (f *fakeRepo) ObtenerPorID(_ context.Context, id int64) (*domain.ReservaDetalle, error) {
	if f.detalle == nil || f.detalle.ID != id {
		return nil, reservaRepo.ErrReservaNoEncontrada
	}
	return f.detalle, nil
}

func (f *fakeRepo) ObtenerPorUsuario(_ context.Context, _ int64) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeRepo) ObtenerPorSalon(_ context.Context, _ int64) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeRepo) ObtenerPorFecha(_ context.Context, _ time.Time) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeRepo) ObtenerPorRango(_ context.Context, _, _ time.Time) ([]*domain.ReservaDetalle, error) {
	return []*domain.ReservaDetalle{f.detalle}, nil
}

func (f *fakeRepo) ObtenerProximas(_ context.Context, dias int) ([]*domain.ReservaDetalle, error) {
	f.diasPedidos = dias
	return nil, nil
}

func (f *fakeRepo) EliminarLogico(_ context.Context, id int64) error {
	if f.detalle == nil || f.detalle.ID != id || !f.detalle.Activo {
		return reservaRepo.ErrReservaNoEncontrada
	}
	f.detalle.Activo = false
	f.eliminadas = append(f.eliminadas, id)
	return nil
}

// Solo la reserva activa del fake ocupa su terna, igual que el filtro
// activo=true de la consulta real.
func (f *fakeRepo) EstaDisponible(_ context.Context, salonID int64, fecha time.Time, turnoID int64, excluirID *int64) (bool, error) {
	if f.detalle == nil || !f.detalle.Activo {
		return true, nil
	}
	if f.detalle.SalonID != salonID || !f.detalle.FechaReserva.Equal(fecha) || f.detalle.TurnoID != turnoID {
		return true, nil
	}
	if excluirID != nil && *excluirID == f.detalle.ID {
		return true, nil
	}
	return false, nil
}

func (f *fakeRepo) TotalServicios(_ context.Context, _ int64) (float64, error) {
	return f.totalServicios, nil
}

func (f *fakeRepo) ActualizarImporteTotal(_ context.Context, _ int64, importeTotal float64) error {
	f.totalEscrito = &importeTotal
	return nil
}

func (f *fakeRepo) Estadisticas(_ context.Context) (*domain.ReservaEstadisticas, error) {
	return &domain.ReservaEstadisticas{}, nil
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

func nuevoServicio(repo *fakeRepo) *Service {
	return NewService(repo, fakeTxManager{}, nopLogger{})
}

func detalleDePrueba() *domain.ReservaDetalle {
	d := &domain.ReservaDetalle{}
	d.ID = 1
	d.SalonID = 2
	d.FechaReserva = time.Date(2026, 12, 20, 0, 0, 0, 0, time.UTC)
	d.TurnoID = 3
	d.ImporteSalon = 50000
	d.ImporteTotal = 50000
	d.Activo = true
	return d
}

func TestObtenerPorRango_RangoInvertido(t *testing.T) {
	svc := nuevoServicio(&fakeRepo{detalle: detalleDePrueba()})

	desde := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	hasta := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.ObtenerPorRango(context.Background(), desde, hasta)
	assert.ErrorIs(t, err, ErrDatosInvalidos)
}

func TestObtenerProximas_ClampDeDias(t *testing.T) {
	tests := []struct {
		nombre   string
		pedidos  int
		enviados int
	}{
		{"cero usa el default", 0, domain.DiasAdelanteDefault},
		{"negativo usa el default", -3, domain.DiasAdelanteDefault},
		{"fuera de rango usa el default", domain.DiasAdelanteMaximo + 1, domain.DiasAdelanteDefault},
		{"en rango pasa tal cual", 30, 30},
		{"el máximo pasa tal cual", domain.DiasAdelanteMaximo, domain.DiasAdelanteMaximo},
	}
	for _, tt := range tests {
		t.Run(tt.nombre, func(t *testing.T) {
			repo := &fakeRepo{detalle: detalleDePrueba()}
			svc := nuevoServicio(repo)

			_, err := svc.ObtenerProximas(context.Background(), tt.pedidos)
			require.NoError(t, err)
			assert.Equal(t, tt.enviados, repo.diasPedidos)
		})
	}
}

func TestVerificarDisponibilidad_LaBajaLiberaLaTerna(t *testing.T) {
	repo := &fakeRepo{detalle: detalleDePrueba()}
	svc := nuevoServicio(repo)
	terna := repo.detalle

	// Con la reserva activa la terna está ocupada
	disponible, err := svc.VerificarDisponibilidad(context.Background(), terna.SalonID, terna.FechaReserva, terna.TurnoID, nil)
	require.NoError(t, err)
	assert.False(t, disponible)

	// Otro turno del mismo salón y fecha sigue libre
	disponible, err = svc.VerificarDisponibilidad(context.Background(), terna.SalonID, terna.FechaReserva, terna.TurnoID+1, nil)
	require.NoError(t, err)
	assert.True(t, disponible)

	// La baja lógica libera la terna
	require.NoError(t, svc.Eliminar(context.Background(), terna.ID))

	disponible, err = svc.VerificarDisponibilidad(context.Background(), terna.SalonID, terna.FechaReserva, terna.TurnoID, nil)
	require.NoError(t, err)
	assert.True(t, disponible)
}

func TestEliminar_NoEncontrada(t *testing.T) {
	svc := nuevoServicio(&fakeRepo{detalle: detalleDePrueba()})

	err := svc.Eliminar(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservaNoEncontrada)
}

func TestRecalcularImporteTotal(t *testing.T) {
	repo := &fakeRepo{detalle: detalleDePrueba(), totalServicios: 13000}
	svc := nuevoServicio(repo)

	total, err := svc.RecalcularImporteTotal(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 63000.0, total)

	require.NotNil(t, repo.totalEscrito)
	assert.Equal(t, 63000.0, *repo.totalEscrito)
}

func TestRecalcularImporteTotal_ReservaInexistente(t *testing.T) {
	svc := nuevoServicio(&fakeRepo{detalle: detalleDePrueba()})

	_, err := svc.RecalcularImporteTotal(context.Background(), 99)
	assert.ErrorIs(t, err, ErrReservaNoEncontrada)
}
