package reservas

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
)

type fakeReservasService struct {
	diasPedidos int
}

func (f *fakeReservasService) ObtenerTodas(_ context.Context) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerPorID(_ context.Context, _ int64) (*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerPorUsuario(_ context.Context, _ int64) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerPorSalon(_ context.Context, _ int64) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerPorFecha(_ context.Context, _ time.Time) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerPorRango(_ context.Context, _, _ time.Time) ([]*domain.ReservaDetalle, error) {
	return nil, nil
}

func (f *fakeReservasService) ObtenerProximas(_ context.Context, dias int) ([]*domain.ReservaDetalle, error) {
	f.diasPedidos = dias
	return nil, nil
}

func (f *fakeReservasService) Eliminar(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeReservasService) VerificarDisponibilidad(_ context.Context, _ int64, _ time.Time, _ int64, _ *int64) (bool, error) {
	return true, nil
}

func (f *fakeReservasService) RecalcularImporteTotal(_ context.Context, _ int64) (float64, error) {
	return 0, nil
}

func (f *fakeReservasService) Estadisticas(_ context.Context) (*domain.ReservaEstadisticas, error) {
	return &domain.ReservaEstadisticas{}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func routerProximas(svc ReservasService) *mux.Router {
	h := NewHandler(nil, nil, svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/reservas/proximas", h.ListProximas).Methods(http.MethodGet)
	return r
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func TestListProximas_DiasNoNumericoResponde400(t *testing.T) {
	svc := &fakeReservasService{}
	r := routerProximas(svc)

	req := httptest.NewRequest(http.MethodGet, "/reservas/proximas?dias=abc", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "fail", env.Status)

	// El servicio nunca debe recibir un valor inventado
	assert.Zero(t, svc.diasPedidos)
}

func TestListProximas_SinDiasUsaElDefault(t *testing.T) {
	svc := &fakeReservasService{}
	r := routerProximas(svc)

	req := httptest.NewRequest(http.MethodGet, "/reservas/proximas", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.DiasAdelanteDefault, svc.diasPedidos)
}

func TestListProximas_DiasValidoPasaTalCual(t *testing.T) {
	svc := &fakeReservasService{}
	r := routerProximas(svc)

	req := httptest.NewRequest(http.MethodGet, "/reservas/proximas?dias=30", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 30, svc.diasPedidos)
}
