package salones

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/domain"
	salonesSvc "github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/salones"
)

type fakeService struct {
	salon *domain.Salon
	err   error
}

func (f *fakeService) ObtenerTodos(_ context.Context) ([]*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return []*domain.Salon{f.salon}, nil
}

func (f *fakeService) ObtenerPorID(_ context.Context, _ int64) (*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.salon, nil
}

func (f *fakeService) Crear(_ context.Context, salon *domain.Salon) (*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	creado := *salon
	creado.ID = 1
	return &creado, nil
}

func (f *fakeService) Actualizar(_ context.Context, _ int64, _ domain.SalonUpdate) (*domain.Salon, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.salon, nil
}

func (f *fakeService) Eliminar(_ context.Context, _ int64) error {
	return f.err
}

func (f *fakeService) Estadisticas(_ context.Context) (*domain.SalonEstadisticas, error) {
	return &domain.SalonEstadisticas{Total: 3}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func router(svc SalonesService) *mux.Router {
	h := NewHandler(svc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/salones", h.List).Methods(http.MethodGet)
	r.HandleFunc("/salones", h.Create).Methods(http.MethodPost)
	r.HandleFunc("/salones/estadisticas", h.Stats).Methods(http.MethodGet)
	r.HandleFunc("/salones/{id}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/salones/{id}", h.Update).Methods(http.MethodPut)
	r.HandleFunc("/salones/{id}", h.Delete).Methods(http.MethodDelete)
	return r
}

func salonDePrueba() *domain.Salon {
	return &domain.Salon{
		ID:        1,
		Titulo:    "Salón Arcoiris",
		Direccion: "Urquiza 1234",
		Capacidad: 60,
		Importe:   50000,
	}
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func hacer(t *testing.T, r *mux.Router, metodo, ruta string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(metodo, ruta, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func TestGet_Success(t *testing.T) {
	r := router(&fakeService{salon: salonDePrueba()})

	rec, env := hacer(t, r, http.MethodGet, "/salones/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)

	var salon SalonResponse
	require.NoError(t, json.Unmarshal(env.Data, &salon))
	assert.Equal(t, int64(1), salon.ID)
	assert.Equal(t, "Salón Arcoiris", salon.Titulo)
}

func TestGet_NoEncontrado(t *testing.T) {
	r := router(&fakeService{err: salonesSvc.ErrSalonNoEncontrado})

	rec, env := hacer(t, r, http.MethodGet, "/salones/99", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestGet_IDInvalido(t *testing.T) {
	r := router(&fakeService{salon: salonDePrueba()})

	rec, env := hacer(t, r, http.MethodGet, "/salones/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestCreate_Success(t *testing.T) {
	r := router(&fakeService{})

	body := []byte(`{"titulo":"Salón Luna","direccion":"Alem 400","capacidad":40,"importe":30000}`)
	rec, env := hacer(t, r, http.MethodPost, "/salones", body)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "success", env.Status)

	var salon SalonResponse
	require.NoError(t, json.Unmarshal(env.Data, &salon))
	assert.Equal(t, int64(1), salon.ID)
	assert.Equal(t, "Salón Luna", salon.Titulo)
}

func TestCreate_DatosInvalidos(t *testing.T) {
	r := router(&fakeService{err: salonesSvc.ErrDatosInvalidos})

	body := []byte(`{"titulo":"","direccion":"","capacidad":0,"importe":0}`)
	rec, env := hacer(t, r, http.MethodPost, "/salones", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestCreate_BodyInvalido(t *testing.T) {
	r := router(&fakeService{})

	rec, env := hacer(t, r, http.MethodPost, "/salones", []byte("{no es json"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", env.Status)
}

func TestUpdate_ErrorInterno(t *testing.T) {
	r := router(&fakeService{err: salonesSvc.ErrInterno})

	body := []byte(`{"titulo":"Otro"}`)
	rec, env := hacer(t, r, http.MethodPut, "/salones/1", body)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "error", env.Status)

	// El detalle interno no viaja al cliente
	assert.Equal(t, "error interno del servidor", env.Message)
}

func TestDelete_Success(t *testing.T) {
	r := router(&fakeService{})

	rec, env := hacer(t, r, http.MethodDelete, "/salones/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", env.Status)
}

func TestStats_Success(t *testing.T) {
	r := router(&fakeService{})

	rec, env := hacer(t, r, http.MethodGet, "/salones/estadisticas", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var est EstadisticasResponse
	require.NoError(t, json.Unmarshal(env.Data, &est))
	assert.Equal(t, 3, est.Total)
}
