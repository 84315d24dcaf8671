package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/auth"
)

type fakeVerifier struct {
	claims *auth.Claims
	err    error
}

func (f *fakeVerifier) VerificarToken(_ string) (*auth.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.claims, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func protegido(verifier TokenVerifier, dentro http.HandlerFunc) http.Handler {
	return Auth(verifier, nopLogger{})(dentro)
}

func TestAuth_SinEncabezado(t *testing.T) {
	llamado := false
	h := protegido(&fakeVerifier{}, func(w http.ResponseWriter, r *http.Request) {
		llamado = true
	})

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/reservas", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, llamado)
}

func TestAuth_EsquemaIncorrecto(t *testing.T) {
	h := protegido(&fakeVerifier{}, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/reservas", nil)
	req.Header.Set("Authorization", "Basic abc123")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_TokenRechazado(t *testing.T) {
	h := protegido(&fakeVerifier{err: errors.New("firma inválida")}, func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/reservas", nil)
	req.Header.Set("Authorization", "Bearer token-vencido")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuth_DejaLosClaimsEnElContexto(t *testing.T) {
	claims := &auth.Claims{UsuarioID: 5, NombreUsuario: "ana@example.com", TipoUsuario: 1}

	var recibidos *auth.Claims
	h := protegido(&fakeVerifier{claims: claims}, func(w http.ResponseWriter, r *http.Request) {
		var ok bool
		recibidos, ok = ClaimsFromContext(r.Context())
		require.True(t, ok)
	})

	req := httptest.NewRequest(http.MethodGet, "/reservas", nil)
	req.Header.Set("Authorization", "Bearer token-valido")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, recibidos)
	assert.Equal(t, int64(5), recibidos.UsuarioID)
}

func TestClaimsFromContext_SinClaims(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/reservas", nil)

	_, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
}
