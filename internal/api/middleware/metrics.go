package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/pkg/metrics"
)

// statusWriter retiene el código de estado para poder reportarlo.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (sw *statusWriter) WriteHeader(code int) {
	sw.status = code
	sw.ResponseWriter.WriteHeader(code)
}

// Metrics observa cada request con el template de la ruta como label,
// para no explotar la cardinalidad con los IDs de los paths.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inicio := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			ruta := r.URL.Path
			if actual := mux.CurrentRoute(r); actual != nil {
				if template, err := actual.GetPathTemplate(); err == nil {
					ruta = template
				}
			}

			m.ObserveHTTP(r.Method, ruta, strconv.Itoa(sw.status), time.Since(inicio))
		})
	}
}
