package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/config"
)

// cacheWriter captura el cuerpo y el estado mientras responde al cliente.
type cacheWriter struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
}

func (cw *cacheWriter) WriteHeader(code int) {
	cw.status = code
	cw.ResponseWriter.WriteHeader(code)
}

func (cw *cacheWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.ResponseWriter.Write(b)
}

// Cache cachea en Redis las respuestas exitosas de los GET y purga el
// namespace completo ante cualquier método de escritura. La purga gruesa
// evita tener que mapear qué lecturas afecta cada mutación.
func Cache(cfg config.CacheConfig, rdb *redis.Client, logger Logger) func(http.Handler) http.Handler {
	ttl := time.Duration(cfg.TTL) * time.Second
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet {
				next.ServeHTTP(w, r)
				if esMutacion(r.Method) {
					purgar(r, cfg, rdb, logger)
				}
				return
			}

			clave := claveCache(cfg.Prefix, r)
			ctx := r.Context()

			if cuerpo, err := rdb.Get(ctx, clave).Bytes(); err == nil {
				w.Header().Set("Content-Type", "application/json; charset=utf-8")
				w.Header().Set("X-Cache", "HIT")
				w.WriteHeader(http.StatusOK)
				if _, err := w.Write(cuerpo); err != nil {
					logger.Warn("cache: error escribiendo respuesta cacheada: %v", err)
				}
				return
			} else if err != redis.Nil {
				logger.Warn("cache: error leyendo %s: %v", clave, err)
			}

			cw := &cacheWriter{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(cw, r)

			if cw.status == http.StatusOK && cw.buf.Len() > 0 {
				if err := rdb.Set(ctx, clave, cw.buf.Bytes(), ttl).Err(); err != nil {
					logger.Warn("cache: error guardando %s: %v", clave, err)
				}
			}
		})
	}
}

func esMutacion(metodo string) bool {
	switch metodo {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

// claveCache arma una clave estable por ruta y query, con hash para
// acotar el largo.
func claveCache(prefijo string, r *http.Request) string {
	sum := sha1.Sum([]byte(r.URL.Path + "?" + r.URL.RawQuery))
	return fmt.Sprintf("%s:resp:%x", prefijo, sum)
}

func purgar(r *http.Request, cfg config.CacheConfig, rdb *redis.Client, logger Logger) {
	ctx := r.Context()
	patron := cfg.Prefix + ":resp:*"

	var cursor uint64
	for {
		claves, siguiente, err := rdb.Scan(ctx, cursor, patron, 100).Result()
		if err != nil {
			logger.Warn("cache: error purgando %s: %v", patron, err)
			return
		}
		if len(claves) > 0 {
			if err := rdb.Del(ctx, claves...).Err(); err != nil {
				logger.Warn("cache: error borrando claves: %v", err)
				return
			}
		}
		cursor = siguiente
		if cursor == 0 {
			return
		}
	}
}
