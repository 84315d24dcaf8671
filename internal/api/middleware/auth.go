package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/api/handlers"
	"github.com/UNER-FCAD-2025-Programacion3/PlanCumple/internal/service/auth"
)

// TokenVerifier valida un token de sesión y devuelve sus claims.
type TokenVerifier interface {
	VerificarToken(tokenFirmado string) (*auth.Claims, error)
}

type claveContexto string

const claveClaims claveContexto = "claims"

// Auth exige un token Bearer válido y deja los claims en el contexto
// del request para los handlers que necesiten identificar al usuario.
func Auth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			encabezado := r.Header.Get("Authorization")
			if encabezado == "" {
				handlers.RespondUnauthorized(w, "falta el encabezado Authorization")
				return
			}

			token, ok := strings.CutPrefix(encabezado, "Bearer ")
			if !ok || strings.TrimSpace(token) == "" {
				handlers.RespondUnauthorized(w, "el encabezado Authorization debe ser 'Bearer <token>'")
				return
			}

			claims, err := verifier.VerificarToken(strings.TrimSpace(token))
			if err != nil {
				logger.Warn("%s %s - token rechazado: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, "token inválido o expirado")
				return
			}

			ctx := context.WithValue(r.Context(), claveClaims, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromContext recupera los claims que dejó el middleware Auth.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claveClaims).(*auth.Claims)
	return claims, ok
}
