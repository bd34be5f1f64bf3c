package middleware

import (
	"net/http"

	"github.com/m04kA/SMC-CourtBookingService/internal/access"
	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

const (
	msgUnauthenticated     = "требуется аутентификация"
	msgOperationNotAllowed = "недостаточно прав для выполнения операции"
)

// RequireOperation пропускает запрос, только если роль пользователя
// допущена к операции. Должен стоять после Auth.
func RequireOperation(op access.Operation, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				logger.Warn("%s %s - Missing principal in context", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgUnauthenticated)
				return
			}

			if !access.Allowed(op, principal.Role) {
				logger.Warn("%s %s - Operation %s denied for user=%d role=%s",
					r.Method, r.URL.Path, op, principal.UserID, principal.Role)
				handlers.RespondForbidden(w, msgOperationNotAllowed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
