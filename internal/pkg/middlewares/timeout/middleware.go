package timeout

import (
	"context"
	"net/http"
	"time"
)

// Middleware обрезает контекст запроса по истечении timeout.
// На SSE-маршруты не вешается: стримы живут до отписки клиента.
func Middleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// r.Context() = ongoingCtx (из BaseContext)
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
