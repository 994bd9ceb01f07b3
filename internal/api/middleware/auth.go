package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/CWT-SchedulingService/internal/api/handlers"
)

type staffIDKey struct{}

const msgStaffIDRequired = "требуется заголовок X-Staff-ID"

// Auth требует заголовок X-Staff-ID на админских маршрутах
// Идентификатор кладется в контекст запроса и доступен через StaffID
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		staffID := r.Header.Get("X-Staff-ID")
		if staffID == "" {
			handlers.RespondError(w, http.StatusUnauthorized, msgStaffIDRequired)
			return
		}

		ctx := context.WithValue(r.Context(), staffIDKey{}, staffID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// StaffID возвращает идентификатор сотрудника из контекста запроса
func StaffID(ctx context.Context) string {
	id, _ := ctx.Value(staffIDKey{}).(string)
	return id
}
