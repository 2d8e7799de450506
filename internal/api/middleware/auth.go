package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/herlindaapr/beautybook-service/internal/api/handlers"
)

type contextKey string

const (
	userIDKey  contextKey = "userID"
	isAdminKey contextKey = "isAdmin"

	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	roleAdmin = "admin"
)

// Auth проверяет наличие заголовка X-User-ID и кладёт ID пользователя
// в контекст запроса. Роль admin берётся из X-User-Role
// Аутентификацию выполняет API gateway, здесь заголовкам доверяем
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userIDStr := r.Header.Get(headerUserID)
		if userIDStr == "" {
			handlers.RespondUnauthorized(w, "missing "+headerUserID+" header")
			return
		}

		userID, err := strconv.ParseInt(userIDStr, 10, 64)
		if err != nil || userID <= 0 {
			handlers.RespondUnauthorized(w, "invalid "+headerUserID+" header")
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		ctx = context.WithValue(ctx, isAdminKey, r.Header.Get(headerUserRole) == roleAdmin)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly пропускает только запросы с ролью admin
// Должен стоять после Auth
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsAdmin(r.Context()) {
			handlers.RespondForbidden(w, "admin role required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDKey).(int64)
	return userID, ok
}

// IsAdmin сообщает, имеет ли пользователь роль admin
func IsAdmin(ctx context.Context) bool {
	isAdmin, ok := ctx.Value(isAdminKey).(bool)
	return ok && isAdmin
}
