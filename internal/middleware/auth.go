package middleware

import (
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/contextkeys"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
)

// RequireAuthMiddleware проверяет наличие логина и ID администратора в контексте.
// Должен стоять после UserLoginUserIdToContextMiddleware.
func RequireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		login, ok := r.Context().Value(contextkeys.Login).(string)
		if !ok || login == "" {
			logger.Log.Error("Не удалось получить логин из контекста")
			response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		if _, ok := r.Context().Value(contextkeys.ID).(int64); !ok {
			logger.Log.Error("Не удалось получить ID администратора из контекста", logger.String("login", login))
			response.ErrorJSON(w, http.StatusInternalServerError, "Ошибка сервера")
			return
		}

		next.ServeHTTP(w, r)
	})
}
