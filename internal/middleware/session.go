package middleware

import (
	"context"
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/auth"
	"github.com/trsv-dev/vps-dashboard/internal/contextkeys"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
)

// UserLoginUserIdToContextMiddleware проверяет сессию администратора (cookie JWT или заголовок
// Authorization) и кладет логин и ID из токена в контекст запроса.
// Без валидного токена запрос завершается с 401.
func UserLoginUserIdToContextMiddleware(JWTSecretKey string, tokenBuilder auth.TokenBuilder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, err := auth.TokenFromRequest(r)
			if err != nil {
				response.ErrorJSON(w, http.StatusUnauthorized, "Требуется авторизация")
				return
			}

			claims, err := tokenBuilder.GetClaims(token, JWTSecretKey)
			if err != nil || claims == nil || claims.Login == "" {
				logger.Log.Debug("Невалидный токен сессии", logger.String("uri", r.RequestURI))
				response.ErrorJSON(w, http.StatusUnauthorized, "Сессия недействительна или истекла")
				return
			}

			ctx := context.WithValue(r.Context(), contextkeys.Login, claims.Login)
			ctx = context.WithValue(ctx, contextkeys.ID, claims.ID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
