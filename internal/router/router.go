package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/trsv-dev/vps-dashboard/internal/di_containers"
	"github.com/trsv-dev/vps-dashboard/internal/metrics"
	"github.com/trsv-dev/vps-dashboard/internal/middleware"
	"github.com/trsv-dev/vps-dashboard/web"
)

// Router Роутер.
func Router(h *di_containers.HandlersContainer) chi.Router {
	router := chi.NewRouter()

	// middleware логгера всех запросов
	router.Use(middleware.LogMiddleware)
	router.Use(middleware.CorsMiddleware)

	// публичные маршруты
	router.Post("/api/user/register", h.RegistrationHandler.UserRegistration)
	router.Post("/api/user/login", h.AuthorizationHandler.UserAuthorization)
	router.Post("/api/user/logout", h.AuthorizationHandler.UserLogout)
	router.Get("/api/health", h.HealthHandler.GetHealth)
	router.Handle("/metrics", metrics.Handler())

	// сессию для SSE проверяет резольвер топиков
	router.Get("/api/events", h.AppHandler.Events)

	// маршруты, требующие авторизацию
	router.Group(func(r chi.Router) {

		// middleware для всех приватных маршрутов
		r.Use(middleware.UserLoginUserIdToContextMiddleware(h.JWTSecretKey, h.TokenBuilder))
		r.Use(middleware.RequireAuthMiddleware)

		r.Get("/api/ssh/users", h.SSHHandler.ListSSHUsers)   // список SSH-пользователей
		r.Post("/api/ssh/users", h.SSHHandler.CreateSSHUser) // создание SSH-пользователя

		// /api/xray/* оставлен для старых клиентов
		for _, prefix := range []string{"/api/proxy", "/api/xray"} {
			r.Get(prefix+"/users", h.ProxyHandler.ListProxyUsers)
			r.Post(prefix+"/users", h.ProxyHandler.CreateProxyUser)
		}

		// /api/server/stats используется агентом сбора статистики
		for _, path := range []string{"/api/stats", "/api/server/stats"} {
			r.Get(path, h.StatsHandler.GetOverview)
			r.Post(path, h.StatsHandler.RecordSnapshot)
		}

		r.Get("/api/services", h.HealthHandler.GetServiceStatuses) // статусы служб VPS
	})

	if h.WebInterface {
		router.Handle("/*", web.Handler())
	}

	return router
}
