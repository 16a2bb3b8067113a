package di_containers

import (
	"github.com/trsv-dev/vps-dashboard/internal/api/app_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/authorization_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/health_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/proxy_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/registration_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/ssh_handler"
	"github.com/trsv-dev/vps-dashboard/internal/api/stats_handler"
	"github.com/trsv-dev/vps-dashboard/internal/auth"
	"github.com/trsv-dev/vps-dashboard/internal/broadcast"
	"github.com/trsv-dev/vps-dashboard/internal/config"
	"github.com/trsv-dev/vps-dashboard/internal/health_storage"
	"github.com/trsv-dev/vps-dashboard/internal/provisioning"
	"github.com/trsv-dev/vps-dashboard/internal/stats"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
)

// HandlersContainer Контейнер со всеми хендлерами приложения (и их зависимостями).
type HandlersContainer struct {
	RegistrationHandler  *registration_handler.RegistrationHandler
	AuthorizationHandler *authorization_handler.AuthorizationHandler
	HealthHandler        *health_handler.HealthHandler
	AppHandler           *app_handler.AppHandler
	SSHHandler           *ssh_handler.SSHHandler
	ProxyHandler         *proxy_handler.ProxyHandler
	StatsHandler         *stats_handler.StatsHandler

	// нужны роутеру для middleware сессии
	JWTSecretKey string
	TokenBuilder auth.TokenBuilder
	WebInterface bool
}

// NewHandlersContainer Конструктор контейнера с зависимостями для хендлеров.
func NewHandlersContainer(storage storage.Storage, statusCache health_storage.StatusCacheStorage, srvConfig *config.Config,
	broadcaster broadcast.Broadcaster, tokenBuilder auth.TokenBuilder, provisioner provisioning.Provisioner,
	aggregator stats.Aggregator) *HandlersContainer {

	registrationHandler := registration_handler.NewRegistrationHandler(storage, tokenBuilder,
		srvConfig.JWTSecretKey, srvConfig.RegistrationKey, srvConfig.OpenRegistration)
	authorizationHandler := authorization_handler.NewAuthorizationHandler(storage, tokenBuilder, srvConfig.JWTSecretKey)
	healthHandler := health_handler.NewHealthHandler(storage, statusCache)
	appHandler := app_handler.NewAppHandler(srvConfig.JWTSecretKey, broadcaster)
	sshHandler := ssh_handler.NewSSHHandler(provisioner)
	proxyHandler := proxy_handler.NewProxyHandler(provisioner)
	statsHandler := stats_handler.NewStatsHandler(aggregator)

	return &HandlersContainer{
		RegistrationHandler:  registrationHandler,
		AuthorizationHandler: authorizationHandler,
		HealthHandler:        healthHandler,
		AppHandler:           appHandler,
		SSHHandler:           sshHandler,
		ProxyHandler:         proxyHandler,
		StatsHandler:         statsHandler,
		JWTSecretKey:         srvConfig.JWTSecretKey,
		TokenBuilder:         tokenBuilder,
		WebInterface:         srvConfig.WebInterface,
	}
}
