package app_handler

import (
	"net/http"

	"github.com/trsv-dev/vps-dashboard/internal/broadcast"
)

// AppHandler Общие для приложения обработчики: поток событий дашборда.
type AppHandler struct {
	Broadcaster  broadcast.Broadcaster
	JWTSecretKey string
}

// NewAppHandler Конструктор AppHandler.
func NewAppHandler(JWTSecretKey string, broadcaster broadcast.Broadcaster) *AppHandler {
	return &AppHandler{JWTSecretKey: JWTSecretKey, Broadcaster: broadcaster}
}

// Events Подключение EventSource к потоку сводки. Проверка сессии и выбор
// топика выполняются резольвером внутри Broadcaster.
func (h *AppHandler) Events(w http.ResponseWriter, r *http.Request) {
	h.Broadcaster.HTTPHandler().ServeHTTP(w, r)
}
