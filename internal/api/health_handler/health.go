package health_handler

import (
	"context"
	"net/http"
	"time"

	"github.com/trsv-dev/vps-dashboard/internal/api/response"
	"github.com/trsv-dev/vps-dashboard/internal/health_storage"
	"github.com/trsv-dev/vps-dashboard/internal/logger"
	"github.com/trsv-dev/vps-dashboard/internal/storage"
)

// HealthHandler обрабатывает HTTP-запросы для проверки состояния сервиса и служб VPS.
type HealthHandler struct {
	storage     storage.WorkerStorage
	statusCache health_storage.StatusCacheStorage
}

// NewHealthHandler Конструктор HealthHandler.
func NewHealthHandler(storage storage.WorkerStorage, statusCache health_storage.StatusCacheStorage) *HealthHandler {
	return &HealthHandler{
		storage:     storage,
		statusCache: statusCache,
	}
}

// GetHealth Возвращает HTTP 200, если база данных доступна, иначе HTTP 503.
func (h *HealthHandler) GetHealth(w http.ResponseWriter, r *http.Request) {
	pingCtx, pingCancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer pingCancel()

	if err := h.storage.Ping(pingCtx); err != nil {
		logger.Log.Error("База данных PostgreSQL не отвечает", logger.String("error", err.Error()))

		http.Error(w, "База данных недоступна", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// GetServiceStatuses Последние статусы служб VPS из in-memory кэша.
func (h *HealthHandler) GetServiceStatuses(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]any{
		"services": h.statusCache.All(),
	})
}
